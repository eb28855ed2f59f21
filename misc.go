package seohelper

import (
	"slices"
	"strings"
)

const robotsContent = "noindex, nofollow"

// MiscTags renders arbitrary named metas plus the URL derived tags.
// Metas keep the position of their first insertion; a later write to the
// same name only replaces the content.
type MiscTags struct {
	names     []string
	metas     map[string]string
	url       string
	canonical bool
	robots    bool
}

func NewMiscTags(cfg MiscConfig) *MiscTags {
	m := &MiscTags{
		metas:     map[string]string{},
		canonical: cfg.Canonical,
		robots:    cfg.Robots,
	}
	return m.AddMetas(cfg.Default...)
}

// AddMeta upserts one meta. Blank names are ignored.
func (m *MiscTags) AddMeta(name, content string) *MiscTags {
	name = strings.TrimSpace(name)
	if name == "" {
		return m
	}
	if _, ok := m.metas[name]; !ok {
		m.names = append(m.names, name)
	}
	m.metas[name] = content
	return m
}

func (m *MiscTags) AddMetas(metas ...Meta) *MiscTags {
	for _, meta := range metas {
		m.AddMeta(meta.Name, meta.Content)
	}
	return m
}

func (m *MiscTags) RemoveMeta(names ...string) *MiscTags {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if _, ok := m.metas[name]; !ok {
			continue
		}
		delete(m.metas, name)
		m.names = slices.DeleteFunc(m.names, func(n string) bool { return n == name })
	}
	return m
}

// Metas returns the metas in render order.
func (m *MiscTags) Metas() []Meta {
	out := make([]Meta, 0, len(m.names))
	for _, name := range m.names {
		out = append(out, Meta{Name: name, Content: m.metas[name]})
	}
	return out
}

func (m *MiscTags) URL() string { return m.url }

func (m *MiscTags) SetURL(url string) *MiscTags {
	m.url = strings.TrimSpace(url)
	return m
}

// Render emits the canonical link, the robots meta and then every named
// meta, one per line.
func (m *MiscTags) Render() string {
	lines := make([]string, 0, len(m.names)+2)
	if m.canonical && m.url != "" {
		lines = append(lines, linkTag("canonical", m.url))
	}
	if m.robots {
		lines = append(lines, metaTag("robots", robotsContent))
	}
	for _, name := range m.names {
		lines = append(lines, metaTag(name, m.metas[name]))
	}
	return strings.Join(lines, "\n")
}
