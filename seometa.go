package seohelper

import (
	"html/template"

	"go.uber.org/zap"
)

// SeoMeta owns one of each entity and forwards to them. It is meant to live
// for a single request and is not safe for concurrent mutation.
type SeoMeta struct {
	title       *Title
	description *Description
	keywords    *Keywords
	misc        *MiscTags
	logger      *zap.Logger
}

// New validates cfg and builds the entities from it.
func New(cfg Config, opts ...func(*SeoMeta)) (*SeoMeta, error) {
	m := &SeoMeta{logger: zap.NewNop()}
	for _, o := range opts {
		o(m)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m.title = NewTitle(cfg.Title)
	m.title.logger = m.logger.Named("title")
	m.description = NewDescription(cfg.Description)
	m.description.logger = m.logger.Named("description")
	m.keywords = NewKeywords(cfg.Keywords)
	m.keywords.logger = m.logger.Named("keywords")
	m.misc = NewMiscTags(cfg.Misc)
	return m, nil
}

// MustNew is like New but panics on an invalid config.
func MustNew(cfg Config, opts ...func(*SeoMeta)) *SeoMeta {
	m, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// WithLogger sets the logger used for debug events. A nil logger is ignored.
func WithLogger(logger *zap.Logger) func(*SeoMeta) {
	return func(m *SeoMeta) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// ===== Title =====

func (m *SeoMeta) Title() string { return m.title.Get() }

func (m *SeoMeta) SetTitle(title string) *SeoMeta {
	m.title.Set(title)
	return m
}

func (m *SeoMeta) SetSiteName(name string) *SeoMeta {
	m.title.SetSiteName(name)
	return m
}

func (m *SeoMeta) SetTitleSeparator(sep string) *SeoMeta {
	m.title.SetSeparator(sep)
	return m
}

// ===== Description =====

func (m *SeoMeta) Description() string { return m.description.Get() }

func (m *SeoMeta) SetDescription(content string) *SeoMeta {
	m.description.Set(content)
	return m
}

// ===== Keywords =====

func (m *SeoMeta) Keywords() []string { return m.keywords.Get() }

func (m *SeoMeta) SetKeywords(keywords ...string) *SeoMeta {
	m.keywords.Set(keywords...)
	return m
}

// SetKeywordsValue is the dynamically typed form of SetKeywords, for values
// that come out of decoded documents. See Keywords.SetValue.
func (m *SeoMeta) SetKeywordsValue(v any) error {
	return m.keywords.SetValue(v)
}

func (m *SeoMeta) AddKeyword(keyword string) *SeoMeta {
	m.keywords.Add(keyword)
	return m
}

// ===== Misc =====

func (m *SeoMeta) URL() string { return m.misc.URL() }

func (m *SeoMeta) SetURL(url string) *SeoMeta {
	m.misc.SetURL(url)
	return m
}

func (m *SeoMeta) AddMeta(name, content string) *SeoMeta {
	m.misc.AddMeta(name, content)
	return m
}

func (m *SeoMeta) AddMetas(metas ...Meta) *SeoMeta {
	m.misc.AddMetas(metas...)
	return m
}

func (m *SeoMeta) RemoveMeta(names ...string) *SeoMeta {
	m.misc.RemoveMeta(names...)
	return m
}

func (m *SeoMeta) Metas() []Meta { return m.misc.Metas() }

// ===== Render =====

// Render joins the non-empty entity renders with newlines.
func (m *SeoMeta) Render() string {
	return joinRendered(m.title, m.description, m.keywords, m.misc)
}

func (m *SeoMeta) RenderTitle() string       { return m.title.Render() }
func (m *SeoMeta) RenderDescription() string { return m.description.Render() }
func (m *SeoMeta) RenderKeywords() string    { return m.keywords.Render() }
func (m *SeoMeta) RenderMisc() string        { return m.misc.Render() }

func (m *SeoMeta) String() string { return m.Render() }

// HTML returns the rendered head fragment for use in html/template.
func (m *SeoMeta) HTML() template.HTML {
	// Text and attribute values are escaped by renderNode.
	return template.HTML(m.Render())
}
