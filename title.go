package seohelper

import (
	"go.uber.org/zap"
	"golang.org/x/net/html/atom"
)

// Title renders the document <title>.
type Title struct {
	title        string
	defaultTitle string
	siteName     string
	separator    string
	first        bool
	max          int
	logger       *zap.Logger
}

func NewTitle(cfg TitleConfig) *Title {
	cfg = cfg.withDefaults()
	return &Title{
		defaultTitle: cfg.Title,
		siteName:     cfg.SiteName,
		separator:    cfg.Separator,
		first:        *cfg.First,
		max:          cfg.Max,
		logger:       zap.NewNop(),
	}
}

// Get returns the current title, falling back to the configured one.
func (t *Title) Get() string {
	if t.title == "" {
		return t.defaultTitle
	}
	return t.title
}

func (t *Title) Set(title string) *Title {
	t.title = title
	return t
}

func (t *Title) SiteName() string { return t.siteName }

func (t *Title) SetSiteName(name string) *Title {
	t.siteName = name
	return t
}

func (t *Title) Separator() string { return t.separator }

func (t *Title) SetSeparator(sep string) *Title {
	t.separator = sep
	return t
}

// IsFirst reports whether the title is placed before the site name.
func (t *Title) IsFirst() bool { return t.first }

func (t *Title) SetFirst(first bool) *Title {
	t.first = first
	return t
}

func (t *Title) Max() int { return t.max }

// SetMax sets the display width limit; zero disables it.
func (t *Title) SetMax(max int) *Title {
	t.max = max
	return t
}

// Render returns the <title> element, or "" when there is neither a title
// nor a site name.
func (t *Title) Render() string {
	text := t.text()
	if text == "" {
		return ""
	}
	return renderNode(textElement(atom.Title, text))
}

func (t *Title) text() string {
	title, site := cleanText(t.Get()), cleanText(t.siteName)
	sep := t.separator
	if sep == "" {
		sep = " "
	}

	var out string
	switch {
	case site == "":
		out = title
	case title == "":
		out = site
	case t.first:
		out = title + sep + site
	default:
		out = site + sep + title
	}

	out, cut := truncate(out, t.max)
	if cut {
		t.logger.Debug("seo text truncated", zap.String("field", "title"), zap.Int("max", t.max))
	}
	return out
}
