package seohelper

import "go.uber.org/zap"

// Description renders <meta name="description">.
type Description struct {
	content string
	max     int
	logger  *zap.Logger
}

func NewDescription(cfg DescriptionConfig) *Description {
	cfg = cfg.withDefaults()
	return &Description{content: cfg.Description, max: cfg.Max, logger: zap.NewNop()}
}

func (d *Description) Get() string { return d.content }

func (d *Description) Set(content string) *Description {
	d.content = content
	return d
}

func (d *Description) Max() int { return d.max }

// SetMax sets the display width limit; zero disables it.
func (d *Description) SetMax(max int) *Description {
	d.max = max
	return d
}

func (d *Description) Render() string {
	content := cleanText(d.content)
	if content == "" {
		return ""
	}
	content, cut := truncate(content, d.max)
	if cut {
		d.logger.Debug("seo text truncated", zap.String("field", "description"), zap.Int("max", d.max))
	}
	return metaTag("description", content)
}
