package seohelper

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSeparator      = " - "
	DefaultTitleMax       = 55
	DefaultDescriptionMax = 155
)

// Config holds the settings a SeoMeta is built from. Zero-valued sections
// produce empty entities.
type Config struct {
	Title       TitleConfig       `yaml:"title"`
	Description DescriptionConfig `yaml:"description"`
	Keywords    KeywordsConfig    `yaml:"keywords"`
	Misc        MiscConfig        `yaml:"misc"`
}

type TitleConfig struct {
	Title     string `yaml:"title"`     // used whenever no title has been set
	SiteName  string `yaml:"site_name"`
	Separator string `yaml:"separator"` // defaults to DefaultSeparator
	First     *bool  `yaml:"first"`     // title before site name; defaults to true
	Max       int    `yaml:"max"`       // display columns; defaults to DefaultTitleMax
}

type DescriptionConfig struct {
	Description string `yaml:"description"`
	Max         int    `yaml:"max"` // defaults to DefaultDescriptionMax
}

type KeywordsConfig struct {
	Default KeywordList `yaml:"default"`
}

type MiscConfig struct {
	Canonical bool     `yaml:"canonical"` // emit <link rel="canonical"> once a URL is set
	Robots    bool     `yaml:"robots"`    // emit a noindex, nofollow robots meta
	Default   MetaList `yaml:"default"`
}

// Meta is a single name/content pair.
type Meta struct {
	Name    string
	Content string
}

// KeywordList decodes from either a comma separated string or a sequence
// of strings.
type KeywordList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *KeywordList) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	items, err := keywordsFromValue("keywords.default", raw)
	if err != nil {
		return err
	}
	*l = items
	return nil
}

// MetaList decodes from a YAML mapping and keeps the document order.
type MetaList []Meta

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *MetaList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return NewConfigError("misc.default", "expected a mapping of meta name to content")
	}
	out := make(MetaList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var content string
		if err := node.Content[i+1].Decode(&content); err != nil {
			return NewConfigError("misc.default."+node.Content[i].Value, err.Error())
		}
		out = append(out, Meta{Name: node.Content[i].Value, Content: content})
	}
	*l = out
	return nil
}

// Bool returns a pointer to v, for optional config fields.
func Bool(v bool) *bool { return &v }

// ParseConfig decodes a YAML document into a validated Config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Title.Max < 0 {
		return NewConfigError("title.max", "must not be negative")
	}
	if c.Description.Max < 0 {
		return NewConfigError("description.max", "must not be negative")
	}
	for _, m := range c.Misc.Default {
		if strings.TrimSpace(m.Name) == "" {
			return NewConfigError("misc.default", "meta name must not be empty")
		}
	}
	return nil
}

func (c TitleConfig) withDefaults() TitleConfig {
	if c.Separator == "" {
		c.Separator = DefaultSeparator
	}
	if c.First == nil {
		c.First = Bool(true)
	}
	if c.Max == 0 {
		c.Max = DefaultTitleMax
	}
	return c
}

func (c DescriptionConfig) withDefaults() DescriptionConfig {
	if c.Max == 0 {
		c.Max = DefaultDescriptionMax
	}
	return c
}
