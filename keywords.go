package seohelper

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Keywords renders <meta name="keywords"> from an ordered keyword list.
// Duplicates are kept.
type Keywords struct {
	items  []string
	logger *zap.Logger
}

func NewKeywords(cfg KeywordsConfig) *Keywords {
	return &Keywords{items: splitKeywords(cfg.Default...), logger: zap.NewNop()}
}

// Get returns a copy of the keywords in insertion order.
func (k *Keywords) Get() []string {
	out := make([]string, len(k.items))
	copy(out, k.items)
	return out
}

// Set replaces the keywords. Every argument is split on commas, so
// Set("a, b") and Set("a", "b") are equivalent.
func (k *Keywords) Set(keywords ...string) *Keywords {
	k.items = splitKeywords(keywords...)
	return k
}

// SetValue replaces the keywords from a dynamically typed value: a string,
// a []string, a []any holding only strings, or nil. Any other value yields
// an *InvalidArgumentError and leaves the keywords unchanged.
func (k *Keywords) SetValue(v any) error {
	items, err := keywordsFromValue("keywords.set", v)
	if err != nil {
		k.logger.Debug("keywords value rejected", zap.String("type", fmt.Sprintf("%T", v)))
		return err
	}
	k.items = items
	return nil
}

// Add appends a single keyword; blank keywords are ignored.
func (k *Keywords) Add(keyword string) *Keywords {
	if keyword = strings.TrimSpace(keyword); keyword != "" {
		k.items = append(k.items, keyword)
	}
	return k
}

func (k *Keywords) Render() string {
	if len(k.items) == 0 {
		return ""
	}
	return metaTag("keywords", strings.Join(k.items, ", "))
}

func splitKeywords(parts ...string) []string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		for _, kw := range strings.Split(part, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				out = append(out, kw)
			}
		}
	}
	return out
}

func keywordsFromValue(op string, v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return []string{}, nil
	case string:
		return splitKeywords(t), nil
	case []string:
		return splitKeywords(t...), nil
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, NewInvalidArgumentError(op, item)
			}
			parts = append(parts, s)
		}
		return splitKeywords(parts...), nil
	default:
		return nil, NewInvalidArgumentError(op, v)
	}
}
