package seohelper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Title(t *testing.T) {
	t.Run("should render the configured title alone when no site name is set", func(t *testing.T) {
		title := NewTitle(TitleConfig{Title: "Home"})
		assert.Equal(t, "Home", title.Get())
		assert.Equal(t, "<title>Home</title>", title.Render())
	})

	t.Run("should append site name after the separator", func(t *testing.T) {
		title := NewTitle(TitleConfig{Title: "Home", SiteName: "Example"})
		assert.Equal(t, "<title>Home - Example</title>", title.Render())

		title.SetSeparator(" | ")
		assert.Equal(t, "<title>Home | Example</title>", title.Render())
	})

	t.Run("should put site name first when title-first is disabled", func(t *testing.T) {
		title := NewTitle(TitleConfig{Title: "Home", SiteName: "Example", First: Bool(false)})
		assert.False(t, title.IsFirst())
		assert.Equal(t, "<title>Example - Home</title>", title.Render())
	})

	t.Run("should fall back to the configured title when set to empty", func(t *testing.T) {
		title := NewTitle(TitleConfig{Title: "Default"})
		title.Set("About")
		assert.Equal(t, "About", title.Get())
		title.Set("")
		assert.Equal(t, "Default", title.Get())
	})

	t.Run("should render nothing when title and site name are empty", func(t *testing.T) {
		assert.Empty(t, NewTitle(TitleConfig{}).Render())
	})

	t.Run("should render site name alone when title is empty", func(t *testing.T) {
		title := NewTitle(TitleConfig{SiteName: "Example"})
		assert.Equal(t, "<title>Example</title>", title.Render())
	})

	t.Run("should use a single space for an empty separator", func(t *testing.T) {
		title := NewTitle(TitleConfig{Title: "Home", SiteName: "Example"}).SetSeparator("")
		assert.Equal(t, "<title>Home Example</title>", title.Render())
	})

	t.Run("should strip markup and escape the remaining text", func(t *testing.T) {
		title := NewTitle(TitleConfig{}).Set("<b>Tom</b> & Jerry")
		assert.Equal(t, "<title>Tom &amp; Jerry</title>", title.Render())
	})

	t.Run("should apply defaults from config", func(t *testing.T) {
		title := NewTitle(TitleConfig{})
		assert.Equal(t, DefaultSeparator, title.Separator())
		assert.Equal(t, DefaultTitleMax, title.Max())
		assert.True(t, title.IsFirst())
	})

	t.Run("should never exceed max width between the title tags", func(t *testing.T) {
		for _, input := range []string{
			"A fairly long page title that keeps going",
			"日本語のとても長いページタイトルです",
			"short",
		} {
			title := NewTitle(TitleConfig{SiteName: "Example", Max: 20}).Set(input)
			out := title.Render()
			require.True(t, strings.HasPrefix(out, "<title>"), out)
			require.True(t, strings.HasSuffix(out, "</title>"), out)
			text := strings.TrimSuffix(strings.TrimPrefix(out, "<title>"), "</title>")
			assert.LessOrEqual(t, textWidth(text), 20, text)
		}
	})

	t.Run("should not truncate when max is disabled", func(t *testing.T) {
		long := strings.Repeat("x", 200)
		title := NewTitle(TitleConfig{}).Set(long).SetMax(0)
		assert.Equal(t, "<title>"+long+"</title>", title.Render())
	})
}
