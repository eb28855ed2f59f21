package seohelper

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Renderable is implemented by every entity that produces a head fragment.
// An empty string means the entity has nothing to emit.
type Renderable interface {
	Render() string
}

// joinRendered renders each part in order and joins the non-empty results
// with a newline.
func joinRendered(parts ...Renderable) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := p.Render(); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, "\n")
}

// ===== markup =====

// element builds a detached element node; attrs are key/value pairs.
func element(tag atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: tag, Data: tag.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func textElement(tag atom.Atom, text string) *html.Node {
	n := element(tag)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

// renderNode serialises n. Text and attribute values are escaped by the
// renderer, void elements come out self-closed.
func renderNode(n *html.Node) string {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return ""
	}
	return sb.String()
}

func metaTag(name, content string) string {
	return renderNode(element(atom.Meta, "name", name, "content", content))
}

func linkTag(rel, href string) string {
	return renderNode(element(atom.Link, "rel", rel, "href", href))
}
