package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// el builds an element node. Attribute pairs are given as alternating
// key/value strings; pairs with an empty value are skipped.
func el(tag string, kv []string, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			continue
		}
		n.Attr = append(n.Attr, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

func attrs(kv ...string) []string { return kv }

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// tag is el with text content.
func tag(name string, kv []string, content string) *html.Node {
	return el(name, kv, text(content))
}

// css joins property/value pairs into a style attribute, dropping empty values.
func css(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		value := cssValue(pairs[i+1])
		if value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(pairs[i])
		b.WriteString(": ")
		b.WriteString(value)
	}
	return b.String()
}

var cssUnsafe = strings.NewReplacer(";", "", "{", "", "}", "", "<", "", ">", "", "\\", "", "\n", " ")

// cssValue strips characters that would let a prop escape its declaration.
func cssValue(v string) string {
	return strings.TrimSpace(cssUnsafe.Replace(v))
}

// fontStack quotes a family name for use in font-family.
func fontStack(family string) string {
	family = strings.Trim(cssValue(family), `"'`)
	if family == "" {
		return ""
	}
	if strings.Contains(family, ",") {
		return family
	}
	return "'" + family + "', sans-serif"
}

// or returns the first non-empty value.
func or(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func orInt(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}

// HTML serializes a node tree. Rendering into a strings.Builder cannot fail.
func HTML(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	_ = html.Render(&b, n)
	return b.String()
}
