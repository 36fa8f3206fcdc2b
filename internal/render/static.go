package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alexisbeaulieu97/storefront/internal/theme"
)

// droppedElements never survive sanitizing, children included.
var droppedElements = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Iframe:   true,
	atom.Object:   true,
	atom.Embed:    true,
	atom.Form:     true,
	atom.Link:     true,
	atom.Meta:     true,
	atom.Base:     true,
	atom.Noscript: true,
}

// SanitizeFragment parses rich page content and strips scripting: dangerous
// elements, event handler attributes, inline styles and unsafe link targets.
func SanitizeFragment(content string) []*html.Node {
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return []*html.Node{text(content)}
	}
	out := make([]*html.Node, 0, len(nodes))
	for _, n := range nodes {
		if clean := sanitize(n); clean != nil {
			out = append(out, clean)
		}
	}
	return out
}

func sanitize(n *html.Node) *html.Node {
	switch n.Type {
	case html.TextNode:
		return text(n.Data)
	case html.ElementNode:
		if droppedElements[n.DataAtom] || n.DataAtom == 0 && n.Namespace != "" {
			return nil
		}
	default:
		return nil
	}

	out := &html.Node{Type: html.ElementNode, Data: n.Data, DataAtom: n.DataAtom}
	for _, a := range n.Attr {
		key := strings.ToLower(a.Key)
		switch {
		case strings.HasPrefix(key, "on"), key == "style", key == "srcdoc", a.Namespace != "":
			continue
		case key == "href":
			a.Val = safeHref(a.Val)
		case key == "src":
			if !ValidMediaURL(a.Val) {
				continue
			}
		}
		out.Attr = append(out.Attr, html.Attribute{Key: key, Val: a.Val})
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if clean := sanitize(c); clean != nil {
			out.AppendChild(clean)
		}
	}
	return out
}

// StaticPage renders a page without a layout: its title and sanitized rich
// content, themed like the blocks around it.
func StaticPage(title, content string, ctx Context) *html.Node {
	t := theme.Resolve(theme.Override{}, ctx.PageTheme, ctx.StoreTheme)
	body := el("div", attrs("class", "content", "style", css("color", t.Text)), SanitizeFragment(or(content, "<p>Page content not found.</p>"))...)
	article := el("article", attrs("class", "static-page"),
		tag("h1", attrs("style", css("color", t.Primary, "font-family", fontStack(t.HeadingFont))), or(title, "Page")),
		body,
	)
	return el("main", attrs("class", "storefront-page static", "data-mode", string(ctx.Mode)),
		el("div", attrs("class", "container narrow"), article),
	)
}
