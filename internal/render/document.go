package render

import (
	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/storefront/internal/theme"
)

// NavLink is one entry of the storefront header navigation.
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

// Shell describes the chrome around a rendered page.
type Shell struct {
	Title      string
	Store      Store
	Nav        []NavLink
	CartHref   string
	PageTheme  *theme.Config
	StoreTheme *theme.Config
	// Favicon is an absolute URL; invalid values are dropped.
	Favicon string
}

const baseStylesheet = `*{box-sizing:border-box}body{margin:0}
.container{max-width:72rem;margin:0 auto;padding:3rem 1.5rem}.container.narrow{max-width:56rem}
.block{position:relative}.block-title{margin:0 0 1.5rem;text-align:center}.block-subtitle{text-align:center;opacity:.9}
.hero-content{position:relative;z-index:1;max-width:56rem;margin:0 auto;padding:6rem 1.5rem;text-align:center}
.hero-overlay,.hero-background{position:absolute;inset:0}
.button{display:inline-block;padding:.75rem 2rem;border-radius:.5rem;font-weight:600;text-decoration:none;border:0}
.media-placeholder{display:flex;align-items:center;justify-content:center;min-height:12rem;border-radius:.5rem}
img{max-width:100%;display:block}.product-card,.review,.category-card{border-radius:.5rem;overflow:hidden}
.storefront-header,.storefront-footer{padding:1.5rem;display:flex;gap:1.5rem;align-items:center;justify-content:space-between}`

// Document wraps a rendered body in a complete HTML page with the store
// header and footer.
func Document(shell Shell, body *html.Node) *html.Node {
	t := theme.Resolve(theme.Override{}, shell.PageTheme, shell.StoreTheme)
	storeName := or(shell.Store.Name, "Store")

	head := el("head", nil,
		el("meta", attrs("charset", "utf-8")),
		el("meta", attrs("name", "viewport", "content", "width=device-width, initial-scale=1")),
		tag("title", nil, or(shell.Title, storeName)),
		tag("style", nil, baseStylesheet),
	)
	if ValidMediaURL(shell.Favicon) {
		head.AppendChild(el("link", attrs("rel", "icon", "href", shell.Favicon)))
	}

	nav := el("nav", attrs("class", "storefront-nav"))
	for _, link := range shell.Nav {
		kv := attrs("href", safeHref(link.Href), "style", css("color", t.Text))
		if link.Active {
			kv = append(kv, "aria-current", "page", "class", "active")
		}
		nav.AppendChild(tag("a", kv, link.Label))
	}
	if shell.CartHref != "" {
		nav.AppendChild(tag("a", attrs("href", safeHref(shell.CartHref), "class", "cart-link", "style", css("color", t.Accent)), "Cart"))
	}

	homeHref := "#"
	if shell.Store.Slug != "" {
		homeHref = "/stores/" + shell.Store.Slug
	}
	header := el("header", attrs("class", "storefront-header", "style", css("background-color", t.Secondary, "border-bottom", "1px solid "+cssValue(t.Primary))),
		tag("a", attrs("href", homeHref, "class", "store-name", "style", css("color", t.Primary, "font-family", fontStack(t.HeadingFont))), storeName),
		nav,
	)

	footer := el("footer", attrs("class", "storefront-footer", "style", css("background-color", t.Secondary, "border-top", "1px solid "+cssValue(t.Primary))),
		tag("h4", attrs("style", css("color", t.Primary, "font-family", fontStack(t.HeadingFont))), storeName),
		tag("p", attrs("style", css("color", t.Text)), or(shell.Store.Description, "Your trusted online store")),
	)

	bodyNode := el("body", attrs("style", css("background-color", t.Background, "color", t.Text, "font-family", fontStack(t.BodyFont))),
		header, body, footer,
	)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(el("html", attrs("lang", "en"), head, bodyNode))
	return doc
}
