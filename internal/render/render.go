// Package render turns block instances into an HTML node tree. The same
// renderer serves the builder canvas and the public storefront; Mode only
// switches product fallbacks and cart behaviour.
package render

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
	"github.com/alexisbeaulieu97/storefront/internal/products"
	"github.com/alexisbeaulieu97/storefront/internal/theme"
)

// renderer carries the per-block state shared by every case.
type renderer struct {
	ctx      Context
	strategy strategy
	theme    theme.Resolved
}

// Render produces the node for a single component. It never fails: unknown
// types render a labelled placeholder and malformed props have already been
// coerced to their zero values when the component was decoded.
func Render(c blocks.Component, ctx Context) *html.Node {
	props := c.Props
	if props == nil {
		props, _ = blocks.Decode(c.Type, nil)
	}

	r := renderer{
		ctx:      ctx,
		strategy: strategyFor(ctx.Mode),
		theme:    theme.Resolve(props.ThemeOverride(), ctx.PageTheme, ctx.StoreTheme),
	}

	var body *html.Node
	switch p := props.(type) {
	case *blocks.HeroBannerProps:
		body = r.heroBanner(p)
	case *blocks.HeroSplitProps:
		body = r.heroSplit(p)
	case *blocks.HeroVideoProps:
		body = r.heroVideo(p)
	case *blocks.HeroMinimalProps:
		body = r.heroMinimal(p)
	case *blocks.ProductGridProps:
		body = r.productGrid(p)
	case *blocks.ProductCarouselProps:
		body = r.productCarousel(p)
	case *blocks.ProductShowcaseProps:
		body = r.productShowcase(p)
	case *blocks.FeatureListProps:
		body = r.featureList(p)
	case *blocks.TestimonialsProps:
		body = r.testimonials(p)
	case *blocks.ReviewsGridProps:
		body = r.reviewsGrid(p)
	case *blocks.SocialProofProps:
		body = r.socialProof(p)
	case *blocks.IconGridProps:
		body = r.iconGrid(p)
	case *blocks.BeforeAfterProps:
		body = r.beforeAfter(p)
	case *blocks.ProductCategoriesProps:
		body = r.productCategories(p)
	case *blocks.ImageTextProps:
		body = r.imageText(p)
	case *blocks.AboutSectionProps:
		body = r.aboutSection(p)
	case *blocks.ContactInfoProps:
		body = r.contactInfo(p)
	case *blocks.NewsletterProps:
		body = r.newsletter(p)
	case *blocks.CTABannerProps:
		body = r.ctaBanner(p)
	case *blocks.StatsCounterProps:
		body = r.statsCounter(p)
	case *blocks.ImageGalleryProps:
		body = r.imageGallery(p)
	case *blocks.VideoEmbedProps:
		body = r.videoEmbed(p)
	case *blocks.SpacerProps:
		body = r.spacer(p)
	case *blocks.DividerProps:
		body = r.divider(p)
	default:
		body = r.unsupported(or(string(c.Type), string(props.BlockType())))
	}

	if ctx.Slots.Wrap != nil {
		if wrapped := ctx.Slots.Wrap(c, body); wrapped != nil {
			return wrapped
		}
	}
	return body
}

// UnsupportedMessage is the text shown for block types this build cannot render.
func UnsupportedMessage(t string) string {
	return fmt.Sprintf("Component type %q is not yet supported in page rendering.", t)
}

func (r renderer) unsupported(t string) *html.Node {
	return r.section("unsupported", r.baseStyle(),
		el("div", attrs("class", "container narrow"),
			el("div", attrs("class", "unsupported-block", "data-unsupported-type", t, "style", css("background-color", "#f3f4f6", "color", "#4b5563")),
				tag("p", nil, UnsupportedMessage(t)),
			),
		),
	)
}

// RenderPage renders components in ascending order. Persisted order is not
// trusted: a sorted copy is rendered and the input is left untouched. An
// empty layout renders the default home content instead of a blank page.
func RenderPage(components []blocks.Component, ctx Context) *html.Node {
	page := el("main", attrs("class", "storefront-page", "data-mode", string(ctx.Mode), "data-device", string(ctx.Device)))
	if len(components) == 0 {
		for _, n := range fallbackHome(ctx) {
			page.AppendChild(n)
		}
		return page
	}

	sorted := make([]blocks.Component, len(components))
	copy(sorted, components)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	for _, c := range sorted {
		page.AppendChild(Render(c, ctx))
	}
	return page
}

// section is the outer element every block renders into.
func (r renderer) section(kind, style string, children ...*html.Node) *html.Node {
	return el("section", attrs("class", "block block-"+kind, "style", style), children...)
}

func (r renderer) baseStyle(extra ...string) string {
	pairs := append([]string{
		"background-color", r.theme.Background,
		"color", r.theme.Text,
		"font-family", fontStack(r.theme.BodyFont),
	}, extra...)
	return css(pairs...)
}

// mutedStyle is the alternate band background used by social and info blocks.
func (r renderer) mutedStyle() string {
	return r.baseStyle("background-color", r.theme.Secondary)
}

func (r renderer) heading(level, content string) *html.Node {
	return tag(level, attrs("class", "block-title", "style", css("color", r.theme.Primary, "font-family", fontStack(r.theme.HeadingFont))), content)
}

func (r renderer) button(label, href, background, color string) *html.Node {
	style := css("background-color", background, "color", or(color, "#ffffff"))
	if href == "" {
		return tag("button", attrs("type", "button", "class", "button", "style", style), label)
	}
	return tag("a", attrs("href", safeHref(href), "class", "button", "style", style), label)
}

func (r renderer) mobile() bool { return r.ctx.Device == DeviceMobile }

// columns clamps a requested column count to the supported set, collapsing
// to one column in the mobile preview.
func (r renderer) columns(requested int, allowed []int, fallback int) int {
	if r.mobile() {
		return 1
	}
	for _, n := range allowed {
		if requested == n {
			return n
		}
	}
	return fallback
}

func (r renderer) grid(cols int, children ...*html.Node) *html.Node {
	return el("div", attrs(
		"class", fmt.Sprintf("grid grid-cols-%d", cols),
		"style", css("display", "grid", "grid-template-columns", fmt.Sprintf("repeat(%d, minmax(0, 1fr))", cols), "gap", "1.5rem"),
	), children...)
}

func (r renderer) source(a blocks.Asset) string {
	return mediaSource(a, r.ctx.Mode)
}

func (r renderer) addToCart(p products.Product) *html.Node {
	if r.ctx.Slots.AddToCart != nil {
		if n := r.ctx.Slots.AddToCart(p, r.theme); n != nil {
			return n
		}
	}
	return r.strategy.addToCart(p, r.theme, r.ctx.Store)
}

// products returns the catalog bound to a multi-product block.
func (r renderer) products(selected []string) []products.Product {
	return products.Resolve(selected, r.strategy.catalog(r.ctx.Products))
}

func (r renderer) emptyProducts(kind string) *html.Node {
	return r.section(kind, r.baseStyle(),
		el("div", attrs("class", "container narrow empty-state", "style", css("color", "#6b7280", "text-align", "center")),
			text("No products available"),
		),
	)
}

var safeSchemes = []string{"http://", "https://", "mailto:", "tel:"}

// safeHref keeps relative links and a handful of schemes; anything else,
// javascript: in particular, becomes an inert anchor.
func safeHref(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return "#"
	}
	if strings.HasPrefix(href, "/") || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "?") {
		return href
	}
	lower := strings.ToLower(href)
	for _, scheme := range safeSchemes {
		if strings.HasPrefix(lower, scheme) {
			return href
		}
	}
	return "#"
}

func limit[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
