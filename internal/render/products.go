package render

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
	"github.com/alexisbeaulieu97/storefront/internal/products"
)

func (r renderer) productGrid(p *blocks.ProductGridProps) *html.Node {
	items := limit(r.products(p.SelectedProducts), p.MaxProducts)
	if len(items) == 0 {
		return r.emptyProducts("product-grid")
	}

	cards := make([]*html.Node, 0, len(items))
	for _, product := range items {
		cards = append(cards, r.productCard(product))
	}
	return r.section("product-grid", r.baseStyle(),
		el("div", attrs("class", "container"),
			r.heading("h2", or(p.Title, "Featured Products")),
			r.grid(r.columns(p.Columns, []int{1, 2, 3, 4}, 3), cards...),
		),
	)
}

func (r renderer) productCarousel(p *blocks.ProductCarouselProps) *html.Node {
	items := r.products(p.SelectedProducts)
	if len(items) == 0 {
		return r.emptyProducts("product-carousel")
	}

	visible := r.columns(p.SlidesToShow, []int{1, 2, 3, 4, 5, 6}, 4)
	width := fmt.Sprintf("%.4g%%", 100/float64(visible))

	track := el("div", attrs("class", "carousel-track", "style", css("display", "flex", "overflow-x", "auto", "scroll-snap-type", "x mandatory")))
	for _, product := range items {
		track.AppendChild(el("div", attrs("class", "carousel-slide", "style", css("flex", "0 0 "+width, "scroll-snap-align", "start")), r.productCard(product)))
	}

	kv := attrs("class", "carousel", "data-slides", fmt.Sprint(visible))
	if p.Autoplay {
		kv = append(kv, "data-autoplay", "true")
	}
	carousel := el("div", kv, track)
	if p.ShowDots {
		pages := (len(items) + visible - 1) / visible
		dots := el("div", attrs("class", "carousel-dots"))
		for i := 0; i < pages; i++ {
			dots.AppendChild(el("span", attrs("class", "carousel-dot", "data-index", fmt.Sprint(i), "style", css("background-color", r.theme.Primary))))
		}
		carousel.AppendChild(dots)
	}

	return r.section("product-carousel", r.baseStyle(),
		el("div", attrs("class", "container"),
			r.heading("h2", or(p.Title, "Trending Now")),
			carousel,
		),
	)
}

func (r renderer) productShowcase(p *blocks.ProductShowcaseProps) *html.Node {
	product, ok := products.Featured(p.FeaturedProduct, r.strategy.catalog(r.ctx.Products))
	if !ok {
		return r.emptyProducts("product-showcase")
	}

	details := el("div", attrs("class", "showcase-details"))
	if p.Title != "" {
		details.AppendChild(tag("p", attrs("class", "eyebrow", "style", css("color", r.theme.Accent)), p.Title))
	}
	details.AppendChild(r.heading("h2", product.Name))
	details.AppendChild(r.price(product, "showcase-price"))
	if p.ShowDescription && product.Description != "" {
		details.AppendChild(tag("p", attrs("class", "showcase-description"), product.Description))
	}
	details.AppendChild(r.addToCart(product))

	return r.section("product-showcase", r.baseStyle(),
		el("div", attrs("class", "container narrow"),
			r.grid(r.columns(2, []int{2}, 2),
				el("div", attrs("class", "showcase-media"), r.productImage(product, 600)),
				details,
			),
		),
	)
}

func (r renderer) productCard(product products.Product) *html.Node {
	return el("div", attrs("class", "product-card", "data-product-id", string(product.ID)),
		r.productImage(product, 300),
		el("div", attrs("class", "product-info"),
			tag("h3", attrs("class", "product-name", "style", css("color", r.theme.Primary, "font-family", fontStack(r.theme.HeadingFont))), product.Name),
			r.price(product, "product-price"),
			r.addToCart(product),
		),
	)
}

func (r renderer) productImage(product products.Product, size int) *html.Node {
	src := product.PrimaryImage()
	if !ValidImageURL(src) {
		return el("div", attrs("class", "product-image media-placeholder", "data-placeholder", "true", "style", css("background-color", "#e5e7eb", "aspect-ratio", "1 / 1")))
	}
	return image(imageSpec{src: src, alt: product.Name, width: size, height: size, placeholder: "Product", class: "product-image"})
}

func (r renderer) price(product products.Product, class string) *html.Node {
	n := el("div", attrs("class", class),
		tag("span", attrs("class", "price", "style", css("color", r.theme.Accent)), products.FormatPrice(product.Price)),
	)
	if product.OnSale() {
		n.AppendChild(tag("span", attrs("class", "compare-price", "style", css("color", "#6b7280", "text-decoration", "line-through")), products.FormatPrice(*product.ComparePrice)))
	}
	return n
}
