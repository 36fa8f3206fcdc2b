package render

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
)

var galleryGaps = map[string]string{"small": "0.5rem", "medium": "1rem", "large": "2rem"}

func (r renderer) imageGallery(p *blocks.ImageGalleryProps) *html.Node {
	cols := r.columns(p.Columns, []int{2, 3, 4}, 3)
	gap := galleryGaps[p.Spacing]
	if gap == "" {
		gap = galleryGaps["medium"]
	}

	grid := el("div", attrs(
		"class", fmt.Sprintf("grid grid-cols-%d gallery", cols),
		"style", css("display", "grid", "grid-template-columns", fmt.Sprintf("repeat(%d, minmax(0, 1fr))", cols), "gap", gap),
	))
	for i, a := range limit(p.Images, 6) {
		src := r.source(a)
		img := image(imageSpec{src: src, alt: fmt.Sprintf("Gallery image %d", i+1), width: 400, height: 400, placeholder: "Image", class: "gallery-image"})
		if p.Lightbox && ValidImageURL(src) {
			img = el("a", attrs("href", src, "target", "_blank", "rel", "noopener", "class", "lightbox"), img)
		}
		grid.AppendChild(el("div", attrs("class", "gallery-item"), img))
	}

	return r.section("image-gallery", r.baseStyle(),
		el("div", attrs("class", "container"), r.heading("h2", or(p.Title, "Image Gallery")), grid),
	)
}

func (r renderer) videoEmbed(p *blocks.VideoEmbedProps) *html.Node {
	var player *html.Node
	if src := r.source(p.VideoURL); ValidMediaURL(src) {
		player = video(videoSpec{src: src, autoplay: p.Autoplay, muted: p.Muted, loop: p.Loop, controls: p.Controls, class: "video-player"})
	} else {
		player = el("div", attrs("class", "media-placeholder", "data-placeholder", "true", "style", css("background-color", "#111827", "color", "#ffffff")),
			tag("p", nil, "Add Video URL"),
			tag("p", attrs("class", "hint"), "Upload or paste video URL"),
		)
	}
	return r.section("video-embed", r.baseStyle(),
		el("div", attrs("class", "container narrow"),
			r.heading("h2", or(p.Title, "Video Player")),
			el("div", attrs("class", "video-wrapper", "style", css("aspect-ratio", "16 / 9")), player),
		),
	)
}

func (r renderer) beforeAfter(p *blocks.BeforeAfterProps) *html.Node {
	panel := func(label string, a blocks.Asset) *html.Node {
		return el("figure", attrs("class", "before-after-panel"),
			image(imageSpec{src: r.source(a), alt: label, width: 600, height: 400, placeholder: label + " Image"}),
			tag("figcaption", attrs("style", css("color", r.theme.Primary)), label),
		)
	}
	return r.section("before-after", r.baseStyle(),
		el("div", attrs("class", "container"),
			r.heading("h2", or(p.Title, "See the Difference")),
			r.grid(r.columns(2, []int{2}, 2),
				panel(or(p.BeforeLabel, "Before"), p.BeforeImage),
				panel(or(p.AfterLabel, "After"), p.AfterImage),
			),
		),
	)
}

func (r renderer) productCategories(p *blocks.ProductCategoriesProps) *html.Node {
	items := make([]*html.Node, 0, len(p.Categories))
	for _, c := range limit(p.Categories, 8) {
		name := or(c.Name, "Category")
		card := el("div", attrs("class", "category-card"),
			image(imageSpec{src: r.source(c.Image), alt: name, width: 300, height: 300, placeholder: name, class: "category-image"}),
			tag("h3", attrs("class", "category-name", "style", css("color", r.theme.Primary, "font-family", fontStack(r.theme.HeadingFont))), name),
		)
		if c.ItemCount > 0 {
			card.AppendChild(tag("p", attrs("class", "category-count"), fmt.Sprintf("%d items", c.ItemCount)))
		}
		items = append(items, card)
	}
	return r.section("product-categories", r.baseStyle(),
		el("div", attrs("class", "container"),
			r.heading("h2", or(p.Title, "Shop by Category")),
			r.grid(r.columns(4, []int{4}, 4), items...),
		),
	)
}

// split lays out copy beside an image, honouring imagePosition.
func (r renderer) split(kind, position string, media, copyColumn *html.Node) *html.Node {
	mediaColumn := el("div", attrs("class", "split-media"), media)
	cols := r.columns(2, []int{2}, 2)
	if position == "right" {
		return r.section(kind, r.baseStyle(), el("div", attrs("class", "container"), r.grid(cols, copyColumn, mediaColumn)))
	}
	return r.section(kind, r.baseStyle(), el("div", attrs("class", "container"), r.grid(cols, mediaColumn, copyColumn)))
}

func (r renderer) imageText(p *blocks.ImageTextProps) *html.Node {
	copyColumn := el("div", attrs("class", "split-copy"),
		r.heading("h2", or(p.Title, "Our Story")),
		tag("p", attrs("class", "split-content"), or(p.Content, "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.")),
	)
	if p.ShowButton {
		copyColumn.AppendChild(r.button(or(p.ButtonText, "Read More"), p.ButtonURL, r.theme.Accent, ""))
	}
	media := image(imageSpec{src: r.source(p.Image), alt: or(p.Title, "Our Story"), width: 600, height: 400, placeholder: "Image"})
	return r.split("image-text", p.ImagePosition, media, copyColumn)
}

func (r renderer) aboutSection(p *blocks.AboutSectionProps) *html.Node {
	copyColumn := el("div", attrs("class", "split-copy"),
		r.heading("h2", or(p.Title, "About Our Store")),
		tag("p", attrs("class", "split-content"), or(p.Content, "We are passionate about providing quality products and exceptional customer service. Our team works hard to curate the best selection for our customers.")),
	)
	media := image(imageSpec{src: r.source(p.Image), alt: or(p.Title, "About Our Store"), width: 600, height: 400, placeholder: "About Us Image"})
	return r.split("about-section", p.ImagePosition, media, copyColumn)
}
