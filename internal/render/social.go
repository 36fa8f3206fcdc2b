package render

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
)

var fallbackLogos = []string{"TechCrunch", "Forbes", "Wired", "The Verge"}

func stars(rating int) *html.Node {
	if rating <= 0 {
		rating = 5
	}
	if rating > 5 {
		rating = 5
	}
	return el("div", attrs("class", "stars", "aria-label", strings.Repeat("★", rating)+" out of 5"),
		tag("span", attrs("class", "star-filled", "style", css("color", "#facc15")), strings.Repeat("★", rating)),
		tag("span", attrs("class", "star-empty", "style", css("color", "#d1d5db")), strings.Repeat("★", 5-rating)),
	)
}

func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	return strings.ToUpper(string(r))
}

func (r renderer) avatar(name string, a blocks.Asset) *html.Node {
	if src := r.source(a); ValidImageURL(src) {
		return image(imageSpec{src: src, alt: name, width: 48, height: 48, placeholder: initial(name), class: "avatar"})
	}
	return tag("div", attrs("class", "avatar avatar-initial", "style", css("background-color", r.theme.Primary, "color", "#ffffff")), initial(name))
}

func (r renderer) review(rv blocks.Review, withAvatar bool) *html.Node {
	name := or(rv.Name, "Customer")
	author := el("div", attrs("class", "review-author"))
	if withAvatar {
		author.AppendChild(r.avatar(name, rv.Avatar))
	} else {
		author.AppendChild(tag("div", attrs("class", "avatar avatar-initial", "style", css("background-color", r.theme.Primary, "color", "#ffffff")), initial(name)))
	}
	author.AppendChild(tag("span", attrs("class", "review-name", "style", css("color", r.theme.Primary)), name))
	if rv.Date != "" {
		author.AppendChild(tag("span", attrs("class", "review-date"), rv.Date))
	}

	return el("div", attrs("class", "review"),
		stars(rv.Rating),
		tag("p", attrs("class", "review-comment"), "“"+or(rv.Comment, "Great product and excellent service!")+"”"),
		author,
	)
}

func (r renderer) testimonials(p *blocks.TestimonialsProps) *html.Node {
	items := make([]*html.Node, 0, len(p.Testimonials))
	for _, t := range limit(p.Testimonials, 6) {
		items = append(items, r.review(t, true))
	}
	return r.section("testimonials", r.baseStyle(),
		el("div", attrs("class", "container"),
			r.heading("h2", or(p.Title, "What Our Customers Say")),
			r.grid(r.columns(3, []int{3}, 3), items...),
		),
	)
}

func (r renderer) reviewsGrid(p *blocks.ReviewsGridProps) *html.Node {
	items := make([]*html.Node, 0, len(p.Reviews))
	for _, rv := range limit(p.Reviews, 6) {
		items = append(items, r.review(rv, false))
	}
	return r.section("reviews-grid", r.baseStyle(),
		el("div", attrs("class", "container"),
			r.heading("h2", or(p.Title, "Customer Reviews")),
			r.grid(r.columns(2, []int{2}, 2), items...),
		),
	)
}

func (r renderer) socialProof(p *blocks.SocialProofProps) *html.Node {
	logoNode := func(name string, src string) *html.Node {
		if ValidImageURL(src) {
			return el("div", attrs("class", "logo"), image(imageSpec{src: src, alt: name, width: 96, height: 48, placeholder: name}))
		}
		return el("div", attrs("class", "logo logo-text", "style", css("background-color", "#e5e7eb", "color", "#6b7280")), tag("span", nil, name))
	}

	items := make([]*html.Node, 0, 6)
	for _, l := range limit(p.Logos, 6) {
		items = append(items, logoNode(or(l.Name, "Partner"), r.source(l.URL)))
	}
	if len(p.Logos) == 0 {
		for _, name := range fallbackLogos {
			items = append(items, logoNode(name, ""))
		}
	}

	header := el("div", attrs("class", "block-header"), r.heading("h2", or(p.Title, "As Featured In")))
	if p.Subtitle != "" {
		header.AppendChild(tag("p", attrs("class", "block-subtitle"), p.Subtitle))
	}
	return r.section("social-proof", r.mutedStyle(),
		el("div", attrs("class", "container"), header, r.grid(r.columns(4, []int{4}, 4), items...)),
	)
}
