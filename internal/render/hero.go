package render

import (
	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
)

const heroShadow = "2px 2px 4px rgba(0,0,0,0.7)"

func (r renderer) heroBanner(p *blocks.HeroBannerProps) *html.Node {
	textColor := or(p.TextColor, "#ffffff")
	background := "linear-gradient(135deg, " + cssValue(r.theme.Primary) + " 0%, " + cssValue(r.theme.Accent) + " 100%)"
	if src := r.source(p.BackgroundImage); ValidImageURL(src) {
		background = "url('" + cssValue(src) + "')"
	}

	content := el("div", attrs("class", "hero-content"),
		tag("h1", attrs("class", "hero-title", "style", css("color", textColor, "font-family", fontStack(r.theme.HeadingFont), "text-shadow", heroShadow)), or(p.Title, "Welcome")),
	)
	if p.Subtitle != "" {
		content.AppendChild(tag("p", attrs("class", "hero-subtitle", "style", css("color", textColor)), p.Subtitle))
	}
	if p.ButtonText != "" && p.ButtonURL != "" {
		actions := el("div", attrs("class", "hero-actions"), r.button(p.ButtonText, p.ButtonURL, "#ffffff", "#111827"))
		if p.SecondaryButton {
			actions.AppendChild(tag("a", attrs("href", r.pageHref("about"), "class", "button button-outline", "style", css("color", textColor, "border-color", textColor)), or(p.SecondaryButtonText, "Learn More")))
		}
		content.AppendChild(actions)
	}

	section := r.section("hero-banner", css(
		"background-image", background,
		"background-color", r.theme.Primary,
		"background-size", "cover",
		"background-position", "center",
	))
	if p.Overlay {
		section.AppendChild(el("div", attrs("class", "hero-overlay", "style", css("background-color", "rgba(0,0,0,0.5)"))))
	}
	section.AppendChild(content)
	return section
}

func (r renderer) heroSplit(p *blocks.HeroSplitProps) *html.Node {
	copyColumn := el("div", attrs("class", "split-copy"),
		r.heading("h1", or(p.Title, "New Collection")),
		tag("p", attrs("class", "hero-subtitle"), or(p.Subtitle, "Explore our latest arrivals")),
		r.button(or(p.ButtonText, "View Collection"), p.ButtonURL, r.theme.Accent, ""),
	)

	var media *html.Node
	if src := r.source(p.Image); ValidImageURL(src) {
		media = image(imageSpec{src: src, alt: or(p.Title, "Hero Image"), width: 600, height: 600, placeholder: "Hero Image"})
	} else {
		media = el("div", attrs("class", "media-placeholder", "data-placeholder", "true", "style", css("background-image", "linear-gradient(135deg, #667eea 0%, #764ba2 100%)", "color", "#ffffff")),
			tag("span", nil, "Hero Image"),
		)
	}
	mediaColumn := el("div", attrs("class", "split-media"), media)

	cols := r.columns(2, []int{2}, 2)
	if p.ImagePosition == "left" {
		return r.section("hero-split", r.baseStyle(), r.grid(cols, mediaColumn, copyColumn))
	}
	return r.section("hero-split", r.baseStyle(), r.grid(cols, copyColumn, mediaColumn))
}

func (r renderer) heroVideo(p *blocks.HeroVideoProps) *html.Node {
	var background *html.Node
	if src := r.source(p.VideoURL); ValidMediaURL(src) {
		background = video(videoSpec{src: src, autoplay: p.Autoplay, muted: p.Muted, loop: true, class: "hero-video-media", label: "Video Background"})
	} else {
		background = el("div", attrs("class", "media-placeholder", "data-placeholder", "true", "style", css("background-image", "linear-gradient(135deg, #9333ea 0%, #2563eb 100%)", "color", "#ffffff")),
			tag("p", nil, "Video Background"),
		)
	}

	return r.section("hero-video", r.baseStyle(),
		el("div", attrs("class", "hero-background"), background),
		el("div", attrs("class", "hero-overlay", "style", css("background-color", "rgba(0,0,0,0.4)"))),
		el("div", attrs("class", "hero-content"),
			tag("h1", attrs("class", "hero-title", "style", css("color", "#ffffff", "font-family", fontStack(r.theme.HeadingFont), "text-shadow", heroShadow)), or(p.Title, "Experience Excellence")),
			tag("p", attrs("class", "hero-subtitle", "style", css("color", "#ffffff")), or(p.Subtitle, "Watch our story unfold")),
			r.button(or(p.ButtonText, "Learn More"), p.ButtonURL, r.theme.Accent, ""),
		),
	)
}

func (r renderer) heroMinimal(p *blocks.HeroMinimalProps) *html.Node {
	align := "center"
	if p.Alignment == "left" || p.Alignment == "right" {
		align = p.Alignment
	}
	content := el("div", attrs("class", "hero-content", "style", css("text-align", align)),
		tag("h1", attrs("class", "hero-title", "style", css("color", r.theme.Primary, "font-family", fontStack(r.theme.HeadingFont))), or(p.Title, "Simple. Beautiful. Effective.")),
		tag("p", attrs("class", "hero-subtitle", "style", css("color", r.theme.Text)), or(p.Subtitle, "Discover what matters most")),
	)
	if p.ShowButton {
		content.AppendChild(r.button(or(p.ButtonText, "Get Started"), p.ButtonURL, r.theme.Accent, ""))
	}
	return r.section("hero-minimal", r.baseStyle(), content)
}
