package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
)

func (r renderer) contactInfo(p *blocks.ContactInfoProps) *html.Node {
	entry := func(icon, label, value, href string) *html.Node {
		var content *html.Node
		if href != "" {
			content = tag("a", attrs("href", href), value)
		} else {
			content = tag("p", nil, value)
		}
		return el("div", attrs("class", "contact-entry"),
			tag("div", attrs("class", "contact-icon", "style", css("background-color", r.theme.Accent)), icon),
			tag("h3", attrs("style", css("color", r.theme.Primary, "font-family", fontStack(r.theme.HeadingFont))), label),
			content,
		)
	}

	phone := or(p.Phone, "(555) 123-4567")
	email := or(p.Email, "info@store.com")
	container := el("div", attrs("class", "container"),
		r.heading("h2", or(p.Title, "Visit Our Store")),
		r.grid(r.columns(3, []int{3}, 3),
			entry("📍", "Address", or(p.Address, "123 Main Street, City, State 12345"), ""),
			entry("📞", "Phone", phone, "tel:"+strings.Map(dialable, phone)),
			entry("✉️", "Email", email, "mailto:"+email),
		),
	)
	if p.Hours != "" {
		container.AppendChild(el("div", attrs("class", "contact-hours"),
			tag("h3", attrs("style", css("color", r.theme.Primary, "font-family", fontStack(r.theme.HeadingFont))), "Business Hours"),
			tag("p", nil, p.Hours),
		))
	}
	return r.section("contact-info", r.mutedStyle(), container)
}

func dialable(c rune) rune {
	if (c >= '0' && c <= '9') || c == '+' {
		return c
	}
	return -1
}

func (r renderer) newsletter(p *blocks.NewsletterProps) *html.Node {
	action := "#"
	if r.ctx.Mode == ModePublic && r.ctx.Store.Slug != "" {
		action = "/stores/" + r.ctx.Store.Slug + "/newsletter"
	}
	inputKV := attrs("type", "email", "name", "email", "placeholder", or(p.Placeholder, "Enter your email"))
	if r.ctx.Mode == ModeEditPreview {
		inputKV = append(inputKV, "disabled", "disabled")
	}
	return r.section("newsletter", r.mutedStyle(),
		el("div", attrs("class", "container narrow"),
			r.heading("h2", or(p.Title, "Stay Updated")),
			tag("p", attrs("class", "block-subtitle"), or(p.Subtitle, "Subscribe to get special offers and updates")),
			el("form", attrs("method", "post", "action", action, "class", "newsletter-form"),
				el("input", inputKV),
				tag("button", attrs("type", "submit", "class", "button", "style", css("background-color", r.theme.Accent, "color", "#ffffff")), or(p.ButtonText, "Subscribe")),
			),
		),
	)
}

func (r renderer) ctaBanner(p *blocks.CTABannerProps) *html.Node {
	textColor := or(p.TextColor, "#ffffff")
	href := or(p.ButtonURL, r.pageHref("home"))
	return r.section("cta-banner", css(
		"background-color", or(p.BackgroundColor, r.theme.Primary),
		"color", textColor,
		"font-family", fontStack(r.theme.BodyFont),
	),
		el("div", attrs("class", "container narrow"),
			tag("h2", attrs("class", "block-title", "style", css("color", textColor, "font-family", fontStack(r.theme.HeadingFont))), or(p.Title, "Ready to Get Started?")),
			tag("p", attrs("class", "block-subtitle", "style", css("color", textColor)), or(p.Subtitle, "Browse our products and find exactly what you're looking for.")),
			tag("a", attrs("href", safeHref(href), "class", "button button-outline", "style", css("background-color", textColor, "color", or(p.BackgroundColor, r.theme.Primary), "border", "2px solid "+cssValue(textColor))), or(p.ButtonText, "Shop Now")),
		),
	)
}

func (r renderer) spacer(p *blocks.SpacerProps) *html.Node {
	return el("div", attrs("class", "block block-spacer", "aria-hidden", "true", "style", css(
		"height", fmt.Sprintf("%dpx", orInt(clampNonNegative(p.Height), 60)),
		"background-color", or(p.BackgroundColor, "transparent"),
	)))
}

var dividerStyles = map[string]bool{"solid": true, "dashed": true, "dotted": true, "double": true}

func (r renderer) divider(p *blocks.DividerProps) *html.Node {
	lineStyle := p.LineStyle
	if !dividerStyles[lineStyle] {
		lineStyle = "solid"
	}
	return el("div", attrs("class", "block block-divider", "style", css("padding", "1rem 0")),
		el("hr", attrs("style", css(
			"width", or(p.Width, "100%"),
			"border", "0",
			"border-top-width", fmt.Sprintf("%dpx", orInt(clampNonNegative(p.Thickness), 1)),
			"border-top-style", lineStyle,
			"border-top-color", or(p.Color, "#e5e7eb"),
			"margin", "0 auto",
		))),
	)
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
