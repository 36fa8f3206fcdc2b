package render

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
)

var featureIcons = map[string]string{
	"truck":   "🚚",
	"shield":  "🛡️",
	"return":  "↩️",
	"support": "💬",
	"star":    "⭐",
	"heart":   "❤️",
	"check":   "✅",
	"gift":    "🎁",
}

// FeatureIcon maps an icon keyword to its glyph. Unknown keywords get a sparkle.
func FeatureIcon(name string) string {
	if glyph, ok := featureIcons[name]; ok {
		return glyph
	}
	return "✨"
}

func genericFeatures() []blocks.Feature {
	out := make([]blocks.Feature, 3)
	for i := range out {
		out[i] = blocks.Feature{
			Icon:        "✨",
			Title:       fmt.Sprintf("Feature %d", i+1),
			Description: "This is a sample feature description that showcases what your store offers.",
		}
	}
	return out
}

func (r renderer) featureList(p *blocks.FeatureListProps) *html.Node {
	features := p.Features
	if len(features) == 0 {
		features = genericFeatures()
	}

	header := el("div", attrs("class", "block-header"), r.heading("h2", or(p.Title, "Features")))
	if p.Subtitle != "" {
		header.AppendChild(tag("p", attrs("class", "block-subtitle"), p.Subtitle))
	}

	items := make([]*html.Node, 0, len(features))
	for _, f := range features {
		icon := f.Icon
		if _, known := featureIcons[icon]; known || icon == "" {
			icon = FeatureIcon(icon)
		}
		items = append(items, el("div", attrs("class", "feature"),
			tag("div", attrs("class", "feature-icon", "style", css("background-color", r.theme.Accent, "color", "#ffffff")), icon),
			tag("h3", attrs("class", "feature-title", "style", css("color", r.theme.Primary, "font-family", fontStack(r.theme.HeadingFont))), or(f.Title, "Feature")),
			tag("p", attrs("class", "feature-description"), or(f.Description, "Feature description")),
		))
	}

	return r.section("feature-list", r.baseStyle(),
		el("div", attrs("class", "container"), header, r.grid(r.columns(3, []int{3}, 3), items...)),
	)
}

func (r renderer) iconGrid(p *blocks.IconGridProps) *html.Node {
	items := make([]*html.Node, 0, len(p.Features))
	for _, f := range limit(p.Features, 8) {
		items = append(items, el("div", attrs("class", "icon-grid-item"),
			tag("div", attrs("class", "feature-icon", "style", css("background-color", r.theme.Secondary)), FeatureIcon(f.Icon)),
			tag("h3", attrs("class", "feature-title", "style", css("color", r.theme.Primary, "font-family", fontStack(r.theme.HeadingFont))), or(f.Title, "Feature")),
			tag("p", attrs("class", "feature-description"), or(f.Description, "Feature description")),
		))
	}

	return r.section("icon-grid", r.baseStyle(),
		el("div", attrs("class", "container"),
			r.heading("h2", or(p.Title, "Why Choose Us")),
			r.grid(r.columns(p.Columns, []int{2, 3, 4}, 4), items...),
		),
	)
}

func (r renderer) statsCounter(p *blocks.StatsCounterProps) *html.Node {
	items := make([]*html.Node, 0, len(p.Stats))
	for _, s := range limit(p.Stats, 4) {
		items = append(items, el("div", attrs("class", "stat"),
			tag("div", attrs("class", "stat-number", "style", css("color", r.theme.Primary, "font-family", fontStack(r.theme.HeadingFont))), or(s.Number, "0")),
			tag("div", attrs("class", "stat-label"), or(s.Label, "Statistic")),
		))
	}

	return r.section("stats-counter", r.mutedStyle(),
		el("div", attrs("class", "container"),
			r.heading("h2", or(p.Title, "Our Numbers Speak")),
			r.grid(r.columns(4, []int{4}, 4), items...),
		),
	)
}
