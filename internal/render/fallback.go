package render

import (
	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
)

// FallbackComponents is the home content shown when a store has no layout:
// a welcome hero, three selling points and a call to action.
func FallbackComponents(store Store) []blocks.Component {
	name := or(store.Name, "Our Store")
	home := ""
	if store.Slug != "" {
		home = "/stores/" + store.Slug + "/pages/home"
	}

	return []blocks.Component{
		blocks.New("fallback-hero", blocks.HeroBanner, 0, &blocks.HeroBannerProps{
			Title:               "Welcome to " + name,
			Subtitle:            or(store.Description, "Discover amazing products at great prices"),
			ButtonText:          "Shop Now",
			ButtonURL:           or(home, "#"),
			SecondaryButton:     true,
			SecondaryButtonText: "Learn More",
		}),
		blocks.New("fallback-features", blocks.FeatureList, 1, &blocks.FeatureListProps{
			Title: "Why Choose " + name + "?",
			Features: []blocks.Feature{
				{Icon: "✨", Title: "Quality Products", Description: "We carefully select each item to ensure the highest quality."},
				{Icon: "🚚", Title: "Fast Shipping", Description: "Quick delivery to get your products to you faster."},
				{Icon: "💬", Title: "Great Support", Description: "Our team is here to help with any questions you have."},
			},
		}),
		blocks.New("fallback-cta", blocks.CTABanner, 2, &blocks.CTABannerProps{
			Title:      "Ready to Get Started?",
			Subtitle:   "Browse our products and find exactly what you're looking for.",
			ButtonText: "View Products",
			ButtonURL:  home,
		}),
	}
}

func fallbackHome(ctx Context) []*html.Node {
	components := FallbackComponents(ctx.Store)
	nodes := make([]*html.Node, 0, len(components))
	for _, c := range components {
		nodes = append(nodes, Render(c, ctx))
	}
	return nodes
}

// pageHref links to one of the store's pages, or nowhere outside a store.
func (r renderer) pageHref(slug string) string {
	if r.ctx.Store.Slug == "" {
		return "#"
	}
	return "/stores/" + r.ctx.Store.Slug + "/pages/" + slug
}
