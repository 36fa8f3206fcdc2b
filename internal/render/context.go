package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
	"github.com/alexisbeaulieu97/storefront/internal/products"
	"github.com/alexisbeaulieu97/storefront/internal/theme"
)

// Mode selects the few behaviours that differ between the builder canvas
// and the shopper-facing storefront.
type Mode string

const (
	ModeEditPreview Mode = "edit-preview"
	ModePublic      Mode = "public"
)

// ParseMode converts a configuration value into a Mode.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeEditPreview, "edit", "preview":
		return ModeEditPreview, nil
	case ModePublic, "":
		return ModePublic, nil
	}
	return "", fmt.Errorf("unknown render mode %q", value)
}

// Device is the viewport the builder previews.
type Device string

const (
	DeviceDesktop Device = "desktop"
	DeviceMobile  Device = "mobile"
)

// Store is the store identity blocks may print or link to.
type Store struct {
	Name        string
	Slug        string
	Description string
}

// Slots lets the caller decorate the output without forking the renderer.
type Slots struct {
	// Wrap receives every rendered block, e.g. to add selection chrome.
	Wrap func(c blocks.Component, node *html.Node) *html.Node
	// AddToCart replaces the mode's add-to-cart control.
	AddToCart func(p products.Product, t theme.Resolved) *html.Node
}

// Context is everything a block needs besides its own props.
type Context struct {
	PageTheme  *theme.Config
	StoreTheme *theme.Config
	Products   []products.Product
	Mode       Mode
	Device     Device
	Store      Store
	Slots      Slots
}

// strategy captures the per-mode deltas.
type strategy interface {
	catalog(catalog []products.Product) []products.Product
	addToCart(p products.Product, t theme.Resolved, store Store) *html.Node
}

func strategyFor(mode Mode) strategy {
	if mode == ModeEditPreview {
		return editStrategy{}
	}
	return publicStrategy{}
}

// editStrategy shows sample products when the store has none so the merchant
// can see how a product block will look, and keeps buttons inert.
type editStrategy struct{}

func (editStrategy) catalog(catalog []products.Product) []products.Product {
	if len(catalog) == 0 {
		return products.Samples()
	}
	return catalog
}

func (editStrategy) addToCart(_ products.Product, t theme.Resolved, _ Store) *html.Node {
	return tag("button", attrs(
		"type", "button",
		"class", "add-to-cart",
		"disabled", "disabled",
		"style", css("background-color", t.Accent, "color", "#ffffff"),
	), "Add to Cart")
}

// publicStrategy never invents products: an empty catalog renders an empty state.
type publicStrategy struct{}

func (publicStrategy) catalog(catalog []products.Product) []products.Product {
	return catalog
}

func (publicStrategy) addToCart(p products.Product, t theme.Resolved, store Store) *html.Node {
	action := "/cart"
	if store.Slug != "" {
		action = "/stores/" + store.Slug + "/cart"
	}
	return el("form", attrs("method", "post", "action", action, "class", "add-to-cart-form"),
		el("input", attrs("type", "hidden", "name", "product_id", "value", string(p.ID))),
		tag("button", attrs(
			"type", "submit",
			"class", "add-to-cart",
			"style", css("background-color", t.Accent, "color", "#ffffff"),
		), "Add to Cart"),
	)
}
