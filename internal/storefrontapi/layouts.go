package storefrontapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/alexisbeaulieu97/storefront/internal/layout"
)

// ErrReadOnly is returned when saving through the public layout API.
var ErrReadOnly = errors.New("public layouts are read-only")

// GetStoreLayout fetches the store-wide layout by store id.
func (c *Client) GetStoreLayout(ctx context.Context, storeID string) (layout.Layout, error) {
	var out layout.Layout
	err := c.getJSON(ctx, "get store layout", c.endpoint("manage", "stores", storeID, "layout"), &out)
	return out, err
}

// SaveStoreLayout replaces the store-wide layout.
func (c *Client) SaveStoreLayout(ctx context.Context, storeID string, l layout.Layout) error {
	return c.sendJSON(ctx, http.MethodPost, "save store layout", c.endpoint("manage", "stores", storeID, "layout"), l, nil)
}

// GetPageLayout fetches the layout of one page.
func (c *Client) GetPageLayout(ctx context.Context, storeID, pageID string) (layout.Layout, error) {
	var out layout.Layout
	err := c.getJSON(ctx, "get page layout", c.endpoint("manage", "stores", storeID, "pages", pageID, "layout"), &out)
	return out, err
}

// SavePageLayout replaces the layout of one page.
func (c *Client) SavePageLayout(ctx context.Context, storeID, pageID string, l layout.Layout) error {
	return c.sendJSON(ctx, http.MethodPost, "save page layout", c.endpoint("manage", "stores", storeID, "pages", pageID, "layout"), l, nil)
}

// GetPublicStoreLayout fetches the store layout as shoppers see it.
func (c *Client) GetPublicStoreLayout(ctx context.Context, slug string) (layout.Layout, error) {
	var out layout.Layout
	err := c.getJSON(ctx, "get public store layout", c.endpoint("stores", slug, "layout"), &out)
	return out, err
}

// GetPublicPageLayout fetches a page layout as shoppers see it.
func (c *Client) GetPublicPageLayout(ctx context.Context, slug, pageSlug string) (layout.Layout, error) {
	var out layout.Layout
	err := c.getJSON(ctx, "get public page layout", c.endpoint("stores", slug, "pages", pageSlug, "layout"), &out)
	return out, err
}

// Load implements layout.Store over the management API.
func (c *Client) Load(ctx context.Context, scope layout.Scope) (layout.Layout, error) {
	if err := scope.Validate(); err != nil {
		return layout.Layout{}, err
	}
	var (
		l   layout.Layout
		err error
	)
	if scope.IsPage() {
		l, err = c.GetPageLayout(ctx, scope.StoreID, scope.PageID)
	} else {
		l, err = c.GetStoreLayout(ctx, scope.StoreID)
	}
	if err != nil {
		return layout.Layout{}, err
	}
	return layout.Normalize(l), nil
}

// Save implements layout.Store over the management API. The layout is
// normalized and validated before it is sent.
func (c *Client) Save(ctx context.Context, scope layout.Scope, l layout.Layout) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	l = layout.Normalize(l)
	if err := layout.Validate(l); err != nil {
		return err
	}
	if scope.IsPage() {
		return c.SavePageLayout(ctx, scope.StoreID, scope.PageID, l)
	}
	return c.SaveStoreLayout(ctx, scope.StoreID, l)
}

// PublicLayouts reads layouts through the public API. Scope.StoreID holds
// the store slug and Scope.PageID the page slug.
type PublicLayouts struct {
	client *Client
}

// Public returns a layout.Store backed by the public endpoints.
func (c *Client) Public() PublicLayouts { return PublicLayouts{client: c} }

// Load implements layout.Store.
func (p PublicLayouts) Load(ctx context.Context, scope layout.Scope) (layout.Layout, error) {
	if err := scope.Validate(); err != nil {
		return layout.Layout{}, err
	}
	var (
		l   layout.Layout
		err error
	)
	if scope.IsPage() {
		l, err = p.client.GetPublicPageLayout(ctx, scope.StoreID, scope.PageID)
	} else {
		l, err = p.client.GetPublicStoreLayout(ctx, scope.StoreID)
	}
	if err != nil {
		return layout.Layout{}, err
	}
	return layout.Normalize(l), nil
}

// Save always fails with ErrReadOnly.
func (PublicLayouts) Save(context.Context, layout.Scope, layout.Layout) error {
	return ErrReadOnly
}

var (
	_ layout.Store = (*Client)(nil)
	_ layout.Store = PublicLayouts{}
)
