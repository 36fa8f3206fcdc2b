package storefrontapi

import (
	"context"
	"net/http"
)

// GetStore fetches a store by id through the management API.
func (c *Client) GetStore(ctx context.Context, storeID string) (Store, error) {
	var store Store
	err := c.getJSON(ctx, "get store", c.endpoint("manage", "stores", storeID), &store)
	return store, err
}

// GetStoreBySlug fetches a store through the public API.
func (c *Client) GetStoreBySlug(ctx context.Context, slug string) (Store, error) {
	var store Store
	err := c.getJSON(ctx, "get store by slug", c.endpoint("stores", slug), &store)
	return store, err
}

// GetStorePages lists the published pages of a store.
func (c *Client) GetStorePages(ctx context.Context, slug string) ([]Page, error) {
	var pages []Page
	err := c.getJSON(ctx, "get store pages", c.endpoint("stores", slug, "pages"), &pages)
	return pages, err
}

// GetStorePage fetches a single page by slug.
func (c *Client) GetStorePage(ctx context.Context, slug, pageSlug string) (Page, error) {
	var page Page
	err := c.getJSON(ctx, "get store page", c.endpoint("stores", slug, "pages", pageSlug), &page)
	return page, err
}

// Subscribe adds an email to the store newsletter.
func (c *Client) Subscribe(ctx context.Context, slug, email string) error {
	body := map[string]string{"email": email}
	return c.sendJSON(ctx, http.MethodPost, "newsletter subscribe", c.endpoint("stores", slug, "newsletter", "subscribe"), body, nil)
}
