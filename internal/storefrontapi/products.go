package storefrontapi

import (
	"context"

	"github.com/alexisbeaulieu97/storefront/internal/products"
)

// GetStoreProducts lists the products shoppers can see.
func (c *Client) GetStoreProducts(ctx context.Context, slug string) ([]products.Product, error) {
	var out []products.Product
	err := c.getJSON(ctx, "get store products", c.endpoint("stores", slug, "products"), &out)
	return out, err
}

// GetProducts lists every product of a store through the management API.
func (c *Client) GetProducts(ctx context.Context, storeID string) ([]products.Product, error) {
	var out []products.Product
	err := c.getJSON(ctx, "get products", c.endpoint("manage", "stores", storeID, "products"), &out)
	return out, err
}
