// Package products holds the read-only product entity blocks bind to and
// the rules that resolve a block's product selection against a catalog.
package products

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ID is a product identifier. The storefront API sends numbers; layouts may
// store them as strings, so both decode to the same ID.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = ID(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*id = ID(strings.TrimSpace(s))
	return nil
}

// Product is a catalog entry as returned by the storefront API.
type Product struct {
	ID           ID       `json:"id"`
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description,omitempty"`
	Price        float64  `json:"price"`
	ComparePrice *float64 `json:"compare_price,omitempty"`
	Images       []string `json:"images"`
	Status       string   `json:"status,omitempty"`
}

// PrimaryImage returns the first image, or "" when there is none.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// OnSale reports whether a compare-at price above the price is set.
func (p Product) OnSale() bool {
	return p.ComparePrice != nil && *p.ComparePrice > p.Price
}

// FormatPrice renders an amount the way the storefront prints prices.
func FormatPrice(amount float64) string {
	return "$" + strconv.FormatFloat(amount, 'f', 2, 64)
}
