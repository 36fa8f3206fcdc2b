// Package registry is the static catalog of block types the builder offers,
// with the default props each block starts from.
package registry

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
)

// Category groups templates in the builder palette.
type Category string

const (
	CategoryAll      Category = "all"
	CategoryHero     Category = "hero"
	CategoryProducts Category = "products"
	CategoryMedia    Category = "media"
	CategoryFeatures Category = "features"
	CategorySocial   Category = "social"
	CategoryCTA      Category = "cta"
	CategoryInfo     Category = "info"
	CategoryLayout   Category = "layout"
)

var categoryLabels = []struct {
	category Category
	label    string
}{
	{CategoryAll, "All Components"},
	{CategoryHero, "Hero"},
	{CategoryProducts, "Products"},
	{CategoryMedia, "Media"},
	{CategoryFeatures, "Features"},
	{CategorySocial, "Social"},
	{CategoryCTA, "Call to Action"},
	{CategoryInfo, "Information"},
	{CategoryLayout, "Layout"},
}

// Label returns the palette heading of the category.
func (c Category) Label() string {
	for _, entry := range categoryLabels {
		if entry.category == c {
			return entry.label
		}
	}
	return string(c)
}

// Categories returns every category, the virtual "all" first.
func Categories() []Category {
	out := make([]Category, len(categoryLabels))
	for i, entry := range categoryLabels {
		out[i] = entry.category
	}
	return out
}

// ParseCategory validates a category name.
func ParseCategory(name string) (Category, error) {
	for _, entry := range categoryLabels {
		if string(entry.category) == name {
			return entry.category, nil
		}
	}
	return "", fmt.Errorf("unknown category: %s", name)
}

// Template is a catalog entry. Its ID is the block type it creates.
type Template struct {
	ID          blocks.Type
	Name        string
	Category    Category
	Description string

	defaults blocks.Props
}

// DefaultProps returns a fresh copy of the props a new block starts with.
func (t Template) DefaultProps() blocks.Props {
	return blocks.CloneProps(t.defaults)
}

// Fields describes the keys a property editor offers for this template.
func (t Template) Fields() []blocks.Field {
	return blocks.Schema(t.defaults)
}

// Registry is a read-only view over the template catalog.
type Registry struct {
	templates []Template
}

// New returns the built-in catalog.
func New() *Registry {
	return &Registry{templates: builtinTemplates()}
}

// List returns every template in palette order.
func (r *Registry) List() []Template {
	result := make([]Template, len(r.templates))
	copy(result, r.templates)
	return result
}

// FindByCategory filters by category; CategoryAll returns everything.
func (r *Registry) FindByCategory(category Category) []Template {
	if category == CategoryAll || category == "" {
		return r.List()
	}

	var result []Template
	for _, t := range r.templates {
		if t.Category == category {
			result = append(result, t)
		}
	}
	return result
}

// Search matches term case-insensitively against name and description.
// An empty term matches everything.
func (r *Registry) Search(term string) []Template {
	needle := fold(strings.TrimSpace(term))
	if needle == "" {
		return r.List()
	}

	var result []Template
	for _, t := range r.templates {
		if strings.Contains(fold(t.Name), needle) || strings.Contains(fold(t.Description), needle) {
			result = append(result, t)
		}
	}
	return result
}

// Filter combines a category filter with a search term, the way the
// palette applies both at once.
func (r *Registry) Filter(category Category, term string) []Template {
	inCategory := make(map[blocks.Type]bool)
	for _, t := range r.FindByCategory(category) {
		inCategory[t.ID] = true
	}

	var result []Template
	for _, t := range r.Search(term) {
		if inCategory[t.ID] {
			result = append(result, t)
		}
	}
	return result
}

// Lookup returns the template for a block type.
func (r *Registry) Lookup(t blocks.Type) (Template, error) {
	for _, tmpl := range r.templates {
		if tmpl.ID == t {
			return tmpl, nil
		}
	}
	return Template{}, fmt.Errorf("template not found: %s", t)
}

// fold applies Unicode case folding. Casers are stateful, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
