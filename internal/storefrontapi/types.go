package storefrontapi

import (
	"encoding/json"

	"github.com/alexisbeaulieu97/storefront/internal/products"
)

// ID is an entity id. The API sends numbers; ids read from layouts or URLs
// are strings, so both decode to the same value.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	return (*products.ID)(id).UnmarshalJSON(data)
}

func (id ID) String() string { return string(id) }

// Store mirrors the store JSON representation.
type Store struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
	Favicon     string `json:"favicon,omitempty"`
	Domain      string `json:"domain,omitempty"`
	TemplateID  ID     `json:"template_id,omitempty"`
	Status      string `json:"status,omitempty"`
}

// Active reports whether the store is visible to shoppers.
func (s Store) Active() bool { return s.Status == "" || s.Status == "active" }

// Page mirrors the page JSON representation.
type Page struct {
	ID             ID     `json:"id"`
	Title          string `json:"title"`
	Slug           string `json:"slug"`
	Content        string `json:"content,omitempty"`
	Type           string `json:"type,omitempty"`
	IsPublished    bool   `json:"is_published"`
	SEOTitle       string `json:"seo_title,omitempty"`
	SEODescription string `json:"seo_description,omitempty"`
	StoreID        ID     `json:"store_id,omitempty"`
}

type templateResponse struct {
	ID     ID              `json:"id"`
	Name   string          `json:"name"`
	Config json.RawMessage `json:"config"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
