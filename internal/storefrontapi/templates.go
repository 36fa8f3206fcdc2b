package storefrontapi

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/storefront/internal/layout"
)

// TemplateSummary is an entry of the template catalog.
type TemplateSummary struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Preview     string `json:"preview,omitempty"`
}

// ListTemplates returns the template catalog.
func (c *Client) ListTemplates(ctx context.Context) ([]TemplateSummary, error) {
	var out []TemplateSummary
	err := c.getJSON(ctx, "list templates", c.endpoint("templates"), &out)
	return out, err
}

// Template fetches a template and decodes its config. It satisfies
// layout.TemplateSource.
func (c *Client) Template(ctx context.Context, id string) (layout.Template, error) {
	var resp templateResponse
	if err := c.getJSON(ctx, "get template", c.endpoint("templates", id), &resp); err != nil {
		return layout.Template{}, err
	}
	tpl, err := layout.TemplateFromConfig(resp.Config)
	if err != nil {
		return layout.Template{}, fmt.Errorf("decode template %s: %w", id, err)
	}
	tpl.ID = string(resp.ID)
	tpl.Name = resp.Name
	return tpl, nil
}

var _ layout.TemplateSource = (*Client)(nil)
