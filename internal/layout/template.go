package layout

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
	"github.com/alexisbeaulieu97/storefront/internal/theme"
)

// Template is a store template's starting point: a theme, and optionally
// a component list.
type Template struct {
	ID         string
	Name       string
	Theme      *theme.Config
	Components []blocks.Component
}

// TemplateFromConfig decodes a template config value. The value may be a
// bare theme, or an object with components and a theme, and either may be
// JSON-encoded inside a string.
func TemplateFromConfig(raw json.RawMessage) (Template, error) {
	var encoded string
	if json.Unmarshal(raw, &encoded) == nil {
		raw = json.RawMessage(encoded)
	}

	var shape map[string]json.RawMessage
	if err := json.Unmarshal(raw, &shape); err != nil {
		return Template{}, fmt.Errorf("decode template config: %w", err)
	}

	var t Template
	if _, ok := shape["components"]; ok {
		var l Layout
		if err := json.Unmarshal(raw, &l); err != nil {
			return Template{}, fmt.Errorf("decode template components: %w", err)
		}
		t.Components = templateComponents(l.Components)
		t.Theme = l.Theme
	}
	if t.Theme == nil {
		t.Theme = decodeTheme(raw)
	}
	return t, nil
}

// templateComponents stamps template-supplied components: missing ids become
// template-component-{index}, and a zero order falls back to the index.
func templateComponents(in []blocks.Component) []blocks.Component {
	out := make([]blocks.Component, len(in))
	for i, c := range in {
		c = c.Clone()
		if c.ID == "" {
			c.ID = fmt.Sprintf("template-component-%d", i)
		}
		if c.Order == 0 {
			c.Order = i
		}
		out[i] = c
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	for i := range out {
		out[i].Order = i
	}
	return out
}
