// Package layout persists ordered block lists with their theme, scoped to a
// store (home page) or to one of its pages.
package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
	"github.com/alexisbeaulieu97/storefront/internal/theme"
	storefronterrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

// ErrNotFound is returned by every Store when a scope has never been saved.
var ErrNotFound = errors.New("layout not found")

// Scope identifies one persistence namespace. An empty PageID addresses the
// store layout; store and page layouts never share storage.
type Scope struct {
	StoreID string
	PageID  string
}

// StoreScope addresses the store-level layout used for the home page.
func StoreScope(storeID string) Scope { return Scope{StoreID: storeID} }

// PageScope addresses the layout of one named page.
func PageScope(storeID, pageID string) Scope { return Scope{StoreID: storeID, PageID: pageID} }

// IsPage reports whether the scope addresses a page layout.
func (s Scope) IsPage() bool { return s.PageID != "" }

// Store returns the store-level scope of the same store.
func (s Scope) Store() Scope { return Scope{StoreID: s.StoreID} }

func (s Scope) String() string {
	if s.IsPage() {
		return "store/" + s.StoreID + "/page/" + s.PageID
	}
	return "store/" + s.StoreID
}

// Validate rejects scopes without a store.
func (s Scope) Validate() error {
	if strings.TrimSpace(s.StoreID) == "" {
		return storefronterrors.NewValidationError("scope.store_id", "store id is required", nil)
	}
	return nil
}

// Layout is the ordered component list plus the theme saved with it.
type Layout struct {
	Components []blocks.Component `json:"components"`
	Theme      *theme.Config      `json:"theme,omitempty"`
}

// Empty returns a layout with no components and the default theme.
func Empty() Layout {
	def := theme.Default()
	return Layout{Components: []blocks.Component{}, Theme: &def}
}

// Clone deep-copies the layout.
func (l Layout) Clone() Layout {
	out := Layout{Components: make([]blocks.Component, len(l.Components))}
	for i, c := range l.Components {
		out.Components[i] = c.Clone()
	}
	if l.Theme != nil {
		t := l.Theme.Clone()
		out.Theme = &t
	}
	return out
}

// UnmarshalJSON decodes the persisted shape leniently: a components value
// that is not an array decodes as empty, entries that are not objects are
// dropped, and a theme stored as a JSON string is parsed.
func (l *Layout) UnmarshalJSON(data []byte) error {
	var wire struct {
		Components json.RawMessage `json:"components"`
		Theme      json.RawMessage `json:"theme"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*l = Layout{Components: []blocks.Component{}}

	var items []json.RawMessage
	if json.Unmarshal(wire.Components, &items) == nil {
		for _, item := range items {
			var raw map[string]any
			if json.Unmarshal(item, &raw) != nil || raw == nil {
				continue
			}
			l.Components = append(l.Components, blocks.FromMap(raw))
		}
	}

	l.Theme = decodeTheme(wire.Theme)
	return nil
}

func decodeTheme(raw json.RawMessage) *theme.Config {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var encoded string
	if json.Unmarshal(raw, &encoded) == nil {
		raw = json.RawMessage(encoded)
	}
	var cfg theme.Config
	if err := json.Unmarshal(raw, &cfg); err != nil || cfg.IsZero() {
		return nil
	}
	return &cfg
}

// Normalize sorts components by their persisted order, assigns ids to
// components without one (or with a duplicate), and re-stamps order from
// the final position. The input is not modified.
func Normalize(l Layout) Layout {
	out := l.Clone()
	sort.SliceStable(out.Components, func(i, j int) bool {
		return out.Components[i].Order < out.Components[j].Order
	})

	seen := make(map[string]struct{}, len(out.Components))
	for i := range out.Components {
		c := &out.Components[i]
		if _, dup := seen[c.ID]; c.ID == "" || dup {
			c.ID = uuid.NewString()
		}
		seen[c.ID] = struct{}{}
		c.Order = i
	}
	return out
}

// Validate checks a layout before it is saved: ids must be unique, no asset
// may still be a local pending upload, and theme colors must be CSS colors.
func Validate(l Layout) error {
	seen := make(map[string]struct{}, len(l.Components))
	for i, c := range l.Components {
		field := fmt.Sprintf("components[%d]", i)
		if c.ID == "" {
			return storefronterrors.NewValidationError(field+".id", "component id is required", nil)
		}
		if _, dup := seen[c.ID]; dup {
			return storefronterrors.NewValidationError(field+".id", fmt.Sprintf("duplicate component id %q", c.ID), nil)
		}
		seen[c.ID] = struct{}{}

		if pending := blocks.PendingAssets(c.Props); len(pending) > 0 {
			return storefronterrors.NewValidationError(
				field+".props",
				fmt.Sprintf("%d asset(s) still uploading (%s)", len(pending), pending[0].String()),
				blocks.ErrPendingAsset,
			)
		}
	}

	if l.Theme != nil {
		if err := theme.Validate(*l.Theme); err != nil {
			return err
		}
	}
	return nil
}

// Marshal encodes the layout in its persisted JSON form.
func Marshal(l Layout) ([]byte, error) {
	if l.Components == nil {
		l.Components = []blocks.Component{}
	}
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal layout: %w", err)
	}
	return data, nil
}
