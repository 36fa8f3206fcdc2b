// Package builder holds the editing state of the page builder and the
// reducer that applies user actions to it.
package builder

import (
	"time"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
	"github.com/alexisbeaulieu97/storefront/internal/layout"
	"github.com/alexisbeaulieu97/storefront/internal/render"
	"github.com/alexisbeaulieu97/storefront/internal/theme"
)

// Panel is the side panel the builder shows.
type Panel string

const (
	PanelComponents Panel = "components"
	PanelEdit       Panel = "edit"
	PanelTheme      Panel = "theme"
	PanelPreview    Panel = "preview"
)

// Panels lists the panels in tab order.
func Panels() []Panel {
	return []Panel{PanelComponents, PanelEdit, PanelTheme, PanelPreview}
}

// NoticeLevel distinguishes success from failure notifications.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a transient message shown after a save or a failed load.
type Notice struct {
	Level   NoticeLevel
	Message string
	Err     error
}

// State is a snapshot of the builder. Reduce never mutates its input.
type State struct {
	Scope      layout.Scope
	Components []blocks.Component
	Theme      theme.Config

	SelectedID string
	EditingID  string
	Panel      Panel
	Preview    render.Device

	Dirty     bool
	Saving    bool
	LastSaved time.Time
	Notice    *Notice
}

// New starts a builder over a loaded layout.
func New(scope layout.Scope, l layout.Layout) State {
	l = layout.Normalize(l)
	th := theme.Default()
	if l.Theme != nil {
		th = theme.Merge(th, *l.Theme)
	}
	return State{
		Scope:      scope,
		Components: cloneComponents(l.Components),
		Theme:      th,
		Panel:      PanelComponents,
		Preview:    render.DeviceDesktop,
	}
}

// Layout returns the persisted form of the state. Order is re-derived
// from array position.
func (s State) Layout() layout.Layout {
	comps := cloneComponents(s.Components)
	restamp(comps)
	th := s.Theme.Clone()
	return layout.Layout{Components: comps, Theme: &th}
}

// Selected returns the selected component, if any.
func (s State) Selected() (blocks.Component, bool) {
	return s.find(s.SelectedID)
}

// Editing returns the component open in the property editor, if any.
func (s State) Editing() (blocks.Component, bool) {
	return s.find(s.EditingID)
}

// PendingAssets counts uploads that have not resolved yet.
func (s State) PendingAssets() int {
	n := 0
	for _, c := range s.Components {
		n += len(blocks.PendingAssets(c.Props))
	}
	return n
}

func (s State) find(id string) (blocks.Component, bool) {
	if i := s.index(id); i >= 0 {
		return s.Components[i], true
	}
	return blocks.Component{}, false
}

func (s State) index(id string) int {
	if id == "" {
		return -1
	}
	for i, c := range s.Components {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func cloneComponents(in []blocks.Component) []blocks.Component {
	out := make([]blocks.Component, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}

func restamp(comps []blocks.Component) {
	for i := range comps {
		comps[i].Order = i
	}
}
