package builder

import (
	"time"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
	"github.com/alexisbeaulieu97/storefront/internal/render"
	"github.com/alexisbeaulieu97/storefront/internal/theme"
)

// Action is a user interaction the reducer understands.
type Action interface {
	action()
}

// Direction moves a component one slot.
type Direction int

const (
	Up Direction = iota
	Down
)

// AddComponent appends a block. Nil Props start from the registry defaults;
// an empty ID gets a fresh uuid.
type AddComponent struct {
	Type  blocks.Type
	Props blocks.Props
	ID    string
}

// UpdateComponent replaces the props of one block wholesale.
type UpdateComponent struct {
	ID    string
	Props blocks.Props
}

type RemoveComponent struct{ ID string }

type MoveComponent struct {
	ID        string
	Direction Direction
}

// DuplicateComponent inserts a copy right after the source.
type DuplicateComponent struct {
	ID    string
	NewID string
}

type SelectComponent struct{ ID string }

// EditComponent selects a block and opens it in the property editor.
type EditComponent struct{ ID string }

type SetPanel struct{ Panel Panel }

type SetPreviewMode struct{ Device render.Device }

type SetTheme struct{ Theme theme.Config }

// ApplyPreset swaps the theme colors for a named preset.
type ApplyPreset struct{ Name string }

// AttachPendingAsset points an asset field at a local upload handle until
// the upload resolves.
type AttachPendingAsset struct {
	ID     string
	Key    string
	Handle string
}

// ResolveAsset replaces every use of a pending handle with its uploaded url.
type ResolveAsset struct {
	Handle string
	URL    string
}

type SaveStarted struct{}

type SaveSucceeded struct{ At time.Time }

type SaveFailed struct{ Err error }

// Notify shows a transient message, e.g. after a failed product load.
type Notify struct{ Notice Notice }

// DismissNotice clears the current notification.
type DismissNotice struct{}

func (AddComponent) action()       {}
func (UpdateComponent) action()    {}
func (RemoveComponent) action()    {}
func (MoveComponent) action()      {}
func (DuplicateComponent) action() {}
func (SelectComponent) action()    {}
func (EditComponent) action()      {}
func (SetPanel) action()           {}
func (SetPreviewMode) action()     {}
func (SetTheme) action()           {}
func (ApplyPreset) action()        {}
func (AttachPendingAsset) action() {}
func (ResolveAsset) action()       {}
func (SaveStarted) action()        {}
func (SaveSucceeded) action()      {}
func (SaveFailed) action()         {}
func (Notify) action()             {}
func (DismissNotice) action()      {}
