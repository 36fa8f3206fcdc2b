package builder

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
	"github.com/alexisbeaulieu97/storefront/internal/registry"
	"github.com/alexisbeaulieu97/storefront/internal/render"
	"github.com/alexisbeaulieu97/storefront/internal/theme"
)

var (
	// ErrComponentNotFound is returned for actions naming an unknown id.
	ErrComponentNotFound = errors.New("component not found")
	// ErrUnknownAction is returned for action types the reducer does not handle.
	ErrUnknownAction = errors.New("unknown builder action")
)

var catalog = registry.New()

// NewID generates component ids.
var NewID = func() string { return uuid.NewString() }

// Reduce applies a to s and returns the next state. On error the returned
// state is s unchanged.
func Reduce(s State, a Action) (State, error) {
	next := s
	next.Components = cloneComponents(s.Components)

	switch a := a.(type) {
	case AddComponent:
		return add(next, a)
	case UpdateComponent:
		i := next.index(a.ID)
		if i < 0 {
			return s, fmt.Errorf("update %s: %w", a.ID, ErrComponentNotFound)
		}
		next.Components[i] = next.Components[i].WithProps(blocks.CloneProps(a.Props))
		next.Dirty = true
	case RemoveComponent:
		i := next.index(a.ID)
		if i < 0 {
			return s, fmt.Errorf("remove %s: %w", a.ID, ErrComponentNotFound)
		}
		next.Components = append(next.Components[:i], next.Components[i+1:]...)
		if next.SelectedID == a.ID {
			next.SelectedID = ""
		}
		if next.EditingID == a.ID {
			next.EditingID = ""
		}
		next.Dirty = true
	case MoveComponent:
		i := next.index(a.ID)
		if i < 0 {
			return s, fmt.Errorf("move %s: %w", a.ID, ErrComponentNotFound)
		}
		j := i - 1
		if a.Direction == Down {
			j = i + 1
		}
		if j < 0 || j >= len(next.Components) {
			return s, nil
		}
		next.Components[i], next.Components[j] = next.Components[j], next.Components[i]
		restamp(next.Components)
		next.Dirty = true
	case DuplicateComponent:
		return duplicate(next, a)
	case SelectComponent:
		if a.ID != "" && next.index(a.ID) < 0 {
			return s, fmt.Errorf("select %s: %w", a.ID, ErrComponentNotFound)
		}
		next.SelectedID = a.ID
	case EditComponent:
		if next.index(a.ID) < 0 {
			return s, fmt.Errorf("edit %s: %w", a.ID, ErrComponentNotFound)
		}
		next.SelectedID = a.ID
		next.EditingID = a.ID
		next.Panel = PanelEdit
	case SetPanel:
		switch a.Panel {
		case PanelComponents, PanelEdit, PanelTheme, PanelPreview:
			next.Panel = a.Panel
		default:
			return s, fmt.Errorf("unknown panel %q", a.Panel)
		}
	case SetPreviewMode:
		switch a.Device {
		case render.DeviceDesktop, render.DeviceMobile:
			next.Preview = a.Device
		default:
			return s, fmt.Errorf("unknown preview mode %q", a.Device)
		}
	case SetTheme:
		if err := theme.Validate(a.Theme); err != nil {
			return s, err
		}
		next.Theme = a.Theme.Clone()
		next.Dirty = true
	case ApplyPreset:
		preset, ok := theme.FindPreset(a.Name)
		if !ok {
			return s, fmt.Errorf("unknown theme preset %q", a.Name)
		}
		next.Theme = theme.ApplyPreset(next.Theme, preset)
		next.Dirty = true
	case AttachPendingAsset:
		i := next.index(a.ID)
		if i < 0 {
			return s, fmt.Errorf("attach asset to %s: %w", a.ID, ErrComponentNotFound)
		}
		next.Components[i] = next.Components[i].WithField(a.Key, blocks.PendingLocal(a.Handle).String())
		next.Dirty = true
	case ResolveAsset:
		for i, c := range next.Components {
			props, n := blocks.ResolveAsset(c.Props, a.Handle, a.URL)
			if n > 0 {
				next.Components[i].Props = props
				next.Dirty = true
			}
		}
	case SaveStarted:
		next.Saving = true
	case SaveSucceeded:
		next.Saving = false
		next.Dirty = false
		next.LastSaved = a.At
		next.Notice = &Notice{Level: NoticeSuccess, Message: "Layout saved successfully!"}
	case SaveFailed:
		next.Saving = false
		next.Notice = &Notice{Level: NoticeError, Message: "Failed to save layout", Err: a.Err}
	case Notify:
		notice := a.Notice
		next.Notice = &notice
	case DismissNotice:
		next.Notice = nil
	default:
		return s, fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}
	return next, nil
}

func add(s State, a AddComponent) (State, error) {
	props := a.Props
	if props == nil {
		tmpl, err := catalog.Lookup(a.Type)
		if err != nil {
			return s, err
		}
		props = tmpl.DefaultProps()
	} else {
		props = blocks.CloneProps(props)
	}
	id := a.ID
	if id == "" {
		id = NewID()
	}
	if s.index(id) >= 0 {
		return s, fmt.Errorf("add: duplicate component id %s", id)
	}
	c := blocks.New(id, a.Type, len(s.Components), props)
	s.Components = append(s.Components, c)
	s.SelectedID = id
	s.EditingID = id
	s.Panel = PanelEdit
	s.Dirty = true
	return s, nil
}

func duplicate(s State, a DuplicateComponent) (State, error) {
	i := s.index(a.ID)
	if i < 0 {
		return s, fmt.Errorf("duplicate %s: %w", a.ID, ErrComponentNotFound)
	}
	id := a.NewID
	if id == "" {
		id = NewID()
	}
	dup := s.Components[i].Clone()
	dup.ID = id

	comps := make([]blocks.Component, 0, len(s.Components)+1)
	comps = append(comps, s.Components[:i+1]...)
	comps = append(comps, dup)
	comps = append(comps, s.Components[i+1:]...)
	restamp(comps)
	s.Components = comps
	s.Dirty = true
	return s, nil
}
