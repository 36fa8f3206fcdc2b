package blocks

import (
	"encoding/json"
	"fmt"
)

// Component is one block instance inside a layout.
type Component struct {
	ID    string
	Type  Type
	Order int
	Props Props

	// extra holds persisted props keys this build does not read.
	extra map[string]any
}

// New creates a component of type t carrying props. A nil props value is
// replaced by the zero props of t.
func New(id string, t Type, order int, props Props) Component {
	if props == nil {
		props, _ = Decode(t, nil)
	}
	return Component{ID: id, Type: t, Order: order, Props: props}
}

// Supported reports whether the component's type is known to this build.
func (c Component) Supported() bool {
	_, unknown := c.Props.(*Unknown)
	return c.Props != nil && !unknown && c.Type.Known()
}

// WithProps returns a copy of c whose props are replaced wholesale.
func (c Component) WithProps(props Props) Component {
	c.Props = props
	c.extra = nil
	return c
}

// WithField returns a copy of c with one props key set, decoded the same
// way persisted props are. Unknown keys survive.
func (c Component) WithField(key string, value any) Component {
	raw := c.PropsMap()
	raw[key] = value
	props, extra := Decode(c.Type, raw)
	c.Props = props
	c.extra = extra
	return c
}

// Clone deep-copies c, including its props.
func (c Component) Clone() Component {
	out := c
	out.Props = CloneProps(c.Props)
	out.extra = copyMap(c.extra)
	if len(c.extra) == 0 {
		out.extra = nil
	}
	return out
}

// PropsMap returns the props as a raw bag, including preserved unknown keys.
// Pending assets appear in their "blob:" string form.
func (c Component) PropsMap() map[string]any {
	out := ToMap(c.Props)
	for k, v := range c.extra {
		if _, exists := out[k]; !exists {
			out[k] = v
		}
	}
	return out
}

type wireComponent struct {
	ID    string         `json:"id"`
	Type  string         `json:"type"`
	Props map[string]any `json:"props"`
	Order int            `json:"order"`
}

// MarshalJSON writes the persisted {id,type,props,order} shape. It fails if
// any asset is still pending.
func (c Component) MarshalJSON() ([]byte, error) {
	if pending := PendingAssets(c.Props); len(pending) > 0 {
		return nil, fmt.Errorf("component %s: %w", c.ID, ErrPendingAsset)
	}
	return json.Marshal(wireComponent{
		ID:    c.ID,
		Type:  string(c.Type),
		Props: c.PropsMap(),
		Order: c.Order,
	})
}

// UnmarshalJSON decodes a persisted component. Only syntactically invalid
// JSON is an error; every shape problem is coerced.
func (c *Component) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = FromMap(raw)
	return nil
}

// FromMap decodes a component from its raw persisted form.
func FromMap(raw map[string]any) Component {
	var base struct {
		ID    string         `json:"id"`
		Type  string         `json:"type"`
		Order int            `json:"order"`
		Props map[string]any `json:"props"`
	}
	_ = decodeInto(raw, &base, nil)

	t := Type(base.Type)
	props, extra := Decode(t, base.Props)
	return Component{ID: base.ID, Type: t, Order: base.Order, Props: props, extra: extra}
}
