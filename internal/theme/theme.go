// Package theme models store and page themes and resolves the style cascade
// every block renders against.
package theme

// Layout variant keys understood by the storefront shell.
const (
	LayoutHeader      = "header"
	LayoutHero        = "hero"
	LayoutProductGrid = "product_grid"
	LayoutFooter      = "footer"
)

// Colors holds CSS color strings. Empty fields are unset.
type Colors struct {
	Primary    string `json:"primary,omitempty" yaml:"primary,omitempty" validate:"omitempty,css_color"`
	Secondary  string `json:"secondary,omitempty" yaml:"secondary,omitempty" validate:"omitempty,css_color"`
	Accent     string `json:"accent,omitempty" yaml:"accent,omitempty" validate:"omitempty,css_color"`
	Text       string `json:"text,omitempty" yaml:"text,omitempty" validate:"omitempty,css_color"`
	Background string `json:"background,omitempty" yaml:"background,omitempty" validate:"omitempty,css_color"`
}

// Fonts holds font-family names.
type Fonts struct {
	Heading string `json:"heading,omitempty" yaml:"heading,omitempty" validate:"omitempty,max=100"`
	Body    string `json:"body,omitempty" yaml:"body,omitempty" validate:"omitempty,max=100"`
}

// Config is the persisted theme of a store or page. Any field may be missing.
type Config struct {
	Colors Colors            `json:"colors" yaml:"colors"`
	Fonts  Fonts             `json:"fonts" yaml:"fonts"`
	Layout map[string]string `json:"layout,omitempty" yaml:"layout,omitempty"`
}

// Default returns the theme new layouts start from.
func Default() Config {
	return Config{
		Colors: Colors{
			Primary:    "#3b82f6",
			Secondary:  "#f8fafc",
			Accent:     "#10b981",
			Text:       "#1f2937",
			Background: "#ffffff",
		},
		Fonts: Fonts{
			Heading: "Inter",
			Body:    "Inter",
		},
		Layout: map[string]string{
			LayoutHeader:      "modern",
			LayoutHero:        "full-width",
			LayoutProductGrid: "3-column",
			LayoutFooter:      "minimal",
		},
	}
}

// IsZero reports whether no field of the theme is set.
func (c Config) IsZero() bool {
	return c.Colors == (Colors{}) && c.Fonts == (Fonts{}) && len(c.Layout) == 0
}

// Clone returns a copy that shares no map with c.
func (c Config) Clone() Config {
	out := c
	if c.Layout != nil {
		out.Layout = make(map[string]string, len(c.Layout))
		for k, v := range c.Layout {
			out.Layout[k] = v
		}
	}
	return out
}

// Merge overlays the set fields of over onto base. Layout keys are merged
// individually so saved themes may extend the variant set.
func Merge(base, over Config) Config {
	out := base.Clone()

	out.Colors.Primary = pick(over.Colors.Primary, out.Colors.Primary)
	out.Colors.Secondary = pick(over.Colors.Secondary, out.Colors.Secondary)
	out.Colors.Accent = pick(over.Colors.Accent, out.Colors.Accent)
	out.Colors.Text = pick(over.Colors.Text, out.Colors.Text)
	out.Colors.Background = pick(over.Colors.Background, out.Colors.Background)
	out.Fonts.Heading = pick(over.Fonts.Heading, out.Fonts.Heading)
	out.Fonts.Body = pick(over.Fonts.Body, out.Fonts.Body)

	if len(over.Layout) > 0 && out.Layout == nil {
		out.Layout = make(map[string]string, len(over.Layout))
	}
	for k, v := range over.Layout {
		if v != "" {
			out.Layout[k] = v
		}
	}

	return out
}

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
