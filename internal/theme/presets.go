package theme

// Preset is a named color palette offered by the theme panel.
type Preset struct {
	Name   string `json:"name"`
	Colors Colors `json:"colors"`
}

// FontOption pairs a display name with its CSS font-family stack.
type FontOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

var presets = []Preset{
	{Name: "Blue Ocean", Colors: Colors{Primary: "#3b82f6", Secondary: "#f1f5f9", Accent: "#0ea5e9", Text: "#1e293b", Background: "#ffffff"}},
	{Name: "Green Nature", Colors: Colors{Primary: "#10b981", Secondary: "#f0fdf4", Accent: "#22c55e", Text: "#0f172a", Background: "#ffffff"}},
	{Name: "Purple Luxury", Colors: Colors{Primary: "#8b5cf6", Secondary: "#faf5ff", Accent: "#a855f7", Text: "#1f2937", Background: "#ffffff"}},
	{Name: "Dark Modern", Colors: Colors{Primary: "#06b6d4", Secondary: "#1f2937", Accent: "#0891b2", Text: "#f9fafb", Background: "#111827"}},
	{Name: "Warm Orange", Colors: Colors{Primary: "#ea580c", Secondary: "#fff7ed", Accent: "#fb923c", Text: "#1c1917", Background: "#ffffff"}},
	{Name: "Rose Gold", Colors: Colors{Primary: "#e11d48", Secondary: "#fff1f2", Accent: "#f43f5e", Text: "#1f2937", Background: "#ffffff"}},
}

var fontOptions = []FontOption{
	{Name: "Inter", Value: "Inter, sans-serif"},
	{Name: "Poppins", Value: "Poppins, sans-serif"},
	{Name: "Playfair Display", Value: "Playfair Display, serif"},
	{Name: "Merriweather", Value: "Merriweather, serif"},
	{Name: "Open Sans", Value: "Open Sans, sans-serif"},
	{Name: "Source Sans Pro", Value: "Source Sans Pro, sans-serif"},
	{Name: "Nunito Sans", Value: "Nunito Sans, sans-serif"},
	{Name: "Roboto", Value: "Roboto, sans-serif"},
	{Name: "Lato", Value: "Lato, sans-serif"},
	{Name: "Montserrat", Value: "Montserrat, sans-serif"},
}

// Presets returns the built-in color presets.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// FindPreset looks a preset up by name.
func FindPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// FontOptions returns the selectable font families.
func FontOptions() []FontOption {
	out := make([]FontOption, len(fontOptions))
	copy(out, fontOptions)
	return out
}

// ApplyPreset replaces the colors of cfg with the preset palette.
func ApplyPreset(cfg Config, p Preset) Config {
	out := cfg.Clone()
	out.Colors = p.Colors
	return out
}
