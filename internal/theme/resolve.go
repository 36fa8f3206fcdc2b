package theme

// Override carries block-level style values that take precedence over any theme.
type Override struct {
	Primary     string
	Secondary   string
	Accent      string
	Text        string
	Background  string
	HeadingFont string
	BodyFont    string
}

// Resolved is a fully populated theme. Every field is non-empty.
type Resolved struct {
	Primary     string
	Secondary   string
	Accent      string
	Text        string
	Background  string
	HeadingFont string
	BodyFont    string
	Layout      map[string]string
}

// Resolve applies the cascade block override → page theme → store theme →
// Default(). page and store may be nil.
func Resolve(override Override, page, store *Config) Resolved {
	def := Default()
	var p, s Config
	if page != nil {
		p = *page
	}
	if store != nil {
		s = *store
	}

	resolved := Resolved{
		Primary:     pick(override.Primary, p.Colors.Primary, s.Colors.Primary, def.Colors.Primary),
		Secondary:   pick(override.Secondary, p.Colors.Secondary, s.Colors.Secondary, def.Colors.Secondary),
		Accent:      pick(override.Accent, p.Colors.Accent, s.Colors.Accent, def.Colors.Accent),
		Text:        pick(override.Text, p.Colors.Text, s.Colors.Text, def.Colors.Text),
		Background:  pick(override.Background, p.Colors.Background, s.Colors.Background, def.Colors.Background),
		HeadingFont: pick(override.HeadingFont, p.Fonts.Heading, s.Fonts.Heading, def.Fonts.Heading),
		BodyFont:    pick(override.BodyFont, p.Fonts.Body, s.Fonts.Body, def.Fonts.Body),
		Layout:      make(map[string]string, len(def.Layout)),
	}

	for k, v := range def.Layout {
		resolved.Layout[k] = v
	}
	for _, src := range []map[string]string{s.Layout, p.Layout} {
		for k, v := range src {
			if v != "" {
				resolved.Layout[k] = v
			}
		}
	}

	return resolved
}

// LayoutVariant returns the named layout variant, or fallback when unknown.
func (r Resolved) LayoutVariant(key, fallback string) string {
	if v, ok := r.Layout[key]; ok && v != "" {
		return v
	}
	return fallback
}
