package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/alexisbeaulieu97/storefront/internal/theme"
)

// themeEditor is the custom colors and fonts form of the theme panel.
type themeEditor struct {
	form   *huh.Form
	colors theme.Colors
	fonts  theme.Fonts
}

func newThemeEditor(cfg theme.Config) *themeEditor {
	e := &themeEditor{colors: cfg.Colors, fonts: cfg.Fonts}

	fontOptions := make([]huh.Option[string], 0, len(theme.FontOptions()))
	for _, f := range theme.FontOptions() {
		fontOptions = append(fontOptions, huh.NewOption(f.Name, f.Name))
	}

	e.form = huh.NewForm(
		huh.NewGroup(
			colorInput("Primary", &e.colors.Primary),
			colorInput("Secondary", &e.colors.Secondary),
			colorInput("Accent", &e.colors.Accent),
			colorInput("Text", &e.colors.Text),
			colorInput("Background", &e.colors.Background),
		).Title("Colors"),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Heading font").
				Options(fontOptions...).
				Value(&e.fonts.Heading),
			huh.NewSelect[string]().
				Title("Body font").
				Options(fontOptions...).
				Value(&e.fonts.Body),
		).Title("Fonts"),
	).WithShowHelp(true)
	return e
}

func colorInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Value(value).
		Validate(func(s string) error {
			return theme.Validate(theme.Config{Colors: theme.Colors{Primary: s}})
		})
}

// config applies the form values over base, keeping its layout settings.
func (e *themeEditor) config(base theme.Config) theme.Config {
	out := base.Clone()
	out.Colors = e.colors
	out.Fonts = e.fonts
	return out
}
