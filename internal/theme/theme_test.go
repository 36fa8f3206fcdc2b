package theme

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	storefronterrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

func TestResolvePrimaryCascadeAllCombinations(t *testing.T) {
	t.Parallel()

	const (
		overrideColor = "#111111"
		pageColor     = "#222222"
		storeColor    = "#333333"
	)

	for mask := 0; mask < 16; mask++ {
		hasOverride := mask&1 != 0
		hasPage := mask&2 != 0
		hasStore := mask&4 != 0
		emptyPage := mask&8 != 0

		t.Run(fmt.Sprintf("override=%t/page=%t/store=%t/emptyPage=%t", hasOverride, hasPage, hasStore, emptyPage), func(t *testing.T) {
			var override Override
			var page, store *Config

			if hasOverride {
				override.Primary = overrideColor
			}
			if hasPage {
				page = &Config{Colors: Colors{Primary: pageColor}}
			} else if emptyPage {
				page = &Config{}
			}
			if hasStore {
				store = &Config{Colors: Colors{Primary: storeColor}}
			}

			got := Resolve(override, page, store).Primary

			switch {
			case hasOverride:
				require.Equal(t, overrideColor, got)
			case hasPage:
				require.Equal(t, pageColor, got)
			case hasStore:
				require.Equal(t, storeColor, got)
			default:
				require.Equal(t, Default().Colors.Primary, got)
			}
		})
	}
}

func TestResolveFillsEveryField(t *testing.T) {
	t.Parallel()

	r := Resolve(Override{}, nil, nil)
	def := Default()

	require.Equal(t, def.Colors.Primary, r.Primary)
	require.Equal(t, def.Colors.Secondary, r.Secondary)
	require.Equal(t, def.Colors.Accent, r.Accent)
	require.Equal(t, def.Colors.Text, r.Text)
	require.Equal(t, def.Colors.Background, r.Background)
	require.Equal(t, "Inter", r.HeadingFont)
	require.Equal(t, "Inter", r.BodyFont)
	require.Equal(t, "3-column", r.LayoutVariant(LayoutProductGrid, ""))
}

func TestResolveFontsAndLayoutLayering(t *testing.T) {
	t.Parallel()

	store := &Config{Fonts: Fonts{Heading: "Lato", Body: "Roboto"}, Layout: map[string]string{LayoutHeader: "classic"}}
	page := &Config{Fonts: Fonts{Body: "Poppins"}, Layout: map[string]string{LayoutFooter: "rich"}}

	r := Resolve(Override{HeadingFont: "Montserrat"}, page, store)
	require.Equal(t, "Montserrat", r.HeadingFont)
	require.Equal(t, "Poppins", r.BodyFont)
	require.Equal(t, "classic", r.LayoutVariant(LayoutHeader, ""))
	require.Equal(t, "rich", r.LayoutVariant(LayoutFooter, ""))
	require.Equal(t, "fallback", r.LayoutVariant("sidebar", "fallback"))
}

func TestMergeOverlaysOnlySetFields(t *testing.T) {
	t.Parallel()

	saved := Config{
		Colors: Colors{Primary: "#e11d48"},
		Layout: map[string]string{"sidebar": "left"},
	}

	merged := Merge(Default(), saved)
	require.Equal(t, "#e11d48", merged.Colors.Primary)
	require.Equal(t, "#10b981", merged.Colors.Accent)
	require.Equal(t, "Inter", merged.Fonts.Body)
	require.Equal(t, "left", merged.Layout["sidebar"])
	require.Equal(t, "modern", merged.Layout[LayoutHeader])

	// Merge must not alias the base layout map.
	merged.Layout[LayoutHeader] = "changed"
	require.Equal(t, "modern", Default().Layout[LayoutHeader])
}

func TestApplyPreset(t *testing.T) {
	t.Parallel()

	preset, ok := FindPreset("Dark Modern")
	require.True(t, ok)

	cfg := ApplyPreset(Default(), preset)
	require.Equal(t, "#06b6d4", cfg.Colors.Primary)
	require.Equal(t, "#111827", cfg.Colors.Background)
	require.Equal(t, "Inter", cfg.Fonts.Heading)

	_, ok = FindPreset("Neon")
	require.False(t, ok)
	require.Len(t, Presets(), 6)
	require.Len(t, FontOptions(), 10)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(Default()))
	require.NoError(t, Validate(Config{Colors: Colors{Primary: "rgb(1, 2, 3)", Background: "transparent"}}))
	require.NoError(t, Validate(Config{}))

	err := Validate(Config{Colors: Colors{Accent: "#12"}})
	require.Error(t, err)

	var verr *storefronterrors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "config.colors.accent", verr.Field)
}

func TestIsCSSColor(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"#fff", "#3b82f6", "#3B82F6CC", "white", "hsl(210, 40%, 98%)"} {
		require.True(t, IsCSSColor(ok), ok)
	}
	for _, bad := range []string{"", "#ggg", "url(x)", "rgb(1,2,3); background: red"} {
		require.False(t, IsCSSColor(bad), bad)
	}
}
