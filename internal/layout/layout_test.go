package layout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
	"github.com/alexisbeaulieu97/storefront/internal/theme"
	storefronterrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

func shuffledLayout() Layout {
	var l Layout
	for _, order := range []int{4, 0, 3, 1, 2} {
		id := fmt.Sprintf("block-%d", order)
		l.Components = append(l.Components, blocks.New(id, blocks.HeroMinimal, order, &blocks.HeroMinimalProps{Title: id}))
	}
	return l
}

func ids(components []blocks.Component) []string {
	out := make([]string, len(components))
	for i, c := range components {
		out[i] = c.ID
	}
	return out
}

func orders(components []blocks.Component) []int {
	out := make([]int, len(components))
	for i, c := range components {
		out[i] = c.Order
	}
	return out
}

func TestNormalizeSortsAndRestamps(t *testing.T) {
	t.Parallel()

	in := shuffledLayout()
	out := Normalize(in)

	require.Equal(t, []string{"block-0", "block-1", "block-2", "block-3", "block-4"}, ids(out.Components))
	require.Equal(t, []int{0, 1, 2, 3, 4}, orders(out.Components))
	require.Equal(t, 4, in.Components[0].Order, "input must not be modified")
}

func TestNormalizeAssignsMissingAndDuplicateIDs(t *testing.T) {
	t.Parallel()

	l := Layout{Components: []blocks.Component{
		blocks.New("", blocks.Spacer, 0, nil),
		blocks.New("dup", blocks.Spacer, 1, nil),
		blocks.New("dup", blocks.Spacer, 2, nil),
	}}
	out := Normalize(l)

	seen := map[string]bool{}
	for _, c := range out.Components {
		require.NotEmpty(t, c.ID)
		require.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
	assert.Equal(t, "dup", out.Components[1].ID)
}

func TestValidateRejectsPendingAssets(t *testing.T) {
	t.Parallel()

	l := Layout{Components: []blocks.Component{
		blocks.New("about", blocks.AboutSection, 0, &blocks.AboutSectionProps{Image: blocks.PendingLocal("abc")}),
	}}
	err := Validate(l)
	require.Error(t, err)
	require.True(t, errors.Is(err, blocks.ErrPendingAsset))

	var validationErr *storefronterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "components[0].props", validationErr.Field)
}

func TestValidateRejectsBadThemeColor(t *testing.T) {
	t.Parallel()

	l := Layout{Theme: &theme.Config{Colors: theme.Colors{Primary: "not-a-color!"}}}
	require.Error(t, Validate(l))
}

func TestLayoutUnmarshalIsLenient(t *testing.T) {
	t.Parallel()

	var l Layout
	require.NoError(t, json.Unmarshal([]byte(`{"components":"oops","theme":null}`), &l))
	assert.Empty(t, l.Components)
	assert.Nil(t, l.Theme)

	require.NoError(t, json.Unmarshal([]byte(`{"components":[42,{"id":"a","type":"spacer","props":{"height":"80"},"order":0}],"theme":"{\"colors\":{\"primary\":\"#000000\"}}"}`), &l))
	require.Len(t, l.Components, 1)
	assert.Equal(t, 80, l.Components[0].Props.(*blocks.SpacerProps).Height)
	require.NotNil(t, l.Theme)
	assert.Equal(t, "#000000", l.Theme.Colors.Primary)
}

func TestParseYAML(t *testing.T) {
	t.Parallel()

	doc := `
theme:
  colors:
    primary: "#111827"
components:
  - id: hero
    type: hero-banner
    order: 1
    props:
      title: Hello
  - id: gap
    type: spacer
    order: 0
`
	l, err := Parse("home.yaml", []byte(doc))
	require.NoError(t, err)
	require.Equal(t, []string{"gap", "hero"}, ids(l.Components))
	assert.Equal(t, "Hello", l.Components[1].Props.(*blocks.HeroBannerProps).Title)
	assert.Equal(t, "#111827", l.Theme.Colors.Primary)
}

func TestParseReportsLine(t *testing.T) {
	t.Parallel()

	_, err := Parse("broken.yaml", []byte("components:\n\t- id: a\n"))
	var parseErr *storefronterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "broken.yaml", parseErr.Path)
	assert.Positive(t, parseErr.Line)

	_, err = Parse("empty.json", nil)
	require.ErrorAs(t, err, &parseErr)
}

func TestMarshalRefusesPendingAssets(t *testing.T) {
	t.Parallel()

	l := Layout{Components: []blocks.Component{
		blocks.New("g", blocks.ImageGallery, 0, &blocks.ImageGalleryProps{Images: []blocks.Asset{blocks.PendingLocal("x")}}),
	}}
	_, err := Marshal(l)
	require.True(t, errors.Is(err, blocks.ErrPendingAsset))
}

func TestFileStoreRoundTripAndScopes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load(ctx, StoreScope("12"))
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, StoreScope("12"), shuffledLayout()))
	page := Layout{Components: []blocks.Component{blocks.New("only", blocks.Divider, 0, nil)}}
	require.NoError(t, store.Save(ctx, PageScope("12", "about"), page))

	home, err := store.Load(ctx, StoreScope("12"))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, orders(home.Components))

	about, err := store.Load(ctx, PageScope("12", "about"))
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, ids(about.Components))

	_, err = store.Load(ctx, PageScope("12", "contact"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreSortsShuffledFileOnLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	raw := `{"components":[
		{"id":"e","type":"spacer","props":{},"order":4},
		{"id":"a","type":"spacer","props":{},"order":0},
		{"id":"d","type":"spacer","props":{},"order":3},
		{"id":"b","type":"spacer","props":{},"order":1},
		{"id":"c","type":"spacer","props":{},"order":2}]}`
	path := filepath.Join(store.Root(), store.RelPath(StoreScope("7")))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	l, err := store.Load(ctx, StoreScope("7"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(l.Components))
}

func TestFileStoreRejectsPendingSave(t *testing.T) {
	t.Parallel()

	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	l := Layout{Components: []blocks.Component{
		blocks.New("hero", blocks.HeroBanner, 0, &blocks.HeroBannerProps{BackgroundImage: blocks.PendingLocal("h")}),
	}}
	err = store.Save(context.Background(), StoreScope("1"), l)
	require.ErrorIs(t, err, blocks.ErrPendingAsset)

	_, err = store.Load(context.Background(), StoreScope("1"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSanitizeSegment(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "acme-shop", SanitizeSegment("acme-shop"))
	assert.Equal(t, "12", SanitizeSegment("12"))
	assert.Regexp(t, `^my-store_[0-9a-f]{16}$`, SanitizeSegment("My Store!"))
	assert.Regexp(t, `^etc-passwd_[0-9a-f]{16}$`, SanitizeSegment("../../etc/passwd"))
	assert.Regexp(t, `^_[0-9a-f]{16}$`, SanitizeSegment("///"))

	seen := map[string]string{}
	for _, id := range []string{"acme-shop", "Acme_Shop", "acme_shop", "ACME SHOP", "///", "***", "", "a", "A"} {
		segment := SanitizeSegment(id)
		if other, dup := seen[segment]; dup {
			t.Fatalf("%q and %q share segment %q", id, other, segment)
		}
		seen[segment] = id
	}
}

func TestFileStoreKeepsSimilarIDsApart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	acme := Layout{Components: []blocks.Component{blocks.New("acme", blocks.Divider, 0, nil)}}
	require.NoError(t, store.Save(ctx, StoreScope("Acme_Shop"), acme))

	_, err = store.Load(ctx, StoreScope("acme-shop"))
	require.ErrorIs(t, err, ErrNotFound)
	_, err = store.Load(ctx, StoreScope("***"))
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, PageScope("12", "///"), acme))
	_, err = store.Load(ctx, PageScope("12", "***"))
	require.ErrorIs(t, err, ErrNotFound)

	loaded, err := store.Load(ctx, StoreScope("Acme_Shop"))
	require.NoError(t, err)
	assert.Equal(t, []string{"acme"}, ids(loaded.Components))
}

func TestScope(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "store/12", StoreScope("12").String())
	assert.Equal(t, "store/12/page/about", PageScope("12", "about").String())
	assert.Equal(t, StoreScope("12"), PageScope("12", "about").Store())
	require.Error(t, Scope{}.Validate())
}

func TestTemplateFromConfig(t *testing.T) {
	t.Parallel()

	themeOnly, err := TemplateFromConfig(json.RawMessage(`"{\"colors\":{\"primary\":\"#ff0000\"}}"`))
	require.NoError(t, err)
	require.NotNil(t, themeOnly.Theme)
	assert.Equal(t, "#ff0000", themeOnly.Theme.Colors.Primary)
	assert.Empty(t, themeOnly.Components)

	withComponents, err := TemplateFromConfig(json.RawMessage(`{
		"components":[{"type":"spacer","props":{}},{"type":"divider","props":{},"order":0}],
		"theme":{"colors":{"accent":"#00ff00"}}}`))
	require.NoError(t, err)
	require.Len(t, withComponents.Components, 2)
	assert.Equal(t, "template-component-0", withComponents.Components[0].ID)
	assert.Equal(t, "template-component-1", withComponents.Components[1].ID)
	assert.Equal(t, []int{0, 1}, orders(withComponents.Components))
	assert.Equal(t, "#00ff00", withComponents.Theme.Colors.Accent)
}
