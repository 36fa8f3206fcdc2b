package builder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
	"github.com/alexisbeaulieu97/storefront/internal/layout"
	"github.com/alexisbeaulieu97/storefront/internal/render"
	storefronterrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

func apply(t *testing.T, s State, actions ...Action) State {
	t.Helper()
	for _, a := range actions {
		var err error
		s, err = Reduce(s, a)
		require.NoError(t, err, "%T", a)
	}
	return s
}

func ids(s State) []string {
	out := make([]string, len(s.Components))
	for i, c := range s.Components {
		out[i] = c.ID
	}
	return out
}

func seeded(t *testing.T) State {
	s := New(layout.StoreScope("12"), layout.Layout{})
	return apply(t, s,
		AddComponent{Type: blocks.HeroBanner, ID: "a"},
		AddComponent{Type: blocks.ProductGrid, ID: "b"},
		AddComponent{Type: blocks.Newsletter, ID: "c"},
	)
}

func TestNewStartsOnComponentsPanel(t *testing.T) {
	s := New(layout.StoreScope("12"), layout.Layout{})
	assert.Equal(t, PanelComponents, s.Panel)
	assert.Equal(t, render.DeviceDesktop, s.Preview)
	assert.Equal(t, "#3b82f6", s.Theme.Colors.Primary)
	assert.Empty(t, s.Components)
}

func TestAddSelectsAndOpensEditor(t *testing.T) {
	s := New(layout.StoreScope("12"), layout.Layout{})
	s = apply(t, s, AddComponent{Type: blocks.HeroBanner})

	require.Len(t, s.Components, 1)
	c := s.Components[0]
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, 0, c.Order)
	assert.Equal(t, c.ID, s.SelectedID)
	assert.Equal(t, c.ID, s.EditingID)
	assert.Equal(t, PanelEdit, s.Panel)
	assert.True(t, s.Dirty)

	props, ok := c.Props.(*blocks.HeroBannerProps)
	require.True(t, ok)
	assert.NotEmpty(t, props.Title, "starts from registry defaults")
}

func TestAddUnknownTypeFails(t *testing.T) {
	s := New(layout.StoreScope("12"), layout.Layout{})
	next, err := Reduce(s, AddComponent{Type: "marquee"})
	require.Error(t, err)
	assert.Empty(t, next.Components)
}

func TestOrderMatchesPositionAfterEveryAction(t *testing.T) {
	s := seeded(t)
	steps := []Action{
		MoveComponent{ID: "c", Direction: Up},
		DuplicateComponent{ID: "a", NewID: "a2"},
		RemoveComponent{ID: "b"},
		AddComponent{Type: blocks.Spacer, ID: "d"},
		MoveComponent{ID: "a", Direction: Down},
	}
	for _, step := range steps {
		s = apply(t, s, step)
		for i, c := range s.Layout().Components {
			assert.Equal(t, i, c.Order, "after %T", step)
		}
	}
	assert.Equal(t, []string{"a2", "a", "c", "d"}, ids(s))
}

func TestMoveBoundariesAreNoOps(t *testing.T) {
	s := seeded(t)
	up := apply(t, s, MoveComponent{ID: "a", Direction: Up})
	assert.Equal(t, []string{"a", "b", "c"}, ids(up))

	down := apply(t, s, MoveComponent{ID: "c", Direction: Down})
	assert.Equal(t, []string{"a", "b", "c"}, ids(down))

	swapped := apply(t, s, MoveComponent{ID: "a", Direction: Down})
	assert.Equal(t, []string{"b", "a", "c"}, ids(swapped))
	assert.Equal(t, 1, swapped.Components[1].Order)
}

func TestDuplicateInsertsAfterSource(t *testing.T) {
	s := seeded(t)
	s = apply(t, s, DuplicateComponent{ID: "b"})

	require.Len(t, s.Components, 4)
	dup := s.Components[2]
	assert.NotEqual(t, "b", dup.ID)
	assert.Equal(t, blocks.ProductGrid, dup.Type)
	assert.Equal(t, "c", s.Components[3].ID)
	assert.Equal(t, 3, s.Components[3].Order)

	orig := s.Components[1].Props.(*blocks.ProductGridProps)
	copied := dup.Props.(*blocks.ProductGridProps)
	copied.Title = "changed"
	assert.NotEqual(t, "changed", orig.Title)
}

func TestRemoveClearsSelection(t *testing.T) {
	s := seeded(t)
	s = apply(t, s, EditComponent{ID: "b"}, RemoveComponent{ID: "b"})
	assert.Empty(t, s.SelectedID)
	assert.Empty(t, s.EditingID)
	assert.Equal(t, []string{"a", "c"}, ids(s))

	other := apply(t, seeded(t), SelectComponent{ID: "a"}, RemoveComponent{ID: "c"})
	assert.Equal(t, "a", other.SelectedID)
}

func TestUpdateReplacesPropsWholesale(t *testing.T) {
	s := seeded(t)
	s = apply(t, s, UpdateComponent{ID: "a", Props: &blocks.HeroBannerProps{Title: "Only title"}})
	props := s.Components[0].Props.(*blocks.HeroBannerProps)
	assert.Equal(t, "Only title", props.Title)
	assert.Empty(t, props.Subtitle)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := seeded(t)
	_ = apply(t, s, UpdateComponent{ID: "a", Props: &blocks.HeroBannerProps{Title: "x"}}, RemoveComponent{ID: "c"})
	assert.Len(t, s.Components, 3)
	assert.NotEqual(t, "x", s.Components[0].Props.(*blocks.HeroBannerProps).Title)
}

func TestUnknownIDErrors(t *testing.T) {
	s := seeded(t)
	for _, a := range []Action{
		UpdateComponent{ID: "zz"},
		RemoveComponent{ID: "zz"},
		MoveComponent{ID: "zz"},
		DuplicateComponent{ID: "zz"},
		EditComponent{ID: "zz"},
	} {
		_, err := Reduce(s, a)
		assert.ErrorIs(t, err, ErrComponentNotFound, "%T", a)
	}
}

func TestPanelsAndPreview(t *testing.T) {
	s := seeded(t)
	s = apply(t, s, SetPanel{Panel: PanelTheme}, SetPreviewMode{Device: render.DeviceMobile})
	assert.Equal(t, PanelTheme, s.Panel)
	assert.Equal(t, render.DeviceMobile, s.Preview)

	_, err := Reduce(s, SetPanel{Panel: "settings"})
	assert.Error(t, err)
}

func TestThemeActions(t *testing.T) {
	s := seeded(t)
	s = apply(t, s, ApplyPreset{Name: "Dark Modern"})
	assert.Equal(t, "#06b6d4", s.Theme.Colors.Primary)

	bad := s.Theme
	bad.Colors.Primary = "url(javascript:alert(1))"
	_, err := Reduce(s, SetTheme{Theme: bad})
	assert.Error(t, err)
}

func TestPendingAssetLifecycle(t *testing.T) {
	s := seeded(t)
	s = apply(t, s, AttachPendingAsset{ID: "a", Key: "backgroundImage", Handle: "tmp-1"})
	assert.Equal(t, 1, s.PendingAssets())

	store := &recordingSaver{}
	failed := apply(t, s, Save(context.Background(), store, s))
	assert.Zero(t, store.calls)
	require.NotNil(t, failed.Notice)
	assert.Equal(t, NoticeError, failed.Notice.Level)
	assert.ErrorIs(t, failed.Notice.Err, blocks.ErrPendingAsset)

	s = apply(t, s, ResolveAsset{Handle: "tmp-1", URL: "https://cdn.example.com/bg.jpg"})
	assert.Zero(t, s.PendingAssets())
	props := s.Components[0].Props.(*blocks.HeroBannerProps)
	assert.Equal(t, "https://cdn.example.com/bg.jpg", props.BackgroundImage.URL())

	saved := apply(t, s, Save(context.Background(), store, s))
	assert.Equal(t, 1, store.calls)
	assert.False(t, saved.Dirty)
	assert.Equal(t, NoticeSuccess, saved.Notice.Level)
	assert.Equal(t, "Layout saved successfully!", saved.Notice.Message)
}

func TestFailedSaveKeepsState(t *testing.T) {
	s := apply(t, seeded(t), SaveStarted{})
	store := &recordingSaver{err: errors.New("network down")}

	after := apply(t, s, Save(context.Background(), store, s))
	assert.Equal(t, ids(s), ids(after))
	assert.True(t, after.Dirty)
	assert.False(t, after.Saving)
	require.NotNil(t, after.Notice)
	assert.Equal(t, "Failed to save layout", after.Notice.Message)

	var saveErr *storefronterrors.SaveError
	require.ErrorAs(t, after.Notice.Err, &saveErr)
	assert.Equal(t, "store/12", saveErr.Scope)
}

func TestSaveWritesRestampedLayout(t *testing.T) {
	s := apply(t, seeded(t), RemoveComponent{ID: "a"})
	store := &recordingSaver{}
	_ = Save(context.Background(), store, s)

	require.Len(t, store.last.Components, 2)
	assert.Equal(t, 0, store.last.Components[0].Order)
	assert.Equal(t, 1, store.last.Components[1].Order)
	require.NotNil(t, store.last.Theme)
}

type recordingSaver struct {
	calls int
	last  layout.Layout
	err   error
}

func (r *recordingSaver) Save(_ context.Context, _ layout.Scope, l layout.Layout) error {
	r.calls++
	r.last = l
	return r.err
}
