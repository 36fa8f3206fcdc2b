package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
)

func TestEditorAppliesTypedValues(t *testing.T) {
	c := blocks.New("s", blocks.Spacer, 0, &blocks.SpacerProps{Height: 60})
	e := newEditor(c, "Spacer")
	setField(t, e, "height", "120")

	props, uploads, err := e.apply(c)
	require.NoError(t, err)
	assert.Empty(t, uploads)
	assert.Equal(t, 120, props.(*blocks.SpacerProps).Height)
}

func TestEditorRejectsBadNumber(t *testing.T) {
	c := blocks.New("s", blocks.Spacer, 0, nil)
	e := newEditor(c, "Spacer")
	setField(t, e, "height", "tall")

	_, _, err := e.apply(c)
	assert.Error(t, err)
	assert.Error(t, validateNumber("tall"))
	assert.NoError(t, validateNumber(""))
}

func TestEditorArrayFieldsAreJSON(t *testing.T) {
	c := blocks.New("k", blocks.StatsCounter, 0, nil)
	e := newEditor(c, "Statistics")
	setField(t, e, "stats", `[{"number":"10K+","label":"Customers"}]`)

	props, _, err := e.apply(c)
	require.NoError(t, err)
	stats := props.(*blocks.StatsCounterProps).Stats
	require.Len(t, stats, 1)
	assert.Equal(t, "Customers", stats[0].Label)

	assert.Error(t, validateArray(`{"not":"an array"}`))
}

func TestEditorStartsFromPersistedProps(t *testing.T) {
	c := blocks.FromMap(map[string]any{
		"id":    "h",
		"type":  "hero-banner",
		"props": map[string]any{"title": "Hi", "subtitle": "Welcome back"},
	})
	e := newEditor(c, "Hero Banner")
	setField(t, e, "title", "Hello")

	props, _, err := e.apply(c)
	require.NoError(t, err)
	hero := props.(*blocks.HeroBannerProps)
	assert.Equal(t, "Hello", hero.Title)
	assert.Equal(t, "Welcome back", hero.Subtitle)
}

func TestRemoteAssetValuesAreNotUploads(t *testing.T) {
	assert.False(t, isLocalFile("https://cdn.example.com/a.png"))
	assert.False(t, isLocalFile("blob:abc"))
	assert.False(t, isLocalFile(""))
	assert.False(t, isLocalFile("/definitely/not/here.png"))
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "Button Text", fieldLabel("buttonText"))
	assert.Equal(t, "Title", fieldLabel("title"))
}
