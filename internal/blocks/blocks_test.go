package blocks

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnmarshalTypedProps(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"id": "hero-1",
		"type": "hero-banner",
		"order": 2,
		"props": {
			"title": "Summer Sale",
			"overlay": true,
			"backgroundImage": "https://cdn.example.com/hero.jpg",
			"textColor": "#000000"
		}
	}`)

	var c Component
	require.NoError(t, json.Unmarshal(data, &c))
	require.Equal(t, "hero-1", c.ID)
	require.Equal(t, HeroBanner, c.Type)
	require.Equal(t, 2, c.Order)
	require.True(t, c.Supported())

	props, ok := c.Props.(*HeroBannerProps)
	require.True(t, ok)
	require.Equal(t, "Summer Sale", props.Title)
	require.True(t, props.Overlay)
	require.Equal(t, "https://cdn.example.com/hero.jpg", props.BackgroundImage.URL())
	require.Equal(t, "#000000", props.ThemeOverride().Text)
}

func TestDecodeCoercesMalformedValues(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"title":    42.0,
		"columns":  "4",
		"lightbox": "yes",
		"images":   "not-a-list",
		"spacing":  []any{"x"},
	}

	p, _ := Decode(ImageGallery, raw)
	props := p.(*ImageGalleryProps)
	require.Equal(t, "42", props.Title)
	require.Equal(t, 4, props.Columns)
	require.True(t, props.Lightbox)
	require.Empty(t, props.Images)
	require.Equal(t, "", props.Spacing)
}

func TestDecodeNonArrayForEveryArrayProp(t *testing.T) {
	t.Parallel()

	cases := map[Type]string{
		FeatureList:       "features",
		IconGrid:          "features",
		Testimonials:      "testimonials",
		ReviewsGrid:       "reviews",
		SocialProof:       "logos",
		StatsCounter:      "stats",
		ProductCategories: "categories",
		ImageGallery:      "images",
		ProductGrid:       "selectedProducts",
	}

	for typ, key := range cases {
		for _, bad := range []any{"oops", 7.0, true, map[string]any{"a": 1.0}} {
			p, _ := Decode(typ, map[string]any{key: bad})
			require.NotNil(t, p, "%s/%s", typ, key)
			_, present := ToMap(p)[key]
			require.False(t, present, "%s.%s=%v should decode as empty", typ, key, bad)
		}
	}
}

func TestDecodeCoercesNestedEntries(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"stats": []any{
			map[string]any{"number": 10000.0, "label": "Happy Customers"},
			"garbage",
			map[string]any{"number": "500+", "label": true},
		},
	}

	p, _ := Decode(StatsCounter, raw)
	stats := p.(*StatsCounterProps).Stats
	require.Len(t, stats, 3)
	require.Equal(t, "10000", stats[0].Number)
	require.Equal(t, Stat{}, stats[1])
	require.Equal(t, "500+", stats[2].Number)
	require.Equal(t, "true", stats[2].Label)
}

func TestSelectedProductsAcceptNumericIDs(t *testing.T) {
	t.Parallel()

	p, _ := Decode(ProductCarousel, map[string]any{"selectedProducts": []any{1.0, "7", 12.0}})
	require.Equal(t, []string{"1", "7", "12"}, p.(*ProductCarouselProps).SelectedProducts)
}

func TestUnknownTypeKeepsRawProps(t *testing.T) {
	t.Parallel()

	data := []byte(`{"id":"x","type":"countdown-timer","order":0,"props":{"deadline":"2026-12-01"}}`)

	var c Component
	require.NoError(t, json.Unmarshal(data, &c))
	require.False(t, c.Supported())

	unknown, ok := c.Props.(*Unknown)
	require.True(t, ok)
	require.Equal(t, Type("countdown-timer"), unknown.BlockType())

	out, err := json.Marshal(c)
	require.NoError(t, err)
	require.JSONEq(t, string(data), string(out))
}

func TestRoundTripPreservesUnreadKeys(t *testing.T) {
	t.Parallel()

	data := []byte(`{"id":"s","type":"spacer","order":1,"props":{"height":80,"legacyAnchor":"top"}}`)

	var c Component
	require.NoError(t, json.Unmarshal(data, &c))
	require.Equal(t, 80, c.Props.(*SpacerProps).Height)

	out, err := json.Marshal(c)
	require.NoError(t, err)
	require.JSONEq(t, string(data), string(out))
}

func TestMalformedEnvelopeIsCoerced(t *testing.T) {
	t.Parallel()

	var c Component
	require.NoError(t, json.Unmarshal([]byte(`{"id":17,"type":"divider","order":"3","props":"broken"}`), &c))
	require.Equal(t, "17", c.ID)
	require.Equal(t, 3, c.Order)
	require.IsType(t, &DividerProps{}, c.Props)

	require.Error(t, json.Unmarshal([]byte(`{"id":`), &c))
}

func TestPendingAssetBlocksMarshal(t *testing.T) {
	t.Parallel()

	c := New("about", AboutSection, 0, &AboutSectionProps{Title: "Us", Image: PendingLocal("photo-1")})
	_, err := json.Marshal(c)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrPendingAsset))

	pending := PendingAssets(c.Props)
	require.Len(t, pending, 1)
	require.Equal(t, "photo-1", pending[0].Handle())

	resolved, n := ResolveAsset(c.Props, "photo-1", "https://cdn.example.com/about.jpg")
	require.Equal(t, 1, n)
	require.Empty(t, PendingAssets(resolved))
	require.True(t, c.Props.(*AboutSectionProps).Image.IsPending(), "original props must not change")

	out, err := json.Marshal(c.WithProps(resolved))
	require.NoError(t, err)
	require.Contains(t, string(out), "https://cdn.example.com/about.jpg")
}

func TestPendingAssetsInsideArrays(t *testing.T) {
	t.Parallel()

	props := &ImageGalleryProps{Images: []Asset{Persisted("https://a/1.jpg"), PendingLocal("blob:local-2")}}
	require.Len(t, Assets(props), 2)
	require.Len(t, PendingAssets(props), 1)

	m := ToMap(props)
	require.Equal(t, []any{"https://a/1.jpg", "blob:local-2"}, m["images"])

	back, _ := Decode(ImageGallery, m)
	require.True(t, back.(*ImageGalleryProps).Images[1].IsPending())
	require.Equal(t, "local-2", back.(*ImageGalleryProps).Images[1].Handle())
}

func TestClonePropsDoesNotShareSlices(t *testing.T) {
	t.Parallel()

	orig := &FeatureListProps{Features: []Feature{{Title: "Fast"}}}
	cp := CloneProps(orig).(*FeatureListProps)
	cp.Features[0].Title = "Changed"
	require.Equal(t, "Fast", orig.Features[0].Title)
}

func TestEveryKnownTypeHasProps(t *testing.T) {
	t.Parallel()

	require.Len(t, Types(), 24)
	for _, typ := range Types() {
		p, _ := Decode(typ, nil)
		require.Equal(t, typ, p.BlockType())
		require.True(t, typ.Known())
	}
	require.False(t, Type("marquee").Known())
}

func TestWithFieldKeepsOtherKeys(t *testing.T) {
	c := FromMap(map[string]any{
		"id":    "h",
		"type":  "hero-banner",
		"props": map[string]any{"title": "Hi", "legacyKey": 1},
	})

	updated := c.WithField("subtitle", "There")
	props := updated.Props.(*HeroBannerProps)
	require.Equal(t, "Hi", props.Title)
	require.Equal(t, "There", props.Subtitle)
	require.Equal(t, 1, updated.PropsMap()["legacyKey"])

	pending := updated.WithField("backgroundImage", "blob:tmp-9")
	bg := pending.Props.(*HeroBannerProps).BackgroundImage
	require.True(t, bg.IsPending())
	require.Equal(t, "tmp-9", bg.Handle())
	require.Empty(t, c.Props.(*HeroBannerProps).Subtitle)
}
