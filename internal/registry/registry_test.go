package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
)

func TestRegistryListsEveryBlockType(t *testing.T) {
	reg := New()

	templates := reg.List()
	require.Len(t, templates, 24)

	seen := make(map[blocks.Type]bool)
	for _, tmpl := range templates {
		assert.False(t, seen[tmpl.ID], "duplicate template %s", tmpl.ID)
		seen[tmpl.ID] = true
		assert.NotEmpty(t, tmpl.Name)
		assert.NotEmpty(t, tmpl.Description)
		assert.Equal(t, tmpl.ID, tmpl.DefaultProps().BlockType())
	}
	for _, typ := range blocks.Types() {
		assert.True(t, seen[typ], "missing template for %s", typ)
	}
}

func TestRegistryFindByCategory(t *testing.T) {
	reg := New()

	hero := reg.FindByCategory(CategoryHero)
	require.Len(t, hero, 4)
	for _, tmpl := range hero {
		assert.Equal(t, CategoryHero, tmpl.Category)
	}

	assert.Len(t, reg.FindByCategory(CategoryAll), 24)
	assert.Len(t, reg.FindByCategory(CategoryLayout), 2)
	assert.Empty(t, reg.FindByCategory(Category("unknown")))
}

func TestRegistrySearchIsCaseInsensitive(t *testing.T) {
	reg := New()

	results := reg.Search("CAROUSEL")
	require.Len(t, results, 1)
	assert.Equal(t, blocks.ProductCarousel, results[0].ID)

	// "email" only appears in the newsletter description.
	results = reg.Search("Email")
	require.Len(t, results, 1)
	assert.Equal(t, blocks.Newsletter, results[0].ID)

	assert.Len(t, reg.Search("  "), 24)
	assert.Empty(t, reg.Search("quantum"))
}

func TestRegistryFilterCombinesCategoryAndSearch(t *testing.T) {
	reg := New()

	results := reg.Filter(CategoryMedia, "image")
	ids := make([]blocks.Type, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	assert.ElementsMatch(t, []blocks.Type{blocks.ImageGallery, blocks.ImageText, blocks.BeforeAfter}, ids)
}

func TestDefaultPropsAreIndependentCopies(t *testing.T) {
	reg := New()

	tmpl, err := reg.Lookup(blocks.FeatureList)
	require.NoError(t, err)

	first := tmpl.DefaultProps().(*blocks.FeatureListProps)
	first.Features[0].Title = "Changed"

	second := tmpl.DefaultProps().(*blocks.FeatureListProps)
	assert.Equal(t, "Free Shipping", second.Features[0].Title)
}

func TestLookupUnknownType(t *testing.T) {
	_, err := New().Lookup(blocks.Type("marquee"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template not found: marquee")
}

func TestTemplateFieldsFollowDefaultProps(t *testing.T) {
	reg := New()

	tmpl, err := reg.Lookup(blocks.CTABanner)
	require.NoError(t, err)

	kinds := make(map[string]blocks.Kind)
	for _, f := range tmpl.Fields() {
		kinds[f.Key] = f.Kind
	}

	assert.Equal(t, blocks.KindString, kinds["title"])
	assert.Equal(t, blocks.KindString, kinds["backgroundColor"])
	assert.Equal(t, blocks.KindString, kinds["textColor"])
	_, hasPrimary := kinds["primaryColor"]
	assert.False(t, hasPrimary, "unset style keys are not offered")

	tmpl, err = reg.Lookup(blocks.ProductGrid)
	require.NoError(t, err)
	kinds = map[string]blocks.Kind{}
	for _, f := range tmpl.Fields() {
		kinds[f.Key] = f.Kind
	}
	assert.Equal(t, blocks.KindNumber, kinds["columns"])
	assert.Equal(t, blocks.KindBoolean, kinds["showPrice"])
	assert.Equal(t, blocks.KindArray, kinds["selectedProducts"])
}

func TestCategoryLabels(t *testing.T) {
	assert.Equal(t, "Call to Action", CategoryCTA.Label())
	assert.Equal(t, "All Components", CategoryAll.Label())
	assert.Len(t, Categories(), 9)

	c, err := ParseCategory("info")
	require.NoError(t, err)
	assert.Equal(t, "Information", c.Label())

	_, err = ParseCategory("misc")
	require.Error(t, err)
}
