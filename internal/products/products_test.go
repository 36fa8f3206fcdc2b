package products

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	productA = Product{ID: "1", Name: "A", Price: 10}
	productB = Product{ID: "2", Name: "B", Price: 20}
	productC = Product{ID: "3", Name: "C", Price: 30}
	catalog  = []Product{productA, productB, productC}
)

func TestResolveIgnoresStaleIDsWhenSomeMatch(t *testing.T) {
	t.Parallel()

	got := Resolve([]string{"2", "stale-id"}, catalog)
	require.Equal(t, []Product{productB}, got)
}

func TestResolveFallsBackWhenEverySelectionIsStale(t *testing.T) {
	t.Parallel()

	got := Resolve([]string{"stale-only"}, catalog)
	require.Equal(t, catalog, got)
}

func TestResolveKeepsCatalogOrder(t *testing.T) {
	t.Parallel()

	got := Resolve([]string{"3", "1"}, catalog)
	require.Equal(t, []Product{productA, productC}, got)
}

func TestResolveWithoutSelectionUsesCatalog(t *testing.T) {
	t.Parallel()

	require.Equal(t, catalog, Resolve(nil, catalog))
	require.Equal(t, catalog, Resolve([]string{}, catalog))
}

func TestResolveEmptyCatalog(t *testing.T) {
	t.Parallel()

	require.Empty(t, Resolve([]string{"1"}, nil))
	require.Empty(t, Resolve(nil, nil))
}

func TestResolveReturnsCopy(t *testing.T) {
	t.Parallel()

	got := Resolve(nil, catalog)
	got[0].Name = "mutated"
	require.Equal(t, "A", catalog[0].Name)
}

func TestFeatured(t *testing.T) {
	t.Parallel()

	p, ok := Featured("2", catalog)
	require.True(t, ok)
	require.Equal(t, productB, p)

	p, ok = Featured("missing", catalog)
	require.True(t, ok)
	require.Equal(t, productA, p)

	p, ok = Featured("", catalog)
	require.True(t, ok)
	require.Equal(t, productA, p)

	_, ok = Featured("2", nil)
	require.False(t, ok)
}

func TestProductDecodesNumericAndStringIDs(t *testing.T) {
	t.Parallel()

	var list []Product
	data := `[{"id":12,"name":"Mug","price":9.5,"compare_price":12,"images":["https://x/mug.jpg"]},{"id":"sku-9","name":"Tee","price":20}]`
	require.NoError(t, json.Unmarshal([]byte(data), &list))
	require.Equal(t, ID("12"), list[0].ID)
	require.Equal(t, ID("sku-9"), list[1].ID)
	require.True(t, list[0].OnSale())
	require.False(t, list[1].OnSale())
	require.Equal(t, "https://x/mug.jpg", list[0].PrimaryImage())
	require.Equal(t, "", list[1].PrimaryImage())
}

func TestSamples(t *testing.T) {
	t.Parallel()

	samples := Samples()
	require.Len(t, samples, 5)
	require.Equal(t, "Sample Product 1", samples[0].Name)
	require.Equal(t, "$29.99", FormatPrice(samples[0].Price))
	require.True(t, samples[2].OnSale())
}
