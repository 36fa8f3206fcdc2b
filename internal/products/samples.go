package products

func price(v float64) *float64 { return &v }

func sampleImage(photo string) []string {
	return []string{"https://images.unsplash.com/photo-" + photo + "?w=300&h=300&fit=crop"}
}

// Samples returns the demo catalog shown by builder previews of stores that
// have no products yet. Public pages never use it.
func Samples() []Product {
	return []Product{
		{ID: "sample-1", Name: "Sample Product 1", Slug: "sample-product-1", Price: 29.99, ComparePrice: price(39.99), Images: sampleImage("1505740420928-5e560c06d30e")},
		{ID: "sample-2", Name: "Sample Product 2", Slug: "sample-product-2", Price: 49.99, Images: sampleImage("1572635196237-14b3f281503f")},
		{ID: "sample-3", Name: "Sample Product 3", Slug: "sample-product-3", Price: 79.99, ComparePrice: price(99.99), Images: sampleImage("1526170375885-4d8ecf77b99f")},
		{ID: "sample-4", Name: "Sample Product 4", Slug: "sample-product-4", Price: 24.99, Images: sampleImage("1567401893414-76b7b1e5a7a5")},
		{ID: "sample-5", Name: "Sample Product 5", Slug: "sample-product-5", Price: 89.99, Images: sampleImage("1542291026-7eec264c27ff")},
	}
}
