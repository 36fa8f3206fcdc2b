package registry

import "github.com/alexisbeaulieu97/storefront/internal/blocks"

const (
	sampleVideoURL = "https://sample-videos.com/zip/10/mp4/SampleVideo_1280x720_1mb.mp4"
	unsplash       = "https://images.unsplash.com/"
)

func unsplashPhoto(id, size string) blocks.Asset {
	return blocks.Persisted(unsplash + "photo-" + id + "?" + size + "&fit=crop")
}

// builtinTemplates is the fixed block catalog, in palette order.
func builtinTemplates() []Template {
	return []Template{
		{
			ID:          blocks.HeroBanner,
			Name:        "Hero Banner",
			Category:    CategoryHero,
			Description: "Large banner with title, subtitle, and call-to-action",
			defaults: &blocks.HeroBannerProps{
				Title:               "Welcome to Our Store",
				Subtitle:            "Discover amazing products at great prices",
				ButtonText:          "Shop Now",
				BackgroundImage:     unsplashPhoto("1441986300917-64674bd600d8", "w=1200&h=600"),
				Overlay:             true,
				SecondaryButton:     false,
				SecondaryButtonText: "Learn More",
			},
		},
		{
			ID:          blocks.HeroSplit,
			Name:        "Split Hero",
			Category:    CategoryHero,
			Description: "Split layout with content on one side, image on other",
			defaults: &blocks.HeroSplitProps{
				Title:         "New Collection",
				Subtitle:      "Explore our latest arrivals",
				ButtonText:    "View Collection",
				Image:         unsplashPhoto("1441986300917-64674bd600d8", "w=800&h=600"),
				ImagePosition: "right",
			},
		},
		{
			ID:          blocks.ProductGrid,
			Name:        "Product Grid",
			Category:    CategoryProducts,
			Description: "Grid layout displaying featured products",
			defaults: &blocks.ProductGridProps{
				Title:            "Featured Products",
				Columns:          3,
				ShowPrice:        true,
				ShowRating:       true,
				MaxProducts:      6,
				SelectedProducts: []string{},
			},
		},
		{
			ID:          blocks.ProductCarousel,
			Name:        "Product Carousel",
			Category:    CategoryProducts,
			Description: "Sliding carousel of products",
			defaults: &blocks.ProductCarouselProps{
				Title:            "Trending Now",
				Autoplay:         true,
				ShowDots:         true,
				SlidesToShow:     4,
				SelectedProducts: []string{},
			},
		},
		{
			ID:          blocks.ProductShowcase,
			Name:        "Product Showcase",
			Category:    CategoryProducts,
			Description: "Featured product with detailed information",
			defaults: &blocks.ProductShowcaseProps{
				Title:           "Featured Product",
				ShowPrice:       true,
				ShowDescription: true,
				ButtonText:      "Add to Cart",
			},
		},
		{
			ID:          blocks.ImageGallery,
			Name:        "Image Gallery",
			Category:    CategoryMedia,
			Description: "Grid of images with lightbox functionality",
			defaults: &blocks.ImageGalleryProps{
				Title:    "Gallery",
				Columns:  3,
				Spacing:  "medium",
				Lightbox: true,
				Images: []blocks.Asset{
					unsplashPhoto("1441986300917-64674bd600d8", "w=400&h=300"),
					unsplashPhoto("1560472354-b33ff0c44a43", "w=400&h=300"),
					unsplashPhoto("1586023492125-27b2c045efd7", "w=400&h=300"),
					unsplashPhoto("1560472355-536de3962603", "w=400&h=300"),
					unsplashPhoto("1554306297-0c86e924d3d2", "w=400&h=300"),
					unsplashPhoto("1586023492125-27b2c045efd7", "w=400&h=300"),
				},
			},
		},
		{
			ID:          blocks.VideoEmbed,
			Name:        "Video Player",
			Category:    CategoryMedia,
			Description: "Embedded video player",
			defaults: &blocks.VideoEmbedProps{
				Title:    "Watch Our Story",
				VideoURL: blocks.Persisted(sampleVideoURL),
				Autoplay: false,
				Controls: true,
				Muted:    false,
			},
		},
		{
			ID:          blocks.FeatureList,
			Name:        "Feature List",
			Category:    CategoryFeatures,
			Description: "List of features or benefits with icons",
			defaults: &blocks.FeatureListProps{
				Title: "Why Choose Us",
				Features: []blocks.Feature{
					{Icon: "shipping", Title: "Free Shipping", Description: "On orders over $50"},
					{Icon: "support", Title: "24/7 Support", Description: "Always here to help"},
					{Icon: "returns", Title: "Easy Returns", Description: "30-day return policy"},
				},
			},
		},
		{
			ID:          blocks.Testimonials,
			Name:        "Testimonials",
			Category:    CategorySocial,
			Description: "Customer reviews and testimonials",
			defaults: &blocks.TestimonialsProps{
				Title: "What Our Customers Say",
				Testimonials: []blocks.Review{
					{Name: "Sarah Johnson", Rating: 5, Comment: "Amazing products and fast shipping!"},
				},
			},
		},
		{
			ID:          blocks.CTABanner,
			Name:        "Call to Action",
			Category:    CategoryCTA,
			Description: "Promotional banner with call-to-action",
			defaults: &blocks.CTABannerProps{
				Style:      blocks.Style{BackgroundColor: "#3b82f6", TextColor: "#ffffff"},
				Title:      "Special Offer",
				Subtitle:   "Get 20% off your first order",
				ButtonText: "Shop Now",
			},
		},
		{
			ID:          blocks.Newsletter,
			Name:        "Newsletter Signup",
			Category:    CategoryCTA,
			Description: "Email subscription form",
			defaults: &blocks.NewsletterProps{
				Title:       "Stay Updated",
				Subtitle:    "Subscribe to get special offers and updates",
				Placeholder: "Enter your email",
				ButtonText:  "Subscribe",
			},
		},
		{
			ID:          blocks.ContactInfo,
			Name:        "Contact Info",
			Category:    CategoryInfo,
			Description: "Contact details and location",
			defaults: &blocks.ContactInfoProps{
				Title:   "Visit Our Store",
				Address: "123 Main Street, City, State 12345",
				Phone:   "(555) 123-4567",
				Email:   "info@store.com",
				Hours:   "Mon-Fri: 9AM-6PM",
			},
		},
		{
			ID:          blocks.AboutSection,
			Name:        "About Section",
			Category:    CategoryInfo,
			Description: "About us content with image",
			defaults: &blocks.AboutSectionProps{
				Title:         "About Our Store",
				Content:       "We are passionate about providing quality products and exceptional customer service. Our team works hard to curate the best selection for our customers.",
				ImagePosition: "left",
			},
		},
		{
			ID:          blocks.HeroVideo,
			Name:        "Video Hero",
			Category:    CategoryHero,
			Description: "Hero section with background video",
			defaults: &blocks.HeroVideoProps{
				Title:      "Experience Excellence",
				Subtitle:   "Watch our story unfold",
				ButtonText: "Learn More",
				VideoURL:   blocks.Persisted(sampleVideoURL),
				Autoplay:   true,
				Muted:      true,
			},
		},
		{
			ID:          blocks.HeroMinimal,
			Name:        "Minimal Hero",
			Category:    CategoryHero,
			Description: "Clean, minimal hero with simple text",
			defaults: &blocks.HeroMinimalProps{
				Title:      "Simple. Beautiful. Effective.",
				Subtitle:   "Discover what matters most",
				Alignment:  "center",
				ShowButton: false,
			},
		},
		{
			ID:          blocks.ProductCategories,
			Name:        "Category Grid",
			Category:    CategoryProducts,
			Description: "Product categories with images",
			defaults: &blocks.ProductCategoriesProps{
				Title: "Shop by Category",
				Categories: []blocks.Category{
					{Name: "Electronics", ItemCount: 45},
					{Name: "Clothing", ItemCount: 78},
					{Name: "Home & Garden", ItemCount: 32},
					{Name: "Sports", ItemCount: 21},
				},
			},
		},
		{
			ID:          blocks.ImageText,
			Name:        "Image + Text",
			Category:    CategoryMedia,
			Description: "Side-by-side image and text content",
			defaults: &blocks.ImageTextProps{
				Title:         "Our Story",
				Content:       "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.",
				ImagePosition: "left",
				ButtonText:    "Read More",
				ShowButton:    true,
			},
		},
		{
			ID:          blocks.BeforeAfter,
			Name:        "Before/After",
			Category:    CategoryMedia,
			Description: "Before and after comparison images",
			defaults: &blocks.BeforeAfterProps{
				Title:       "See the Difference",
				BeforeLabel: "Before",
				AfterLabel:  "After",
			},
		},
		{
			ID:          blocks.StatsCounter,
			Name:        "Statistics",
			Category:    CategoryFeatures,
			Description: "Animated statistics counters",
			defaults: &blocks.StatsCounterProps{
				Title: "Our Numbers Speak",
				Stats: []blocks.Stat{
					{Number: "10000", Label: "Happy Customers"},
					{Number: "500", Label: "Products Sold"},
					{Number: "50", Label: "Countries Served"},
					{Number: "5", Label: "Years Experience"},
				},
			},
		},
		{
			ID:          blocks.IconGrid,
			Name:        "Icon Features",
			Category:    CategoryFeatures,
			Description: "Grid of features with icons",
			defaults: &blocks.IconGridProps{
				Title:   "Why Choose Us",
				Columns: 4,
				Features: []blocks.Feature{
					{Icon: "truck", Title: "Free Shipping", Description: "On orders over $50"},
					{Icon: "shield", Title: "Secure Payment", Description: "100% secure checkout"},
					{Icon: "return", Title: "Easy Returns", Description: "30-day return policy"},
					{Icon: "support", Title: "24/7 Support", Description: "Always here to help"},
				},
			},
		},
		{
			ID:          blocks.ReviewsGrid,
			Name:        "Reviews Grid",
			Category:    CategorySocial,
			Description: "Customer reviews in a grid layout",
			defaults: &blocks.ReviewsGridProps{
				Title: "Customer Reviews",
				Reviews: []blocks.Review{
					{Name: "John Doe", Rating: 5, Comment: "Amazing quality and fast shipping!", Date: "2 days ago"},
					{Name: "Jane Smith", Rating: 5, Comment: "Love this product. Highly recommended!", Date: "1 week ago"},
					{Name: "Mike Johnson", Rating: 4, Comment: "Great value for money.", Date: "2 weeks ago"},
				},
			},
		},
		{
			ID:          blocks.SocialProof,
			Name:        "Social Proof",
			Category:    CategorySocial,
			Description: "Social media mentions and logos",
			defaults: &blocks.SocialProofProps{
				Title:    "As Featured In",
				Subtitle: "Trusted by thousands of customers worldwide",
				Logos:    []blocks.Logo{},
			},
		},
		{
			ID:          blocks.Spacer,
			Name:        "Spacer",
			Category:    CategoryLayout,
			Description: "Add vertical spacing between sections",
			defaults: &blocks.SpacerProps{
				Style:  blocks.Style{BackgroundColor: "transparent"},
				Height: 60,
			},
		},
		{
			ID:          blocks.Divider,
			Name:        "Divider",
			Category:    CategoryLayout,
			Description: "Visual divider line between sections",
			defaults: &blocks.DividerProps{
				LineStyle: "solid",
				Color:     "#e5e7eb",
				Thickness: 1,
				Width:     "100%",
			},
		},
	}
}
