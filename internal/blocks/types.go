// Package blocks defines the page component model: one typed props struct
// per block type, decoded leniently from the loosely-typed JSON layouts are
// persisted as.
package blocks

// Type identifies a block type. Values match the persisted "type" field.
type Type string

const (
	HeroBanner        Type = "hero-banner"
	HeroSplit         Type = "hero-split"
	HeroVideo         Type = "hero-video"
	HeroMinimal       Type = "hero-minimal"
	ProductGrid       Type = "product-grid"
	ProductCarousel   Type = "product-carousel"
	ProductShowcase   Type = "product-showcase"
	FeatureList       Type = "feature-list"
	Testimonials      Type = "testimonials"
	ReviewsGrid       Type = "reviews-grid"
	SocialProof       Type = "social-proof"
	IconGrid          Type = "icon-grid"
	BeforeAfter       Type = "before-after"
	ProductCategories Type = "product-categories"
	ImageText         Type = "image-text"
	AboutSection      Type = "about-section"
	ContactInfo       Type = "contact-info"
	Newsletter        Type = "newsletter"
	CTABanner         Type = "cta-banner"
	StatsCounter      Type = "stats-counter"
	ImageGallery      Type = "image-gallery"
	VideoEmbed        Type = "video-embed"
	Spacer            Type = "spacer"
	Divider           Type = "divider"
)

var knownTypes = []Type{
	HeroBanner, HeroSplit, HeroVideo, HeroMinimal,
	ProductGrid, ProductCarousel, ProductShowcase,
	FeatureList, Testimonials, ReviewsGrid, SocialProof, IconGrid,
	BeforeAfter, ProductCategories, ImageText, AboutSection,
	ContactInfo, Newsletter, CTABanner, StatsCounter,
	ImageGallery, VideoEmbed, Spacer, Divider,
}

// Types returns every known block type.
func Types() []Type {
	out := make([]Type, len(knownTypes))
	copy(out, knownTypes)
	return out
}

// Known reports whether t is one of the supported block types.
func (t Type) Known() bool {
	for _, k := range knownTypes {
		if k == t {
			return true
		}
	}
	return false
}

func (t Type) String() string {
	return string(t)
}
