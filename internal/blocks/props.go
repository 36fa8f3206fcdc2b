package blocks

import "github.com/alexisbeaulieu97/storefront/internal/theme"

// Props is the typed configuration of one block. Every block type has its
// own implementation; unknown types decode to *Unknown.
type Props interface {
	BlockType() Type
	ThemeOverride() theme.Override
}

// Style holds the block-level values that win over page and store themes.
// It is embedded in every props struct, so its keys sit beside the block's own.
type Style struct {
	PrimaryColor    string `json:"primaryColor,omitempty"`
	AccentColor     string `json:"accentColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	HeadingFont     string `json:"headingFont,omitempty"`
	BodyFont        string `json:"bodyFont,omitempty"`
}

// ThemeOverride exposes the style as the first layer of the theme cascade.
func (s Style) ThemeOverride() theme.Override {
	return theme.Override{
		Primary:     s.PrimaryColor,
		Accent:      s.AccentColor,
		Text:        s.TextColor,
		Background:  s.BackgroundColor,
		HeadingFont: s.HeadingFont,
		BodyFont:    s.BodyFont,
	}
}

// Feature is one entry of feature-list and icon-grid blocks.
type Feature struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Review is one entry of testimonials and reviews-grid blocks.
type Review struct {
	Name    string `json:"name,omitempty"`
	Rating  int    `json:"rating,omitempty"`
	Comment string `json:"comment,omitempty"`
	Avatar  Asset  `json:"avatar,omitempty"`
	Date    string `json:"date,omitempty"`
}

// Logo is one entry of a social-proof block.
type Logo struct {
	URL  Asset  `json:"url,omitempty"`
	Name string `json:"name,omitempty"`
}

// Category is one entry of a product-categories block.
type Category struct {
	Name      string `json:"name,omitempty"`
	Image     Asset  `json:"image,omitempty"`
	ItemCount int    `json:"itemCount,omitempty"`
}

// Stat is one counter of a stats-counter block.
type Stat struct {
	Number string `json:"number,omitempty"`
	Label  string `json:"label,omitempty"`
}

type HeroBannerProps struct {
	Style
	Title               string `json:"title,omitempty"`
	Subtitle            string `json:"subtitle,omitempty"`
	ButtonText          string `json:"buttonText,omitempty"`
	ButtonURL           string `json:"buttonUrl,omitempty"`
	BackgroundImage     Asset  `json:"backgroundImage,omitempty"`
	Overlay             bool   `json:"overlay,omitempty"`
	SecondaryButton     bool   `json:"secondaryButton,omitempty"`
	SecondaryButtonText string `json:"secondaryButtonText,omitempty"`
}

type HeroSplitProps struct {
	Style
	Title         string `json:"title,omitempty"`
	Subtitle      string `json:"subtitle,omitempty"`
	ButtonText    string `json:"buttonText,omitempty"`
	ButtonURL     string `json:"buttonUrl,omitempty"`
	Image         Asset  `json:"image,omitempty"`
	ImagePosition string `json:"imagePosition,omitempty"`
}

type HeroVideoProps struct {
	Style
	Title      string `json:"title,omitempty"`
	Subtitle   string `json:"subtitle,omitempty"`
	ButtonText string `json:"buttonText,omitempty"`
	ButtonURL  string `json:"buttonUrl,omitempty"`
	VideoURL   Asset  `json:"videoUrl,omitempty"`
	Autoplay   bool   `json:"autoplay,omitempty"`
	Muted      bool   `json:"muted,omitempty"`
}

type HeroMinimalProps struct {
	Style
	Title      string `json:"title,omitempty"`
	Subtitle   string `json:"subtitle,omitempty"`
	Alignment  string `json:"alignment,omitempty"`
	ShowButton bool   `json:"showButton,omitempty"`
	ButtonText string `json:"buttonText,omitempty"`
	ButtonURL  string `json:"buttonUrl,omitempty"`
}

type ProductGridProps struct {
	Style
	Title            string   `json:"title,omitempty"`
	Columns          int      `json:"columns,omitempty"`
	ShowPrice        bool     `json:"showPrice,omitempty"`
	ShowRating       bool     `json:"showRating,omitempty"`
	MaxProducts      int      `json:"maxProducts,omitempty"`
	SelectedProducts []string `json:"selectedProducts,omitempty"`
}

type ProductCarouselProps struct {
	Style
	Title            string   `json:"title,omitempty"`
	Autoplay         bool     `json:"autoplay,omitempty"`
	ShowDots         bool     `json:"showDots,omitempty"`
	SlidesToShow     int      `json:"slidesToShow,omitempty"`
	SelectedProducts []string `json:"selectedProducts,omitempty"`
}

type ProductShowcaseProps struct {
	Style
	Title           string `json:"title,omitempty"`
	FeaturedProduct string `json:"featuredProduct,omitempty"`
	ShowPrice       bool   `json:"showPrice,omitempty"`
	ShowDescription bool   `json:"showDescription,omitempty"`
	ButtonText      string `json:"buttonText,omitempty"`
}

type FeatureListProps struct {
	Style
	Title    string    `json:"title,omitempty"`
	Subtitle string    `json:"subtitle,omitempty"`
	Features []Feature `json:"features,omitempty"`
}

type TestimonialsProps struct {
	Style
	Title        string   `json:"title,omitempty"`
	Testimonials []Review `json:"testimonials,omitempty"`
}

type ReviewsGridProps struct {
	Style
	Title   string   `json:"title,omitempty"`
	Reviews []Review `json:"reviews,omitempty"`
}

type SocialProofProps struct {
	Style
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Logos    []Logo `json:"logos,omitempty"`
}

type IconGridProps struct {
	Style
	Title    string    `json:"title,omitempty"`
	Columns  int       `json:"columns,omitempty"`
	Features []Feature `json:"features,omitempty"`
}

type BeforeAfterProps struct {
	Style
	Title       string `json:"title,omitempty"`
	BeforeImage Asset  `json:"beforeImage,omitempty"`
	AfterImage  Asset  `json:"afterImage,omitempty"`
	BeforeLabel string `json:"beforeLabel,omitempty"`
	AfterLabel  string `json:"afterLabel,omitempty"`
}

type ProductCategoriesProps struct {
	Style
	Title      string     `json:"title,omitempty"`
	Categories []Category `json:"categories,omitempty"`
}

type ImageTextProps struct {
	Style
	Title         string `json:"title,omitempty"`
	Content       string `json:"content,omitempty"`
	Image         Asset  `json:"image,omitempty"`
	ImagePosition string `json:"imagePosition,omitempty"`
	ButtonText    string `json:"buttonText,omitempty"`
	ButtonURL     string `json:"buttonUrl,omitempty"`
	ShowButton    bool   `json:"showButton,omitempty"`
}

type AboutSectionProps struct {
	Style
	Title         string `json:"title,omitempty"`
	Content       string `json:"content,omitempty"`
	Image         Asset  `json:"image,omitempty"`
	ImagePosition string `json:"imagePosition,omitempty"`
}

type ContactInfoProps struct {
	Style
	Title   string `json:"title,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Hours   string `json:"hours,omitempty"`
}

type NewsletterProps struct {
	Style
	Title       string `json:"title,omitempty"`
	Subtitle    string `json:"subtitle,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	ButtonText  string `json:"buttonText,omitempty"`
}

type CTABannerProps struct {
	Style
	Title      string `json:"title,omitempty"`
	Subtitle   string `json:"subtitle,omitempty"`
	ButtonText string `json:"buttonText,omitempty"`
	ButtonURL  string `json:"buttonUrl,omitempty"`
}

type StatsCounterProps struct {
	Style
	Title string `json:"title,omitempty"`
	Stats []Stat `json:"stats,omitempty"`
}

type ImageGalleryProps struct {
	Style
	Title    string  `json:"title,omitempty"`
	Columns  int     `json:"columns,omitempty"`
	Spacing  string  `json:"spacing,omitempty"`
	Lightbox bool    `json:"lightbox,omitempty"`
	Images   []Asset `json:"images,omitempty"`
}

type VideoEmbedProps struct {
	Style
	Title    string `json:"title,omitempty"`
	VideoURL Asset  `json:"videoUrl,omitempty"`
	Autoplay bool   `json:"autoplay,omitempty"`
	Controls bool   `json:"controls,omitempty"`
	Muted    bool   `json:"muted,omitempty"`
	Loop     bool   `json:"loop,omitempty"`
}

type SpacerProps struct {
	Style
	Height int `json:"height,omitempty"`
}

type DividerProps struct {
	Style
	LineStyle string `json:"style,omitempty"`
	Color     string `json:"color,omitempty"`
	Thickness int    `json:"thickness,omitempty"`
	Width     string `json:"width,omitempty"`
}

// Unknown keeps the raw props of a block type this build does not support.
type Unknown struct {
	Type Type
	Raw  map[string]any
}

func (HeroBannerProps) BlockType() Type        { return HeroBanner }
func (HeroSplitProps) BlockType() Type         { return HeroSplit }
func (HeroVideoProps) BlockType() Type         { return HeroVideo }
func (HeroMinimalProps) BlockType() Type       { return HeroMinimal }
func (ProductGridProps) BlockType() Type       { return ProductGrid }
func (ProductCarouselProps) BlockType() Type   { return ProductCarousel }
func (ProductShowcaseProps) BlockType() Type   { return ProductShowcase }
func (FeatureListProps) BlockType() Type       { return FeatureList }
func (TestimonialsProps) BlockType() Type      { return Testimonials }
func (ReviewsGridProps) BlockType() Type       { return ReviewsGrid }
func (SocialProofProps) BlockType() Type       { return SocialProof }
func (IconGridProps) BlockType() Type          { return IconGrid }
func (BeforeAfterProps) BlockType() Type       { return BeforeAfter }
func (ProductCategoriesProps) BlockType() Type { return ProductCategories }
func (ImageTextProps) BlockType() Type         { return ImageText }
func (AboutSectionProps) BlockType() Type      { return AboutSection }
func (ContactInfoProps) BlockType() Type       { return ContactInfo }
func (NewsletterProps) BlockType() Type        { return Newsletter }
func (CTABannerProps) BlockType() Type         { return CTABanner }
func (StatsCounterProps) BlockType() Type      { return StatsCounter }
func (ImageGalleryProps) BlockType() Type      { return ImageGallery }
func (VideoEmbedProps) BlockType() Type        { return VideoEmbed }
func (SpacerProps) BlockType() Type            { return Spacer }
func (DividerProps) BlockType() Type           { return Divider }

// BlockType returns the unrecognized type name.
func (u *Unknown) BlockType() Type { return u.Type }

// ThemeOverride is empty: unknown blocks never style anything.
func (u *Unknown) ThemeOverride() theme.Override { return theme.Override{} }

// newProps returns a zero props value for t, or nil when t is unknown.
func newProps(t Type) Props {
	switch t {
	case HeroBanner:
		return &HeroBannerProps{}
	case HeroSplit:
		return &HeroSplitProps{}
	case HeroVideo:
		return &HeroVideoProps{}
	case HeroMinimal:
		return &HeroMinimalProps{}
	case ProductGrid:
		return &ProductGridProps{}
	case ProductCarousel:
		return &ProductCarouselProps{}
	case ProductShowcase:
		return &ProductShowcaseProps{}
	case FeatureList:
		return &FeatureListProps{}
	case Testimonials:
		return &TestimonialsProps{}
	case ReviewsGrid:
		return &ReviewsGridProps{}
	case SocialProof:
		return &SocialProofProps{}
	case IconGrid:
		return &IconGridProps{}
	case BeforeAfter:
		return &BeforeAfterProps{}
	case ProductCategories:
		return &ProductCategoriesProps{}
	case ImageText:
		return &ImageTextProps{}
	case AboutSection:
		return &AboutSectionProps{}
	case ContactInfo:
		return &ContactInfoProps{}
	case Newsletter:
		return &NewsletterProps{}
	case CTABanner:
		return &CTABannerProps{}
	case StatsCounter:
		return &StatsCounterProps{}
	case ImageGallery:
		return &ImageGalleryProps{}
	case VideoEmbed:
		return &VideoEmbedProps{}
	case Spacer:
		return &SpacerProps{}
	case Divider:
		return &DividerProps{}
	}
	return nil
}
