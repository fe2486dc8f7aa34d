package web

// In-page anchor ids. Nav links, buttons and external links jump to these, so
// they must not change.
const (
	AnchorHome         = "home"
	AnchorHow          = "how"
	AnchorFeatures     = "features"
	AnchorCards        = "cards"
	AnchorPricing      = "pricing"
	AnchorDemos        = "demos"
	AnchorOrder        = "order"
	AnchorTestimonials = "testimonials"
	AnchorAbout        = "about"
	AnchorContact      = "contact"
)

func Anchors() []string {
	return []string{
		AnchorHome,
		AnchorHow,
		AnchorFeatures,
		AnchorCards,
		AnchorPricing,
		AnchorDemos,
		AnchorOrder,
		AnchorTestimonials,
		AnchorAbout,
		AnchorContact,
	}
}

func hash(anchor string) string {
	return "#" + anchor
}
