// Package catalog holds the read-only marketing content and the choices
// (card styles, plans) offered on the landing page.
package catalog

import (
	"fmt"
	"strings"

	apperrors "tapconnect/internal/errors"
)

type DemoProfile struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type CardStyle struct {
	Title string `yaml:"title"`
	Image string `yaml:"image"`
}

type Step struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
	Image string `yaml:"image"`
}

type PricingTier struct {
	Plan    string   `yaml:"plan"`
	Price   int      `yaml:"price"`
	Period  string   `yaml:"period"`
	Bullets []string `yaml:"bullets"`
	CTA     string   `yaml:"cta"`
	Popular bool     `yaml:"popular"`
}

type Testimonial struct {
	Name  string `yaml:"name"`
	Quote string `yaml:"quote"`
}

// Catalog is built once at startup and shared by pointer. Callers must not
// mutate it after construction.
type Catalog struct {
	Brand            string        `yaml:"brand"`
	Tagline          string        `yaml:"tagline"`
	Subtext          string        `yaml:"subtext"`
	ContactEmail     string        `yaml:"contactEmail"`
	ContactPhone     string        `yaml:"contactPhone"`
	Location         string        `yaml:"location"`
	HeroImage        string        `yaml:"heroImage"`
	FeatureIcon      string        `yaml:"featureIcon"`
	DemoImage        string        `yaml:"demoImage"`
	TestimonialImage string        `yaml:"testimonialImage"`
	DemoProfiles     []DemoProfile `yaml:"demoProfiles"`
	CardStyles       []CardStyle   `yaml:"cardStyles"`
	Features         []string      `yaml:"features"`
	Steps            []Step        `yaml:"steps"`
	Pricing          []PricingTier `yaml:"pricing"`
	Testimonials     []Testimonial `yaml:"testimonials"`
}

func (c *Catalog) StyleNames() []string {
	names := make([]string, 0, len(c.CardStyles))
	for _, s := range c.CardStyles {
		names = append(names, s.Title)
	}
	return names
}

func (c *Catalog) PlanNames() []string {
	names := make([]string, 0, len(c.Pricing))
	for _, p := range c.Pricing {
		names = append(names, p.Plan)
	}
	return names
}

func (c *Catalog) HasStyle(name string) bool {
	for _, s := range c.CardStyles {
		if s.Title == name {
			return true
		}
	}
	return false
}

func (c *Catalog) HasPlan(name string) bool {
	for _, p := range c.Pricing {
		if p.Plan == name {
			return true
		}
	}
	return false
}

// DefaultStyle is the first listed card style.
func (c *Catalog) DefaultStyle() string {
	if len(c.CardStyles) == 0 {
		return ""
	}
	return c.CardStyles[0].Title
}

// FeaturedPlan is the tier marked popular, or the first tier when none is.
func (c *Catalog) FeaturedPlan() string {
	for _, p := range c.Pricing {
		if p.Popular {
			return p.Plan
		}
	}
	if len(c.Pricing) == 0 {
		return ""
	}
	return c.Pricing[0].Plan
}

func (c *Catalog) IsFeatured(plan string) bool {
	return plan != "" && plan == c.FeaturedPlan()
}

func (c *Catalog) Validate() error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(c.Brand) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "brand",
			Message: "brand is required",
		})
	}

	if len(c.CardStyles) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "cardStyles",
			Message: "at least one card style is required",
		})
	}
	seen := make(map[string]bool, len(c.CardStyles))
	for i, s := range c.CardStyles {
		field := fmt.Sprintf("cardStyles[%d].title", i)
		if s.Title == "" {
			details = append(details, apperrors.ValidationDetail{Field: field, Message: "title is required"})
			continue
		}
		if seen[s.Title] {
			details = append(details, apperrors.ValidationDetail{Field: field, Message: "title must not be duplicated"})
		}
		seen[s.Title] = true
	}

	if len(c.Pricing) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "pricing",
			Message: "at least one pricing tier is required",
		})
	}
	seen = make(map[string]bool, len(c.Pricing))
	popular := 0
	for i, p := range c.Pricing {
		field := fmt.Sprintf("pricing[%d].plan", i)
		if p.Popular {
			popular++
		}
		if p.Plan == "" {
			details = append(details, apperrors.ValidationDetail{Field: field, Message: "plan is required"})
			continue
		}
		if seen[p.Plan] {
			details = append(details, apperrors.ValidationDetail{Field: field, Message: "plan must not be duplicated"})
		}
		seen[p.Plan] = true
	}
	if popular > 1 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "pricing",
			Message: "at most one pricing tier can be popular",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("invalid catalog", details...)
	}
	return nil
}
