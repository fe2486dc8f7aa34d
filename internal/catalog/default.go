package catalog

const unsplash = "https://images.unsplash.com/"

// Default returns the built-in TapConnect content. Each call returns a fresh
// value so callers cannot share mutations by accident.
func Default() *Catalog {
	return &Catalog{
		Brand:            "TapConnect",
		Tagline:          "Your business card. Reinvented.",
		Subtext:          "Share your contact, socials, and website with one tap — powered by smart NFC cards.",
		ContactEmail:     "hello@tapconnect.demo",
		ContactPhone:     "+1 (281) 555‑0199",
		Location:         "Houston, TX",
		HeroImage:        unsplash + "photo-1517336714731-489689fd1ca8?q=80&w=2000&auto=format&fit=crop",
		FeatureIcon:      unsplash + "photo-1614306172084-88a8b1a54f56?q=80&w=300&auto=format&fit=crop",
		DemoImage:        unsplash + "photo-1556745757-8d76bdb6984b?q=80&w=1200&auto=format&fit=crop",
		TestimonialImage: unsplash + "photo-1551836022-d5d88e9218df?q=80&w=1200&auto=format&fit=crop",
		DemoProfiles: []DemoProfile{
			{Name: "CrystalGlow", URL: "/demo/crystalglow"},
			{Name: "John Doe Photography", URL: "/demo/johndoe"},
			{Name: "Houston Fit Coach", URL: "/demo/fitcoach"},
		},
		CardStyles: []CardStyle{
			{Title: "Matte Black", Image: unsplash + "photo-1545235617-9465d2a55698?q=80&w=1400&auto=format&fit=crop"},
			{Title: "Frosted Clear", Image: unsplash + "photo-1496024840928-4c417adf211d?q=80&w=1400&auto=format&fit=crop"},
			{Title: "Gold Foil", Image: unsplash + "photo-1516542076529-1ea3854896e1?q=80&w=1400&auto=format&fit=crop"},
		},
		Features: []string{
			"One‑tap contact sharing (NFC + QR)",
			"Customizable profile page",
			"Social links + website integration",
			"Instant ‘Save Contact’ (.vcf)",
			"Works on iPhone & Android",
			"Eco‑friendly (no paper)",
		},
		Steps: []Step{
			{Title: "Tap", Text: "Your card has a tiny NFC chip. Hold it near any phone.", Image: unsplash + "photo-1516387938699-a93567ec168e?q=80&w=1200&auto=format&fit=crop"},
			{Title: "Connect", Text: "The phone opens your profile instantly — no app needed.", Image: unsplash + "photo-1555626906-4a13bb13c7b6?q=80&w=1200&auto=format&fit=crop"},
			{Title: "Grow", Text: "They save your contact or follow your socials in one tap.", Image: unsplash + "photo-1556157382-97eda2d62296?q=80&w=1200&auto=format&fit=crop"},
		},
		Pricing: []PricingTier{
			{Plan: "Basic", Price: 45, Period: "one‑time", Bullets: []string{"1 custom NFC card", "Hosted profile page", "QR fallback"}, CTA: "Get Basic"},
			{Plan: "Pro", Price: 75, Period: "one‑time", Bullets: []string{"Premium NFC card", "Hosted profile + custom domain", "Priority support"}, CTA: "Get Pro", Popular: true},
			{Plan: "Team", Price: 250, Period: "bundle", Bullets: []string{"5 NFC cards", "Team landing + profiles", "Bulk setup"}, CTA: "Get Team"},
		},
		Testimonials: []Testimonial{
			{Name: "Brittany", Quote: "I made new clients the first week. Everyone remembers the tap!"},
			{Name: "Omar", Quote: "No more paper cards. Looks premium and works instantly."},
			{Name: "Jade", Quote: "Setup took minutes. The landing page is clean and professional."},
		},
	}
}
