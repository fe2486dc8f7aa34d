package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"tapconnect/internal/catalog"
)

func HowItWorks(c *catalog.Catalog) g.Node {
	return section(AnchorHow,
		heading("How it works"),
		Div(
			Class("grid md:grid-cols-3 gap-6 mt-8"),
			g.Group(g.Map(c.Steps, func(s catalog.Step) g.Node {
				return card("overflow-hidden",
					Img(Src(s.Image), Alt(s.Title), Class("w-full h-40 object-cover")),
					Div(
						Class("p-6"),
						H3(Class("text-xl font-medium"), g.Text(s.Title)),
						P(Class("text-white/70 mt-2"), g.Text(s.Text)),
					),
				)
			})),
		),
	)
}

func Features(c *catalog.Catalog) g.Node {
	return section(AnchorFeatures,
		heading("Why "+c.Brand),
		Div(
			Class("grid md:grid-cols-2 gap-6 mt-8"),
			g.Group(g.Map(c.Features, func(f string) g.Node {
				return card("p-6 flex items-start gap-4",
					Img(Src(c.FeatureIcon), Alt("feature icon"), Class("w-12 h-12 rounded-xl object-cover")),
					P(Class("text-white/80"), g.Text(f)),
				)
			})),
		),
	)
}

func CardStyles(c *catalog.Catalog) g.Node {
	return section(AnchorCards,
		heading("Card styles"),
		Div(
			Class("grid md:grid-cols-3 gap-4 mt-8"),
			g.Group(g.Map(c.CardStyles, func(s catalog.CardStyle) g.Node {
				return Div(
					Class("group relative rounded-3xl overflow-hidden border border-white/10"),
					Img(Src(s.Image), Alt(s.Title), Class("w-full h-64 object-cover transition-transform duration-300 group-hover:scale-105")),
					Div(Class("absolute inset-0 bg-gradient-to-t from-black/80 via-black/10 to-transparent")),
					Div(
						Class("absolute bottom-3 left-4 right-4 flex items-center justify-between"),
						Div(Class("text-lg font-medium"), g.Text(s.Title)),
						A(Href(hash(AnchorOrder)), Class("rounded-xl bg-white text-black px-3 py-2 text-sm font-medium"), g.Text("Customize")),
					),
				)
			})),
		),
	)
}

func Pricing(c *catalog.Catalog) g.Node {
	return section(AnchorPricing,
		heading("Pricing"),
		Div(
			Class("grid md:grid-cols-3 gap-6 mt-8"),
			g.Group(g.Map(c.Pricing, func(t catalog.PricingTier) g.Node {
				featured := c.IsFeatured(t.Plan)
				class := "p-6 hover:bg-white/[0.06] transition-colors"
				if featured {
					class = "p-6 ring-1 ring-white/30 hover:bg-white/[0.06] transition-colors"
				}
				return card(class,
					Div(
						Class("flex items-center justify-between"),
						H3(Class("text-2xl font-semibold"), g.Text(t.Plan)),
						g.If(featured, Span(Class("text-xs px-2 py-1 rounded-full bg-white/10"), g.Text("Most popular"))),
					),
					Div(
						Class("mt-3 text-4xl font-semibold"),
						g.Textf("$%d", t.Price),
						Span(Class("text-base text-white/60"), g.Text("/"+t.Period)),
					),
					Ul(
						Class("mt-4 space-y-2 text-white/80"),
						g.Group(g.Map(t.Bullets, func(b string) g.Node {
							return Li(g.Text("• " + b))
						})),
					),
					A(Href(hash(AnchorOrder)), Class("mt-6 inline-flex rounded-xl bg-white text-black px-4 py-2 font-medium"), g.Text(t.CTA)),
				)
			})),
		),
	)
}

// Demos links to example profiles. Profile URLs are opaque and rendered as given.
func Demos(c *catalog.Catalog) g.Node {
	return section(AnchorDemos,
		heading("Live demos"),
		P(Class("text-white/70 mt-2"), g.Text("See what your profile looks like when someone taps your card.")),
		Div(
			Class("grid md:grid-cols-3 gap-4 mt-8"),
			g.Group(g.Map(c.DemoProfiles, func(d catalog.DemoProfile) g.Node {
				return card("overflow-hidden",
					Img(Src(c.DemoImage), Alt("Demo preview"), Class("w-full h-40 object-cover")),
					Div(
						Class("p-6"),
						Div(Class("text-lg font-medium"), g.Text(d.Name)),
						A(Href(d.URL), Class("inline-block mt-3 rounded-xl border border-white/20 px-4 py-2 hover:border-white/40"), g.Text("Open demo")),
					),
				)
			})),
		),
	)
}

func Testimonials(c *catalog.Catalog) g.Node {
	return section(AnchorTestimonials,
		heading("What customers say"),
		Div(
			Class("grid md:grid-cols-3 gap-6 mt-8"),
			g.Group(g.Map(c.Testimonials, func(t catalog.Testimonial) g.Node {
				return g.El("figure",
					Class("rounded-3xl border border-white/10 p-6 bg-white/5"),
					Img(Src(c.TestimonialImage), Alt("happy client"), Class("w-full h-40 object-cover rounded-2xl mb-4")),
					g.El("blockquote", Class("text-lg"), g.Text("“"+t.Quote+"”")),
					g.El("figcaption", Class("text-white/60 mt-3"), g.Text("— "+t.Name)),
				)
			})),
		),
	)
}

func About(c *catalog.Catalog) g.Node {
	return section(AnchorAbout,
		heading("About "+c.Brand),
		Div(
			Class("grid md:grid-cols-3 gap-6 mt-8"),
			card("p-6 md:col-span-2",
				P(
					Class("text-white/80 leading-relaxed"),
					g.Textf("%s helps small businesses make unforgettable first impressions. "+
						"With NFC-powered cards and beautiful profile pages, your details are always one tap away. "+
						"No apps, no paper. Just instant connections.", c.Brand),
				),
			),
			card("p-6",
				Div(
					Class("text-sm text-white/80"),
					Div(
						Span(Class("text-white/60"), g.Text("Email: ")),
						A(Class("hover:text-white"), Href(mailto(c.ContactEmail)), g.Text(c.ContactEmail)),
					),
					Div(Class("mt-1"), Span(Class("text-white/60"), g.Text("Phone: ")), g.Text(c.ContactPhone)),
					Div(Class("mt-1"), Span(Class("text-white/60"), g.Text("Location: ")), g.Text(c.Location)),
				),
			),
		),
	)
}

func Contact(c *catalog.Catalog) g.Node {
	return section(AnchorContact,
		card("p-6",
			H2(Class("text-2xl font-semibold"), g.Text("Questions? Let’s talk.")),
			P(Class("text-white/70 mt-2"), g.Text("We’ll help you choose the right card and setup.")),
			Div(
				Class("mt-4 flex flex-wrap gap-3"),
				primaryLink(mailto(c.ContactEmail), "Email us"),
				outlineLink(hash(AnchorOrder), "Customize & order"),
			),
		),
	)
}

func SiteFooter(c *catalog.Catalog, year int) g.Node {
	return Footer(
		Class("border-t border-white/10 py-10 text-center text-sm text-white/60"),
		Div(g.Textf("%s • %s", c.Brand, c.Location)),
		Div(Class("mt-1"), g.Textf("© %d %s. All rights reserved.", year, c.Brand)),
	)
}
