package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"tapconnect/internal/catalog"
)

type navItem struct {
	Anchor string
	Label  string
}

var navItems = []navItem{
	{AnchorHow, "How it works"},
	{AnchorFeatures, "Features"},
	{AnchorPricing, "Pricing"},
	{AnchorDemos, "Demos"},
	{AnchorOrder, "Order"},
}

func TopBar(c *catalog.Catalog) g.Node {
	return Header(
		Class("sticky top-0 z-40 backdrop-blur border-b border-white/10 bg-black/60"),
		Div(
			Class("max-w-6xl mx-auto px-4 h-16 flex items-center justify-between"),
			A(Href(hash(AnchorHome)), Class("tracking-widest font-semibold"), g.Text(c.Brand)),
			Nav(
				Class("hidden md:flex gap-8 text-sm text-white/80"),
				g.Group(g.Map(navItems, func(item navItem) g.Node {
					return A(Href(hash(item.Anchor)), Class("hover:text-white"), g.Text(item.Label))
				})),
			),
			A(
				Href(hash(AnchorOrder)),
				Class("hidden md:inline-flex rounded-xl bg-white text-black px-4 py-2 font-medium"),
				g.Text("Get yours"),
			),
		),
	)
}

func Hero(c *catalog.Catalog) g.Node {
	return Section(
		ID(AnchorHome),
		Class("relative"),
		Div(
			Class("relative hero-parallax"),
			Img(Src(c.HeroImage), Alt("NFC tap hero"), Class("w-full h-[62vh] object-cover opacity-70")),
			Div(Class("absolute inset-0 bg-gradient-to-t from-black via-black/30 to-transparent")),
		),
		Div(
			Class("absolute inset-0 flex items-end"),
			Div(
				Class("max-w-6xl mx-auto px-4 pb-12"),
				H1(Class("text-4xl md:text-6xl font-semibold"), g.Text(c.Tagline)),
				P(Class("text-white/80 text-lg mt-3 max-w-2xl"), g.Text(c.Subtext)),
				Div(
					Class("flex gap-3 mt-6"),
					primaryLink(hash(AnchorOrder), "Get your card"),
					outlineLink(hash(AnchorDemos), "See demo"),
				),
				P(Class("text-white/50 text-sm mt-6"), g.Textf("Based in %s", c.Location)),
			),
		),
	)
}
