// Package web renders the landing page with gomponents. Rendering is a pure
// function of the catalog, the visitor's order snapshot and the year.
package web

import (
	"io"

	g "maragu.dev/gomponents"

	"tapconnect/internal/catalog"
	"tapconnect/internal/orderform"
)

type View struct {
	Catalog *catalog.Catalog
	Order   orderform.Snapshot
	Year    int
}

func Page(v View) g.Node {
	c := v.Catalog
	return Layout(
		PageConfig{
			Title:       c.Brand + " | " + c.Tagline,
			Description: c.Subtext,
		},
		TopBar(c),
		Hero(c),
		HowItWorks(c),
		Features(c),
		CardStyles(c),
		Pricing(c),
		Demos(c),
		OrderSection(c, v.Order),
		Testimonials(c),
		About(c),
		Contact(c),
		SiteFooter(c, v.Year),
	)
}

func Render(w io.Writer, v View) error {
	return Page(v).Render(w)
}
