package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"tapconnect/internal/motion"
)

type PageConfig struct {
	Title       string
	Description string
}

const heroParallaxCSS = ".hero-parallax{animation:hero-parallax linear both;animation-timeline:scroll(root);}"

func Layout(config PageConfig, content ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Script(Src("https://cdn.tailwindcss.com")),
				StyleEl(g.Raw(motion.Keyframes("hero-parallax", 12)+heroParallaxCSS)),
			),
			Body(
				Main(
					Class("min-h-screen bg-black text-white selection:bg-white selection:text-black"),
					g.Group(content),
				),
			),
		),
	})
}

func section(id string, children ...g.Node) g.Node {
	return Section(ID(id), Class("max-w-6xl mx-auto px-4 py-16"), g.Group(children))
}

func card(class string, children ...g.Node) g.Node {
	return Div(Class("rounded-3xl border border-white/10 bg-white/[0.03] "+class), g.Group(children))
}

func heading(text string) g.Node {
	return H2(Class("text-3xl font-semibold"), g.Text(text))
}

func primaryLink(href, text string) g.Node {
	return A(Href(href), Class("rounded-xl bg-white text-black px-5 py-3 font-medium"), g.Text(text))
}

func outlineLink(href, text string) g.Node {
	return A(Href(href), Class("rounded-xl border border-white/20 px-5 py-3"), g.Text(text))
}

func mailto(address string) string {
	return "mailto:" + address
}
