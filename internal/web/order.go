package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"tapconnect/internal/catalog"
	"tapconnect/internal/domain"
	"tapconnect/internal/orderform"
)

const (
	OrderAction = "/order"

	inputClass = "mt-1 w-full rounded-xl bg-black/40 border border-white/15 px-4 py-3 outline-none focus:border-white/40"
)

type textInput struct {
	Field       domain.Field
	Label       string
	Type        string
	Placeholder string
}

var textInputs = []textInput{
	{domain.FieldName, "Your name", "text", "Jane Doe"},
	{domain.FieldBusiness, "Business name", "text", "CrystalGlow"},
	{domain.FieldEmail, "Email", "email", "you@domain.com"},
	{domain.FieldPhone, "Phone", "tel", "+1 281-000-0000"},
	{domain.FieldInstagram, "Instagram", "text", "@handle"},
	{domain.FieldTikTok, "TikTok", "text", "@handle"},
	{domain.FieldWebsite, "Website", "url", "https://..."},
}

func requiredField(f domain.Field) bool {
	return f == domain.FieldName || f == domain.FieldEmail
}

// OrderSection renders the order form for one visitor's snapshot. Once the
// order is confirmed the inputs are disabled and the confirmation is shown.
func OrderSection(c *catalog.Catalog, form orderform.Snapshot) g.Node {
	confirmed := form.Confirmed()

	return section(AnchorOrder,
		heading("Customize & order"),
		P(Class("text-white/70 mt-2"), g.Text("Tell us your details and we’ll build your landing page and link your card.")),
		g.El("form",
			g.Attr("method", "post"),
			g.Attr("action", OrderAction),
			Class("mt-8"),
			g.El("fieldset",
				Class("grid md:grid-cols-2 gap-4"),
				g.If(confirmed, Disabled()),
				g.Group(g.Map(textInputs, func(in textInput) g.Node {
					return Label(
						Class("block"),
						Span(Class("text-sm text-white/80"), g.Text(in.Label)),
						Input(
							Type(in.Type),
							Name(string(in.Field)),
							Placeholder(in.Placeholder),
							Value(form.Draft.Get(in.Field)),
							g.If(requiredField(in.Field), Required()),
							Class(inputClass),
						),
						fieldError(form, in.Field),
					)
				})),
				Label(
					Class("block"),
					Span(Class("text-sm text-white/80"), g.Text("Card color")),
					Select(
						Name(string(domain.FieldColor)),
						Class(inputClass),
						g.Group(g.Map(c.StyleNames(), func(name string) g.Node {
							return option(name, form.Draft.Color)
						})),
					),
					fieldError(form, domain.FieldColor),
				),
				Label(
					Class("block"),
					Span(Class("text-sm text-white/80"), g.Text("Plan")),
					Select(
						Name(string(domain.FieldPlan)),
						Class(inputClass),
						g.Group(g.Map(c.PlanNames(), func(name string) g.Node {
							return option(name, form.Draft.Plan)
						})),
					),
					fieldError(form, domain.FieldPlan),
				),
				Label(
					Class("md:col-span-2 block"),
					Span(Class("text-sm text-white/80"), g.Text("Notes (optional)")),
					Textarea(
						Name(string(domain.FieldNotes)),
						g.Attr("rows", "4"),
						Placeholder("Logos, brand colors, special requests..."),
						Class(inputClass),
						g.Text(form.Draft.Notes),
					),
				),
				Div(
					Class("md:col-span-2 flex gap-3"),
					Button(Type("submit"), Class("rounded-xl bg-white text-black px-5 py-3 font-medium"), g.Text("Submit order")),
					outlineLink(mailto(c.ContactEmail), "Email us"),
				),
			),
			orderStatus(form),
		),
	)
}

func option(name, selected string) g.Node {
	return Option(Value(name), g.If(name == selected, Selected()), g.Text(name))
}

func fieldError(form orderform.Snapshot, f domain.Field) g.Node {
	msg := form.ErrorFor(f)
	if msg == "" {
		return nil
	}
	return Span(Class("block mt-1 text-sm text-red-400"), g.Text(msg))
}

func orderStatus(form orderform.Snapshot) g.Node {
	switch form.State {
	case orderform.StateConfirmed:
		return Div(
			Class("mt-4 text-sm text-white/80"),
			g.Text("✅ Thanks! We received your details. We’ll reach out at "),
			Span(Class("font-medium"), g.Text(form.Draft.Email)),
			g.Text(" soon."),
		)
	case orderform.StateDeliveryFailed:
		return Div(
			Class("mt-4 text-sm text-amber-300"),
			g.Text("We couldn’t send your order just now. Your details are still here, please submit again."),
		)
	default:
		return nil
	}
}
