package domain

// Field identifies one input of the order form.
type Field string

const (
	FieldName      Field = "name"
	FieldBusiness  Field = "business"
	FieldEmail     Field = "email"
	FieldPhone     Field = "phone"
	FieldInstagram Field = "instagram"
	FieldTikTok    Field = "tiktok"
	FieldWebsite   Field = "website"
	FieldColor     Field = "color"
	FieldPlan      Field = "plan"
	FieldNotes     Field = "notes"
)

var fields = []Field{
	FieldName,
	FieldBusiness,
	FieldEmail,
	FieldPhone,
	FieldInstagram,
	FieldTikTok,
	FieldWebsite,
	FieldColor,
	FieldPlan,
	FieldNotes,
}

// Fields returns every form field in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

func ParseField(s string) (Field, bool) {
	for _, f := range fields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// OrderDraft is the in-progress order a visitor is filling in.
type OrderDraft struct {
	Name      string `json:"name"`
	Business  string `json:"business"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Instagram string `json:"instagram"`
	TikTok    string `json:"tiktok"`
	Website   string `json:"website"`
	Color     string `json:"color"`
	Plan      string `json:"plan"`
	Notes     string `json:"notes"`
}

func NewDraft(defaultColor, defaultPlan string) OrderDraft {
	return OrderDraft{
		Color: defaultColor,
		Plan:  defaultPlan,
	}
}

// With returns a copy of d with exactly one field replaced. Unknown fields
// leave the copy unchanged.
func (d OrderDraft) With(f Field, value string) OrderDraft {
	switch f {
	case FieldName:
		d.Name = value
	case FieldBusiness:
		d.Business = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldInstagram:
		d.Instagram = value
	case FieldTikTok:
		d.TikTok = value
	case FieldWebsite:
		d.Website = value
	case FieldColor:
		d.Color = value
	case FieldPlan:
		d.Plan = value
	case FieldNotes:
		d.Notes = value
	}
	return d
}

func (d OrderDraft) Get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldBusiness:
		return d.Business
	case FieldEmail:
		return d.Email
	case FieldPhone:
		return d.Phone
	case FieldInstagram:
		return d.Instagram
	case FieldTikTok:
		return d.TikTok
	case FieldWebsite:
		return d.Website
	case FieldColor:
		return d.Color
	case FieldPlan:
		return d.Plan
	case FieldNotes:
		return d.Notes
	}
	return ""
}
