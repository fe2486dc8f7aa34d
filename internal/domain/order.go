package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order is a delivered draft as recorded by the order store.
type Order struct {
	ID        uint
	Reference string
	Name      string
	Business  string
	Email     string
	Phone     string
	Instagram string
	TikTok    string
	Website   string
	Color     string
	Plan      string
	Notes     string
	Status    string
	CreatedAt time.Time
}

const (
	OrderStatusReceived  = "RECEIVED"
	OrderStatusContacted = "CONTACTED"
	OrderStatusCanceled  = "CANCELED"
)

// NewOrderFromDraft records d under reference. An empty reference gets a
// fresh one.
func NewOrderFromDraft(reference string, d OrderDraft, now time.Time) Order {
	if reference == "" {
		reference = uuid.NewString()
	}
	return Order{
		Reference: reference,
		Name:      d.Name,
		Business:  d.Business,
		Email:     d.Email,
		Phone:     d.Phone,
		Instagram: d.Instagram,
		TikTok:    d.TikTok,
		Website:   d.Website,
		Color:     d.Color,
		Plan:      d.Plan,
		Notes:     d.Notes,
		Status:    OrderStatusReceived,
		CreatedAt: now.UTC(),
	}
}

func (o Order) Draft() OrderDraft {
	return OrderDraft{
		Name:      o.Name,
		Business:  o.Business,
		Email:     o.Email,
		Phone:     o.Phone,
		Instagram: o.Instagram,
		TikTok:    o.TikTok,
		Website:   o.Website,
		Color:     o.Color,
		Plan:      o.Plan,
		Notes:     o.Notes,
	}
}
