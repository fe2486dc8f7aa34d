// Package orderform implements the order form: a draft edited field by field,
// a required-field gate and a one-way hand-off to a delivery sink.
//
// A form moves Editing -> Pending -> Confirmed. A failed delivery moves it to
// DeliveryFailed with the draft intact; editing or submitting again retries.
// Confirmed is terminal.
package orderform

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"tapconnect/internal/catalog"
	"tapconnect/internal/domain"
	apperrors "tapconnect/internal/errors"
)

type State string

const (
	StateEditing        State = "EDITING"
	StatePending        State = "PENDING"
	StateConfirmed      State = "CONFIRMED"
	StateDeliveryFailed State = "DELIVERY_FAILED"
)

// Sink receives a submitted draft. It is called once per accepted submit,
// synchronously, with the draft exactly as the visitor left it. The reference
// is stable across retries of an unchanged draft.
type Sink interface {
	Deliver(ctx context.Context, reference string, draft domain.OrderDraft) error
}

type SinkFunc func(ctx context.Context, reference string, draft domain.OrderDraft) error

func (f SinkFunc) Deliver(ctx context.Context, reference string, draft domain.OrderDraft) error {
	return f(ctx, reference, draft)
}

type Snapshot struct {
	Draft  domain.OrderDraft
	State  State
	Errors []FieldError
}

func (s Snapshot) Confirmed() bool {
	return s.State == StateConfirmed
}

// ErrorFor returns the validation message attached to f by the last submit.
func (s Snapshot) ErrorFor(f domain.Field) string {
	msg, _ := ValidationResult{Errors: s.Errors}.For(f)
	return msg
}

// Form is safe for concurrent use. The lock is released while the sink runs;
// the Pending state keeps a second submit or an edit from racing it.
type Form struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	sink    Sink
	draft   domain.OrderDraft
	state   State
	errors  []FieldError

	// reference identifies the current submission. It is issued on the first
	// submit and dropped when the draft changes.
	reference string
}

func New(c *catalog.Catalog, sink Sink) *Form {
	return &Form{
		catalog: c,
		sink:    sink,
		draft:   domain.NewDraft(c.DefaultStyle(), c.FeaturedPlan()),
		state:   StateEditing,
	}
}

// UpdateField replaces one field of the draft. Values are stored verbatim.
// A rejected value leaves the draft alone and is reported on the snapshot.
func (f *Form) UpdateField(field domain.Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StatePending:
		return apperrors.NewConflictError("order submission in progress")
	case StateConfirmed:
		return apperrors.NewConflictError("order already submitted")
	}

	if _, ok := domain.ParseField(string(field)); !ok {
		return apperrors.NewValidationError("unknown field", apperrors.ValidationDetail{
			Field:   string(field),
			Message: fmt.Sprintf("%q is not an order field", field),
		})
	}

	if msg := f.catalogViolation(field, value); msg != "" {
		f.errors = append(dropField(f.errors, field), FieldError{Field: field, Message: msg})
		return apperrors.NewValidationError("invalid "+string(field), apperrors.ValidationDetail{
			Field:   string(field),
			Message: msg,
		})
	}

	if f.draft.Get(field) != value {
		f.reference = ""
	}
	f.draft = f.draft.With(field, value)
	f.errors = dropField(f.errors, field)
	f.state = StateEditing
	return nil
}

func (f *Form) catalogViolation(field domain.Field, value string) string {
	switch {
	case field == domain.FieldColor && !f.catalog.HasStyle(value):
		return "color must be one of the offered card styles"
	case field == domain.FieldPlan && !f.catalog.HasPlan(value):
		return "plan must be one of the offered plans"
	}
	return ""
}

// Submit validates the draft and hands it to the sink. Invalid drafts leave the
// state unchanged and never reach the sink.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	switch f.state {
	case StatePending:
		f.mu.Unlock()
		return apperrors.NewConflictError("order submission in progress")
	case StateConfirmed:
		f.mu.Unlock()
		return apperrors.NewConflictError("order already submitted")
	}

	result := Validate(f.draft, f.catalog)
	if !result.Valid() {
		f.errors = result.Errors
		f.mu.Unlock()
		return result.Err()
	}

	f.errors = nil
	f.state = StatePending
	if f.reference == "" {
		f.reference = uuid.NewString()
	}
	draft, reference := f.draft, f.reference
	f.mu.Unlock()

	delivered := false
	defer func() {
		f.mu.Lock()
		if delivered {
			f.state = StateConfirmed
		} else {
			f.state = StateDeliveryFailed
		}
		f.mu.Unlock()
	}()

	if err := f.sink.Deliver(ctx, reference, draft); err != nil {
		return apperrors.NewUnavailableError("order delivery failed", err)
	}
	delivered = true
	return nil
}

func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	var errs []FieldError
	if len(f.errors) > 0 {
		errs = make([]FieldError, len(f.errors))
		copy(errs, f.errors)
	}

	return Snapshot{
		Draft:  f.draft,
		State:  f.state,
		Errors: errs,
	}
}

func dropField(errs []FieldError, field domain.Field) []FieldError {
	if len(errs) == 0 {
		return errs
	}
	out := errs[:0:0]
	for _, e := range errs {
		if e.Field != field {
			out = append(out, e)
		}
	}
	return out
}
