package orderform

import (
	"tapconnect/internal/catalog"
	"tapconnect/internal/domain"
	apperrors "tapconnect/internal/errors"
)

type FieldError struct {
	Field   domain.Field `json:"field"`
	Message string       `json:"message"`
}

type ValidationResult struct {
	Errors []FieldError
}

func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// For returns the message recorded for f, if any.
func (r ValidationResult) For(f domain.Field) (string, bool) {
	for _, e := range r.Errors {
		if e.Field == f {
			return e.Message, true
		}
	}
	return "", false
}

// Err converts the result to a ValidationError, or nil when valid.
func (r ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	details := make([]apperrors.ValidationDetail, 0, len(r.Errors))
	for _, e := range r.Errors {
		details = append(details, apperrors.ValidationDetail{
			Field:   string(e.Field),
			Message: e.Message,
		})
	}
	return apperrors.NewValidationError("order is incomplete", details...)
}

// Validate applies the submit gate: name and email must be present, color and
// plan must name catalog entries. Email and website shapes are not checked.
func Validate(d domain.OrderDraft, c *catalog.Catalog) ValidationResult {
	var errs []FieldError

	for _, f := range domain.Fields() {
		switch f {
		case domain.FieldName, domain.FieldEmail:
			if d.Get(f) == "" {
				errs = append(errs, FieldError{Field: f, Message: string(f) + " is required"})
			}
		case domain.FieldColor:
			if !c.HasStyle(d.Color) {
				errs = append(errs, FieldError{Field: f, Message: "color must be one of the offered card styles"})
			}
		case domain.FieldPlan:
			if !c.HasPlan(d.Plan) {
				errs = append(errs, FieldError{Field: f, Message: "plan must be one of the offered plans"})
			}
		}
	}

	return ValidationResult{Errors: errs}
}
