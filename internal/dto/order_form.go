package dto

import (
	"time"

	"tapconnect/internal/domain"
	apperrors "tapconnect/internal/errors"
	"tapconnect/internal/orderform"
)

type UpdateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type OrderFormResponse struct {
	TraceID   string                       `json:"traceId"`
	State     string                       `json:"state"`
	Confirmed bool                         `json:"confirmed"`
	Draft     domain.OrderDraft            `json:"draft"`
	Errors    []apperrors.ValidationDetail `json:"errors"`
	Timestamp time.Time                    `json:"timestamp"`
}

type ErrorResponse struct {
	TraceID string                       `json:"traceId"`
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func NewOrderFormResponse(traceID string, s orderform.Snapshot, now time.Time) OrderFormResponse {
	errs := make([]apperrors.ValidationDetail, 0, len(s.Errors))
	for _, e := range s.Errors {
		errs = append(errs, apperrors.ValidationDetail{
			Field:   string(e.Field),
			Message: e.Message,
		})
	}

	return OrderFormResponse{
		TraceID:   traceID,
		State:     string(s.State),
		Confirmed: s.Confirmed(),
		Draft:     s.Draft,
		Errors:    errs,
		Timestamp: now.UTC(),
	}
}
