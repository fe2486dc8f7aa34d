package usecase

import (
	"context"

	"go.uber.org/zap"

	"tapconnect/internal/domain"
	apperrors "tapconnect/internal/errors"
	"tapconnect/internal/infrastructure/metrics"
	"tapconnect/internal/orderform"
)

type SessionStore interface {
	Get(id string) (*orderform.Form, bool)
	GetOrCreate(id string) (string, *orderform.Form, bool)
	Blank() *orderform.Form
}

// OrderFormUseCase runs order form operations against the visitor's own form.
// UpdateField and Submit return the session id actually used, which differs
// from the one passed in when the visitor had no live session. Draft never
// starts a session.
type OrderFormUseCase struct {
	sessions SessionStore
	logger   *zap.Logger
}

func NewOrderFormUseCase(sessions SessionStore, logger *zap.Logger) *OrderFormUseCase {
	return &OrderFormUseCase{
		sessions: sessions,
		logger:   logger,
	}
}

// Draft returns the visitor's form, or the default draft with an empty id when
// the visitor has no live session.
func (uc *OrderFormUseCase) Draft(sessionID string) (string, orderform.Snapshot) {
	if sessionID != "" {
		if form, ok := uc.sessions.Get(sessionID); ok {
			return sessionID, form.Snapshot()
		}
	}
	return "", uc.sessions.Blank().Snapshot()
}

func (uc *OrderFormUseCase) UpdateField(sessionID, field, value string) (string, orderform.Snapshot, error) {
	id, form := uc.form(sessionID)

	f, known := domain.ParseField(field)
	label := string(f)
	if !known {
		label = "unknown"
	}

	err := form.UpdateField(domain.Field(field), value)
	if err != nil {
		metrics.FieldUpdates.WithLabelValues(label, "rejected").Inc()
		uc.logger.Debug("field update rejected", zap.String("field", field), zap.Error(err))
		return id, form.Snapshot(), err
	}

	metrics.FieldUpdates.WithLabelValues(label, "ok").Inc()
	return id, form.Snapshot(), nil
}

func (uc *OrderFormUseCase) Submit(ctx context.Context, sessionID string) (string, orderform.Snapshot, error) {
	id, form := uc.form(sessionID)

	err := form.Submit(ctx)
	snapshot := form.Snapshot()
	metrics.Submissions.WithLabelValues(outcome(err)).Inc()

	switch {
	case err == nil:
		uc.logger.Info("order confirmed", zap.String("email", snapshot.Draft.Email), zap.String("plan", snapshot.Draft.Plan))
	case isValidation(err):
		uc.logger.Debug("order incomplete", zap.Int("fieldErrors", len(snapshot.Errors)))
	default:
		uc.logger.Warn("order submit failed", zap.String("state", string(snapshot.State)), zap.Error(err))
	}

	return id, snapshot, err
}

func (uc *OrderFormUseCase) form(sessionID string) (string, *orderform.Form) {
	id, form, created := uc.sessions.GetOrCreate(sessionID)
	if created {
		uc.logger.Debug("session started", zap.String("sessionId", id))
	}
	return id, form
}

func outcome(err error) string {
	if err == nil {
		return metrics.OutcomeConfirmed
	}
	if isValidation(err) {
		return metrics.OutcomeInvalid
	}
	if _, ok := apperrors.IsConflictError(err); ok {
		return metrics.OutcomeRejected
	}
	return metrics.OutcomeFailed
}

func isValidation(err error) bool {
	_, ok := apperrors.IsValidationError(err)
	return ok
}
