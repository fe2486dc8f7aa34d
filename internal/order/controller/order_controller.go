package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tapconnect/internal/catalog"
	"tapconnect/internal/domain"
	"tapconnect/internal/dto"
	apperrors "tapconnect/internal/errors"
	"tapconnect/internal/orderform"
	"tapconnect/internal/web"
)

const maxBodyBytes = 64 << 10

type OrderFormUseCase interface {
	Draft(sessionID string) (string, orderform.Snapshot)
	UpdateField(sessionID, field, value string) (string, orderform.Snapshot, error)
	Submit(ctx context.Context, sessionID string) (string, orderform.Snapshot, error)
}

type SessionCookie struct {
	Name string
	TTL  time.Duration
}

type OrderController struct {
	useCase OrderFormUseCase
	catalog *catalog.Catalog
	cookie  SessionCookie
	logger  *zap.Logger
	now     func() time.Time
}

func NewOrderController(useCase OrderFormUseCase, c *catalog.Catalog, cookie SessionCookie, logger *zap.Logger) *OrderController {
	return &OrderController{
		useCase: useCase,
		catalog: c,
		cookie:  cookie,
		logger:  logger,
		now:     time.Now,
	}
}

// Landing renders the page with the visitor's current order form, or the
// default draft when there is none. It never starts a session.
func (c *OrderController) Landing(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, snapshot := c.useCase.Draft(c.sessionID(r))
	c.setSession(w, id)
	c.renderPage(w, http.StatusOK, snapshot, logger)
}

// SubmitForm handles the plain HTML form post: every posted field is applied
// in form order, then the order is submitted.
func (c *OrderController) SubmitForm(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		logger.Warn("invalid form body", zap.Error(err))
		c.writeError(w, traceID, http.StatusBadRequest, "BAD_REQUEST", "invalid form body", nil)
		return
	}

	id := c.sessionID(r)
	var snapshot orderform.Snapshot
	var err error
	for _, f := range domain.Fields() {
		if _, posted := r.PostForm[string(f)]; !posted {
			continue
		}
		id, snapshot, err = c.useCase.UpdateField(id, string(f), r.PostForm.Get(string(f)))
		if err != nil {
			break
		}
	}
	if err == nil {
		id, snapshot, err = c.useCase.Submit(r.Context(), id)
	}
	c.setSession(w, id)

	if err == nil {
		logger.Info("order form submitted")
		http.Redirect(w, r, "/#"+web.AnchorOrder, http.StatusSeeOther)
		return
	}

	status := c.statusFor(err, logger)
	c.renderPage(w, status, snapshot, logger)
}

func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	id, snapshot := c.useCase.Draft(c.sessionID(r))
	c.setSession(w, id)
	c.writeJSON(w, http.StatusOK, dto.NewOrderFormResponse(traceID, snapshot, c.now()))
}

func (c *OrderController) UpdateField(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.UpdateFieldRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, traceID, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON body", []apperrors.ValidationDetail{{
			Field:   "body",
			Message: "request body must be valid JSON",
		}})
		return
	}

	id, snapshot, err := c.useCase.UpdateField(c.sessionID(r), req.Field, req.Value)
	c.setSession(w, id)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.NewOrderFormResponse(traceID, snapshot, c.now()))
}

func (c *OrderController) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, snapshot, err := c.useCase.Submit(r.Context(), c.sessionID(r))
	c.setSession(w, id)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	logger.Info("order submitted via api")
	c.writeJSON(w, http.StatusOK, dto.NewOrderFormResponse(traceID, snapshot, c.now()))
}

func (c *OrderController) sessionID(r *http.Request) string {
	cookie, err := r.Cookie(c.cookie.Name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// setSession refreshes the session cookie. An empty id means the visitor has
// no session yet and no cookie is set.
func (c *OrderController) setSession(w http.ResponseWriter, id string) {
	if id == "" {
		return
	}
	cookie := &http.Cookie{
		Name:     c.cookie.Name,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if c.cookie.TTL > 0 {
		cookie.MaxAge = int(c.cookie.TTL.Seconds())
	}
	http.SetCookie(w, cookie)
}

func (c *OrderController) renderPage(w http.ResponseWriter, status int, snapshot orderform.Snapshot, logger *zap.Logger) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	view := web.View{Catalog: c.catalog, Order: snapshot, Year: c.now().Year()}
	if err := web.Render(w, view); err != nil {
		logger.Error("failed to render page", zap.Error(err))
	}
}

func (c *OrderController) statusFor(err error, logger *zap.Logger) int {
	if _, ok := apperrors.IsValidationError(err); ok {
		return http.StatusUnprocessableEntity
	}
	if _, ok := apperrors.IsNotFoundError(err); ok {
		return http.StatusNotFound
	}
	if _, ok := apperrors.IsConflictError(err); ok {
		return http.StatusConflict
	}
	if _, ok := apperrors.IsUnavailableError(err); ok {
		return http.StatusServiceUnavailable
	}

	logger.Error("unexpected error", zap.Error(err))
	return http.StatusInternalServerError
}

func (c *OrderController) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeError(w, traceID, http.StatusUnprocessableEntity, "VALIDATION_ERROR", ve.Message, ve.Details)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, traceID, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeError(w, traceID, http.StatusConflict, "CONFLICT", err.Error(), nil)
		return
	}

	if ue, ok := apperrors.IsUnavailableError(err); ok {
		logger.Warn("order delivery unavailable", zap.Error(err))
		c.writeError(w, traceID, http.StatusServiceUnavailable, "DELIVERY_FAILED", ue.Message, nil)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred", nil)
}

func (c *OrderController) writeError(w http.ResponseWriter, traceID string, status int, code, message string, details []apperrors.ValidationDetail) {
	c.writeJSON(w, status, dto.ErrorResponse{
		TraceID: traceID,
		Error:   code,
		Message: message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
