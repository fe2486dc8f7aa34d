package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"tapconnect/internal/domain"
	apperrors "tapconnect/internal/errors"
	"tapconnect/internal/infrastructure/mailer"
	"tapconnect/internal/infrastructure/metrics"
)

type OrderRepository interface {
	Insert(ctx context.Context, order domain.Order) (uint, error)
}

type MailSender interface {
	Send(ctx context.Context, msg mailer.Message) (string, error)
}

// DeliveryService receives submitted drafts. It logs each one, records it in
// the order store when one is configured and notifies the team by e-mail.
// Only a failure to record fails the delivery; the e-mail is best effort.
type DeliveryService struct {
	orderRepo   OrderRepository
	mail        MailSender
	notifyTo    string
	logger      *zap.Logger
	timeout     time.Duration
	maxAttempts int
	backoffs    []time.Duration
	now         func() time.Time
}

// NewDeliveryService builds the service. orderRepo may be nil, in which case
// drafts are only logged and mailed.
func NewDeliveryService(
	orderRepo OrderRepository,
	mail MailSender,
	notifyTo string,
	logger *zap.Logger,
	timeout time.Duration,
	maxAttempts int,
) *DeliveryService {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &DeliveryService{
		orderRepo:   orderRepo,
		mail:        mail,
		notifyTo:    notifyTo,
		logger:      logger,
		timeout:     timeout,
		maxAttempts: maxAttempts,
		// Backoff before attempt 2 (100ms), attempt 3 (200ms), then 400ms.
		backoffs: []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond},
		now:      time.Now,
	}
}

// Deliver records draft under reference. Delivering the same reference again
// does not record a second order.
func (s *DeliveryService) Deliver(ctx context.Context, reference string, draft domain.OrderDraft) error {
	order := domain.NewOrderFromDraft(reference, draft, s.now())
	logger := s.logger.With(zap.String("reference", order.Reference))

	logger.Info("order submitted",
		zap.String("name", draft.Name),
		zap.String("business", draft.Business),
		zap.String("email", draft.Email),
		zap.String("phone", draft.Phone),
		zap.String("instagram", draft.Instagram),
		zap.String("tiktok", draft.TikTok),
		zap.String("website", draft.Website),
		zap.String("color", draft.Color),
		zap.String("plan", draft.Plan),
		zap.String("notes", draft.Notes),
	)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if s.orderRepo != nil {
		id, err := s.recordWithRetry(ctx, order, logger)
		if err != nil {
			metrics.DeliveryFailures.WithLabelValues("record").Inc()
			logger.Error("failed to record order", zap.Error(err))
			return err
		}
		logger.Info("order recorded", zap.Uint("orderId", id))
	}

	s.notify(ctx, order, logger)
	return nil
}

func (s *DeliveryService) recordWithRetry(ctx context.Context, order domain.Order, logger *zap.Logger) (uint, error) {
	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		metrics.DeliveryAttempts.Inc()

		id, err := s.orderRepo.Insert(ctx, order)
		if err == nil {
			return id, nil
		}
		if !isDeadlockError(err) {
			if _, ok := apperrors.IsInternalError(err); ok {
				return 0, err
			}
			return 0, apperrors.NewInternalError("recording order", err)
		}

		lastErr = err
		if attempt == s.maxAttempts {
			break
		}

		logger.Warn("deadlock detected, retrying", zap.Int("attempt", attempt), zap.Int("maxAttempts", s.maxAttempts))
		if err := s.wait(ctx, attempt); err != nil {
			return 0, err
		}
	}

	return 0, apperrors.NewInternalError(fmt.Sprintf("recording order after %d attempts", s.maxAttempts), lastErr)
}

// wait sleeps for the backoff after the given attempt, with ±20% jitter.
func (s *DeliveryService) wait(ctx context.Context, attempt int) error {
	if len(s.backoffs) == 0 {
		return ctx.Err()
	}
	idx := attempt - 1
	if idx >= len(s.backoffs) {
		idx = len(s.backoffs) - 1
	}
	base := s.backoffs[idx]
	d := time.Duration(float64(base) * (0.8 + rand.Float64()*0.4))

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *DeliveryService) notify(ctx context.Context, order domain.Order, logger *zap.Logger) {
	if s.mail == nil || s.notifyTo == "" {
		return
	}

	_, err := s.mail.Send(ctx, mailer.Message{
		To:      s.notifyTo,
		Subject: fmt.Sprintf("New card order from %s", order.Name),
		Text:    orderSummary(order),
	})
	if err != nil {
		metrics.DeliveryFailures.WithLabelValues("notify").Inc()
		logger.Warn("order notification not sent", zap.Error(err))
	}
}

func orderSummary(o domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Reference: %s\n", o.Reference)
	rows := []struct{ label, value string }{
		{"Name", o.Name},
		{"Business", o.Business},
		{"Email", o.Email},
		{"Phone", o.Phone},
		{"Instagram", o.Instagram},
		{"TikTok", o.TikTok},
		{"Website", o.Website},
		{"Card color", o.Color},
		{"Plan", o.Plan},
		{"Notes", o.Notes},
	}
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", r.label, r.value)
	}
	return b.String()
}

func isDeadlockError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205
	}
	return false
}
