package order

import (
	"database/sql"

	"go.uber.org/zap"

	"tapconnect/internal/catalog"
	"tapconnect/internal/config"
	"tapconnect/internal/infrastructure/mailer"
	"tapconnect/internal/order/controller"
	orderrepo "tapconnect/internal/order/repository"
	"tapconnect/internal/order/service"
	"tapconnect/internal/order/usecase"
	"tapconnect/internal/orderform"
	"tapconnect/internal/session"
)

type Module struct {
	Controller *controller.OrderController
	Sessions   *session.Store
}

// NewModule builds the order feature. db may be nil, in which case submitted
// orders are logged and mailed but not stored.
func NewModule(db *sql.DB, c *catalog.Catalog, mail mailer.Sender, cfg *config.Config, logger *zap.Logger) *Module {
	var orderRepo service.OrderRepository
	if db != nil {
		orderRepo = orderrepo.NewSQLOrderRepository(db)
	}

	deliverySvc := service.NewDeliveryService(
		orderRepo,
		mail,
		cfg.Mail.NotifyTo,
		logger,
		cfg.Delivery.Timeout,
		cfg.Delivery.MaxAttempts,
	)

	sessions := session.NewStore(func() *orderform.Form {
		return orderform.New(c, deliverySvc)
	}, cfg.Session.TTL, cfg.Session.Max, logger)

	useCase := usecase.NewOrderFormUseCase(sessions, logger)

	ctrl := controller.NewOrderController(
		useCase,
		c,
		controller.SessionCookie{Name: cfg.Session.Cookie, TTL: cfg.Session.TTL},
		logger,
	)

	return &Module{
		Controller: ctrl,
		Sessions:   sessions,
	}
}
