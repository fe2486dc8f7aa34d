package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tapconnect/internal/domain"
	"tapconnect/internal/errors"
)

// SQLOrderRepository stores orders in MySQL or SQLite. Queries stick to the
// dialect both share; createdAt is kept as Unix milliseconds.
type SQLOrderRepository struct {
	db *sql.DB
}

func NewSQLOrderRepository(db *sql.DB) *SQLOrderRepository {
	return &SQLOrderRepository{db: db}
}

// Insert records order and returns its id. Inserting a reference that is
// already stored returns the existing row's id, so a retried submission is
// recorded once.
func (r *SQLOrderRepository) Insert(ctx context.Context, order domain.Order) (uint, error) {
	query := `
		INSERT INTO Orders (reference, name, business, email, phone, instagram, tiktok,
		                    website, color, plan, notes, status, createdAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		order.Reference, order.Name, order.Business, order.Email, order.Phone,
		order.Instagram, order.TikTok, order.Website, order.Color, order.Plan,
		order.Notes, order.Status, order.CreatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		if existing, findErr := r.FindByReference(ctx, order.Reference); findErr == nil {
			return existing.ID, nil
		}
		return 0, errors.NewInternalError("inserting order", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, errors.NewInternalError("getting last insert id", err)
	}

	return uint(id), nil
}

func (r *SQLOrderRepository) FindByReference(ctx context.Context, reference string) (*domain.Order, error) {
	query := `
		SELECT id, reference, name, business, email, phone, instagram, tiktok,
		       website, color, plan, notes, status, createdAt
		FROM Orders
		WHERE reference = ?
	`

	var order domain.Order
	var createdAt int64
	err := r.db.QueryRowContext(ctx, query, reference).Scan(
		&order.ID, &order.Reference, &order.Name, &order.Business, &order.Email,
		&order.Phone, &order.Instagram, &order.TikTok, &order.Website,
		&order.Color, &order.Plan, &order.Notes, &order.Status, &createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", reference))
	}
	if err != nil {
		return nil, errors.NewInternalError("querying order by reference", err)
	}

	order.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &order, nil
}
