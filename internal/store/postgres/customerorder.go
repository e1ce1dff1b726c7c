package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/techify/inventora/internal/domain"
)

type CustomerOrderRepository struct {
	db *sql.DB
}

func NewCustomerOrderRepository(db *sql.DB) *CustomerOrderRepository {
	return &CustomerOrderRepository{db: db}
}

func (r *CustomerOrderRepository) List(ctx context.Context) ([]domain.CustomerOrder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, business_id, user_id, status, created_at, updated_at
		FROM customer_orders
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	orders := []domain.CustomerOrder{}
	for rows.Next() {
		var o domain.CustomerOrder
		if err := rows.Scan(&o.ID, &o.BusinessID, &o.UserID, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *CustomerOrderRepository) Get(ctx context.Context, id string) (*domain.CustomerOrder, error) {
	o := &domain.CustomerOrder{}

	err := r.db.QueryRowContext(ctx, `
		SELECT id, business_id, user_id, status, created_at, updated_at
		FROM customer_orders
		WHERE id = $1
	`, id).Scan(&o.ID, &o.BusinessID, &o.UserID, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return o, nil
}

func (r *CustomerOrderRepository) Insert(ctx context.Context, o *domain.CustomerOrder) error {
	o.ID = uuid.New().String()
	o.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO customer_orders (id, business_id, user_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, o.ID, o.BusinessID, o.UserID, o.Status, o.CreatedAt)
	return err
}

func (r *CustomerOrderRepository) Update(ctx context.Context, o *domain.CustomerOrder) error {
	now := time.Now().UTC()
	o.UpdatedAt = &now

	_, err := r.db.ExecContext(ctx, `
		UPDATE customer_orders
		SET business_id = $2, user_id = $3, status = $4, updated_at = $5
		WHERE id = $1
	`, o.ID, o.BusinessID, o.UserID, o.Status, o.UpdatedAt)
	return err
}

func (r *CustomerOrderRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customer_orders WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
