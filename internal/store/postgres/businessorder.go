package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/techify/inventora/internal/domain"
)

type BusinessOrderRepository struct {
	db *sql.DB
}

func NewBusinessOrderRepository(db *sql.DB) *BusinessOrderRepository {
	return &BusinessOrderRepository{db: db}
}

func (r *BusinessOrderRepository) List(ctx context.Context) ([]domain.BusinessOrder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, business_id, status, created_at, updated_at
		FROM business_orders
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	orders := []domain.BusinessOrder{}
	for rows.Next() {
		var o domain.BusinessOrder
		if err := rows.Scan(&o.ID, &o.BusinessID, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *BusinessOrderRepository) Get(ctx context.Context, id string) (*domain.BusinessOrder, error) {
	o := &domain.BusinessOrder{}

	err := r.db.QueryRowContext(ctx, `
		SELECT id, business_id, status, created_at, updated_at
		FROM business_orders
		WHERE id = $1
	`, id).Scan(&o.ID, &o.BusinessID, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return o, nil
}

func (r *BusinessOrderRepository) Insert(ctx context.Context, o *domain.BusinessOrder) error {
	o.ID = uuid.New().String()
	o.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO business_orders (id, business_id, status, created_at)
		VALUES ($1, $2, $3, $4)
	`, o.ID, o.BusinessID, o.Status, o.CreatedAt)
	return err
}

func (r *BusinessOrderRepository) Update(ctx context.Context, o *domain.BusinessOrder) error {
	now := time.Now().UTC()
	o.UpdatedAt = &now

	_, err := r.db.ExecContext(ctx, `
		UPDATE business_orders
		SET business_id = $2, status = $3, updated_at = $4
		WHERE id = $1
	`, o.ID, o.BusinessID, o.Status, o.UpdatedAt)
	return err
}

func (r *BusinessOrderRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM business_orders WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
