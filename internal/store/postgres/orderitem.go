package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/techify/inventora/internal/domain"
)

type OrderItemRepository struct {
	db *sql.DB
}

func NewOrderItemRepository(db *sql.DB) *OrderItemRepository {
	return &OrderItemRepository{db: db}
}

func (r *OrderItemRepository) List(ctx context.Context) ([]domain.OrderItem, error) {
	return r.list(ctx, `
		SELECT id, product_id, customer_order_id, business_order_id, quantity, price, created_at, updated_at
		FROM order_items
		ORDER BY created_at, id
	`)
}

// ListByCustomerOrder returns the line items of one customer order.
func (r *OrderItemRepository) ListByCustomerOrder(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	return r.list(ctx, `
		SELECT id, product_id, customer_order_id, business_order_id, quantity, price, created_at, updated_at
		FROM order_items
		WHERE customer_order_id = $1
		ORDER BY created_at, id
	`, orderID)
}

// ListByBusinessOrder returns the line items of one business order.
func (r *OrderItemRepository) ListByBusinessOrder(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	return r.list(ctx, `
		SELECT id, product_id, customer_order_id, business_order_id, quantity, price, created_at, updated_at
		FROM order_items
		WHERE business_order_id = $1
		ORDER BY created_at, id
	`, orderID)
}

func (r *OrderItemRepository) list(ctx context.Context, query string, args ...any) ([]domain.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	items := []domain.OrderItem{}
	for rows.Next() {
		var i domain.OrderItem
		if err := rows.Scan(&i.ID, &i.ProductID, &i.CustomerOrderID, &i.BusinessOrderID, &i.Quantity, &i.Price, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *OrderItemRepository) Get(ctx context.Context, id string) (*domain.OrderItem, error) {
	i := &domain.OrderItem{}

	err := r.db.QueryRowContext(ctx, `
		SELECT id, product_id, customer_order_id, business_order_id, quantity, price, created_at, updated_at
		FROM order_items
		WHERE id = $1
	`, id).Scan(&i.ID, &i.ProductID, &i.CustomerOrderID, &i.BusinessOrderID, &i.Quantity, &i.Price, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return i, nil
}

func (r *OrderItemRepository) Insert(ctx context.Context, i *domain.OrderItem) error {
	i.ID = uuid.New().String()
	i.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO order_items (id, product_id, customer_order_id, business_order_id, quantity, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, i.ID, i.ProductID, i.CustomerOrderID, i.BusinessOrderID, i.Quantity, i.Price, i.CreatedAt)
	return err
}

func (r *OrderItemRepository) Update(ctx context.Context, i *domain.OrderItem) error {
	now := time.Now().UTC()
	i.UpdatedAt = &now

	_, err := r.db.ExecContext(ctx, `
		UPDATE order_items
		SET quantity = $2, price = $3, updated_at = $4
		WHERE id = $1
	`, i.ID, i.Quantity, i.Price, i.UpdatedAt)
	return err
}

func (r *OrderItemRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM order_items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
