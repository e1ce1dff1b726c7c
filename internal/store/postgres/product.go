package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/techify/inventora/internal/domain"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, `
		SELECT id, business_id, name, description, quantity, is_available, created_at, updated_at
		FROM products
		ORDER BY created_at, id
	`)
}

// ListByBusiness returns the products owned by one business.
func (r *ProductRepository) ListByBusiness(ctx context.Context, businessID string) ([]domain.Product, error) {
	return r.list(ctx, `
		SELECT id, business_id, name, description, quantity, is_available, created_at, updated_at
		FROM products
		WHERE business_id = $1
		ORDER BY created_at, id
	`, businessID)
}

func (r *ProductRepository) list(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.BusinessID, &p.Name, &p.Description, &p.Quantity, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *ProductRepository) Get(ctx context.Context, id string) (*domain.Product, error) {
	p := &domain.Product{}

	err := r.db.QueryRowContext(ctx, `
		SELECT id, business_id, name, description, quantity, is_available, created_at, updated_at
		FROM products
		WHERE id = $1
	`, id).Scan(&p.ID, &p.BusinessID, &p.Name, &p.Description, &p.Quantity, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return p, nil
}

func (r *ProductRepository) Insert(ctx context.Context, p *domain.Product) error {
	p.ID = uuid.New().String()
	p.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, business_id, name, description, quantity, is_available, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, p.ID, p.BusinessID, p.Name, p.Description, p.Quantity, p.IsAvailable, p.CreatedAt)
	return err
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	now := time.Now().UTC()
	p.UpdatedAt = &now

	_, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = $2, description = $3, quantity = $4, is_available = $5, updated_at = $6
		WHERE id = $1
	`, p.ID, p.Name, p.Description, p.Quantity, p.IsAvailable, p.UpdatedAt)
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
