package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/techify/inventora/internal/domain"
)

type InvoiceRepository struct {
	db *sql.DB
}

func NewInvoiceRepository(db *sql.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	return r.list(ctx, `
		SELECT id, customer_order_id, user_id, amount_due, status, due_date, transaction_id, created_at, updated_at
		FROM invoices
		ORDER BY created_at, id
	`)
}

// ListByUser returns the invoices owed by one user.
func (r *InvoiceRepository) ListByUser(ctx context.Context, userID string) ([]domain.Invoice, error) {
	return r.list(ctx, `
		SELECT id, customer_order_id, user_id, amount_due, status, due_date, transaction_id, created_at, updated_at
		FROM invoices
		WHERE user_id = $1
		ORDER BY created_at, id
	`, userID)
}

func (r *InvoiceRepository) list(ctx context.Context, query string, args ...any) ([]domain.Invoice, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	invoices := []domain.Invoice{}
	for rows.Next() {
		var inv domain.Invoice
		if err := rows.Scan(&inv.ID, &inv.CustomerOrderID, &inv.UserID, &inv.AmountDue, &inv.Status, &inv.DueDate, &inv.TransactionID, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}

func (r *InvoiceRepository) Get(ctx context.Context, id string) (*domain.Invoice, error) {
	inv := &domain.Invoice{}

	err := r.db.QueryRowContext(ctx, `
		SELECT id, customer_order_id, user_id, amount_due, status, due_date, transaction_id, created_at, updated_at
		FROM invoices
		WHERE id = $1
	`, id).Scan(&inv.ID, &inv.CustomerOrderID, &inv.UserID, &inv.AmountDue, &inv.Status, &inv.DueDate, &inv.TransactionID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return inv, nil
}

func (r *InvoiceRepository) Insert(ctx context.Context, inv *domain.Invoice) error {
	inv.ID = uuid.New().String()
	inv.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invoices (id, customer_order_id, user_id, amount_due, status, due_date, transaction_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, inv.ID, inv.CustomerOrderID, inv.UserID, inv.AmountDue, inv.Status, inv.DueDate, inv.TransactionID, inv.CreatedAt)
	return err
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *domain.Invoice) error {
	now := time.Now().UTC()
	inv.UpdatedAt = &now

	_, err := r.db.ExecContext(ctx, `
		UPDATE invoices
		SET customer_order_id = $2, user_id = $3, amount_due = $4, status = $5, transaction_id = $6, updated_at = $7
		WHERE id = $1
	`, inv.ID, inv.CustomerOrderID, inv.UserID, inv.AmountDue, inv.Status, inv.TransactionID, inv.UpdatedAt)
	return err
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
