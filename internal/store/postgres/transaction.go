package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/techify/inventora/internal/domain"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, invoice_id, customer_order_id, business_order_id, amount_paid, payment_status, payment_method, due_date, transaction_date, created_at, updated_at
		FROM transactions
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.InvoiceID, &t.CustomerOrderID, &t.BusinessOrderID, &t.AmountPaid, &t.PaymentStatus, &t.PaymentMethod, &t.DueDate, &t.TransactionDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}

func (r *TransactionRepository) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	t := &domain.Transaction{}

	err := r.db.QueryRowContext(ctx, `
		SELECT id, invoice_id, customer_order_id, business_order_id, amount_paid, payment_status, payment_method, due_date, transaction_date, created_at, updated_at
		FROM transactions
		WHERE id = $1
	`, id).Scan(&t.ID, &t.InvoiceID, &t.CustomerOrderID, &t.BusinessOrderID, &t.AmountPaid, &t.PaymentStatus, &t.PaymentMethod, &t.DueDate, &t.TransactionDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return t, nil
}

func (r *TransactionRepository) Insert(ctx context.Context, t *domain.Transaction) error {
	t.ID = uuid.New().String()
	t.CreatedAt = time.Now().UTC()
	// transactionDate is stamped once here and never touched by updates.
	t.TransactionDate = t.CreatedAt

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (id, invoice_id, customer_order_id, business_order_id, amount_paid, payment_status, payment_method, due_date, transaction_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, t.ID, t.InvoiceID, t.CustomerOrderID, t.BusinessOrderID, t.AmountPaid, t.PaymentStatus, t.PaymentMethod, t.DueDate, t.TransactionDate, t.CreatedAt)
	return err
}

func (r *TransactionRepository) Update(ctx context.Context, t *domain.Transaction) error {
	now := time.Now().UTC()
	t.UpdatedAt = &now

	_, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET amount_paid = $2, payment_status = $3, payment_method = $4, updated_at = $5
		WHERE id = $1
	`, t.ID, t.AmountPaid, t.PaymentStatus, t.PaymentMethod, t.UpdatedAt)
	return err
}

func (r *TransactionRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
