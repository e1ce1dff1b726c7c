package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/techify/inventora/internal/domain"
)

type BusinessRepository struct {
	db *sql.DB
}

func NewBusinessRepository(db *sql.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

func (r *BusinessRepository) List(ctx context.Context) ([]domain.Business, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, owner_id, created_at, updated_at
		FROM businesses
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	businesses := []domain.Business{}
	for rows.Next() {
		var b domain.Business
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.OwnerID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		businesses = append(businesses, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return businesses, nil
}

func (r *BusinessRepository) Get(ctx context.Context, id string) (*domain.Business, error) {
	b := &domain.Business{}

	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, owner_id, created_at, updated_at
		FROM businesses
		WHERE id = $1
	`, id).Scan(&b.ID, &b.Name, &b.Description, &b.OwnerID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return b, nil
}

func (r *BusinessRepository) Insert(ctx context.Context, b *domain.Business) error {
	b.ID = uuid.New().String()
	b.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO businesses (id, name, description, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, b.ID, b.Name, b.Description, b.OwnerID, b.CreatedAt)
	return err
}

func (r *BusinessRepository) Update(ctx context.Context, b *domain.Business) error {
	now := time.Now().UTC()
	b.UpdatedAt = &now

	_, err := r.db.ExecContext(ctx, `
		UPDATE businesses
		SET name = $2, description = $3, owner_id = $4, updated_at = $5
		WHERE id = $1
	`, b.ID, b.Name, b.Description, b.OwnerID, b.UpdatedAt)
	return err
}

func (r *BusinessRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
