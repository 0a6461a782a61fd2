package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gustavoesucri/back-end-ifd/internal/domains/home"
	"github.com/gustavoesucri/back-end-ifd/pkg/database"
)

type postgresRepository struct {
	pool database.DBTX
}

// NewPostgresRepository accepts a pool or a transaction.
func NewPostgresRepository(pool database.DBTX) home.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, h *home.HomeText) error {
	query := `
        INSERT INTO home (paragrafos)
        VALUES ($1)
        RETURNING id, created_at, updated_at
    `
	if err := r.pool.QueryRow(ctx, query, h.Paragrafos).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create home text: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]home.HomeText, error) {
	query := `SELECT id, paragrafos, created_at, updated_at FROM home ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list home texts: %w", err)
	}
	defer rows.Close()

	texts := make([]home.HomeText, 0)
	for rows.Next() {
		var h home.HomeText
		if err := rows.Scan(&h.ID, &h.Paragrafos, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan home text: %w", err)
		}
		texts = append(texts, h)
	}
	return texts, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*home.HomeText, error) {
	query := `SELECT id, paragrafos, created_at, updated_at FROM home WHERE id = $1`

	var h home.HomeText
	err := r.pool.QueryRow(ctx, query, id).Scan(&h.ID, &h.Paragrafos, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, home.ErrHomeTextNotFound
		}
		return nil, fmt.Errorf("failed to get home text: %w", err)
	}
	return &h, nil
}

func (r *postgresRepository) UpdateParagraphs(ctx context.Context, id int64, paragraphs []string) error {
	query := `UPDATE home SET paragrafos = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, paragraphs, id)
	if err != nil {
		return fmt.Errorf("failed to update home text: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return home.ErrHomeTextNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM home WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete home text: %w", err)
	}
	return tag.RowsAffected(), nil
}
