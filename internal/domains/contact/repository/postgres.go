package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gustavoesucri/back-end-ifd/internal/domains/contact"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) contact.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, s *contact.Submission) error {
	query := `
        INSERT INTO contato (name, email, subject, custom_subject, message)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.pool.QueryRow(ctx, query,
		s.Name,
		s.Email,
		string(s.Subject),
		s.CustomSubject,
		s.Message,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save contact: %w", err)
	}
	return nil
}
