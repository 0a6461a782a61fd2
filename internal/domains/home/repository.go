package home

import "context"

// Repository defines data access for home texts.
type Repository interface {
	Create(ctx context.Context, h *HomeText) error
	GetAll(ctx context.Context) ([]HomeText, error)
	// GetByID returns ErrHomeTextNotFound when absent.
	GetByID(ctx context.Context, id int64) (*HomeText, error)
	// UpdateParagraphs returns ErrHomeTextNotFound when absent.
	UpdateParagraphs(ctx context.Context, id int64, paragraphs []string) error
	Delete(ctx context.Context, id int64) (int64, error)
}
