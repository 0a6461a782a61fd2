package contact

import "context"

type Repository interface {
	// Create assigns ID and CreatedAt.
	Create(ctx context.Context, s *Submission) error
}
