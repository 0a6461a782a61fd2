package content

import "context"

// Repository is the storage contract for one entity type. Implementations
// return ErrRecordNotFound for absence and ErrDuplicateSlug for a unique slug
// violation; other failures are wrapped.
type Repository[E any] interface {
	FindByID(ctx context.Context, id int64) (*E, error)
	FindBySlug(ctx context.Context, slug string) (*E, error)
	// FindByNameContains matches case-insensitively; wildcards in fragment are literal.
	FindByNameContains(ctx context.Context, fragment string) ([]*E, error)
	FindAll(ctx context.Context) ([]*E, error)

	// Insert assigns ID and timestamps on e.
	Insert(ctx context.Context, e *E) error
	// Update overwrites every column of the row with e's ID and refreshes UpdatedAt.
	Update(ctx context.Context, e *E) error
	// DeleteByID returns the number of rows removed (0 or 1).
	DeleteByID(ctx context.Context, id int64) (int64, error)
}

// Primary returns the storage behind a decorating repository (such as a
// cache), or r itself. Reads that feed a write must come from here.
func Primary[E any](r Repository[E]) Repository[E] {
	if d, ok := r.(interface{ Primary() Repository[E] }); ok {
		return d.Primary()
	}
	return r
}
