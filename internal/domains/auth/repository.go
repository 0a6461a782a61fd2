package auth

import "context"

type Repository interface {
	// Create returns ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, a *Account) error
	// FindByEmail returns ErrAccountNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*Account, error)
}
