package user

import (
	"context"
	"errors"
)

// ErrDuplicateEmail is returned by Create when the email address is
// already registered.
var ErrDuplicateEmail = errors.New("email already registered")

// Repository defines the interface for user data access.
type Repository interface {
	Create(ctx context.Context, params CreateUserParams) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
