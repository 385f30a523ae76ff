// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"shiptrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when no account matches a lookup.
var ErrAccountNotFound = errors.New("account not found")

// ErrDuplicateAccount is returned by Create when the username or email unique
// constraint is violated. Under concurrent signups with the same credentials
// exactly one insert wins and the others observe this error.
var ErrDuplicateAccount = errors.New("username or email already taken")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByUsername retrieves a single account by its username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByUsernameOrEmail retrieves an account matching either value,
	// used to detect collisions before insert.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.Account, error)

	// Create persists a new account. It returns ErrDuplicateAccount when a
	// concurrent insert violates the username/email uniqueness invariant.
	Create(ctx context.Context, account *entity.Account) error
}
