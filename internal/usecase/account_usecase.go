// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"shiptrack/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
// All three fields are required and validated at the delivery boundary.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required to authenticate.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// SignupOutput carries the confirmation message. Deliberately no token and no
// account payload: signup confirms, login authenticates.
type SignupOutput struct {
	Message string
}

// LoginOutput carries the confirmation message and the signed session token.
type LoginOutput struct {
	Message string
	Token   string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) depends on.
type AccountUsecase interface {
	// Signup registers a new account, enforcing username/email uniqueness
	// and hashing the password before it is stored.
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// Login verifies credentials and issues a time-bounded session token.
	// Unknown username and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetAccount loads an account by ID for authenticated reads.
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)
}
