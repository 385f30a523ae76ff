package service

import (
	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and validating session
// tokens. A token binds an account identity to an expiry and is signed so
// tampering is detectable.
type TokenService interface {
	// Issue produces a signed token embedding the account ID with an expiry
	// one hour from issuance.
	Issue(accountID uuid.UUID) (string, error)

	// Validate returns the account ID embedded in a token. Bad signature,
	// elapsed expiry, and malformed structure all yield the same error so a
	// caller cannot tell which check failed.
	Validate(token string) (uuid.UUID, error)
}
