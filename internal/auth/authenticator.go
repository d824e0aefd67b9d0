package auth

import (
	"context"

	"github.com/mmynk/potluck/internal/models"
)

// Authenticator defines the interface for member authentication inside a group.
// This abstraction allows swapping the credential scheme (PIN, passkeys, etc.)
// without changing the service layer code.
type Authenticator interface {
	// Register adds a new member to the group with the given name and credential.
	// Returns ErrMemberExists if the name is already taken in the group.
	Register(ctx context.Context, groupID, name, credential string) (*models.Member, error)

	// Authenticate verifies the member's credential and returns the member if successful.
	// Returns ErrMemberNotFound if no member has that name, ErrInvalidPIN on a mismatch.
	Authenticate(ctx context.Context, groupID, name, credential string) (*models.Member, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
