package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/potluck/internal/models"
	"github.com/mmynk/potluck/internal/storage"
)

// PINLength is the number of digits in a member PIN.
const PINLength = 4

var (
	ErrInvalidPIN     = errors.New("incorrect PIN for this user")
	ErrWeakPIN        = fmt.Errorf("PIN must be exactly %d digits", PINLength)
	ErrMemberExists   = errors.New("name already taken in this group")
	ErrMemberNotFound = errors.New("no member with that name")
)

// MemberStorage defines the member persistence operations the authenticator needs.
type MemberStorage interface {
	AddMember(ctx context.Context, member *models.Member) error
	FindMemberByName(ctx context.Context, groupID, name string) (*models.Member, error)
}

// PINAuthenticator implements PIN-based authentication using bcrypt.
type PINAuthenticator struct {
	storage MemberStorage
}

// NewPINAuthenticator creates a new PIN-based authenticator.
func NewPINAuthenticator(storage MemberStorage) *PINAuthenticator {
	return &PINAuthenticator{
		storage: storage,
	}
}

// ValidateCredential checks that the PIN is exactly PINLength digits.
func (a *PINAuthenticator) ValidateCredential(credential string) error {
	return ValidatePIN(credential)
}

// ValidatePIN checks that pin is exactly PINLength ASCII digits.
func ValidatePIN(pin string) error {
	if len(pin) != PINLength {
		return ErrWeakPIN
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return ErrWeakPIN
		}
	}
	return nil
}

// HashPIN returns the bcrypt hash of a PIN.
func HashPIN(pin string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash PIN: %w", err)
	}
	return string(hashed), nil
}

// Register creates a new, non-admin member with a hashed PIN.
func (a *PINAuthenticator) Register(ctx context.Context, groupID, name, credential string) (*models.Member, error) {
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	hashed, err := HashPIN(credential)
	if err != nil {
		return nil, err
	}

	member := models.NewMember(groupID, name, hashed, false)
	if err := a.storage.AddMember(ctx, member); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, ErrMemberExists
		}
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return member, nil
}

// Authenticate verifies the name and PIN, returning the member if valid.
func (a *PINAuthenticator) Authenticate(ctx context.Context, groupID, name, credential string) (*models.Member, error) {
	member, err := a.storage.FindMemberByName(ctx, groupID, name)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up member: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PINHash), []byte(credential)); err != nil {
		return nil, ErrInvalidPIN
	}

	return member, nil
}
