package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPIN is assigned to members added by someone else, before they join.
const DefaultPIN = "0000"

// Member represents one person inside a group.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string

	// GroupID is the group this member belongs to.
	GroupID string

	// Name is the display name. Unique inside a group, case-insensitively.
	Name string

	// PINHash is the bcrypt hash of the member's PIN. Never serialized to clients.
	PINHash string

	// IsAdmin marks the group creator, who may rename the group's public ID.
	IsAdmin bool

	// JoinedAt is the Unix timestamp when the member was added.
	JoinedAt int64
}

// NewMember creates a member with a generated ID and join time.
func NewMember(groupID, name, pinHash string, isAdmin bool) *Member {
	return &Member{
		ID:       uuid.New().String(),
		GroupID:  groupID,
		Name:     name,
		PINHash:  pinHash,
		IsAdmin:  isAdmin,
		JoinedAt: time.Now().Unix(),
	}
}
