// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/potluck/internal/models"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write violates a uniqueness rule.
	ErrConflict = errors.New("already exists")
)

// Store defines the interface for group, member and receipt storage.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateGroup persists a new group together with any members already attached.
	// ID, PublicID and CreatedAt are populated by the store when empty.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group and its members by ID.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// GetGroupByPublicID retrieves a group and its members by public ID.
	GetGroupByPublicID(ctx context.Context, publicID string) (*models.Group, error)

	// UpdateGroupPublicID changes a group's public ID.
	// Returns ErrConflict if another group already uses it.
	UpdateGroupPublicID(ctx context.Context, groupID, publicID string) error

	// AddMember adds a member to an existing group.
	// Returns ErrConflict if the name is taken inside the group (case-insensitive).
	AddMember(ctx context.Context, member *models.Member) error

	// GetMember retrieves a member by ID.
	GetMember(ctx context.Context, memberID string) (*models.Member, error)

	// FindMemberByName looks a member up by name inside a group, case-insensitively.
	FindMemberByName(ctx context.Context, groupID, name string) (*models.Member, error)

	// ListMembers returns the roster of a group in join order.
	ListMembers(ctx context.Context, groupID string) ([]*models.Member, error)

	// CreateReceipt persists a receipt and its splits.
	// ID and CreatedAt are populated by the store when empty.
	CreateReceipt(ctx context.Context, receipt *models.Receipt) error

	// GetReceipt retrieves a receipt and its splits by ID.
	GetReceipt(ctx context.Context, receiptID string) (*models.Receipt, error)

	// ListReceiptsByGroup returns every receipt of a group with splits, newest first.
	ListReceiptsByGroup(ctx context.Context, groupID string) ([]*models.Receipt, error)

	// DeleteReceipt removes a receipt and its splits.
	DeleteReceipt(ctx context.Context, receiptID string) error

	// Close releases any resources held by the store.
	Close() error
}
