package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/potluck/internal/models"
	"github.com/mmynk/potluck/internal/storage"
)

const memberColumns = "id, group_id, name, pin_hash, is_admin, joined_at"

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// AddMember inserts a new member into an existing group.
func (s *SQLiteStore) AddMember(ctx context.Context, member *models.Member) error {
	return insertMember(ctx, s.db, member)
}

func insertMember(ctx context.Context, db execer, member *models.Member) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.JoinedAt == 0 {
		member.JoinedAt = time.Now().Unix()
	}

	_, err := db.ExecContext(ctx,
		"INSERT INTO members ("+memberColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		member.ID,
		member.GroupID,
		member.Name,
		member.PINHash,
		member.IsAdmin,
		member.JoinedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("member %q: %w", member.Name, storage.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}

	return nil
}

// GetMember retrieves a member by ID.
func (s *SQLiteStore) GetMember(ctx context.Context, memberID string) (*models.Member, error) {
	member, err := scanMember(s.db.QueryRowContext(ctx,
		"SELECT "+memberColumns+" FROM members WHERE id = ?",
		memberID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("member %s: %w", memberID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

// FindMemberByName retrieves a member by name. The name column is NOCASE, so
// the comparison ignores ASCII case.
func (s *SQLiteStore) FindMemberByName(ctx context.Context, groupID, name string) (*models.Member, error) {
	member, err := scanMember(s.db.QueryRowContext(ctx,
		"SELECT "+memberColumns+" FROM members WHERE group_id = ? AND name = ?",
		groupID, name,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("member %q: %w", name, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find member: %w", err)
	}
	return member, nil
}

// ListMembers returns the members of a group in join order.
func (s *SQLiteStore) ListMembers(ctx context.Context, groupID string) ([]*models.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+memberColumns+" FROM members WHERE group_id = ? ORDER BY joined_at, rowid",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*models.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating members: %w", err)
	}

	return members, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*models.Member, error) {
	member := &models.Member{}
	err := row.Scan(
		&member.ID,
		&member.GroupID,
		&member.Name,
		&member.PINHash,
		&member.IsAdmin,
		&member.JoinedAt,
	)
	if err != nil {
		return nil, err
	}
	return member, nil
}
