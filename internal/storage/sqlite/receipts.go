package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/potluck/internal/models"
	"github.com/mmynk/potluck/internal/storage"
)

const receiptColumns = "id, group_id, payer_id, total, note, created_at"

// CreateReceipt persists a new receipt and its splits.
func (s *SQLiteStore) CreateReceipt(ctx context.Context, receipt *models.Receipt) error {
	// Generate ID if not set
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	if receipt.CreatedAt == 0 {
		receipt.CreatedAt = time.Now().Unix()
	}

	var note interface{} = nil
	if receipt.Note != "" {
		note = receipt.Note
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO receipts ("+receiptColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		receipt.ID, receipt.GroupID, receipt.PayerID, receipt.Total.String(), note, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert receipt: %w", err)
	}

	for i := range receipt.Splits {
		split := &receipt.Splits[i]
		split.ReceiptID = receipt.ID

		_, err = tx.ExecContext(ctx,
			"INSERT INTO receipt_splits (receipt_id, member_id, weight) VALUES (?, ?, ?)",
			split.ReceiptID, split.MemberID, split.Weight,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetReceipt retrieves a receipt by ID, including its splits.
func (s *SQLiteStore) GetReceipt(ctx context.Context, receiptID string) (*models.Receipt, error) {
	receipt, err := scanReceipt(s.db.QueryRowContext(ctx,
		"SELECT "+receiptColumns+" FROM receipts WHERE id = ?",
		receiptID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("receipt %s: %w", receiptID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	if err := s.loadSplits(ctx, []*models.Receipt{receipt}); err != nil {
		return nil, err
	}

	return receipt, nil
}

// ListReceiptsByGroup retrieves all receipts for a group, newest first.
func (s *SQLiteStore) ListReceiptsByGroup(ctx context.Context, groupID string) ([]*models.Receipt, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+receiptColumns+" FROM receipts WHERE group_id = ? ORDER BY created_at DESC, rowid DESC",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts by group: %w", err)
	}
	defer rows.Close()

	var receipts []*models.Receipt
	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		receipts = append(receipts, receipt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipts: %w", err)
	}

	if err := s.loadSplits(ctx, receipts); err != nil {
		return nil, err
	}

	return receipts, nil
}

// DeleteReceipt removes a receipt and its splits by ID.
func (s *SQLiteStore) DeleteReceipt(ctx context.Context, receiptID string) error {
	// Check if receipt exists
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM receipts WHERE id = ?", receiptID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("receipt %s: %w", receiptID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check receipt existence: %w", err)
	}

	_, err = s.db.ExecContext(ctx, "DELETE FROM receipts WHERE id = ?", receiptID)
	if err != nil {
		return fmt.Errorf("failed to delete receipt: %w", err)
	}

	return nil
}

// loadSplits fills in the splits of every receipt with a single IN query.
func (s *SQLiteStore) loadSplits(ctx context.Context, receipts []*models.Receipt) error {
	if len(receipts) == 0 {
		return nil
	}

	byID := make(map[string]*models.Receipt, len(receipts))
	args := make([]interface{}, len(receipts))
	for i, r := range receipts {
		byID[r.ID] = r
		args[i] = r.ID
	}

	query := `
		SELECT receipt_id, member_id, weight
		FROM receipt_splits
		WHERE receipt_id IN (?` + repeatPlaceholder(len(receipts)-1) + `)
		ORDER BY rowid`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var split models.Split
		if err := rows.Scan(&split.ReceiptID, &split.MemberID, &split.Weight); err != nil {
			return fmt.Errorf("failed to scan split: %w", err)
		}
		if r, ok := byID[split.ReceiptID]; ok {
			r.Splits = append(r.Splits, split)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating splits: %w", err)
	}

	return nil
}

func scanReceipt(row rowScanner) (*models.Receipt, error) {
	receipt := &models.Receipt{}
	var note sql.NullString

	if err := row.Scan(&receipt.ID, &receipt.GroupID, &receipt.PayerID,
		&receipt.Total, &note, &receipt.CreatedAt); err != nil {
		return nil, err
	}

	if note.Valid {
		receipt.Note = note.String
	}

	return receipt, nil
}

// repeatPlaceholder returns a string of ", ?" repeated n times.
// Used for building IN clauses with multiple placeholders.
func repeatPlaceholder(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(", ?", n)
}
