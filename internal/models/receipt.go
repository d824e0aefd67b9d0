package models

import "github.com/shopspring/decimal"

// DefaultWeight is the weight of a split when none is given.
const DefaultWeight = 1.0

// SettlementNote marks receipts recorded when a suggested payment is made.
const SettlementNote = "Settlement"

// Receipt represents an expense paid by one member on behalf of the group.
type Receipt struct {
	// ID is the unique identifier for the receipt (UUID format).
	ID string

	// GroupID is the group this receipt belongs to.
	GroupID string

	// PayerID is the member who paid the full total.
	PayerID string

	// Total is the amount paid, at currency precision.
	Total decimal.Decimal

	// Note is an optional description ("Groceries", "Settlement").
	Note string

	// Splits divide Total among beneficiaries in proportion to their weights.
	// A receipt without splits only credits the payer.
	Splits []Split

	// CreatedAt is the Unix timestamp when the receipt was recorded. Audit only.
	CreatedAt int64
}

// Split is one member's weighted claim on a receipt's total.
type Split struct {
	ReceiptID string
	MemberID  string
	Weight    float64
}
