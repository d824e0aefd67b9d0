package models

import "github.com/shopspring/decimal"

// Settlement is a suggested payment that reduces open balances.
// Settlements are derived from receipts and are never persisted.
type Settlement struct {
	// FromID is the member who owes money and should pay.
	FromID   string
	FromName string

	// ToID is the member who is owed money and should receive.
	ToID   string
	ToName string

	// Amount is strictly positive, at currency precision.
	Amount decimal.Decimal
}
