// Package calculator computes group balances and the payments that settle them.
// Every function is pure: inputs are never mutated and no state is kept between calls.
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/potluck/internal/models"
)

// CurrencyPlaces is the number of decimal places money is presented with.
const CurrencyPlaces = 2

// Epsilon is the tolerance under which a residue is treated as settled.
var Epsilon = decimal.New(1, -CurrencyPlaces)

// ComputeBalances folds receipts into one signed balance per member.
// Positive = is owed money, Negative = owes money.
//
// Algorithm:
//   - Every member in memberIDs starts at exact zero
//   - For each receipt: payer is credited the full total
//   - Each split beneficiary is debited total × weight / Σ weights
//   - No splits, or a zero weight sum, means credit only
//   - Payers and beneficiaries outside memberIDs are skipped
//
// The returned balances are exact; use RoundBalances for presentation.
func ComputeBalances(memberIDs []string, receipts []*models.Receipt) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal, len(memberIDs))
	roster := make(map[string]bool, len(memberIDs))
	for _, id := range memberIDs {
		balances[id] = decimal.Zero
		roster[id] = true
	}

	for _, receipt := range receipts {
		if receipt == nil {
			continue
		}

		if roster[receipt.PayerID] {
			balances[receipt.PayerID] = balances[receipt.PayerID].Add(receipt.Total)
		}

		for memberID, share := range CalculateShares(receipt.Total, receipt.Splits, roster) {
			balances[memberID] = balances[memberID].Sub(share)
		}
	}

	return balances
}

// RoundBalances returns a copy of balances rounded to currency precision.
func RoundBalances(balances map[string]decimal.Decimal) map[string]decimal.Decimal {
	rounded := make(map[string]decimal.Decimal, len(balances))
	for id, amount := range balances {
		rounded[id] = amount.Round(CurrencyPlaces)
	}
	return rounded
}

// GetBalances computes the currency-rounded balance of every group member.
func GetBalances(members []*models.Member, receipts []*models.Receipt) map[string]decimal.Decimal {
	return RoundBalances(ComputeBalances(memberIDs(members), receipts))
}

// GetSettlements computes the suggested payments for a group, labelled with
// member display names. Unknown IDs get an empty name.
func GetSettlements(members []*models.Member, receipts []*models.Receipt) []models.Settlement {
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	transfers := Settle(ComputeBalances(memberIDs(members), receipts))

	settlements := make([]models.Settlement, len(transfers))
	for i, t := range transfers {
		settlements[i] = models.Settlement{
			FromID:   t.From,
			FromName: names[t.From],
			ToID:     t.To,
			ToName:   names[t.To],
			Amount:   t.Amount,
		}
	}
	return settlements
}

func memberIDs(members []*models.Member) []string {
	ids := make([]string, 0, len(members))
	for _, m := range members {
		if m != nil {
			ids = append(ids, m.ID)
		}
	}
	return ids
}
