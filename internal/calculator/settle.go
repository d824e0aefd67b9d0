package calculator

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Transfer represents a payment from one member to another.
type Transfer struct {
	From   string          // Member who owes
	To     string          // Member who is owed
	Amount decimal.Decimal // Always > 0, at currency precision
}

type position struct {
	id     string
	amount decimal.Decimal
}

// Settle reduces a balance map to an ordered list of transfers that zero it out.
// The input map is not modified.
//
// Algorithm (greedy, largest first):
//   - Round balances to currency precision; drop anything within Epsilon of zero
//   - Debtors ascending (largest debt first), creditors descending (largest credit first),
//     ties broken by member ID so the output is reproducible
//   - Walk both lists with one cursor each, transferring min(|debt|, credit)
//   - Advance a cursor once its remaining balance is within Epsilon of zero
//
// Each step settles at least one side exactly, so the result has at most
// len(debtors)+len(creditors)-1 entries.
func Settle(balances map[string]decimal.Decimal) []Transfer {
	var debtors, creditors []position
	for id, amount := range balances {
		val := amount.Round(CurrencyPlaces)
		if val.Abs().LessThanOrEqual(Epsilon) {
			continue
		}
		if val.IsNegative() {
			debtors = append(debtors, position{id: id, amount: val})
		} else {
			creditors = append(creditors, position{id: id, amount: val})
		}
	}

	slices.SortFunc(debtors, func(a, b position) int {
		if c := a.amount.Cmp(b.amount); c != 0 {
			return c
		}
		return strings.Compare(a.id, b.id)
	})
	slices.SortFunc(creditors, func(a, b position) int {
		if c := b.amount.Cmp(a.amount); c != 0 {
			return c
		}
		return strings.Compare(a.id, b.id)
	})

	transfers := []Transfer{}
	i, j := 0, 0 // debtor, creditor
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		amount := decimal.Min(debtor.amount.Abs(), creditor.amount)
		if amount.IsPositive() {
			transfers = append(transfers, Transfer{
				From:   debtor.id,
				To:     creditor.id,
				Amount: amount,
			})
		}

		debtor.amount = debtor.amount.Add(amount)
		creditor.amount = creditor.amount.Sub(amount)

		if debtor.amount.Abs().LessThan(Epsilon) {
			i++
		}
		if creditor.amount.Abs().LessThan(Epsilon) {
			j++
		}
	}

	return transfers
}
