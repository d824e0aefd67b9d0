package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/potluck/internal/models"
)

// CalculateShares divides a receipt total among its splits in proportion to weight.
// Based on the algorithm: share = total × weight / Σ weights
//
// Shares are exact decimals (not rounded). Negative weights count as zero.
// Splits naming a member outside roster still count towards the weight sum but
// receive no share, so their portion stays with the payer. A nil roster accepts
// every member. Returns an empty map when the weight sum is zero.
func CalculateShares(total decimal.Decimal, splits []models.Split, roster map[string]bool) map[string]decimal.Decimal {
	shares := make(map[string]decimal.Decimal)

	totalWeight := decimal.Zero
	for _, s := range splits {
		totalWeight = totalWeight.Add(weightOf(s))
	}
	if !totalWeight.IsPositive() {
		return shares
	}

	for _, s := range splits {
		if roster != nil && !roster[s.MemberID] {
			continue
		}
		share := total.Mul(weightOf(s)).Div(totalWeight)
		// A member may appear in more than one split of the same receipt.
		shares[s.MemberID] = shares[s.MemberID].Add(share)
	}

	return shares
}

func weightOf(s models.Split) decimal.Decimal {
	if s.Weight <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(s.Weight)
}
