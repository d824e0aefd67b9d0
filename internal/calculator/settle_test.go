package calculator

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/potluck/internal/models"
)

func balancesOf(kv map[string]string) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(kv))
	for id, v := range kv {
		out[id] = d(v)
	}
	return out
}

// applyTransfers debits each payer and credits each payee, returning the result.
func applyTransfers(balances map[string]decimal.Decimal, transfers []Transfer) map[string]decimal.Decimal {
	out := RoundBalances(balances)
	for _, tr := range transfers {
		out[tr.From] = out[tr.From].Add(tr.Amount)
		out[tr.To] = out[tr.To].Sub(tr.Amount)
	}
	return out
}

func nonZero(balances map[string]decimal.Decimal) (debtors, creditors int) {
	for _, b := range balances {
		v := b.Round(CurrencyPlaces)
		switch {
		case v.Abs().LessThanOrEqual(Epsilon):
		case v.IsNegative():
			debtors++
		default:
			creditors++
		}
	}
	return debtors, creditors
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name     string
		balances map[string]string
		want     []string // "from->to:amount"
	}{
		{
			name:     "scenario A",
			balances: map[string]string{"alice": "5.00", "bob": "-5.00"},
			want:     []string{"bob->alice:5.00"},
		},
		{
			name:     "scenario B",
			balances: map[string]string{"alice": "20.00", "bob": "-10.00", "carol": "-10.00"},
			want:     []string{"bob->alice:10.00", "carol->alice:10.00"},
		},
		{
			name:     "largest debt meets largest credit first",
			balances: map[string]string{"a": "30.00", "b": "10.00", "c": "-25.00", "d": "-15.00"},
			want:     []string{"c->a:25.00", "d->a:5.00", "d->b:10.00"},
		},
		{
			name:     "rounding residue does not create extra transfers",
			balances: map[string]string{"a": "6.6666666667", "b": "-3.3333333333", "c": "-3.3333333334"},
			want:     []string{"b->a:3.33", "c->a:3.33"},
		},
		{
			name:     "one cent balances are treated as settled",
			balances: map[string]string{"a": "0.01", "b": "-0.01"},
			want:     nil,
		},
		{
			name:     "empty",
			balances: map[string]string{},
			want:     nil,
		},
		{
			name:     "single member at zero",
			balances: map[string]string{"m": "0.00"},
			want:     nil,
		},
		{
			name:     "scenario C: lone creditor",
			balances: map[string]string{"alice": "15.00", "bob": "0.00"},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Settle(balancesOf(tt.balances))
			require.NotNil(t, got)

			var rendered []string
			for _, tr := range got {
				rendered = append(rendered, fmt.Sprintf("%s->%s:%s", tr.From, tr.To, tr.Amount.StringFixed(2)))
			}
			assert.Equal(t, tt.want, rendered)
		})
	}
}

func TestSettle_TiesAreDeterministic(t *testing.T) {
	balances := balancesOf(map[string]string{
		"dave": "10.00", "erin": "10.00", "frank": "10.00",
		"alice": "-10.00", "bob": "-10.00", "carol": "-10.00",
	})

	first := Settle(balances)
	require.Len(t, first, 3)
	assert.Equal(t, "alice", first[0].From)
	assert.Equal(t, "dave", first[0].To)
	assert.Equal(t, "carol", first[2].From)
	assert.Equal(t, "frank", first[2].To)

	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Settle(balances))
	}
}

func TestSettle_DoesNotMutateInput(t *testing.T) {
	balances := balancesOf(map[string]string{"a": "12.345", "b": "-12.345"})

	Settle(balances)

	assert.Equal(t, "12.345", balances["a"].String())
	assert.Equal(t, "-12.345", balances["b"].String())
}

func TestSettle_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		n := 1 + rng.Intn(9)
		members := make([]string, n)
		for i := range members {
			members[i] = fmt.Sprintf("m%d", i)
		}

		var receipts []*models.Receipt
		for r := 0; r < 1+rng.Intn(6); r++ {
			total := decimal.New(int64(rng.Intn(100000)), -CurrencyPlaces)
			rec := &models.Receipt{PayerID: members[rng.Intn(n)], Total: total}
			for _, m := range members {
				if rng.Intn(3) > 0 {
					rec.Splits = append(rec.Splits, split(m, float64(rng.Intn(4))))
				}
			}
			receipts = append(receipts, rec)
		}

		balances := ComputeBalances(members, receipts)
		transfers := Settle(balances)

		debtors, creditors := nonZero(balances)
		if debtors+creditors > 0 {
			assert.LessOrEqual(t, len(transfers), debtors+creditors-1, "round %d", round)
		} else {
			assert.Empty(t, transfers, "round %d", round)
		}

		for _, tr := range transfers {
			assert.True(t, tr.Amount.IsPositive(), "round %d: non-positive transfer %v", round, tr)
		}

		assertLeftover(t, balances, transfers, "round %d", round)
	}
}

func TestSettle_ZeroSumSettlesCompletely(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 200; round++ {
		balances := zeroSumBalances(rng, 2+rng.Intn(12))
		transfers := Settle(balances)

		for id, b := range applyTransfers(balances, transfers) {
			assert.True(t, b.IsZero(), "round %d: %s left with %s", round, id, b)
		}
	}
}

func TestSettle_RoundingImbalanceStaysWithOneSide(t *testing.T) {
	members := []string{"payer"}
	for i := 1; i < 30; i++ {
		members = append(members, fmt.Sprintf("m%02d", i))
	}
	receipt := &models.Receipt{PayerID: "payer", Total: d("100.00")}
	for _, m := range members {
		receipt.Splits = append(receipt.Splits, split(m, 1))
	}

	balances := ComputeBalances(members, []*models.Receipt{receipt})
	assert.Equal(t, "96.6666666666666667", balances["payer"].String())

	transfers := Settle(balances)
	require.Len(t, transfers, 29)
	for _, tr := range transfers {
		assert.Equal(t, "payer", tr.To)
		assert.Equal(t, "3.33", tr.Amount.StringFixed(2))
	}

	after := applyTransfers(balances, transfers)
	assert.Equal(t, "0.10", after["payer"].StringFixed(2))
	assert.Equal(t, "0.10", roundedSum(balances).StringFixed(2))
	for _, m := range members[1:] {
		assert.True(t, after[m].IsZero(), "%s left with %s", m, after[m])
	}
	assertLeftover(t, balances, transfers)
}

func TestSettle_OneCentBalancesAreLeftAlone(t *testing.T) {
	balances := balancesOf(map[string]string{"a": "0.01", "b": "0.01", "c": "-0.02"})

	transfers := Settle(balances)
	assert.Empty(t, transfers)

	after := applyTransfers(balances, transfers)
	assert.Equal(t, "-0.02", after["c"].StringFixed(2))
	assertLeftover(t, balances, transfers)
}

// assertLeftover checks what remains once transfers are applied. Members
// Settle acted on end at zero except on one side, whose leftover adds up to
// their rounded imbalance. Members within a cent of zero keep their balance.
func assertLeftover(t *testing.T, balances map[string]decimal.Decimal, transfers []Transfer, msgAndArgs ...any) {
	t.Helper()

	after := applyTransfers(balances, transfers)
	imbalance, residue := decimal.Zero, decimal.Zero
	var owed, owing bool
	for id, r := range RoundBalances(balances) {
		left := after[id]
		if r.Abs().LessThanOrEqual(Epsilon) {
			assert.Truef(t, left.Equal(r), "%s moved from %s to %s", id, r, left)
			continue
		}
		imbalance = imbalance.Add(r)
		residue = residue.Add(left)
		owed = owed || left.IsPositive()
		owing = owing || left.IsNegative()
	}

	assert.False(t, owed && owing, msgAndArgs...)
	assert.True(t, residue.Equal(imbalance), msgAndArgs...)
	assert.True(t, sumOf(after).Equal(roundedSum(balances)), msgAndArgs...)
}

// zeroSumBalances returns n cent-precise balances summing to zero, none of
// them exactly one cent away from zero.
func zeroSumBalances(rng *rand.Rand, n int) map[string]decimal.Decimal {
	for {
		out := make(map[string]decimal.Decimal, n)
		sum := decimal.Zero
		for i := 0; i < n-1; i++ {
			v := decimal.New(int64(rng.Intn(20001)-10000), -CurrencyPlaces)
			if v.Abs().Equal(Epsilon) {
				v = decimal.Zero
			}
			out[fmt.Sprintf("m%d", i)] = v
			sum = sum.Add(v)
		}
		if sum.Abs().Equal(Epsilon) {
			continue
		}
		out[fmt.Sprintf("m%d", n-1)] = sum.Neg()
		return out
	}
}

func sumOf(balances map[string]decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, b := range balances {
		sum = sum.Add(b)
	}
	return sum
}

func roundedSum(balances map[string]decimal.Decimal) decimal.Decimal {
	return sumOf(RoundBalances(balances))
}
