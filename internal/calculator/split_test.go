package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mmynk/potluck/internal/models"
)

func TestCalculateShares(t *testing.T) {
	tests := []struct {
		name   string
		total  string
		splits []models.Split
		roster map[string]bool
		want   map[string]string
	}{
		{
			name:  "even split between two",
			total: "10.00",
			splits: []models.Split{
				{MemberID: "alice", Weight: 1},
				{MemberID: "bob", Weight: 1},
			},
			want: map[string]string{"alice": "5", "bob": "5"},
		},
		{
			name:  "weighted split",
			total: "90.00",
			splits: []models.Split{
				{MemberID: "alice", Weight: 2},
				{MemberID: "bob", Weight: 1},
			},
			want: map[string]string{"alice": "60", "bob": "30"},
		},
		{
			name:  "fractional weights",
			total: "10.00",
			splits: []models.Split{
				{MemberID: "alice", Weight: 0.5},
				{MemberID: "bob", Weight: 1.5},
			},
			want: map[string]string{"alice": "2.5", "bob": "7.5"},
		},
		{
			name:   "no splits",
			total:  "15.00",
			splits: nil,
			want:   map[string]string{},
		},
		{
			name:  "zero weight sum",
			total: "15.00",
			splits: []models.Split{
				{MemberID: "alice", Weight: 0},
				{MemberID: "bob", Weight: 0},
			},
			want: map[string]string{},
		},
		{
			name:  "negative weight counts as zero",
			total: "12.00",
			splits: []models.Split{
				{MemberID: "alice", Weight: -3},
				{MemberID: "bob", Weight: 1},
			},
			want: map[string]string{"alice": "0", "bob": "12"},
		},
		{
			name:  "member outside roster keeps weight but gets no share",
			total: "30.00",
			splits: []models.Split{
				{MemberID: "alice", Weight: 1},
				{MemberID: "ghost", Weight: 2},
			},
			roster: map[string]bool{"alice": true},
			want:   map[string]string{"alice": "10"},
		},
		{
			name:  "duplicate member accumulates",
			total: "30.00",
			splits: []models.Split{
				{MemberID: "alice", Weight: 1},
				{MemberID: "alice", Weight: 1},
				{MemberID: "bob", Weight: 1},
			},
			want: map[string]string{"alice": "20", "bob": "10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateShares(decimal.RequireFromString(tt.total), tt.splits, tt.roster)
			assert.Len(t, got, len(tt.want))
			for id, want := range tt.want {
				share, ok := got[id]
				if assert.True(t, ok, "missing share for %s", id) {
					assert.True(t, decimal.RequireFromString(want).Equal(share),
						"%s share = %s, want %s", id, share, want)
				}
			}
		})
	}
}

func TestCalculateShares_ThirdsStayExact(t *testing.T) {
	splits := []models.Split{
		{MemberID: "a", Weight: 1},
		{MemberID: "b", Weight: 1},
		{MemberID: "c", Weight: 1},
	}

	shares := CalculateShares(decimal.RequireFromString("10.00"), splits, nil)

	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(s)
	}
	assert.True(t, sum.Sub(decimal.NewFromInt(10)).Abs().LessThan(Epsilon), "sum = %s", sum)
	assert.Equal(t, "3.33", shares["a"].StringFixed(2))
}
