package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func entry(name string, balance float64) *LedgerEntry {
	return &LedgerEntry{Name: name, NetBalance: balance}
}

func TestSettle_GreedyMatching(t *testing.T) {
	tests := []struct {
		name    string
		entries []*LedgerEntry
		want    []Transaction
	}{
		{
			name: "largest debtor pays largest creditor first",
			entries: []*LedgerEntry{
				entry("A", 500),
				entry("B", -350),
				entry("C", -150),
			},
			want: []Transaction{
				{From: "B", To: "A", Amount: 350},
				{From: "C", To: "A", Amount: 150},
			},
		},
		{
			name: "one debtor split across creditors",
			entries: []*LedgerEntry{
				entry("A", 120),
				entry("B", 80),
				entry("C", -200),
			},
			want: []Transaction{
				{From: "C", To: "A", Amount: 120},
				{From: "C", To: "B", Amount: 80},
			},
		},
		{
			name: "all settled",
			entries: []*LedgerEntry{
				entry("A", 0.005),
				entry("B", -0.005),
			},
			want: []Transaction{},
		},
		{
			name: "sub-unit residual emits no transaction",
			entries: []*LedgerEntry{
				entry("A", 0.4),
				entry("B", -0.4),
			},
			want: []Transaction{},
		},
		{
			name: "half units round to nearest whole",
			entries: []*LedgerEntry{
				entry("A", 33.4),
				entry("B", -33.4),
			},
			want: []Transaction{
				{From: "B", To: "A", Amount: 33},
			},
		},
		{
			name: "ties keep ledger order",
			entries: []*LedgerEntry{
				entry("A", -100),
				entry("B", -100),
				entry("C", 200),
			},
			want: []Transaction{
				{From: "A", To: "C", Amount: 100},
				{From: "B", To: "C", Amount: 100},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, settle(tt.entries))
		})
	}
}

func TestSettle_ResidualTolerated(t *testing.T) {
	// Upstream rounding can make debits and credits disagree; the reducer
	// terminates once either side is exhausted instead of reconciling.
	entries := []*LedgerEntry{
		entry("A", 100),
		entry("B", -60),
	}

	got := settle(entries)

	assert.Equal(t, []Transaction{{From: "B", To: "A", Amount: 60}}, got)
}
