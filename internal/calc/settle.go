package calc

import (
	"math"
	"sort"
)

// settledBand is the balance magnitude under which a participant counts as
// settled; it absorbs floating-point noise from the share arithmetic.
const settledBand = 0.01

type party struct {
	name    string
	balance float64
}

// settle nets the signed balances into point-to-point transactions using
// greedy largest-vs-largest matching. Amounts are rounded to the nearest
// whole unit for display; balances are decremented by the exact amounts, so
// a pairing whose rounded amount is 0 emits nothing but still progresses.
//
// The greedy plan is deterministic but not guaranteed transaction-count
// optimal, and independent rounding upstream can leave a small unresolved
// residual. The plan is advisory, not exact.
func settle(entries []*LedgerEntry) []Transaction {
	var debtors, creditors []party
	for _, e := range entries {
		switch {
		case e.NetBalance < -settledBand:
			debtors = append(debtors, party{name: e.Name, balance: e.NetBalance})
		case e.NetBalance > settledBand:
			creditors = append(creditors, party{name: e.Name, balance: e.NetBalance})
		}
	}

	// Stable sorts keep ties in ledger order so reruns produce identical plans.
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].balance < debtors[j].balance
	})
	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].balance > creditors[j].balance
	})

	transactions := []Transaction{}
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		d, c := &debtors[i], &creditors[j]

		exact := math.Min(-d.balance, c.balance)
		display := int64(math.Round(exact))
		if display > 0 {
			transactions = append(transactions, Transaction{
				From:   d.name,
				To:     c.name,
				Amount: display,
			})
		}

		d.balance += exact
		c.balance -= exact
		if math.Abs(d.balance) < settledBand {
			i++
		}
		if c.balance < settledBand {
			j++
		}
	}

	return transactions
}
