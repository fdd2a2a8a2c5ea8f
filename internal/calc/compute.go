// Package calc is the balance and settlement core: a pure, stateless
// function from a group snapshot (members, custom splits, days in period)
// to per-participant net balances and a reduced settlement plan. It has no
// I/O and no shared state, so it is safe to invoke concurrently.
package calc

// Compute validates the snapshot, allocates cost shares, and reduces the
// resulting balances to a settlement plan. It returns a *ValidationError
// (and no result) when the member list is invalid; it never fails on
// arithmetic edge cases, which all degrade to zero shares.
func Compute(members []Member, splits []CustomSplit, daysInPeriod int) (*Result, error) {
	entries, verr := normalize(members, splits, daysInPeriod)
	if verr != nil {
		return nil, verr
	}

	totalVariable, totalFixed, totalCustom, totalPersonDays, costPerPersonDay := allocate(entries, splits)
	transactions := settle(entries)

	balances := make([]LedgerEntry, len(entries))
	for i, e := range entries {
		balances[i] = *e
	}

	return &Result{
		TotalVariable:    totalVariable,
		TotalFixed:       totalFixed,
		TotalCustom:      totalCustom,
		TotalPersonDays:  totalPersonDays,
		CostPerPersonDay: costPerPersonDay,
		Balances:         balances,
		Transactions:     transactions,
	}, nil
}
