package calc

import "strings"

// DefaultDaysInPeriod is used when the caller passes a non-positive period.
const DefaultDaysInPeriod = 30

// normalize validates the member list and builds the working ledger: one
// entry per member plus one synthesized entry per distinct guest referenced
// by a custom split. Entries keep the input order, members first and guests
// in first-reference order, which keeps results deterministic.
func normalize(members []Member, splits []CustomSplit, daysInPeriod int) ([]*LedgerEntry, *ValidationError) {
	if len(members) == 0 {
		return nil, errNoMembers()
	}

	var emptyIDs []int64
	seen := make(map[string][]int64, len(members))
	for _, m := range members {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			emptyIDs = append(emptyIDs, m.ID)
			continue
		}
		key := strings.ToLower(name)
		seen[key] = append(seen[key], m.ID)
	}
	if len(emptyIDs) > 0 {
		return nil, errEmptyMemberName(emptyIDs)
	}

	var dupIDs []int64
	for _, m := range members {
		key := strings.ToLower(strings.TrimSpace(m.Name))
		if len(seen[key]) > 1 {
			dupIDs = append(dupIDs, m.ID)
		}
	}
	if len(dupIDs) > 0 {
		return nil, errDuplicateMemberName(dupIDs)
	}

	if daysInPeriod < 1 {
		daysInPeriod = DefaultDaysInPeriod
	}

	entries := make([]*LedgerEntry, 0, len(members))
	for _, m := range members {
		daysPresent := daysInPeriod - m.DaysAbsent
		if daysPresent < 0 {
			daysPresent = 0
		}
		entries = append(entries, &LedgerEntry{
			ID:           MemberRef(m.ID),
			Name:         m.Name,
			DaysPresent:  daysPresent,
			TotalPaidVar: SumExpenses(m.ExpenseInput),
			TotalPaidFix: SumExpenses(m.FixedExpenseInput),
		})
	}

	// Expand guests referenced by custom splits into synthetic entries.
	// Guests never owe variable or fixed shares, so they get zero days
	// present and no expense totals. Duplicate references map to one entry.
	guests := make(map[string]bool)
	for _, s := range splits {
		for _, id := range s.InvolvedIDs {
			name, ok := id.GuestName()
			if !ok || guests[name] {
				continue
			}
			guests[name] = true
			entries = append(entries, &LedgerEntry{
				ID:      GuestRef(name),
				Name:    name + " (Guest)",
				IsGuest: true,
			})
		}
	}

	return entries, nil
}
