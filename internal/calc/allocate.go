package calc

import "math"

// allocate fills in the per-category shares and net balances on the ledger
// entries and returns the category totals.
//
// Variable costs are prorated over person-days of non-guest participants;
// fixed costs are divided per non-guest head; custom splits are divided
// equally among their involved participants, crediting the payer. Zero
// person-days or zero members yield zero shares rather than an error.
func allocate(entries []*LedgerEntry, splits []CustomSplit) (totalVariable, totalFixed, totalCustom float64, totalPersonDays int, costPerPersonDay float64) {
	byID := make(map[ParticipantID]*LedgerEntry, len(entries))
	realCount := 0
	for _, e := range entries {
		byID[e.ID] = e
		totalVariable += e.TotalPaidVar
		totalFixed += e.TotalPaidFix
		if !e.IsGuest {
			realCount++
			totalPersonDays += e.DaysPresent
		}
	}

	if totalPersonDays > 0 {
		costPerPersonDay = totalVariable / float64(totalPersonDays)
	}
	fixedPerPerson := 0.0
	if realCount > 0 {
		fixedPerPerson = totalFixed / float64(realCount)
	}

	for _, s := range splits {
		totalCustom += s.Amount
		// A split whose payer was removed still debits the involved
		// participants; only the credit is skipped.
		if payer, ok := byID[MemberRef(s.PayerID)]; ok {
			payer.CustomCredit += s.Amount
		}
		if len(s.InvolvedIDs) == 0 {
			continue
		}
		share := s.Amount / float64(len(s.InvolvedIDs))
		for _, id := range s.InvolvedIDs {
			if e, ok := byID[id]; ok {
				e.CustomDebit += share
			}
		}
	}

	for _, e := range entries {
		if !e.IsGuest {
			e.VariableShare = float64(e.DaysPresent) * costPerPersonDay
			e.FixedShare = fixedPerPerson
		}
		e.CustomShare = e.CustomDebit
		net := (e.TotalPaidVar + e.TotalPaidFix + e.CustomCredit) - (e.VariableShare + e.FixedShare + e.CustomShare)
		e.NetBalance = roundToTwoDecimals(net)
	}

	return totalVariable, totalFixed, totalCustom, totalPersonDays, costPerPersonDay
}

// roundToTwoDecimals rounds a float to 2 decimal places.
func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
