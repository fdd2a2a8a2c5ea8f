package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_VariableProration(t *testing.T) {
	members := []Member{
		{ID: 1, Name: "A", ExpenseInput: "900"},
		{ID: 2, Name: "B"},
		{ID: 3, Name: "C"},
	}

	result, err := Compute(members, nil, 30)
	require.NoError(t, err)

	assert.Equal(t, 900.0, result.TotalVariable)
	assert.Equal(t, 90, result.TotalPersonDays)
	assert.InDelta(t, 10.0, result.CostPerPersonDay, 1e-9)

	require.Len(t, result.Balances, 3)
	assert.InDelta(t, 600.0, result.Balances[0].NetBalance, 1e-9)
	assert.InDelta(t, -300.0, result.Balances[1].NetBalance, 1e-9)
	assert.InDelta(t, -300.0, result.Balances[2].NetBalance, 1e-9)

	require.Len(t, result.Transactions, 2)
	assert.Equal(t, Transaction{From: "B", To: "A", Amount: 300}, result.Transactions[0])
	assert.Equal(t, Transaction{From: "C", To: "A", Amount: 300}, result.Transactions[1])
}

func TestCompute_CustomSplitWithGuest(t *testing.T) {
	members := []Member{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
	}
	splits := []CustomSplit{
		{ID: 1, PayerID: 1, Amount: 100, InvolvedIDs: []ParticipantID{
			MemberRef(1), MemberRef(2), GuestRef("Sam"),
		}},
	}

	result, err := Compute(members, splits, 30)
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.TotalCustom)
	require.Len(t, result.Balances, 3)

	guest := result.Balances[2]
	assert.True(t, guest.IsGuest)
	assert.Equal(t, "Sam (Guest)", guest.Name)
	assert.Zero(t, guest.VariableShare)
	assert.Zero(t, guest.FixedShare)
	assert.InDelta(t, 33.33, guest.NetBalance, 0.005)

	assert.InDelta(t, 66.67, result.Balances[0].NetBalance, 0.005)
	assert.InDelta(t, -33.33, result.Balances[1].NetBalance, 0.005)

	// B and the guest both pay A, rounded to whole units.
	require.Len(t, result.Transactions, 2)
	assert.Equal(t, Transaction{From: "B", To: "A", Amount: 33}, result.Transactions[0])
	assert.Equal(t, Transaction{From: "Sam (Guest)", To: "A", Amount: 33}, result.Transactions[1])
}

func TestCompute_GuestNeutrality(t *testing.T) {
	members := []Member{
		{ID: 1, Name: "A", ExpenseInput: "450", FixedExpenseInput: "600"},
		{ID: 2, Name: "B", DaysAbsent: 10},
	}
	splits := []CustomSplit{
		{ID: 1, PayerID: 2, Amount: 90, InvolvedIDs: []ParticipantID{
			MemberRef(2), GuestRef("Tara"),
		}},
	}

	result, err := Compute(members, splits, 30)
	require.NoError(t, err)

	require.Len(t, result.Balances, 3)
	guest := result.Balances[2]
	assert.True(t, guest.IsGuest)
	assert.Zero(t, guest.DaysPresent)
	assert.Zero(t, guest.VariableShare)
	assert.Zero(t, guest.FixedShare)
	assert.InDelta(t, -45.0, guest.NetBalance, 1e-9)
}

func TestCompute_Conservation(t *testing.T) {
	members := []Member{
		{ID: 1, Name: "A", ExpenseInput: "120.5, 300, 79.5", FixedExpenseInput: "1500"},
		{ID: 2, Name: "B", DaysAbsent: 7, ExpenseInput: "250"},
		{ID: 3, Name: "C", DaysAbsent: 30},
		{ID: 4, Name: "D", ExpenseInput: "42.42"},
	}
	splits := []CustomSplit{
		{ID: 1, PayerID: 1, Amount: 333, InvolvedIDs: []ParticipantID{
			MemberRef(1), MemberRef(2), GuestRef("Sam"),
		}},
		{ID: 2, PayerID: 4, Amount: 75.5, InvolvedIDs: []ParticipantID{
			MemberRef(3), MemberRef(4),
		}},
	}

	result, err := Compute(members, splits, 30)
	require.NoError(t, err)

	var sum float64
	for _, b := range result.Balances {
		sum += b.NetBalance
	}
	assert.InDelta(t, 0, sum, 0.01*float64(len(result.Balances)))
}

func TestCompute_ZeroPersonDays(t *testing.T) {
	members := []Member{
		{ID: 1, Name: "A", DaysAbsent: 30, ExpenseInput: "500"},
		{ID: 2, Name: "B", DaysAbsent: 30},
	}

	result, err := Compute(members, nil, 30)
	require.NoError(t, err)

	assert.Zero(t, result.TotalPersonDays)
	assert.Zero(t, result.CostPerPersonDay)
	for _, b := range result.Balances {
		assert.Zero(t, b.VariableShare)
	}
}

func TestCompute_NoMembers(t *testing.T) {
	_, err := Compute(nil, nil, 30)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeNoMembers, verr.Code)
}

func TestCompute_EmptyMemberName(t *testing.T) {
	members := []Member{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "   "},
		{ID: 3, Name: ""},
	}

	_, err := Compute(members, nil, 30)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeEmptyMemberName, verr.Code)
	assert.ElementsMatch(t, []int64{2, 3}, verr.MemberIDs)
}

func TestCompute_DuplicateMemberName(t *testing.T) {
	members := []Member{
		{ID: 1, Name: "Ravi"},
		{ID: 2, Name: "ravi "},
		{ID: 3, Name: "C"},
	}

	_, err := Compute(members, nil, 30)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeDuplicateMemberName, verr.Code)
	assert.ElementsMatch(t, []int64{1, 2}, verr.MemberIDs)
}

func TestCompute_GuestDeduplication(t *testing.T) {
	members := []Member{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	splits := []CustomSplit{
		{ID: 1, PayerID: 1, Amount: 60, InvolvedIDs: []ParticipantID{
			MemberRef(1), GuestRef("Sam"),
		}},
		{ID: 2, PayerID: 2, Amount: 40, InvolvedIDs: []ParticipantID{
			MemberRef(2), GuestRef(" Sam "),
		}},
	}

	result, err := Compute(members, splits, 30)
	require.NoError(t, err)

	// One synthesized entry carrying debits from both splits.
	require.Len(t, result.Balances, 3)
	guest := result.Balances[2]
	assert.Equal(t, "Sam (Guest)", guest.Name)
	assert.InDelta(t, -50.0, guest.NetBalance, 1e-9)
}

func TestCompute_MissingPayerStillDebits(t *testing.T) {
	// The payer was removed from the group but the split remains: the
	// credit is skipped, the debits and the custom total are not.
	members := []Member{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	splits := []CustomSplit{
		{ID: 1, PayerID: 99, Amount: 80, InvolvedIDs: []ParticipantID{
			MemberRef(1), MemberRef(2),
		}},
	}

	result, err := Compute(members, splits, 30)
	require.NoError(t, err)

	assert.Equal(t, 80.0, result.TotalCustom)
	assert.InDelta(t, -40.0, result.Balances[0].NetBalance, 1e-9)
	assert.InDelta(t, -40.0, result.Balances[1].NetBalance, 1e-9)
}

func TestCompute_DefaultDaysInPeriod(t *testing.T) {
	members := []Member{
		{ID: 1, Name: "A", ExpenseInput: "900"},
		{ID: 2, Name: "B"},
		{ID: 3, Name: "C"},
	}

	result, err := Compute(members, nil, 0)
	require.NoError(t, err)

	assert.Equal(t, 90, result.TotalPersonDays)
}

func TestCompute_Deterministic(t *testing.T) {
	members := []Member{
		{ID: 1, Name: "A", ExpenseInput: "120, 310"},
		{ID: 2, Name: "B", DaysAbsent: 4, FixedExpenseInput: "800"},
		{ID: 3, Name: "C", ExpenseInput: "77.7"},
	}
	splits := []CustomSplit{
		{ID: 1, PayerID: 3, Amount: 150, InvolvedIDs: []ParticipantID{
			MemberRef(1), MemberRef(3), GuestRef("Sam"),
		}},
	}

	first, err := Compute(members, splits, 30)
	require.NoError(t, err)
	second, err := Compute(members, splits, 30)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompute_NonFiniteTokensIgnored(t *testing.T) {
	members := []Member{
		{ID: 1, Name: "A", ExpenseInput: "NaN, 900"},
		{ID: 2, Name: "B", FixedExpenseInput: "inf"},
	}

	result, err := Compute(members, nil, 30)
	require.NoError(t, err)

	assert.Equal(t, 900.0, result.TotalVariable)
	assert.Zero(t, result.TotalFixed)

	require.Len(t, result.Balances, 2)
	assert.False(t, math.IsNaN(result.Balances[0].NetBalance))
	assert.InDelta(t, 450.0, result.Balances[0].NetBalance, 1e-9)
	assert.InDelta(t, -450.0, result.Balances[1].NetBalance, 1e-9)

	require.Len(t, result.Transactions, 1)
	assert.Equal(t, Transaction{From: "B", To: "A", Amount: 450}, result.Transactions[0])
}
