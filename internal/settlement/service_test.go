package settlement

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akaul/fairsplit/internal/calc"
	"github.com/akaul/fairsplit/internal/group"
	"github.com/akaul/fairsplit/internal/member"
	"github.com/akaul/fairsplit/internal/split"
)

type stubDrafter struct {
	calls int
}

func (s *stubDrafter) DraftSettlementMessage(ctx context.Context, transactions []calc.Transaction) (string, error) {
	s.calls++
	return fmt.Sprintf("settle %d transfers", len(transactions)), nil
}

type testEnv struct {
	service *Service
	group   *group.Group
	members *member.StubRepository
	splits  *split.StubRepository
	drafter *stubDrafter
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	groups := group.NewStubRepository()
	g, err := groups.Create(context.Background(), &group.Group{
		ID:           uuid.New(),
		RoomCode:     "K9X2M4",
		Name:         "Flat 301",
		DaysInPeriod: 30,
	})
	require.NoError(t, err)

	members := member.NewStubRepository()
	splits := split.NewStubRepository()
	drafter := &stubDrafter{}
	return &testEnv{
		service: NewService(groups, members, splits, drafter),
		group:   g,
		members: members,
		splits:  splits,
		drafter: drafter,
	}
}

func (e *testEnv) addMember(t *testing.T, name, expenses string, daysAbsent int) *member.Member {
	t.Helper()
	m, err := e.members.Create(context.Background(), &member.Member{
		GroupID:      e.group.ID,
		Name:         name,
		ExpenseInput: expenses,
		DaysAbsent:   daysAbsent,
	})
	require.NoError(t, err)
	return m
}

func TestService_Compute(t *testing.T) {
	env := newTestEnv(t)

	env.addMember(t, "Ana", "900", 0)
	env.addMember(t, "Ben", "", 0)

	result, err := env.service.Compute(context.Background(), env.group.RoomCode)
	require.NoError(t, err)

	assert.InDelta(t, 900.0, result.TotalVariable, 0.001)
	require.Len(t, result.Balances, 2)
	assert.InDelta(t, 450.0, result.Balances[0].NetBalance, 0.001)
	assert.InDelta(t, -450.0, result.Balances[1].NetBalance, 0.001)

	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "Ben", result.Transactions[0].From)
	assert.Equal(t, "Ana", result.Transactions[0].To)
	assert.Equal(t, int64(450), result.Transactions[0].Amount)
}

func TestService_Compute_IncludesSplitGuests(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ana := env.addMember(t, "Ana", "", 0)
	env.addMember(t, "Ben", "", 0)

	_, err := env.splits.Create(ctx, &split.CustomSplit{
		GroupID: env.group.ID,
		PayerID: ana.ID,
		Amount:  90,
		InvolvedIDs: []calc.ParticipantID{
			calc.MemberRef(ana.ID), calc.GuestRef("Sam"),
		},
	})
	require.NoError(t, err)

	result, err := env.service.Compute(ctx, env.group.RoomCode)
	require.NoError(t, err)

	require.Len(t, result.Balances, 3)
	assert.Equal(t, "Sam (Guest)", result.Balances[2].Name)
	assert.True(t, result.Balances[2].IsGuest)
	assert.InDelta(t, -45.0, result.Balances[2].NetBalance, 0.001)
}

func TestService_Compute_ValidationError(t *testing.T) {
	env := newTestEnv(t)

	env.addMember(t, "Ana", "100", 0)
	unnamed := env.addMember(t, "", "", 0)

	_, err := env.service.Compute(context.Background(), env.group.RoomCode)

	var validationErr *calc.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, calc.CodeEmptyMemberName, validationErr.Code)
	assert.Equal(t, []int64{unnamed.ID}, validationErr.MemberIDs)
}

func TestService_Compute_UnknownGroup(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.Compute(context.Background(), "ZZZZZZ")
	assert.ErrorIs(t, err, group.ErrGroupNotFound)
}

func TestService_Draft(t *testing.T) {
	env := newTestEnv(t)

	env.addMember(t, "Ana", "900", 0)
	env.addMember(t, "Ben", "", 0)

	message, err := env.service.Draft(context.Background(), env.group.RoomCode)
	require.NoError(t, err)

	assert.Equal(t, "settle 1 transfers", message)
	assert.Equal(t, 1, env.drafter.calls)
}

func TestService_Draft_NothingToSettle(t *testing.T) {
	env := newTestEnv(t)

	env.addMember(t, "Ana", "100", 0)
	env.addMember(t, "Ben", "100", 0)

	_, err := env.service.Draft(context.Background(), env.group.RoomCode)
	assert.ErrorIs(t, err, ErrNothingToSettle)
	assert.Zero(t, env.drafter.calls)
}
