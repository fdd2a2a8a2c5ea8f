package split

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akaul/fairsplit/internal/calc"
	"github.com/akaul/fairsplit/internal/group"
)

type stubMemberChecker struct {
	members map[int64]bool
}

func (s *stubMemberChecker) Exists(ctx context.Context, groupID uuid.UUID, memberID int64) (bool, error) {
	return s.members[memberID], nil
}

func newTestService(t *testing.T) (*Service, *group.Group) {
	t.Helper()

	groups := group.NewStubRepository()
	g, err := groups.Create(context.Background(), &group.Group{
		ID:       uuid.New(),
		RoomCode: "K9X2M4",
		Name:     "Flat 301",
	})
	require.NoError(t, err)

	members := &stubMemberChecker{members: map[int64]bool{1: true, 2: true}}
	return NewService(NewStubRepository(), groups, members), g
}

func TestService_Create(t *testing.T) {
	service, g := newTestService(t)

	s, err := service.Create(context.Background(), g.RoomCode, &CreateSplitRequest{
		PayerID:     1,
		Amount:      100,
		InvolvedIDs: []string{"1", "2", "EXT:Sam"},
	})
	require.NoError(t, err)

	assert.Equal(t, g.ID, s.GroupID)
	assert.Equal(t, int64(1), s.PayerID)
	assert.Equal(t, []calc.ParticipantID{
		calc.MemberRef(1), calc.MemberRef(2), calc.GuestRef("Sam"),
	}, s.InvolvedIDs)
}

func TestService_Create_Validation(t *testing.T) {
	service, g := newTestService(t)

	tests := []struct {
		name    string
		req     *CreateSplitRequest
		wantErr error
	}{
		{
			name:    "non-positive amount",
			req:     &CreateSplitRequest{PayerID: 1, Amount: 0, InvolvedIDs: []string{"1", "2"}},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "payer not in group",
			req:     &CreateSplitRequest{PayerID: 99, Amount: 50, InvolvedIDs: []string{"1", "2"}},
			wantErr: ErrPayerNotInGroup,
		},
		{
			name:    "fewer than two participants",
			req:     &CreateSplitRequest{PayerID: 1, Amount: 50, InvolvedIDs: []string{"1"}},
			wantErr: ErrTooFewParticipants,
		},
		{
			name:    "duplicates collapse below two",
			req:     &CreateSplitRequest{PayerID: 1, Amount: 50, InvolvedIDs: []string{"1", "1"}},
			wantErr: ErrTooFewParticipants,
		},
		{
			name:    "malformed participant id",
			req:     &CreateSplitRequest{PayerID: 1, Amount: 50, InvolvedIDs: []string{"1", "bogus"}},
			wantErr: ErrInvalidParticipant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), g.RoomCode, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Create_UnknownGroup(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Create(context.Background(), "ZZZZZZ", &CreateSplitRequest{
		PayerID: 1, Amount: 50, InvolvedIDs: []string{"1", "2"},
	})

	assert.ErrorIs(t, err, group.ErrGroupNotFound)
}

func TestService_Delete(t *testing.T) {
	service, g := newTestService(t)
	created, err := service.Create(context.Background(), g.RoomCode, &CreateSplitRequest{
		PayerID: 1, Amount: 100, InvolvedIDs: []string{"1", "2"},
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), g.RoomCode, created.ID))

	splits, err := service.ListByGroup(context.Background(), g.RoomCode)
	require.NoError(t, err)
	assert.Empty(t, splits)
}
