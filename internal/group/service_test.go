package group

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Create(t *testing.T) {
	service := NewService(NewStubRepository(), nil)

	g, err := service.Create(context.Background(), "user-1", &CreateGroupRequest{Name: "Flat 301"})
	require.NoError(t, err)

	assert.Equal(t, "Flat 301", g.Name)
	assert.Equal(t, "user-1", g.CreatedBy)
	assert.Equal(t, DefaultDaysInPeriod, g.DaysInPeriod)
	assert.Len(t, g.RoomCode, RoomCodeLength)
}

// collidingStore reports every code as free but rejects the first insert
// with ErrCodeTaken, like a concurrent request winning the race between the
// existence check and the insert.
type collidingStore struct {
	*StubRepository
	collisions int
}

func (s *collidingStore) Create(ctx context.Context, g *Group) (*Group, error) {
	if s.collisions > 0 {
		s.collisions--
		return nil, ErrCodeTaken
	}
	return s.StubRepository.Create(ctx, g)
}

func TestService_Create_RetriesOnInsertCollision(t *testing.T) {
	store := &collidingStore{StubRepository: NewStubRepository(), collisions: 1}
	service := NewService(store, nil)

	g, err := service.Create(context.Background(), "user-1", &CreateGroupRequest{Name: "Flat 301"})
	require.NoError(t, err)

	assert.Len(t, g.RoomCode, RoomCodeLength)
	assert.Zero(t, store.collisions)
}

func TestService_Create_ExhaustsRetries(t *testing.T) {
	store := &collidingStore{StubRepository: NewStubRepository(), collisions: codeAttempts}
	service := NewService(store, nil)

	_, err := service.Create(context.Background(), "user-1", &CreateGroupRequest{Name: "Flat 301"})
	assert.ErrorIs(t, err, ErrCodeExhausted)
}

func TestService_Create_EmptyName(t *testing.T) {
	service := NewService(NewStubRepository(), nil)

	_, err := service.Create(context.Background(), "user-1", &CreateGroupRequest{Name: "   "})

	assert.ErrorIs(t, err, ErrEmptyGroupName)
}

func TestService_Join(t *testing.T) {
	store := NewStubRepository()
	service := NewService(store, nil)
	created, err := service.Create(context.Background(), "user-1", &CreateGroupRequest{Name: "Goa Trip"})
	require.NoError(t, err)

	t.Run("found by code", func(t *testing.T) {
		g, err := service.Join(context.Background(), "user-2", created.RoomCode)
		require.NoError(t, err)
		assert.Equal(t, created.ID, g.ID)
	})

	t.Run("code is case insensitive", func(t *testing.T) {
		g, err := service.Join(context.Background(), "user-2", " "+strings.ToLower(created.RoomCode)+" ")
		require.NoError(t, err)
		assert.Equal(t, created.ID, g.ID)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := service.Join(context.Background(), "user-2", "ZZZZZZ")
		assert.ErrorIs(t, err, ErrGroupNotFound)
	})
}

func TestService_Update(t *testing.T) {
	service := NewService(NewStubRepository(), nil)
	created, err := service.Create(context.Background(), "user-1", &CreateGroupRequest{Name: "Flat 301"})
	require.NoError(t, err)

	days := 28
	updated, err := service.Update(context.Background(), created.RoomCode, &UpdateGroupRequest{DaysInPeriod: &days})
	require.NoError(t, err)
	assert.Equal(t, 28, updated.DaysInPeriod)

	zero := 0
	_, err = service.Update(context.Background(), created.RoomCode, &UpdateGroupRequest{DaysInPeriod: &zero})
	assert.ErrorIs(t, err, ErrInvalidDays)
}

func TestService_Delete(t *testing.T) {
	service := NewService(NewStubRepository(), nil)
	created, err := service.Create(context.Background(), "user-1", &CreateGroupRequest{Name: "Flat 301"})
	require.NoError(t, err)

	t.Run("non-creator rejected", func(t *testing.T) {
		err := service.Delete(context.Background(), "user-2", created.RoomCode)
		assert.ErrorIs(t, err, ErrNotGroupCreator)
	})

	t.Run("creator allowed", func(t *testing.T) {
		err := service.Delete(context.Background(), "user-1", created.RoomCode)
		require.NoError(t, err)

		_, err = service.Join(context.Background(), "user-1", created.RoomCode)
		assert.ErrorIs(t, err, ErrGroupNotFound)
	})
}
