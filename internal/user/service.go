package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a user has no recorded visits yet.
var ErrProfileNotFound = errors.New("no recent group")

// Store is the persistence the service needs; *Repository implements it.
type Store interface {
	Upsert(ctx context.Context, p *Profile) error
	Get(ctx context.Context, userID string) (*Profile, error)
}

// Service handles user profile business logic
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a new user service with store dependency injected
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// RecordVisit remembers the group a user just created or joined.
func (s *Service) RecordVisit(ctx context.Context, userID string, groupID uuid.UUID, roomName string) error {
	return s.store.Upsert(ctx, &Profile{
		UserID:       userID,
		LastGroupID:  &groupID,
		LastRoomName: roomName,
		LastVisited:  s.now(),
	})
}

// Recent returns the user's profile with their most recent group.
func (s *Service) Recent(ctx context.Context, userID string) (*Profile, error) {
	p, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}
