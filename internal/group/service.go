package group

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrGroupNotFound   = errors.New("group not found")
	ErrEmptyGroupName  = errors.New("group name is required")
	ErrInvalidDays     = errors.New("days in period must be positive")
	ErrNotGroupCreator = errors.New("only the creator can delete a group")
	ErrCodeExhausted   = errors.New("could not generate a unique room code")
	ErrCodeTaken       = errors.New("room code already taken")
)

// DefaultDaysInPeriod is assigned to newly created groups.
const DefaultDaysInPeriod = 30

// codeAttempts bounds the collision retries when generating a room code.
const codeAttempts = 5

// Store is the persistence the service needs; *Repository implements it.
type Store interface {
	Create(ctx context.Context, g *Group) (*Group, error)
	GetByCode(ctx context.Context, code string) (*Group, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	ListByCreator(ctx context.Context, userID string) ([]*Group, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateGroupRequest) (*Group, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecentRecorder records a user's most recently visited group; the user
// profile service implements it.
type RecentRecorder interface {
	RecordVisit(ctx context.Context, userID string, groupID uuid.UUID, roomName string) error
}

// Service handles group business logic
type Service struct {
	store   Store
	recents RecentRecorder
}

// NewService creates a new group service with its dependencies injected
func NewService(store Store, recents RecentRecorder) *Service {
	return &Service{store: store, recents: recents}
}

// Create creates a new group with a generated room code
func (s *Service) Create(ctx context.Context, createdBy string, req *CreateGroupRequest) (*Group, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyGroupName
	}

	for attempt := 0; attempt < codeAttempts; attempt++ {
		code := GenerateRoomCode()
		taken, err := s.store.CodeExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if taken {
			continue
		}

		g, err := s.store.Create(ctx, &Group{
			ID:           uuid.New(),
			RoomCode:     code,
			Name:         name,
			DaysInPeriod: DefaultDaysInPeriod,
			CreatedBy:    createdBy,
		})
		if errors.Is(err, ErrCodeTaken) {
			// Another request claimed the code between the existence check
			// and the insert; retry with a fresh code.
			continue
		}
		if err != nil {
			return nil, err
		}
		if s.recents != nil {
			_ = s.recents.RecordVisit(ctx, createdBy, g.ID, g.Name)
		}
		return g, nil
	}

	return nil, ErrCodeExhausted
}

// Join fetches a group by room code and records it as the caller's most
// recent group.
func (s *Service) Join(ctx context.Context, userID, code string) (*Group, error) {
	g, err := s.store.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}

	if s.recents != nil {
		// Recent-group tracking is best effort; a failed write must not
		// block joining.
		_ = s.recents.RecordVisit(ctx, userID, g.ID, g.Name)
	}

	return g, nil
}

// ListMine retrieves the groups created by the caller
func (s *Service) ListMine(ctx context.Context, userID string) ([]*Group, error) {
	return s.store.ListByCreator(ctx, userID)
}

// Update modifies a group's name and/or days-in-period
func (s *Service) Update(ctx context.Context, code string, req *UpdateGroupRequest) (*Group, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, ErrEmptyGroupName
	}
	if req.DaysInPeriod != nil && *req.DaysInPeriod < 1 {
		return nil, ErrInvalidDays
	}

	g, err := s.store.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}

	return s.store.Update(ctx, g.ID, req)
}

// Delete removes a group; only its creator may do so
func (s *Service) Delete(ctx context.Context, userID, code string) error {
	g, err := s.store.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if g == nil {
		return ErrGroupNotFound
	}
	if g.CreatedBy != userID {
		return ErrNotGroupCreator
	}

	return s.store.Delete(ctx, g.ID)
}
