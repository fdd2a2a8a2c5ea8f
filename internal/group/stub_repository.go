package group

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StubRepository is an in-memory Store used by service tests.
type StubRepository struct {
	groups map[uuid.UUID]*Group
}

// NewStubRepository creates an empty in-memory store.
func NewStubRepository() *StubRepository {
	return &StubRepository{groups: make(map[uuid.UUID]*Group)}
}

func (s *StubRepository) Create(ctx context.Context, g *Group) (*Group, error) {
	stored := *g
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.groups[stored.ID] = &stored
	return &stored, nil
}

func (s *StubRepository) GetByCode(ctx context.Context, code string) (*Group, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, g := range s.groups {
		if g.RoomCode == code {
			return g, nil
		}
	}
	return nil, nil
}

func (s *StubRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	g, _ := s.GetByCode(ctx, code)
	return g != nil, nil
}

func (s *StubRepository) ListByCreator(ctx context.Context, userID string) ([]*Group, error) {
	var out []*Group
	for _, g := range s.groups {
		if g.CreatedBy == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *StubRepository) Update(ctx context.Context, id uuid.UUID, req *UpdateGroupRequest) (*Group, error) {
	g, ok := s.groups[id]
	if !ok {
		return nil, nil
	}
	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.DaysInPeriod != nil {
		g.DaysInPeriod = *req.DaysInPeriod
	}
	g.UpdatedAt = time.Now()
	return g, nil
}

func (s *StubRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.groups[id]; !ok {
		return ErrGroupNotFound
	}
	delete(s.groups, id)
	return nil
}
