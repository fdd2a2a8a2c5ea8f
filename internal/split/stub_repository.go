package split

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/akaul/fairsplit/internal/calc"
)

// StubRepository is an in-memory Store used by service tests.
type StubRepository struct {
	nextID int64
	splits map[int64]*CustomSplit
}

// NewStubRepository creates an empty in-memory store.
func NewStubRepository() *StubRepository {
	return &StubRepository{splits: make(map[int64]*CustomSplit)}
}

func (s *StubRepository) Create(ctx context.Context, split *CustomSplit) (*CustomSplit, error) {
	s.nextID++
	stored := *split
	stored.ID = s.nextID
	stored.CreatedAt = time.Now()
	s.splits[stored.ID] = &stored
	return &stored, nil
}

func (s *StubRepository) GetByID(ctx context.Context, id int64) (*CustomSplit, error) {
	split, ok := s.splits[id]
	if !ok {
		return nil, nil
	}
	return split, nil
}

func (s *StubRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*CustomSplit, error) {
	var out []*CustomSplit
	for _, split := range s.splits {
		if split.GroupID == groupID {
			out = append(out, split)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *StubRepository) UpdateInvolvedIDs(ctx context.Context, id int64, involvedIDs []calc.ParticipantID) error {
	split, ok := s.splits[id]
	if !ok {
		return ErrSplitNotFound
	}
	split.InvolvedIDs = involvedIDs
	return nil
}

func (s *StubRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := s.splits[id]; !ok {
		return ErrSplitNotFound
	}
	delete(s.splits, id)
	return nil
}
