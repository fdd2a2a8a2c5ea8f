package member

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

// StubRepository is an in-memory Store used by service tests.
type StubRepository struct {
	nextID  int64
	members map[int64]*Member
}

// NewStubRepository creates an empty in-memory store.
func NewStubRepository() *StubRepository {
	return &StubRepository{members: make(map[int64]*Member)}
}

func (s *StubRepository) Create(ctx context.Context, m *Member) (*Member, error) {
	s.nextID++
	stored := *m
	stored.ID = s.nextID
	stored.CreatedAt = time.Now()
	s.members[stored.ID] = &stored
	return &stored, nil
}

func (s *StubRepository) GetByID(ctx context.Context, id int64) (*Member, error) {
	m, ok := s.members[id]
	if !ok {
		return nil, nil
	}
	return m, nil
}

func (s *StubRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*Member, error) {
	var out []*Member
	for _, m := range s.members {
		if m.GroupID == groupID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *StubRepository) Exists(ctx context.Context, groupID uuid.UUID, memberID int64) (bool, error) {
	m, ok := s.members[memberID]
	return ok && m.GroupID == groupID, nil
}

func (s *StubRepository) Update(ctx context.Context, id int64, req *UpdateMemberRequest) (*Member, error) {
	m, ok := s.members[id]
	if !ok {
		return nil, nil
	}
	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.DaysAbsent != nil {
		m.DaysAbsent = *req.DaysAbsent
	}
	if req.ExpenseInput != nil {
		m.ExpenseInput = *req.ExpenseInput
	}
	if req.FixedExpenseInput != nil {
		m.FixedExpenseInput = *req.FixedExpenseInput
	}
	return m, nil
}

func (s *StubRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := s.members[id]; !ok {
		return ErrMemberNotFound
	}
	delete(s.members, id)
	return nil
}
