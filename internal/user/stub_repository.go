package user

import "context"

// StubRepository is an in-memory Store used by service tests.
type StubRepository struct {
	profiles map[string]*Profile
}

// NewStubRepository creates an empty in-memory store.
func NewStubRepository() *StubRepository {
	return &StubRepository{profiles: make(map[string]*Profile)}
}

func (s *StubRepository) Upsert(ctx context.Context, p *Profile) error {
	stored := *p
	s.profiles[p.UserID] = &stored
	return nil
}

func (s *StubRepository) Get(ctx context.Context, userID string) (*Profile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	return p, nil
}
