package split

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/akaul/fairsplit/internal/calc"
	"github.com/akaul/fairsplit/internal/group"
)

// Common errors
var (
	ErrSplitNotFound      = errors.New("custom split not found")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrPayerNotInGroup    = errors.New("payer must be a member of the group")
	ErrTooFewParticipants = errors.New("select at least 2 people to split the expense")
	ErrInvalidParticipant = errors.New("invalid participant id")
)

// Store is the persistence the service needs; *Repository implements it.
type Store interface {
	Create(ctx context.Context, s *CustomSplit) (*CustomSplit, error)
	GetByID(ctx context.Context, id int64) (*CustomSplit, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*CustomSplit, error)
	Delete(ctx context.Context, id int64) error
}

// GroupStore resolves room codes; *group.Repository implements it.
type GroupStore interface {
	GetByCode(ctx context.Context, code string) (*group.Group, error)
}

// MemberChecker verifies group membership; *member.Repository implements it.
type MemberChecker interface {
	Exists(ctx context.Context, groupID uuid.UUID, memberID int64) (bool, error)
}

// Service handles custom split business logic
type Service struct {
	store   Store
	groups  GroupStore
	members MemberChecker
}

// NewService creates a new split service with its dependencies injected
func NewService(store Store, groups GroupStore, members MemberChecker) *Service {
	return &Service{store: store, groups: groups, members: members}
}

// Create validates and stores a new custom split for the group with the
// given room code. The amount must be positive, the payer must be a member
// of the group, and at least two distinct participants must be involved.
func (s *Service) Create(ctx context.Context, code string, req *CreateSplitRequest) (*CustomSplit, error) {
	g, err := s.resolveGroup(ctx, code)
	if err != nil {
		return nil, err
	}

	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	payerOK, err := s.members.Exists(ctx, g.ID, req.PayerID)
	if err != nil {
		return nil, err
	}
	if !payerOK {
		return nil, ErrPayerNotInGroup
	}

	involved, err := parseInvolved(req.InvolvedIDs)
	if err != nil {
		return nil, err
	}
	if len(involved) < 2 {
		return nil, ErrTooFewParticipants
	}

	return s.store.Create(ctx, &CustomSplit{
		GroupID:     g.ID,
		PayerID:     req.PayerID,
		Amount:      req.Amount,
		InvolvedIDs: involved,
	})
}

// ListByGroup retrieves the custom splits of the group with the given room code
func (s *Service) ListByGroup(ctx context.Context, code string) ([]*CustomSplit, error) {
	g, err := s.resolveGroup(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.store.ListByGroup(ctx, g.ID)
}

// Delete removes a custom split, verifying it belongs to the group
func (s *Service) Delete(ctx context.Context, code string, id int64) error {
	g, err := s.resolveGroup(ctx, code)
	if err != nil {
		return err
	}

	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil || existing.GroupID != g.ID {
		return ErrSplitNotFound
	}

	return s.store.Delete(ctx, id)
}

func (s *Service) resolveGroup(ctx context.Context, code string) (*group.Group, error) {
	g, err := s.groups.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, group.ErrGroupNotFound
	}
	return g, nil
}

// parseInvolved decodes and deduplicates the involved participant ids,
// preserving their order.
func parseInvolved(raw []string) ([]calc.ParticipantID, error) {
	seen := make(map[calc.ParticipantID]bool, len(raw))
	involved := make([]calc.ParticipantID, 0, len(raw))
	for _, s := range raw {
		id, err := calc.ParseParticipantID(s)
		if err != nil {
			return nil, ErrInvalidParticipant
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		involved = append(involved, id)
	}
	return involved, nil
}
