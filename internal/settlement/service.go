// Package settlement computes the group ledger and the transfer plan that
// settles it, from the current members and custom splits of a group.
package settlement

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/akaul/fairsplit/internal/calc"
	"github.com/akaul/fairsplit/internal/group"
	"github.com/akaul/fairsplit/internal/member"
	"github.com/akaul/fairsplit/internal/split"
)

// ErrNothingToSettle is returned when a draft is requested but the group is
// already settled.
var ErrNothingToSettle = errors.New("nothing to settle")

// GroupStore resolves room codes; *group.Repository implements it.
type GroupStore interface {
	GetByCode(ctx context.Context, code string) (*group.Group, error)
}

// MemberStore loads the members of a group; *member.Repository implements it.
type MemberStore interface {
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*member.Member, error)
}

// SplitStore loads the custom splits of a group; *split.Repository
// implements it.
type SplitStore interface {
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*split.CustomSplit, error)
}

// Drafter writes a human-readable settlement message; the assist package
// provides implementations.
type Drafter interface {
	DraftSettlementMessage(ctx context.Context, transactions []calc.Transaction) (string, error)
}

// Service handles settlement business logic
type Service struct {
	groups  GroupStore
	members MemberStore
	splits  SplitStore
	drafter Drafter
}

// NewService creates a new settlement service with its dependencies injected
func NewService(groups GroupStore, members MemberStore, splits SplitStore, drafter Drafter) *Service {
	return &Service{groups: groups, members: members, splits: splits, drafter: drafter}
}

// Compute loads the group snapshot and produces the full settlement result.
// Invalid member data surfaces as a *calc.ValidationError.
func (s *Service) Compute(ctx context.Context, code string) (*calc.Result, error) {
	g, err := s.resolveGroup(ctx, code)
	if err != nil {
		return nil, err
	}

	members, err := s.members.ListByGroup(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	splits, err := s.splits.ListByGroup(ctx, g.ID)
	if err != nil {
		return nil, err
	}

	return calc.Compute(toCalcMembers(members), toCalcSplits(splits), g.DaysInPeriod)
}

// Draft computes the settlement and asks the drafter for a shareable
// message describing the transfers.
func (s *Service) Draft(ctx context.Context, code string) (string, error) {
	result, err := s.Compute(ctx, code)
	if err != nil {
		return "", err
	}
	if len(result.Transactions) == 0 {
		return "", ErrNothingToSettle
	}
	return s.drafter.DraftSettlementMessage(ctx, result.Transactions)
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

func toCalcMembers(members []*member.Member) []calc.Member {
	out := make([]calc.Member, len(members))
	for i, m := range members {
		out[i] = calc.Member{
			ID:                m.ID,
			Name:              m.Name,
			DaysAbsent:        m.DaysAbsent,
			ExpenseInput:      m.ExpenseInput,
			FixedExpenseInput: m.FixedExpenseInput,
		}
	}
	return out
}

func toCalcSplits(splits []*split.CustomSplit) []calc.CustomSplit {
	out := make([]calc.CustomSplit, len(splits))
	for i, sp := range splits {
		out[i] = calc.CustomSplit{
			ID:          sp.ID,
			PayerID:     sp.PayerID,
			Amount:      sp.Amount,
			InvolvedIDs: sp.InvolvedIDs,
		}
	}
	return out
}
