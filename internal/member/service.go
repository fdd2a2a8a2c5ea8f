package member

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/akaul/fairsplit/internal/calc"
	"github.com/akaul/fairsplit/internal/group"
	"github.com/akaul/fairsplit/internal/split"
)

// Common errors
var (
	ErrMemberNotFound    = errors.New("member not found")
	ErrInvalidDaysAbsent = errors.New("days absent cannot be negative")
	ErrNoAmountsFound    = errors.New("no expenses found in text")
	ErrExtractionFailed  = errors.New("could not extract expenses from text")
)

// Store is the persistence the service needs; *Repository implements it.
type Store interface {
	Create(ctx context.Context, m *Member) (*Member, error)
	GetByID(ctx context.Context, id int64) (*Member, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*Member, error)
	Update(ctx context.Context, id int64, req *UpdateMemberRequest) (*Member, error)
	Delete(ctx context.Context, id int64) error
}

// GroupStore resolves room codes; *group.Repository implements it.
type GroupStore interface {
	GetByCode(ctx context.Context, code string) (*group.Group, error)
}

// SplitRewriter lets the service rewrite custom splits when a member takes
// over a guest identity; *split.Repository implements it.
type SplitRewriter interface {
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*split.CustomSplit, error)
	UpdateInvolvedIDs(ctx context.Context, id int64, involvedIDs []calc.ParticipantID) error
}

// AmountExtractor turns free-form text into a list of expense amounts; the
// assist package provides implementations.
type AmountExtractor interface {
	ExtractAmounts(ctx context.Context, text string) ([]float64, error)
}

// Service handles member business logic
type Service struct {
	store     Store
	groups    GroupStore
	splits    SplitRewriter
	extractor AmountExtractor
}

// NewService creates a new member service with its dependencies injected
func NewService(store Store, groups GroupStore, splits SplitRewriter, extractor AmountExtractor) *Service {
	return &Service{store: store, groups: groups, splits: splits, extractor: extractor}
}

// Add creates a new member in the group with the given room code
func (s *Service) Add(ctx context.Context, code string, req *CreateMemberRequest) (*Member, error) {
	g, err := s.resolveGroup(ctx, code)
	if err != nil {
		return nil, err
	}
	if req.DaysAbsent < 0 {
		return nil, ErrInvalidDaysAbsent
	}

	return s.store.Create(ctx, &Member{
		GroupID:           g.ID,
		Name:              req.Name,
		DaysAbsent:        req.DaysAbsent,
		ExpenseInput:      req.ExpenseInput,
		FixedExpenseInput: req.FixedExpenseInput,
	})
}

// ListByGroup retrieves the members of the group with the given room code
func (s *Service) ListByGroup(ctx context.Context, code string) ([]*Member, error) {
	g, err := s.resolveGroup(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.store.ListByGroup(ctx, g.ID)
}

// GetByID retrieves one member, verifying they belong to the group
func (s *Service) GetByID(ctx context.Context, code string, id int64) (*Member, error) {
	g, err := s.resolveGroup(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.getInGroup(ctx, g.ID, id)
}

// Update modifies a member. Renaming a member to match an existing guest
// reference (case-insensitive) rewrites every custom split in the group to
// reference the member id instead of the guest, so the same identity is
// never counted twice.
func (s *Service) Update(ctx context.Context, code string, id int64, req *UpdateMemberRequest) (*Member, error) {
	g, err := s.resolveGroup(ctx, code)
	if err != nil {
		return nil, err
	}
	if _, err := s.getInGroup(ctx, g.ID, id); err != nil {
		return nil, err
	}
	if req.DaysAbsent != nil && *req.DaysAbsent < 0 {
		return nil, ErrInvalidDaysAbsent
	}

	updated, err := s.store.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrMemberNotFound
	}

	if req.Name != nil {
		if err := s.mergeGuestReferences(ctx, g.ID, id, *req.Name); err != nil {
			return nil, err
		}
	}

	return updated, nil
}

// Remove deletes a member, verifying they belong to the group. Custom
// splits referencing the member are left in place; the computation skips
// credits and debits of missing participants.
func (s *Service) Remove(ctx context.Context, code string, id int64) error {
	g, err := s.resolveGroup(ctx, code)
	if err != nil {
		return err
	}
	if _, err := s.getInGroup(ctx, g.ID, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// SmartAdd extracts expense amounts from free-form text and appends them to
// the member's variable expense input.
func (s *Service) SmartAdd(ctx context.Context, code string, id int64, text string) (*Member, error) {
	g, err := s.resolveGroup(ctx, code)
	if err != nil {
		return nil, err
	}
	m, err := s.getInGroup(ctx, g.ID, id)
	if err != nil {
		return nil, err
	}

	amounts, err := s.extractor.ExtractAmounts(ctx, text)
	if err != nil {
		return nil, ErrExtractionFailed
	}
	if len(amounts) == 0 {
		return nil, ErrNoAmountsFound
	}

	input := appendExpenses(m.ExpenseInput, amounts)
	return s.store.Update(ctx, id, &UpdateMemberRequest{ExpenseInput: &input})
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

func (s *Service) getInGroup(ctx context.Context, groupID uuid.UUID, id int64) (*Member, error) {
	m, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil || m.GroupID != groupID {
		return nil, ErrMemberNotFound
	}
	return m, nil
}

// mergeGuestReferences replaces guest references matching the member's new
// name with the member id in every custom split of the group, deduplicating
// the involved list afterwards.
func (s *Service) mergeGuestReferences(ctx context.Context, groupID uuid.UUID, memberID int64, newName string) error {
	name := strings.TrimSpace(newName)
	if name == "" {
		return nil
	}

	splits, err := s.splits.ListByGroup(ctx, groupID)
	if err != nil {
		return err
	}

	memberRef := calc.MemberRef(memberID)
	for _, sp := range splits {
		changed := false
		seen := make(map[calc.ParticipantID]bool, len(sp.InvolvedIDs))
		rewritten := make([]calc.ParticipantID, 0, len(sp.InvolvedIDs))
		for _, pid := range sp.InvolvedIDs {
			if guestName, ok := pid.GuestName(); ok && strings.EqualFold(guestName, name) {
				pid = memberRef
				changed = true
			}
			if seen[pid] {
				changed = true
				continue
			}
			seen[pid] = true
			rewritten = append(rewritten, pid)
		}
		if !changed {
			continue
		}
		if err := s.splits.UpdateInvolvedIDs(ctx, sp.ID, rewritten); err != nil {
			return err
		}
	}

	return nil
}

// appendExpenses joins the extracted amounts onto an existing expense
// string, keeping the comma-separated format intact.
func appendExpenses(current string, amounts []float64) string {
	tokens := make([]string, len(amounts))
	for i, v := range amounts {
		tokens[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	added := strings.Join(tokens, ", ")

	current = strings.TrimSpace(current)
	if current == "" {
		return added
	}
	if !strings.HasSuffix(current, ",") {
		current += ","
	}
	return current + " " + added
}
