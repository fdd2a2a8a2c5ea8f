package member

import "github.com/akaul/fairsplit/internal/calc"

// CreateMemberRequest represents the request body for adding a member.
// Names may be left blank while a group is being set up; the settlement
// computation is what enforces non-empty, unique names.
type CreateMemberRequest struct {
	Name              string `json:"name"`
	DaysAbsent        int    `json:"days_absent"`
	ExpenseInput      string `json:"expense_input"`
	FixedExpenseInput string `json:"fixed_expense_input"`
}

// UpdateMemberRequest represents the request body for updating a member
type UpdateMemberRequest struct {
	Name              *string `json:"name,omitempty"`
	DaysAbsent        *int    `json:"days_absent,omitempty"`
	ExpenseInput      *string `json:"expense_input,omitempty"`
	FixedExpenseInput *string `json:"fixed_expense_input,omitempty"`
}

// SmartAddRequest carries free-form text whose amounts are extracted and
// appended to the member's variable expense input.
type SmartAddRequest struct {
	Text string `json:"text" validate:"required"`
}

// MemberResponse represents the response for a single member
type MemberResponse struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	DaysAbsent        int    `json:"days_absent"`
	ExpenseInput      string `json:"expense_input"`
	FixedExpenseInput string `json:"fixed_expense_input"`
	CreatedAt         string `json:"created_at"`
}

// BreakdownResponse lists the parsed numeric entries of one expense input
// and their sum, mirroring the per-member breakdown view.
type BreakdownResponse struct {
	Variable BreakdownEntry `json:"variable"`
	Fixed    BreakdownEntry `json:"fixed"`
}

// BreakdownEntry is the parsed view of a single expense input string.
type BreakdownEntry struct {
	Items []float64 `json:"items"`
	Total float64   `json:"total"`
}

// ToResponse converts a Member model to a MemberResponse DTO
func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		ID:                m.ID,
		Name:              m.Name,
		DaysAbsent:        m.DaysAbsent,
		ExpenseInput:      m.ExpenseInput,
		FixedExpenseInput: m.FixedExpenseInput,
		CreatedAt:         m.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToBreakdown parses both expense inputs of a member
func (m *Member) ToBreakdown() *BreakdownResponse {
	return &BreakdownResponse{
		Variable: breakdownOf(m.ExpenseInput),
		Fixed:    breakdownOf(m.FixedExpenseInput),
	}
}

func breakdownOf(input string) BreakdownEntry {
	items := calc.ParseExpenses(input)
	return BreakdownEntry{Items: items, Total: calc.SumExpenses(input)}
}
