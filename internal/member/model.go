package member

import (
	"time"

	"github.com/google/uuid"
)

// Member is a named participant of a group. Expense inputs are raw
// comma-separated numeric strings; they are parsed only at computation time
// and unparsable tokens are tolerated.
type Member struct {
	ID                int64     `json:"id"`
	GroupID           uuid.UUID `json:"group_id"`
	Name              string    `json:"name"`
	DaysAbsent        int       `json:"days_absent"`
	ExpenseInput      string    `json:"expense_input"`
	FixedExpenseInput string    `json:"fixed_expense_input"`
	CreatedAt         time.Time `json:"created_at"`
}
