package calc

// Member is the snapshot of a group member the computation runs over.
// Expense inputs are raw comma-separated numeric strings as entered by users
// (or appended by the AI extractor); unparsable tokens are ignored.
type Member struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	DaysAbsent        int    `json:"days_absent"`
	ExpenseInput      string `json:"expense_input"`
	FixedExpenseInput string `json:"fixed_expense_input"`
}

// CustomSplit is a side expense paid by one member on behalf of a chosen
// subset of participants (members and/or guests), divided equally.
type CustomSplit struct {
	ID          int64           `json:"id"`
	PayerID     int64           `json:"payer_id"`
	Amount      float64         `json:"amount"`
	InvolvedIDs []ParticipantID `json:"involved_ids"`
}

// LedgerEntry is the per-participant working record: what they paid, what
// they owe per category, and the resulting net balance. Positive NetBalance
// means the participant is owed money; negative means they owe.
type LedgerEntry struct {
	ID            ParticipantID `json:"id"`
	Name          string        `json:"name"`
	IsGuest       bool          `json:"is_guest"`
	DaysPresent   int           `json:"days_present"`
	TotalPaidVar  float64       `json:"total_paid_var"`
	TotalPaidFix  float64       `json:"total_paid_fixed"`
	CustomCredit  float64       `json:"custom_credit"`
	CustomDebit   float64       `json:"custom_debit"`
	VariableShare float64       `json:"variable_share"`
	FixedShare    float64       `json:"fixed_share"`
	CustomShare   float64       `json:"custom_share"`
	NetBalance    float64       `json:"net_balance"`
}

// Transaction is one proposed payment of the settlement plan. Amounts are
// rounded to the nearest whole currency unit and always positive.
type Transaction struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

// Result is the full outcome of one computation.
type Result struct {
	TotalVariable    float64       `json:"total_variable"`
	TotalFixed       float64       `json:"total_fixed"`
	TotalCustom      float64       `json:"total_custom"`
	TotalPersonDays  int           `json:"total_person_days"`
	CostPerPersonDay float64       `json:"cost_per_person_day"`
	Balances         []LedgerEntry `json:"balances"`
	Transactions     []Transaction `json:"transactions"`
}
