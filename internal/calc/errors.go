package calc

// Validation error codes returned before any balances are computed.
const (
	CodeNoMembers           = "NO_MEMBERS"
	CodeEmptyMemberName     = "EMPTY_MEMBER_NAME"
	CodeDuplicateMemberName = "DUPLICATE_MEMBER_NAME"
)

// ValidationError rejects the whole computation; no partial balances are
// produced. MemberIDs carries the offending members where applicable so the
// caller can highlight them.
type ValidationError struct {
	Code      string  `json:"code"`
	Message   string  `json:"message"`
	MemberIDs []int64 `json:"member_ids,omitempty"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

func errNoMembers() *ValidationError {
	return &ValidationError{
		Code:    CodeNoMembers,
		Message: "at least one member is required",
	}
}

func errEmptyMemberName(ids []int64) *ValidationError {
	return &ValidationError{
		Code:      CodeEmptyMemberName,
		Message:   "every member needs a name",
		MemberIDs: ids,
	}
}

func errDuplicateMemberName(ids []int64) *ValidationError {
	return &ValidationError{
		Code:      CodeDuplicateMemberName,
		Message:   "member names must be unique",
		MemberIDs: ids,
	}
}
