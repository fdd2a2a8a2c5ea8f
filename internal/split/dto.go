package split

// CreateSplitRequest represents the request body for creating a custom split.
// InvolvedIDs use the wire format: a member id in digits, or "EXT:<name>"
// for a guest.
type CreateSplitRequest struct {
	PayerID     int64    `json:"payer_id" validate:"required"`
	Amount      float64  `json:"amount" validate:"required,gt=0"`
	InvolvedIDs []string `json:"involved_ids" validate:"required,min=2"`
}

// SplitResponse represents the response for a single custom split
type SplitResponse struct {
	ID          int64    `json:"id"`
	PayerID     int64    `json:"payer_id"`
	Amount      float64  `json:"amount"`
	InvolvedIDs []string `json:"involved_ids"`
	CreatedAt   string   `json:"created_at"`
}

// ToResponse converts a CustomSplit model to a SplitResponse DTO
func (s *CustomSplit) ToResponse() *SplitResponse {
	involved := make([]string, len(s.InvolvedIDs))
	for i, id := range s.InvolvedIDs {
		involved[i] = id.String()
	}
	return &SplitResponse{
		ID:          s.ID,
		PayerID:     s.PayerID,
		Amount:      s.Amount,
		InvolvedIDs: involved,
		CreatedAt:   s.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
