package split

import (
	"time"

	"github.com/google/uuid"

	"github.com/akaul/fairsplit/internal/calc"
)

// CustomSplit is a side expense paid by one member on behalf of a chosen
// subset of participants (members and/or guests), divided equally among them.
type CustomSplit struct {
	ID          int64                `json:"id"`
	GroupID     uuid.UUID            `json:"group_id"`
	PayerID     int64                `json:"payer_id"`
	Amount      float64              `json:"amount"`
	InvolvedIDs []calc.ParticipantID `json:"involved_ids"`
	CreatedAt   time.Time            `json:"created_at"`
}
