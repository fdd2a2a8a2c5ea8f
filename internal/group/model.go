package group

import (
	"time"

	"github.com/google/uuid"
)

// Group is a shared expense room. Members join it by room code; the room
// carries the days-in-period setting that variable costs are prorated over.
type Group struct {
	ID           uuid.UUID `json:"id"`
	RoomCode     string    `json:"room_code"`
	Name         string    `json:"name"`
	DaysInPeriod int       `json:"days_in_period"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
