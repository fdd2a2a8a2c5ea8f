package user

import (
	"time"

	"github.com/google/uuid"
)

// Profile remembers where a user last was, so the client can offer a
// one-tap return to their most recent group.
type Profile struct {
	UserID       string     `json:"user_id"`
	LastGroupID  *uuid.UUID `json:"last_group_id,omitempty"`
	LastRoomName string     `json:"last_room_name"`
	LastVisited  time.Time  `json:"last_visited"`
}
