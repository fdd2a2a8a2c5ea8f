package user

// ProfileResponse represents the response for a user profile
type ProfileResponse struct {
	UserID       string `json:"user_id"`
	LastGroupID  string `json:"last_group_id,omitempty"`
	LastRoomName string `json:"last_room_name"`
	LastVisited  string `json:"last_visited"`
}

// ToResponse converts a Profile model to a ProfileResponse DTO
func (p *Profile) ToResponse() *ProfileResponse {
	resp := &ProfileResponse{
		UserID:       p.UserID,
		LastRoomName: p.LastRoomName,
		LastVisited:  p.LastVisited.Format("2006-01-02T15:04:05Z"),
	}
	if p.LastGroupID != nil {
		resp.LastGroupID = p.LastGroupID.String()
	}
	return resp
}
