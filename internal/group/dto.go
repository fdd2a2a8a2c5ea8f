package group

// CreateGroupRequest represents the request body for creating a group
type CreateGroupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateGroupRequest represents the request body for updating a group
type UpdateGroupRequest struct {
	Name         *string `json:"name,omitempty"`
	DaysInPeriod *int    `json:"days_in_period,omitempty"`
}

// GroupResponse represents the response for a single group
type GroupResponse struct {
	ID           string `json:"id"`
	RoomCode     string `json:"room_code"`
	Name         string `json:"name"`
	DaysInPeriod int    `json:"days_in_period"`
	CreatedBy    string `json:"created_by"`
	CreatedAt    string `json:"created_at"`
}

// ToResponse converts a Group model to a GroupResponse DTO
func (g *Group) ToResponse() *GroupResponse {
	return &GroupResponse{
		ID:           g.ID.String(),
		RoomCode:     g.RoomCode,
		Name:         g.Name,
		DaysInPeriod: g.DaysInPeriod,
		CreatedBy:    g.CreatedBy,
		CreatedAt:    g.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
