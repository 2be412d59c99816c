package participant

// InviteRequest represents the request to add a participant to a trip.
// EmailOrName holds either the email of a registered user or a bare name
// for a ghost participant.
type InviteRequest struct {
	TripID      string `json:"trip_id" validate:"required"`
	EmailOrName string `json:"email_or_name" validate:"required,min=1,max=255"`
	Role        Role   `json:"role" validate:"required,oneof=ADMIN EDITOR VIEWER"`
}

// UpdateRoleRequest represents the request to change a participant's role
type UpdateRoleRequest struct {
	Role Role `json:"role" validate:"required,oneof=ADMIN EDITOR VIEWER"`
}

// ParticipantResponse represents the response for a trip participant
type ParticipantResponse struct {
	ID        string  `json:"id"`
	TripID    string  `json:"trip_id"`
	UserID    *string `json:"user_id,omitempty"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	Type      Type    `json:"type"`
	Role      Role    `json:"role"`
	CreatedAt string  `json:"created_at"`
}

// ToResponse converts a Participant model to a ParticipantResponse DTO
func (p *Participant) ToResponse() *ParticipantResponse {
	return &ParticipantResponse{
		ID:        p.ID,
		TripID:    p.TripID,
		UserID:    p.UserID,
		Name:      p.Name,
		Email:     p.Email,
		Type:      p.Type,
		Role:      p.Role,
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
