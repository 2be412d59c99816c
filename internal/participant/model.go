package participant

import "time"

// Type distinguishes participants backed by an account from ghost entries
// that only exist inside one trip (e.g. a friend without the app).
type Type string

const (
	TypeRegistered Type = "REGISTERED"
	TypeGhost      Type = "GHOST"
)

// Role controls what a participant may do within a trip
type Role string

const (
	RoleAdmin  Role = "ADMIN"  // full control: edit and delete the trip
	RoleEditor Role = "EDITOR" // can add activities, hotels and expenses
	RoleViewer Role = "VIEWER" // read-only
)

// Valid reports whether the role is one of the known trip roles
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEditor || r == RoleViewer
}

// CanEdit reports whether the role allows adding trip content
func (r Role) CanEdit() bool {
	return r == RoleAdmin || r == RoleEditor
}

// Participant represents a person within one trip. Ghost participants have
// no linked user account; their identity lives entirely in the trip.
type Participant struct {
	ID        string    `json:"id"`
	TripID    string    `json:"trip_id"`
	UserID    *string   `json:"user_id,omitempty"`
	Name      string    `json:"name"`
	Type      Type      `json:"type"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`

	// Populated via JOIN
	Email *string `json:"email,omitempty"`
}
