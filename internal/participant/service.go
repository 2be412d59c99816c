package participant

import (
	"context"
	"errors"
	"net/mail"

	"github.com/unkotrip/api/internal/user"
)

// Common errors
var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrNotMember           = errors.New("you are not a member of this trip")
	ErrNotAuthorized       = errors.New("not authorized to perform this action")
	ErrAlreadyMember       = errors.New("user is already a participant in this trip")
	ErrUserNotFound        = errors.New("user not found, share an invite link instead")
	ErrInvalidRole         = errors.New("invalid role")
	ErrLastAdmin           = errors.New("cannot remove or demote the last admin")
)

// Store abstracts participant persistence
type Store interface {
	Create(ctx context.Context, tripID string, userID *string, name string, ptype Type, role Role) (*Participant, error)
	GetByID(ctx context.Context, id string) (*Participant, error)
	GetByTripAndUser(ctx context.Context, tripID, userID string) (*Participant, error)
	ListByTrip(ctx context.Context, tripID string) ([]*Participant, error)
	UpdateRole(ctx context.Context, id string, role Role) (*Participant, error)
	CountAdmins(ctx context.Context, tripID string) (int, error)
	Delete(ctx context.Context, id string) error
}

// UserStore is the slice of user persistence invites need
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// Service handles participant business logic
type Service struct {
	repo     Store
	userRepo UserStore
}

// NewService creates a new participant service with dependencies injected
func NewService(repo Store, userRepo UserStore) *Service {
	return &Service{
		repo:     repo,
		userRepo: userRepo,
	}
}

// Invite adds a participant to a trip. When EmailOrName parses as an email
// it must belong to a registered user; otherwise a ghost participant is
// created under that name. Only admins and editors may invite.
func (s *Service) Invite(ctx context.Context, inviterUserID string, req *InviteRequest) (*Participant, error) {
	if !req.Role.Valid() {
		return nil, ErrInvalidRole
	}

	inviter, err := s.repo.GetByTripAndUser(ctx, req.TripID, inviterUserID)
	if err != nil {
		return nil, err
	}
	if inviter == nil {
		return nil, ErrNotMember
	}
	if !inviter.Role.CanEdit() {
		return nil, ErrNotAuthorized
	}

	if _, err := mail.ParseAddress(req.EmailOrName); err == nil {
		invited, err := s.userRepo.GetByEmail(ctx, req.EmailOrName)
		if err != nil {
			return nil, err
		}
		if invited == nil {
			return nil, ErrUserNotFound
		}

		existing, err := s.repo.GetByTripAndUser(ctx, req.TripID, invited.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrAlreadyMember
		}

		return s.repo.Create(ctx, req.TripID, &invited.ID, invited.Name, TypeRegistered, req.Role)
	}

	return s.repo.Create(ctx, req.TripID, nil, req.EmailOrName, TypeGhost, req.Role)
}

// ListByTrip retrieves all participants of a trip; the caller must be a member
func (s *Service) ListByTrip(ctx context.Context, callerUserID, tripID string) ([]*Participant, error) {
	caller, err := s.repo.GetByTripAndUser(ctx, tripID, callerUserID)
	if err != nil {
		return nil, err
	}
	if caller == nil {
		return nil, ErrNotMember
	}

	return s.repo.ListByTrip(ctx, tripID)
}

// UpdateRole changes a participant's role. Only admins may change roles, and
// the last admin of a trip cannot be demoted.
func (s *Service) UpdateRole(ctx context.Context, callerUserID, participantID string, newRole Role) (*Participant, error) {
	if !newRole.Valid() {
		return nil, ErrInvalidRole
	}

	p, err := s.repo.GetByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrParticipantNotFound
	}

	caller, err := s.repo.GetByTripAndUser(ctx, p.TripID, callerUserID)
	if err != nil {
		return nil, err
	}
	if caller == nil {
		return nil, ErrNotMember
	}
	if caller.Role != RoleAdmin {
		return nil, ErrNotAuthorized
	}

	if p.Role == RoleAdmin && newRole != RoleAdmin {
		admins, err := s.repo.CountAdmins(ctx, p.TripID)
		if err != nil {
			return nil, err
		}
		if admins == 1 {
			return nil, ErrLastAdmin
		}
	}

	return s.repo.UpdateRole(ctx, participantID, newRole)
}

// Remove deletes a participant from a trip. Admins may remove anyone;
// everyone may remove themselves. The last admin cannot be removed.
func (s *Service) Remove(ctx context.Context, callerUserID, participantID string) error {
	p, err := s.repo.GetByID(ctx, participantID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrParticipantNotFound
	}

	caller, err := s.repo.GetByTripAndUser(ctx, p.TripID, callerUserID)
	if err != nil {
		return err
	}
	if caller == nil {
		return ErrNotMember
	}

	isSelf := p.UserID != nil && *p.UserID == callerUserID
	if caller.Role != RoleAdmin && !isSelf {
		return ErrNotAuthorized
	}

	if p.Role == RoleAdmin {
		admins, err := s.repo.CountAdmins(ctx, p.TripID)
		if err != nil {
			return err
		}
		if admins == 1 {
			return ErrLastAdmin
		}
	}

	return s.repo.Delete(ctx, participantID)
}

// RequireMember returns the caller's participant entry in a trip, or
// ErrNotMember. Other features use this for their permission checks.
func (s *Service) RequireMember(ctx context.Context, tripID, userID string) (*Participant, error) {
	p, err := s.repo.GetByTripAndUser(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotMember
	}
	return p, nil
}
