package participant

import (
	"context"
	"errors"
	"testing"

	"github.com/unkotrip/api/internal/user"
)

type fakeStore struct {
	byID      map[string]*Participant
	updatedTo Role
	deletedID string
}

func (f *fakeStore) Create(_ context.Context, tripID string, userID *string, name string, ptype Type, role Role) (*Participant, error) {
	p := &Participant{ID: "p-new", TripID: tripID, UserID: userID, Name: name, Type: ptype, Role: role}
	f.byID[p.ID] = p
	return p, nil
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*Participant, error) {
	return f.byID[id], nil
}

func (f *fakeStore) GetByTripAndUser(_ context.Context, tripID, userID string) (*Participant, error) {
	for _, p := range f.byID {
		if p.TripID == tripID && p.UserID != nil && *p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListByTrip(_ context.Context, tripID string) ([]*Participant, error) {
	var out []*Participant
	for _, p := range f.byID {
		if p.TripID == tripID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateRole(_ context.Context, id string, role Role) (*Participant, error) {
	p := f.byID[id]
	p.Role = role
	f.updatedTo = role
	return p, nil
}

func (f *fakeStore) CountAdmins(_ context.Context, tripID string) (int, error) {
	n := 0
	for _, p := range f.byID {
		if p.TripID == tripID && p.Role == RoleAdmin {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	f.deletedID = id
	delete(f.byID, id)
	return nil
}

type fakeUserStore struct{}

func (f *fakeUserStore) GetByEmail(_ context.Context, _ string) (*user.User, error) {
	return nil, nil
}

func strptr(s string) *string { return &s }

// newTripStore seeds a trip with one admin (user ua), one editor (user ue)
// and one ghost viewer.
func newTripStore() *fakeStore {
	return &fakeStore{byID: map[string]*Participant{
		"p-admin": {ID: "p-admin", TripID: "t1", UserID: strptr("ua"), Name: "Ana", Type: TypeRegistered, Role: RoleAdmin},
		"p-edit":  {ID: "p-edit", TripID: "t1", UserID: strptr("ue"), Name: "Bruno", Type: TypeRegistered, Role: RoleEditor},
		"p-ghost": {ID: "p-ghost", TripID: "t1", UserID: nil, Name: "Carla", Type: TypeGhost, Role: RoleViewer},
	}}
}

func TestUpdateRole(t *testing.T) {
	t.Run("last admin cannot be demoted", func(t *testing.T) {
		store := newTripStore()
		svc := NewService(store, &fakeUserStore{})

		_, err := svc.UpdateRole(context.Background(), "ua", "p-admin", RoleEditor)
		if !errors.Is(err, ErrLastAdmin) {
			t.Fatalf("error = %v, want ErrLastAdmin", err)
		}
		if store.byID["p-admin"].Role != RoleAdmin {
			t.Error("admin role should be untouched")
		}
	})

	t.Run("demote succeeds when another admin remains", func(t *testing.T) {
		store := newTripStore()
		store.byID["p-edit"].Role = RoleAdmin
		svc := NewService(store, &fakeUserStore{})

		p, err := svc.UpdateRole(context.Background(), "ua", "p-admin", RoleViewer)
		if err != nil {
			t.Fatalf("UpdateRole() error = %v", err)
		}
		if p.Role != RoleViewer || store.updatedTo != RoleViewer {
			t.Errorf("role = %v, want VIEWER", p.Role)
		}
	})

	t.Run("promoting does not trip the admin guard", func(t *testing.T) {
		store := newTripStore()
		svc := NewService(store, &fakeUserStore{})

		if _, err := svc.UpdateRole(context.Background(), "ua", "p-edit", RoleAdmin); err != nil {
			t.Fatalf("UpdateRole() error = %v", err)
		}
	})

	t.Run("non-admin caller rejected", func(t *testing.T) {
		svc := NewService(newTripStore(), &fakeUserStore{})

		if _, err := svc.UpdateRole(context.Background(), "ue", "p-ghost", RoleEditor); !errors.Is(err, ErrNotAuthorized) {
			t.Errorf("error = %v, want ErrNotAuthorized", err)
		}
	})

	t.Run("unknown participant", func(t *testing.T) {
		svc := NewService(newTripStore(), &fakeUserStore{})

		if _, err := svc.UpdateRole(context.Background(), "ua", "p-missing", RoleEditor); !errors.Is(err, ErrParticipantNotFound) {
			t.Errorf("error = %v, want ErrParticipantNotFound", err)
		}
	})
}

func TestRemove(t *testing.T) {
	t.Run("last admin cannot be removed", func(t *testing.T) {
		store := newTripStore()
		svc := NewService(store, &fakeUserStore{})

		if err := svc.Remove(context.Background(), "ua", "p-admin"); !errors.Is(err, ErrLastAdmin) {
			t.Fatalf("error = %v, want ErrLastAdmin", err)
		}
		if store.deletedID != "" {
			t.Error("nothing should be deleted")
		}
	})

	t.Run("admin removal succeeds when another admin remains", func(t *testing.T) {
		store := newTripStore()
		store.byID["p-edit"].Role = RoleAdmin
		svc := NewService(store, &fakeUserStore{})

		if err := svc.Remove(context.Background(), "ua", "p-admin"); err != nil {
			t.Fatalf("Remove() error = %v", err)
		}
		if store.deletedID != "p-admin" {
			t.Errorf("deleted %q, want p-admin", store.deletedID)
		}
	})

	t.Run("admin may remove others", func(t *testing.T) {
		store := newTripStore()
		svc := NewService(store, &fakeUserStore{})

		if err := svc.Remove(context.Background(), "ua", "p-ghost"); err != nil {
			t.Fatalf("Remove() error = %v", err)
		}
		if store.deletedID != "p-ghost" {
			t.Errorf("deleted %q, want p-ghost", store.deletedID)
		}
	})

	t.Run("members may remove themselves", func(t *testing.T) {
		store := newTripStore()
		svc := NewService(store, &fakeUserStore{})

		if err := svc.Remove(context.Background(), "ue", "p-edit"); err != nil {
			t.Fatalf("Remove() error = %v", err)
		}
	})

	t.Run("non-admin cannot remove others", func(t *testing.T) {
		svc := NewService(newTripStore(), &fakeUserStore{})

		if err := svc.Remove(context.Background(), "ue", "p-ghost"); !errors.Is(err, ErrNotAuthorized) {
			t.Errorf("error = %v, want ErrNotAuthorized", err)
		}
	})
}
