package trip

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/unkotrip/api/internal/participant"
	"github.com/unkotrip/api/internal/user"
)

type fakeStore struct {
	createErr   error
	creatorID   string
	creatorName string
	currency    string
	createCalls int
}

func (f *fakeStore) Create(_ context.Context, creatorID, creatorName string, req *CreateTripRequest, defaultCurrency string) (*Trip, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.creatorID = creatorID
	f.creatorName = creatorName
	f.currency = defaultCurrency
	return &Trip{
		ID:              "trip-1",
		Name:            req.Name,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		DefaultCurrency: defaultCurrency,
		CreatedByID:     creatorID,
	}, nil
}

func (f *fakeStore) GetByID(_ context.Context, _ string) (*Trip, error) { return nil, nil }

func (f *fakeStore) ListByUserID(_ context.Context, _ string, _, _ int) ([]*Trip, int, error) {
	return nil, 0, nil
}

func (f *fakeStore) Update(_ context.Context, _ string, _ *UpdateTripRequest, _ string) (*Trip, error) {
	return nil, nil
}

func (f *fakeStore) Delete(_ context.Context, _ string) error { return nil }

type fakeParticipantStore struct{}

func (f *fakeParticipantStore) GetByTripAndUser(_ context.Context, _, _ string) (*participant.Participant, error) {
	return nil, nil
}

func (f *fakeParticipantStore) ListByTrip(_ context.Context, _ string) ([]*participant.Participant, error) {
	return nil, nil
}

type fakeUserStore struct {
	users map[string]*user.User
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*user.User, error) {
	return f.users[id], nil
}

func newCreateRequest() *CreateTripRequest {
	return &CreateTripRequest{
		Name:      "Hokkaido Ski Week",
		StartDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateTrip(t *testing.T) {
	users := &fakeUserStore{users: map[string]*user.User{
		"u1": {ID: "u1", Email: "ana@example.com", Name: "Ana"},
		"u2": {ID: "u2", Email: "bruno@example.com", Name: ""},
	}}

	t.Run("creator persisted with the trip", func(t *testing.T) {
		store := &fakeStore{}
		svc := NewService(store, &fakeParticipantStore{}, users)

		trip, err := svc.Create(context.Background(), "u1", newCreateRequest())
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if store.createCalls != 1 {
			t.Errorf("expected one store call, got %d", store.createCalls)
		}
		if store.creatorID != "u1" || store.creatorName != "Ana" {
			t.Errorf("creator passed as (%q, %q), want (u1, Ana)", store.creatorID, store.creatorName)
		}
		if trip.DefaultCurrency != "CLP" {
			t.Errorf("DefaultCurrency = %q, want default CLP", trip.DefaultCurrency)
		}
	})

	t.Run("creator name falls back to email", func(t *testing.T) {
		store := &fakeStore{}
		svc := NewService(store, &fakeParticipantStore{}, users)

		if _, err := svc.Create(context.Background(), "u2", newCreateRequest()); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if store.creatorName != "bruno@example.com" {
			t.Errorf("creator name = %q, want email fallback", store.creatorName)
		}
	})

	t.Run("store failure yields no trip", func(t *testing.T) {
		store := &fakeStore{createErr: errors.New("insert failed")}
		svc := NewService(store, &fakeParticipantStore{}, users)

		trip, err := svc.Create(context.Background(), "u1", newCreateRequest())
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if trip != nil {
			t.Errorf("expected nil trip on failure, got %+v", trip)
		}
	})

	t.Run("rejects end date before start date", func(t *testing.T) {
		store := &fakeStore{}
		svc := NewService(store, &fakeParticipantStore{}, users)

		req := newCreateRequest()
		req.StartDate, req.EndDate = req.EndDate, req.StartDate
		if _, err := svc.Create(context.Background(), "u1", req); !errors.Is(err, ErrInvalidDates) {
			t.Errorf("error = %v, want ErrInvalidDates", err)
		}
		if store.createCalls != 0 {
			t.Error("store should not be called for invalid dates")
		}
	})

	t.Run("rejects unsupported currency", func(t *testing.T) {
		svc := NewService(&fakeStore{}, &fakeParticipantStore{}, users)

		req := newCreateRequest()
		req.DefaultCurrency = "XXX"
		if _, err := svc.Create(context.Background(), "u1", req); !errors.Is(err, ErrInvalidCurrency) {
			t.Errorf("error = %v, want ErrInvalidCurrency", err)
		}
	})

	t.Run("rejects unknown creator", func(t *testing.T) {
		svc := NewService(&fakeStore{}, &fakeParticipantStore{}, users)

		if _, err := svc.Create(context.Background(), "ghost", newCreateRequest()); !errors.Is(err, user.ErrUserNotFound) {
			t.Errorf("error = %v, want ErrUserNotFound", err)
		}
	})
}
