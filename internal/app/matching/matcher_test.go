// internal/app/matching/matcher_test.go
package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/dalemusser/hackmatch/internal/domain/models"
)

type fakeProfiles struct {
	users     map[string]*models.UserProfile
	pool      []models.UserProfile
	lastLocal *models.Location
	poolErr   error
}

func (f *fakeProfiles) GetByUID(_ context.Context, uid string) (*models.UserProfile, error) {
	u, ok := f.users[uid]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (f *fakeProfiles) Available(_ context.Context, _ string, local *models.Location) ([]models.UserProfile, error) {
	f.lastLocal = local
	return f.pool, f.poolErr
}

func TestMatcher_RanksPool(t *testing.T) {
	requester := profile("Req", "req@example.com", []string{"go"}, []string{"backend"})
	alice := profile("Alice", "alice@example.com", []string{"go"}, []string{"frontend"})

	profiles := &fakeProfiles{
		users: map[string]*models.UserProfile{"u1": &requester},
		pool:  []models.UserProfile{alice},
	}
	m := &Matcher{Profiles: profiles, Strategy: LocalScoring{}}

	results, err := m.FindMatches(context.Background(), "u1")
	if err != nil {
		t.Fatalf("FindMatches: %v", err)
	}
	if len(results) != 1 || results[0].Email != "alice@example.com" {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestMatcher_UnknownUser(t *testing.T) {
	m := &Matcher{
		Profiles: &fakeProfiles{users: map[string]*models.UserProfile{}},
		Strategy: LocalScoring{},
	}
	if _, err := m.FindMatches(context.Background(), "ghost"); err == nil {
		t.Fatal("expected error for unknown user")
	}
}

func TestMatcher_EmptyPoolSkipsStrategy(t *testing.T) {
	requester := profile("Req", "req@example.com", []string{"go"}, nil)
	strategy := &stubStrategy{err: errors.New("must not be called")}
	m := &Matcher{
		Profiles: &fakeProfiles{users: map[string]*models.UserProfile{"u1": &requester}},
		Strategy: strategy,
	}

	results, err := m.FindMatches(context.Background(), "u1")
	if err != nil {
		t.Fatalf("FindMatches: %v", err)
	}
	if results == nil || len(results) != 0 {
		t.Errorf("expected empty non-nil slice, got %+v", results)
	}
	if strategy.calls != 0 {
		t.Error("strategy should not run on an empty pool")
	}
}

func TestMatcher_LocalPreferencePassesLocation(t *testing.T) {
	requester := profile("Req", "req@example.com", []string{"go"}, nil)
	requester.WantsLocalMatches = true
	requester.Location = models.Location{City: "Berlin", Country: "Germany"}

	profiles := &fakeProfiles{users: map[string]*models.UserProfile{"u1": &requester}}
	m := &Matcher{Profiles: profiles, Strategy: LocalScoring{}}

	if _, err := m.FindMatches(context.Background(), "u1"); err != nil {
		t.Fatalf("FindMatches: %v", err)
	}
	if profiles.lastLocal == nil {
		t.Fatal("expected location filter for local-match preference")
	}
	if profiles.lastLocal.City != "Berlin" {
		t.Errorf("expected Berlin, got %q", profiles.lastLocal.City)
	}
}

func TestMatcher_GlobalPreferenceOmitsLocation(t *testing.T) {
	requester := profile("Req", "req@example.com", []string{"go"}, nil)
	requester.Location = models.Location{City: "Berlin", Country: "Germany"}

	profiles := &fakeProfiles{users: map[string]*models.UserProfile{"u1": &requester}}
	m := &Matcher{Profiles: profiles, Strategy: LocalScoring{}}

	if _, err := m.FindMatches(context.Background(), "u1"); err != nil {
		t.Fatalf("FindMatches: %v", err)
	}
	if profiles.lastLocal != nil {
		t.Errorf("expected no location filter, got %+v", profiles.lastLocal)
	}
}

func TestMatcher_PoolError(t *testing.T) {
	requester := profile("Req", "req@example.com", nil, nil)
	m := &Matcher{
		Profiles: &fakeProfiles{
			users:   map[string]*models.UserProfile{"u1": &requester},
			poolErr: errors.New("network down"),
		},
		Strategy: LocalScoring{},
	}
	if _, err := m.FindMatches(context.Background(), "u1"); err == nil {
		t.Fatal("expected pool error to propagate")
	}
}
