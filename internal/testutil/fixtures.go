// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dalemusser/hackmatch/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateProfile inserts a user profile with sensible defaults and returns it.
func (f *Fixtures) CreateProfile(ctx context.Context, uid, name string, skills, roles []string) models.UserProfile {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.UserProfile{
		UID:            uid,
		Name:           name,
		Email:          uid + "@example.com",
		Skills:         skills,
		PreferredRoles: roles,
		Location: models.Location{
			City:    "Test City",
			Country: "Testland",
		},
		LastActive: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test profile: %v", err)
	}
	return user
}

// CreateLocalProfile inserts a profile pinned to a city with local matching
// enabled.
func (f *Fixtures) CreateLocalProfile(ctx context.Context, uid, name, city, country string) models.UserProfile {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.UserProfile{
		UID:               uid,
		Name:              name,
		Email:             uid + "@example.com",
		Skills:            []string{"go"},
		PreferredRoles:    []string{"backend"},
		WantsLocalMatches: true,
		Location: models.Location{
			City:    city,
			Country: country,
		},
		LastActive: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test profile: %v", err)
	}
	return user
}

// CreateTeam inserts a team whose first member is the creator and returns it.
func (f *Fixtures) CreateTeam(ctx context.Context, id, name, creatorUID string, maxMembers int) models.Team {
	f.t.Helper()

	now := time.Now().UTC()
	team := models.Team{
		ID:        id,
		Name:      name,
		CreatedBy: creatorUID,
		Members: []models.TeamMember{{
			UID:      creatorUID,
			Role:     "Creator",
			JoinedAt: now,
		}},
		MaxMembers: maxMembers,
		CreatedAt:  now,
	}

	if _, err := f.db.Collection("teams").InsertOne(ctx, team); err != nil {
		f.t.Fatalf("failed to create test team: %v", err)
	}
	return team
}
