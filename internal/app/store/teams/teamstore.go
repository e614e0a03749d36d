// internal/app/store/teams/teamstore.go
package teamstore

import (
	"context"
	"encoding/hex"
	"errors"
	"time"

	"github.com/dalemusser/hackmatch/internal/app/system/txn"
	"github.com/dalemusser/hackmatch/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when no team exists for an id.
	ErrNotFound = errors.New("team not found")
	// ErrUserNotFound is returned when the acting user has no profile.
	ErrUserNotFound = errors.New("user profile not found")
	// ErrTeamFull is returned when a join would exceed max_members.
	ErrTeamFull = errors.New("team is full")
	// ErrAlreadyOnTeam is returned when the acting user already has a team.
	ErrAlreadyOnTeam = errors.New("user is already in a team")

	errBadMaxMembers = errors.New("max_members must be at least 1")
)

// CreatorRole is the role recorded for the user who creates a team.
const CreatorRole = "Creator"

type Store struct {
	db    *mongo.Database
	teams *mongo.Collection
	users *mongo.Collection
	log   *zap.Logger
}

func New(db *mongo.Database, log *zap.Logger) *Store {
	return &Store{
		db:    db,
		teams: db.Collection("teams"),
		users: db.Collection("users"),
		log:   log,
	}
}

// Get loads a team by id.
func (s *Store) Get(ctx context.Context, teamID string) (*models.Team, error) {
	var t models.Team
	if err := s.teams.FindOne(ctx, bson.M{"_id": teamID}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// NewTeamID generates a short, url-friendly team identifier.
func NewTeamID() string {
	u := uuid.New()
	return "team_" + hex.EncodeToString(u[:])[:8]
}

// Create inserts a new team with creatorUID as its first member and points
// the creator's profile at it. Both writes happen in one transaction: a
// team never exists without its creator's team_id set, and vice versa.
func (s *Store) Create(ctx context.Context, creatorUID, name string, maxMembers int) (string, error) {
	if maxMembers < 1 {
		return "", errBadMaxMembers
	}

	teamID := NewTeamID()
	now := time.Now().UTC()
	team := models.Team{
		ID:        teamID,
		Name:      name,
		CreatedBy: creatorUID,
		Members: []models.TeamMember{{
			UID:      creatorUID,
			Role:     CreatorRole,
			JoinedAt: now,
		}},
		MaxMembers: maxMembers,
		CreatedAt:  now,
	}

	err := txn.Run(ctx, s.db, s.log, func(ctx context.Context) error {
		// Re-read the creator inside the transaction so a concurrent join
		// cannot slip a team_id in under us.
		var user models.UserProfile
		if err := s.users.FindOne(ctx, bson.M{"_id": creatorUID}).Decode(&user); err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrUserNotFound
			}
			return err
		}
		if user.TeamID != nil {
			return ErrAlreadyOnTeam
		}

		if _, err := s.teams.InsertOne(ctx, team); err != nil {
			return err
		}

		return s.setUserTeam(ctx, creatorUID, &teamID)
	})
	if err != nil {
		return "", err
	}
	return teamID, nil
}

// Join appends uid to the team with the given role and sets the user's
// team_id, atomically. The append is guarded by a filter that re-checks
// member count and absence of uid, so the max_members invariant holds even
// when the server cannot run transactions and two joins race.
func (s *Store) Join(ctx context.Context, uid, teamID, role string) error {
	return txn.Run(ctx, s.db, s.log, func(ctx context.Context) error {
		team, err := s.Get(ctx, teamID)
		if err != nil {
			return err
		}
		if team.IsFull() {
			return ErrTeamFull
		}

		var user models.UserProfile
		if err := s.users.FindOne(ctx, bson.M{"_id": uid}).Decode(&user); err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrUserNotFound
			}
			return err
		}
		if user.TeamID != nil {
			return ErrAlreadyOnTeam
		}

		member := models.TeamMember{
			UID:      uid,
			Role:     role,
			JoinedAt: time.Now().UTC(),
		}
		res, err := s.teams.UpdateOne(ctx,
			bson.M{
				"_id":         teamID,
				"members.uid": bson.M{"$ne": uid},
				"$expr":       bson.M{"$lt": []interface{}{bson.M{"$size": "$members"}, "$max_members"}},
			},
			bson.M{"$push": bson.M{"members": member}},
		)
		if err != nil {
			return err
		}
		if res.ModifiedCount == 0 {
			// Lost a race: the slot filled (or uid got added) between the
			// read above and this guarded write.
			return ErrTeamFull
		}

		return s.setUserTeam(ctx, uid, &teamID)
	})
}

// Leave removes uid from the team and clears the user's team_id. A team
// whose last member leaves is deleted outright; an empty members array is
// never persisted.
func (s *Store) Leave(ctx context.Context, uid, teamID string) error {
	return txn.Run(ctx, s.db, s.log, func(ctx context.Context) error {
		team, err := s.Get(ctx, teamID)
		if err != nil {
			return err
		}

		remaining := make([]models.TeamMember, 0, len(team.Members))
		for _, m := range team.Members {
			if m.UID != uid {
				remaining = append(remaining, m)
			}
		}

		if len(remaining) == 0 {
			if _, err := s.teams.DeleteOne(ctx, bson.M{"_id": teamID}); err != nil {
				return err
			}
		} else {
			if _, err := s.teams.UpdateOne(ctx,
				bson.M{"_id": teamID},
				bson.M{"$set": bson.M{"members": remaining}},
			); err != nil {
				return err
			}
		}

		return s.setUserTeam(ctx, uid, nil)
	})
}

func (s *Store) setUserTeam(ctx context.Context, uid string, teamID *string) error {
	_, err := s.users.UpdateOne(ctx,
		bson.M{"_id": uid},
		bson.M{"$set": bson.M{"team_id": teamID}},
	)
	return err
}
