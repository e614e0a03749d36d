// internal/app/store/profiles/profilestore.go
package profilestore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/hackmatch/internal/app/system/normalize"
	"github.com/dalemusser/hackmatch/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no profile exists for a uid.
var ErrNotFound = errors.New("user profile not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByUID loads a profile by external uid.
func (s *Store) GetByUID(ctx context.Context, uid string) (*models.UserProfile, error) {
	var u models.UserProfile
	if err := s.c.FindOne(ctx, bson.M{"_id": uid}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update holds the onboarding fields that are written by a merge-upsert.
// Nil slice/pointer fields are left untouched on the stored document, so a
// resubmission only overwrites what it carries.
type Update struct {
	Name              string
	Email             string
	Skills            []string
	PreferredRoles    []string
	Location          *models.Location
	WantsLocalMatches *bool
}

// UpsertMerge merges upd into the profile for uid, creating the document on
// first onboarding. last_active and updated_at are always refreshed;
// team_id is never touched here (only team operations write it).
func (s *Store) UpsertMerge(ctx context.Context, uid string, upd Update) error {
	now := time.Now().UTC()

	set := bson.M{
		"last_active": now,
		"updated_at":  now,
	}
	if upd.Name != "" {
		set["name"] = normalize.Name(upd.Name)
	}
	if upd.Email != "" {
		set["email"] = normalize.Email(upd.Email)
	}
	if upd.Skills != nil {
		set["skills"] = upd.Skills
	}
	if upd.PreferredRoles != nil {
		set["preferred_roles"] = upd.PreferredRoles
	}
	if upd.Location != nil {
		set["location"] = upd.Location
	}
	if upd.WantsLocalMatches != nil {
		set["wants_local_matches"] = *upd.WantsLocalMatches
	}

	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": uid},
		bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// Available returns the candidate pool for uid: every profile with no team,
// excluding uid itself. When local is non-nil the pool is further restricted
// to exact city/country equality (case-sensitive).
//
// Iteration order is the collection's natural order and is stable for an
// unchanged data set, which the deterministic scorer relies on for tie
// breaking.
func (s *Store) Available(ctx context.Context, uid string, local *models.Location) ([]models.UserProfile, error) {
	filter := bson.M{
		"_id":     bson.M{"$ne": uid},
		"team_id": nil, // matches both explicit null and missing
	}
	if local != nil {
		filter["location.city"] = local.City
		filter["location.country"] = local.Country
	}

	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.UserProfile
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Search returns profiles filtered by skill and/or city. Empty arguments
// are ignored; with both empty this is a full scan (the collection is
// hackathon-sized).
func (s *Store) Search(ctx context.Context, skill, city string) ([]models.UserProfile, error) {
	filter := bson.M{}
	if skill != "" {
		filter["skills"] = skill
	}
	if city != "" {
		filter["location.city"] = city
	}

	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.UserProfile
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// MapPlayer is the reduced projection served to the map view.
type MapPlayer struct {
	UID      string          `bson:"_id" json:"uid"`
	Name     string          `bson:"name" json:"name"`
	Location models.Location `bson:"location" json:"location"`
	Skills   []string        `bson:"skills" json:"skills"`
}

// MapPlayers returns every user who opted in to local matching, projected
// down to the fields the map needs. Users without a stored location are
// skipped.
func (s *Store) MapPlayers(ctx context.Context) ([]MapPlayer, error) {
	filter := bson.M{
		"wants_local_matches": true,
		"location":            bson.M{"$exists": true},
	}
	opts := options.Find().SetProjection(bson.M{
		"name":     1,
		"location": 1,
		"skills":   1,
	})

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var players []MapPlayer
	if err := cur.All(ctx, &players); err != nil {
		return nil, err
	}
	return players, nil
}
