// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	var problems []string

	if err := ensureUsers(ctx, db, log); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureTeams(ctx, db, log); err != nil {
		problems = append(problems, "teams: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	c := db.Collection("users")
	return ensureIndexSet(ctx, c, log, []mongo.IndexModel{
		// Candidate pool scans filter on team_id (nil = unaffiliated) and,
		// for local matching, on exact city/country. One compound index
		// covers both shapes via the team_id prefix.
		{
			Keys: bson.D{
				{Key: "team_id", Value: 1},
				{Key: "location.city", Value: 1},
				{Key: "location.country", Value: 1},
			},
			Options: options.Index().SetName("idx_users_teamid_city_country"),
		},

		// /search/users?skill= uses a multikey index over the skills array.
		{
			Keys:    bson.D{{Key: "skills", Value: 1}},
			Options: options.Index().SetName("idx_users_skills"),
		},

		// /map/players lists only opted-in users.
		{
			Keys:    bson.D{{Key: "wants_local_matches", Value: 1}},
			Options: options.Index().SetName("idx_users_wants_local"),
		},
	})
}

func ensureTeams(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	c := db.Collection("teams")
	return ensureIndexSet(ctx, c, log, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_by", Value: 1}},
			Options: options.Index().SetName("idx_teams_created_by"),
		},
		{
			Keys:    bson.D{{Key: "members.uid", Value: 1}},
			Options: options.Index().SetName("idx_teams_member_uid"),
		},
	})
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, log *zap.Logger, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		name := ""
		if m.Options != nil && m.Options.Name != nil {
			name = *m.Options.Name
		}

		log.Info("ensuring index",
			zap.String("collection", coll.Name()),
			zap.String("name", name))

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			// Mongo/DocDB sometimes returns IndexOptionsConflict when an index
			// with the same keys already exists under a different name. Keep
			// the existing index rather than failing startup.
			if isOptionsConflictErr(err) {
				log.Warn("index exists with conflicting options, keeping existing",
					zap.String("collection", coll.Name()),
					zap.String("name", name),
					zap.Error(err))
				continue
			}
			errs = append(errs, name+": "+err.Error())
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}
