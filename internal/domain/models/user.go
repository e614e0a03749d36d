// internal/domain/models/user.go
package models

import "time"

// UserProfile represents a hacker looking for (or already on) a team.
//
// NOTE:
//   - The document _id is the external identity provider's uid, not a
//     generated ObjectID. Profiles are created and updated by merge-upserts
//     during onboarding, so any field may be absent on older documents.
//   - TeamID is nil while the user is unaffiliated. A non-nil TeamID must
//     reference an existing team whose members include this uid; team
//     create/join/leave keep the two sides in step inside a transaction.
type UserProfile struct {
	UID               string    `bson:"_id" json:"uid"`
	Name              string    `bson:"name" json:"name"`
	Email             string    `bson:"email" json:"email"`
	Skills            []string  `bson:"skills" json:"skills"`
	PreferredRoles    []string  `bson:"preferred_roles" json:"preferred_roles"`
	Location          Location  `bson:"location" json:"location"`
	WantsLocalMatches bool      `bson:"wants_local_matches" json:"wants_local_matches"`
	TeamID            *string   `bson:"team_id,omitempty" json:"team_id,omitempty"`
	LastActive        time.Time `bson:"last_active" json:"last_active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Location is where a user hacks from. City/country are compared with exact
// string equality when a user restricts matching to locals; there is no
// fuzzy or radius-based geo matching.
type Location struct {
	City    string `bson:"city" json:"city"`
	Country string `bson:"country" json:"country"`
	Coords  Coords `bson:"coords" json:"coords"`
}

// Coords are only used by the map view; matching never reads them.
type Coords struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}
