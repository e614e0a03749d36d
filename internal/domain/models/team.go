// internal/domain/models/team.go
package models

import "time"

// Team is a hackathon team.
//
// Members are embedded on the team document (not a join collection) because
// teams are tiny and every read wants the full roster. Invariants enforced
// by the team store:
//   - len(Members) never exceeds MaxMembers
//   - member uids are unique within a team
//   - a team whose last member leaves is deleted, never stored empty
type Team struct {
	ID         string       `bson:"_id" json:"id"`
	Name       string       `bson:"name" json:"name"`
	CreatedBy  string       `bson:"created_by" json:"created_by"`
	Members    []TeamMember `bson:"members" json:"members"`
	MaxMembers int          `bson:"max_members" json:"max_members"`
	CreatedAt  time.Time    `bson:"created_at" json:"created_at"`
}

// TeamMember records one user's membership on a team.
type TeamMember struct {
	UID      string    `bson:"uid" json:"uid"`
	Role     string    `bson:"role" json:"role"`
	JoinedAt time.Time `bson:"joined_at" json:"joined_at"`
}

// IsFull reports whether the team has no open slots.
func (t *Team) IsFull() bool {
	return len(t.Members) >= t.MaxMembers
}

// HasMember reports whether uid is on the team.
func (t *Team) HasMember(uid string) bool {
	for _, m := range t.Members {
		if m.UID == uid {
			return true
		}
	}
	return false
}
