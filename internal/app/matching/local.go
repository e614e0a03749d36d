// internal/app/matching/local.go
package matching

import (
	"context"
	"sort"

	"github.com/dalemusser/hackmatch/internal/domain/models"
)

// localReason is the fixed rationale on every locally scored result. The
// scorer does not synthesize per-candidate explanations.
const localReason = "Skills complement and roles match"

// Scoring weights: shared skills dominate, open role slots break ties.
const (
	skillOverlapWeight   = 10
	roleComplementWeight = 5
)

// LocalScoring is the deterministic scorer. It is pure: no I/O, no
// randomness, identical output for identical input on every invocation.
// Rank never returns an error.
type LocalScoring struct{}

// Rank scores each candidate as
//
//	|skills ∩ requester.skills|*10 + |requester.roles ∖ candidate.roles|*5
//
// drops candidates scoring zero, sorts the rest descending with the pool's
// original order breaking ties, and truncates to MaxSuggestions.
func (LocalScoring) Rank(_ context.Context, requester *models.UserProfile, pool []models.UserProfile) ([]Result, error) {
	skills := toSet(requester.Skills)
	roles := toSet(requester.PreferredRoles)

	results := make([]Result, 0, len(pool))
	for _, c := range pool {
		score := scoreCandidate(skills, roles, &c)
		if score <= 0 {
			continue
		}
		results = append(results, Result{
			Name:   c.Name,
			Email:  c.Email,
			Score:  float64(score),
			Reason: localReason,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > MaxSuggestions {
		results = results[:MaxSuggestions]
	}
	return results, nil
}

func scoreCandidate(requesterSkills, requesterRoles map[string]struct{}, c *models.UserProfile) int {
	candidateSkills := toSet(c.Skills)
	candidateRoles := toSet(c.PreferredRoles)

	overlap := 0
	for s := range candidateSkills {
		if _, ok := requesterSkills[s]; ok {
			overlap++
		}
	}

	// Roles the requester wants that the candidate does not claim for
	// themselves: the candidate could fill that gap.
	complement := 0
	for r := range requesterRoles {
		if _, ok := candidateRoles[r]; !ok {
			complement++
		}
	}

	return overlap*skillOverlapWeight + complement*roleComplementWeight
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}
