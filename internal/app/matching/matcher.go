// internal/app/matching/matcher.go
package matching

import (
	"context"
	"fmt"

	"github.com/dalemusser/hackmatch/internal/domain/models"
)

// ProfileSource supplies the requester's profile and the candidate pool.
// *profilestore.Store satisfies it.
type ProfileSource interface {
	GetByUID(ctx context.Context, uid string) (*models.UserProfile, error)
	Available(ctx context.Context, excludeUID string, local *models.Location) ([]models.UserProfile, error)
}

// Matcher resolves a user, assembles the pool of available candidates, and
// delegates ranking to its strategy.
type Matcher struct {
	Profiles ProfileSource
	Strategy Strategy
}

// FindMatches returns up to MaxSuggestions teammate suggestions for uid.
// Candidates already on a team are excluded; when the requester wants local
// matches the pool is restricted to their city and country. An empty pool
// yields an empty slice without consulting the strategy.
func (m *Matcher) FindMatches(ctx context.Context, uid string) ([]Result, error) {
	requester, err := m.Profiles.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	var local *models.Location
	if requester.WantsLocalMatches {
		local = &requester.Location
	}

	pool, err := m.Profiles.Available(ctx, uid, local)
	if err != nil {
		return nil, fmt.Errorf("load candidate pool: %w", err)
	}
	if len(pool) == 0 {
		return []Result{}, nil
	}

	return m.Strategy.Rank(ctx, requester, pool)
}
