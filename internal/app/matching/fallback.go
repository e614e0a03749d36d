// internal/app/matching/fallback.go
package matching

import (
	"context"

	"go.uber.org/zap"

	"github.com/dalemusser/hackmatch/internal/domain/models"
)

// Fallback tries its primary strategy and, on any error, switches to the
// secondary. A match request never fails because the primary ranker is
// unreachable or returned garbage.
type Fallback struct {
	Primary   Strategy
	Secondary Strategy
	Log       *zap.Logger
}

func (f *Fallback) Rank(ctx context.Context, requester *models.UserProfile, pool []models.UserProfile) ([]Result, error) {
	results, err := f.Primary.Rank(ctx, requester, pool)
	if err == nil {
		return results, nil
	}

	if f.Log != nil {
		f.Log.Warn("primary ranking failed, using fallback",
			zap.String("uid", requester.UID),
			zap.Error(err))
	}
	return f.Secondary.Rank(ctx, requester, pool)
}
