// internal/app/matching/fallback_test.go
package matching

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/dalemusser/hackmatch/internal/domain/models"
)

type stubStrategy struct {
	results []Result
	err     error
	calls   int
}

func (s *stubStrategy) Rank(context.Context, *models.UserProfile, []models.UserProfile) ([]Result, error) {
	s.calls++
	return s.results, s.err
}

func TestFallback_PrimarySucceeds(t *testing.T) {
	primary := &stubStrategy{results: []Result{{Name: "Alice", Email: "alice@example.com", Score: 90, Reason: "r"}}}
	secondary := &stubStrategy{}

	f := &Fallback{Primary: primary, Secondary: secondary, Log: zap.NewNop()}
	requester := profile("Req", "req@example.com", nil, nil)

	results, err := f.Rank(context.Background(), &requester, nil)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Alice" {
		t.Errorf("unexpected results: %+v", results)
	}
	if secondary.calls != 0 {
		t.Error("secondary should not run when primary succeeds")
	}
}

func TestFallback_PrimaryFails(t *testing.T) {
	primary := &stubStrategy{err: errors.New("model unavailable")}
	secondary := &stubStrategy{results: []Result{{Name: "Bob", Email: "bob@example.com", Score: 15, Reason: "r"}}}

	f := &Fallback{Primary: primary, Secondary: secondary, Log: zap.NewNop()}
	requester := profile("Req", "req@example.com", nil, nil)

	results, err := f.Rank(context.Background(), &requester, nil)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Bob" {
		t.Errorf("expected secondary results, got %+v", results)
	}
	if primary.calls != 1 || secondary.calls != 1 {
		t.Errorf("expected one call each, got primary=%d secondary=%d", primary.calls, secondary.calls)
	}
}

func TestFallback_NilLogger(t *testing.T) {
	f := &Fallback{
		Primary:   &stubStrategy{err: errors.New("boom")},
		Secondary: &stubStrategy{},
	}
	requester := profile("Req", "req@example.com", nil, nil)

	if _, err := f.Rank(context.Background(), &requester, nil); err != nil {
		t.Fatalf("Rank: %v", err)
	}
}
