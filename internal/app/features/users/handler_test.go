// internal/app/features/users/handler_test.go
package users_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/dalemusser/hackmatch/internal/app/features/users"
	"github.com/dalemusser/hackmatch/internal/app/store/profiles"
	"github.com/dalemusser/hackmatch/internal/app/system/auth"
	"github.com/dalemusser/hackmatch/internal/testutil"
)

func TestServeMe_ReturnsProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	fx.CreateProfile(ctx, "user-1", "Ada", []string{"python"}, []string{"backend"})

	h := users.NewHandler(profilestore.New(db), zap.NewNop())

	req := auth.WithUID(httptest.NewRequest("GET", "/users/me", nil), "user-1")
	rec := httptest.NewRecorder()
	h.ServeMe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		UID  string `json:"uid"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.UID != "user-1" || resp.Name != "Ada" {
		t.Errorf("unexpected profile: %+v", resp)
	}
}

func TestServeMe_NotOnboarded(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := users.NewHandler(profilestore.New(db), zap.NewNop())

	req := auth.WithUID(httptest.NewRequest("GET", "/users/me", nil), "ghost")
	rec := httptest.NewRecorder()
	h.ServeMe(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestServeMe_RequiresAuth(t *testing.T) {
	h := users.NewHandler(nil, zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeMe(rec, httptest.NewRequest("GET", "/users/me", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}
