// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dalemusser/hackmatch/internal/app/ai/gemini"
	healthfeature "github.com/dalemusser/hackmatch/internal/app/features/health"
	mapfeature "github.com/dalemusser/hackmatch/internal/app/features/mapplayers"
	matchfeature "github.com/dalemusser/hackmatch/internal/app/features/match"
	onboardfeature "github.com/dalemusser/hackmatch/internal/app/features/onboard"
	searchfeature "github.com/dalemusser/hackmatch/internal/app/features/search"
	teamsfeature "github.com/dalemusser/hackmatch/internal/app/features/teams"
	usersfeature "github.com/dalemusser/hackmatch/internal/app/features/users"
	"github.com/dalemusser/hackmatch/internal/app/matching"
	profilestore "github.com/dalemusser/hackmatch/internal/app/store/profiles"
	teamstore "github.com/dalemusser/hackmatch/internal/app/store/teams"
	"github.com/dalemusser/hackmatch/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// The health endpoint is public; everything else sits behind bearer token
// verification. Matching prefers Gemini ranking and falls back to the
// deterministic local scorer when the remote call fails or no API key is
// configured.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	verifier, err := auth.NewJWTVerifier(appCfg.AuthJWTSecret)
	if err != nil {
		logger.Error("jwt verifier init failed", zap.Error(err))
		return nil, err
	}

	profiles := profilestore.New(deps.MongoDatabase)
	teams := teamstore.New(deps.MongoDatabase, logger)

	var strategy matching.Strategy = matching.LocalScoring{}
	if appCfg.GeminiAPIKey != "" {
		gen, err := gemini.NewGenerator(context.Background(), appCfg.GeminiAPIKey, appCfg.GeminiModel)
		if err != nil {
			logger.Error("gemini client init failed", zap.Error(err))
			return nil, err
		}
		strategy = &matching.Fallback{
			Primary:   &matching.RemoteRanking{Gen: gen},
			Secondary: matching.LocalScoring{},
			Log:       logger,
		}
		logger.Info("remote ranking enabled", zap.String("model", gen.Model()))
	} else {
		logger.Info("remote ranking disabled, using local scoring")
	}

	matcher := &matching.Matcher{Profiles: profiles, Strategy: strategy}

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Everything below requires a verified bearer token.
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(verifier, logger))

		onboardfeature.MountRoutes(r, onboardfeature.NewHandler(profiles, logger))
		usersfeature.MountRoutes(r, usersfeature.NewHandler(profiles, logger))
		matchfeature.MountRoutes(r, matchfeature.NewHandler(matcher, logger))
		searchfeature.MountRoutes(r, searchfeature.NewHandler(profiles, logger))
		mapfeature.MountRoutes(r, mapfeature.NewHandler(profiles, logger))

		teamsHandler := teamsfeature.NewHandler(teams, logger)
		r.Mount("/teams", teamsfeature.Routes(teamsHandler))
	})

	return r, nil
}
