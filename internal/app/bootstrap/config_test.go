// internal/app/bootstrap/config_test.go
package bootstrap

import (
	"testing"

	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestValidateConfig_AcceptsDefaults(t *testing.T) {
	cfg := AppConfig{
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "hackmatch",
		AuthJWTSecret: "secret",
	}
	if err := ValidateConfig(nil, cfg, testLogger()); err != nil {
		t.Errorf("ValidateConfig: %v", err)
	}
}

func TestValidateConfig_RejectsBadMongoURI(t *testing.T) {
	cfg := AppConfig{
		MongoURI:      "not-a-mongo-uri",
		AuthJWTSecret: "secret",
	}
	if err := ValidateConfig(nil, cfg, testLogger()); err == nil {
		t.Error("expected error for invalid mongo uri")
	}
}

func TestValidateConfig_RequiresJWTSecret(t *testing.T) {
	cfg := AppConfig{
		MongoURI: "mongodb://localhost:27017",
	}
	if err := ValidateConfig(nil, cfg, testLogger()); err == nil {
		t.Error("expected error for missing jwt secret")
	}
}

func TestValidateConfig_AllowsMissingGeminiKey(t *testing.T) {
	cfg := AppConfig{
		MongoURI:      "mongodb://localhost:27017",
		AuthJWTSecret: "secret",
	}
	if err := ValidateConfig(nil, cfg, testLogger()); err != nil {
		t.Errorf("missing gemini key must not be fatal: %v", err)
	}
}
