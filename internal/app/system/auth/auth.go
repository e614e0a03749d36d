// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// ErrInvalidToken is returned by a Verifier for any token it cannot accept:
// malformed, expired, bad signature, or missing the subject claim.
var ErrInvalidToken = errors.New("invalid token")

// Verifier checks a bearer token issued by the external identity provider
// and returns the uid it identifies. Implementations must treat every
// failure mode as ErrInvalidToken (optionally wrapped); callers map it to
// a 401 without distinguishing causes.
type Verifier interface {
	Verify(token string) (uid string, err error)
}

// JWTVerifier verifies HS256-signed tokens with a shared secret. The uid is
// taken from the registered "sub" claim.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier constructs a JWTVerifier with the given signing secret.
func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("auth: signing secret must not be empty")
	}
	return &JWTVerifier{secret: []byte(secret)}, nil
}

// Verify parses and validates the token, returning its subject uid.
func (v *JWTVerifier) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

type ctxKey string

const uidKey ctxKey = "uid"

// UID returns the authenticated uid placed in the request context by
// RequireAuth, and a found flag.
func UID(r *http.Request) (string, bool) {
	uid, ok := r.Context().Value(uidKey).(string)
	return uid, ok && uid != ""
}

// WithUID returns a copy of the request carrying uid in its context.
// Exported for handler tests.
func WithUID(r *http.Request, uid string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), uidKey, uid))
}

// RequireAuth rejects requests without a valid "Authorization: Bearer"
// header and injects the verified uid into the request context. OPTIONS
// requests pass through for CORS preflight.
func RequireAuth(v Verifier, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				writeAuthError(w, "Authorization header missing")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeAuthError(w, "Authorization header must be: Bearer <token>")
				return
			}

			uid, err := v.Verify(parts[1])
			if err != nil {
				log.Debug("token verification failed", zap.Error(err))
				writeAuthError(w, "Invalid token")
				return
			}

			next.ServeHTTP(w, WithUID(r, uid))
		})
	}
}

func writeAuthError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	fmt.Fprintf(w, `{"error":%q}`+"\n", msg)
}
