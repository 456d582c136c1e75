// Package authn is the authentication boundary. Token issuance lives in an
// external service; this package only verifies bearer tokens and hands the
// core an Identity (id, role, staff flag).
package authn

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"jobboard/internal/domain"
	"jobboard/internal/observability/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type identityKey struct{}

// Verifier validates HS256 bearer tokens whose claims carry the acting
// account's role and staff flag.
type Verifier struct {
	secret []byte
	issuer string
}

func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer}
}

func (v *Verifier) Verify(tokenString string) (domain.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %T", token.Method)
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return domain.Identity{}, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Identity{}, fmt.Errorf("invalid token claims")
	}
	if iss, _ := claims["iss"].(string); iss != "" && v.issuer != "" && iss != v.issuer {
		return domain.Identity{}, fmt.Errorf("issuer mismatch")
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("invalid subject: %w", err)
	}
	role, _ := claims["role"].(string)
	staff, _ := claims["staff"].(bool)
	return domain.Identity{ID: id, Role: domain.Role(role), IsStaff: staff}, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// resulting Identity in the request context.
func (v *Verifier) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := middleware.RequestIDFromContext(r.Context())
		raw := r.Header.Get("Authorization")
		if !strings.HasPrefix(strings.ToLower(raw), "bearer ") {
			unauthorized(w, "Authentication credentials were not provided.")
			slog.Warn("auth missing bearer", "request_id", reqID, "path", r.URL.Path)
			return
		}
		identity, err := v.Verify(strings.TrimSpace(raw[len("Bearer "):]))
		if err != nil {
			unauthorized(w, "Invalid token.")
			slog.Warn("auth invalid token", "error", err, "request_id", reqID)
			return
		}
		ctx := context.WithValue(r.Context(), identityKey{}, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Sign mints a token for an identity. The production issuer is an external
// collaborator; this exists for local development and tests.
func (v *Verifier) Sign(identity domain.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   v.issuer,
		"sub":   identity.ID.String(),
		"role":  string(identity.Role),
		"staff": identity.IsStaff,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(domain.Identity)
	return id, ok
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": msg})
}
