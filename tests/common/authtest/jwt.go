//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"courtbook/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the external identity provider would,
// so middleware-protected routes can be exercised end to end.
type JWTHelper struct {
	cfg config.AuthConfig
}

func NewJWTHelper(cfg config.AuthConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subjectID uuid.UUID, role string) string {
	t.Helper()
	return h.signToken(t, subjectID, role, time.Now().Add(time.Hour))
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subjectID uuid.UUID, role string) string {
	t.Helper()
	return h.signToken(t, subjectID, role, time.Now().Add(-time.Hour))
}

func (h *JWTHelper) signToken(t *testing.T, subjectID uuid.UUID, role string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  subjectID.String(),
		"role": role,
		"iss":  h.cfg.Issuer,
		"iat":  time.Now().Unix(),
		"exp":  expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.TokenSecret))
	require.NoError(t, err)
	return signed
}
