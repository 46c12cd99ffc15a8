//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"sponsor-portal/internal/domain/tier"
	"sponsor-portal/internal/pkg/clock"
	"sponsor-portal/internal/pkg/config"
	"sponsor-portal/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, influencerID, channelName string, level tier.Level) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, nil)
	token, err := service.GenerateToken(influencerID, channelName, level.String())
	require.NoError(t, err)
	return token
}

// CreateExpiredToken issues a token from a clock far enough in the past that it is already expired
func (h *JWTHelper) CreateExpiredToken(t *testing.T, influencerID, channelName string, level tier.Level) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-2 * h.cfg.Duration))
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, past)
	token, err := service.GenerateToken(influencerID, channelName, level.String())
	require.NoError(t, err)
	return token
}
