//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"sponsor-portal/internal/pkg/clock"
	"sponsor-portal/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC))
	service := jwt.NewService("test-secret", 7*24*time.Hour, clk)

	token, err := service.GenerateToken("recJane", "jane_camp", "2")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "recJane", claims.InfluencerID)
	assert.Equal(t, "jane_camp", claims.ChannelName)
	assert.Equal(t, "2", claims.Tier)
	assert.True(t, clk.Now().Add(7*24*time.Hour).Equal(claims.ExpiresAt.Time))
}

func TestValidateTokenExpiry(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC))
	service := jwt.NewService("test-secret", 7*24*time.Hour, clk)

	token, err := service.GenerateToken("recJane", "jane_camp", "2")
	require.NoError(t, err)

	clk.Advance(7*24*time.Hour - time.Minute)
	_, err = service.ValidateToken(token)
	assert.NoError(t, err)

	clk.Advance(2 * time.Minute)
	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateTokenRejects(t *testing.T) {
	service := jwt.NewService("test-secret", time.Hour, nil)

	other, err := jwt.NewService("other-secret", time.Hour, nil).GenerateToken("recJane", "jane_camp", "2")
	require.NoError(t, err)

	noChannel, err := service.GenerateToken("recJane", "", "2")
	require.NoError(t, err)

	unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, jwt.Claims{
		InfluencerID: "recJane",
		ChannelName:  "jane_camp",
		Tier:         "2",
	}).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"wrong secret":    other,
		"missing channel": noChannel,
		"alg none":        unsigned,
		"malformed":       "a.b.c",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := service.ValidateToken(token)
			assert.ErrorIs(t, err, jwt.ErrInvalidToken)
		})
	}
}
