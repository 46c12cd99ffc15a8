package usecase

import (
	"sponsor-portal/internal/domain/tier"
	"sponsor-portal/internal/pkg/jwt"
)

// Session is what a verified token says about the caller
type Session struct {
	InfluencerID string
	ChannelName  string
	Tier         tier.Level
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*Session, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*Session, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	level, err := tier.Parse(claims.Tier)
	if err != nil {
		return nil, jwt.ErrInvalidToken
	}

	return &Session{
		InfluencerID: claims.InfluencerID,
		ChannelName:  claims.ChannelName,
		Tier:         level,
	}, nil
}
