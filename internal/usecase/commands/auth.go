package commands

import (
	"context"
	"log/slog"

	"sponsor-portal/internal/domain/influencer"
	"sponsor-portal/internal/domain/tier"
	"sponsor-portal/internal/pkg/errs"
	"sponsor-portal/internal/pkg/jwt"
	"sponsor-portal/internal/usecase/queries"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTooManyAttempts    = errs.New("too many failed login attempts")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type ChannelMatch string

const (
	MatchContains ChannelMatch = "contains"
	MatchExact    ChannelMatch = "exact"
)

type LoginResult struct {
	InfluencerID string
	ChannelName  string
	Tier         tier.Level
	Token        string
}

type AuthCommands interface {
	// Authenticate collapses every failure, store outages included, into ErrInvalidCredentials
	Authenticate(ctx context.Context, creds influencer.Credentials) (*influencer.Influencer, error)
	Login(ctx context.Context, creds influencer.Credentials, clientKey string) (*LoginResult, error)
}

type InfluencerReadStore interface {
	FindByChannelName(ctx context.Context, channelName string, exact bool) (*queries.InfluencerView, error)
}

type authCommandsImpl struct {
	readStore  InfluencerReadStore
	attempts   LoginAttemptTracker
	jwtService *jwt.Service
	match      ChannelMatch
	logger     *slog.Logger
}

func NewAuthCommands(
	readStore InfluencerReadStore,
	attempts LoginAttemptTracker,
	jwtService *jwt.Service,
	match ChannelMatch,
	logger *slog.Logger,
) AuthCommands {
	if match == "" {
		match = MatchContains
	}
	return &authCommandsImpl{
		readStore:  readStore,
		attempts:   attempts,
		jwtService: jwtService,
		match:      match,
		logger:     logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, creds influencer.Credentials, clientKey string) (*LoginResult, error) {
	locked, err := a.attempts.IsLocked(ctx, clientKey)
	if err != nil {
		a.logger.Warn("login attempt tracker unavailable", slog.Any("error", err))
	}
	if locked {
		return nil, ErrTooManyAttempts
	}

	inf, err := a.Authenticate(ctx, creds)
	if err != nil {
		if trackErr := a.attempts.RecordFailure(ctx, clientKey); trackErr != nil {
			a.logger.Warn("failed to record login failure", slog.Any("error", trackErr))
		}
		return nil, err
	}

	if err := a.attempts.Reset(ctx, clientKey); err != nil {
		a.logger.Warn("failed to reset login attempts", slog.Any("error", err))
	}

	token, err := a.jwtService.GenerateToken(inf.ID(), inf.ChannelName(), inf.Tier().String())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		InfluencerID: inf.ID(),
		ChannelName:  inf.ChannelName(),
		Tier:         inf.Tier(),
		Token:        token,
	}, nil
}

func (a *authCommandsImpl) Authenticate(ctx context.Context, creds influencer.Credentials) (*influencer.Influencer, error) {
	view, err := a.readStore.FindByChannelName(ctx, creds.ChannelName(), a.match == MatchExact)
	if err != nil {
		a.logger.Error("influencer lookup failed", slog.Any("error", err))
		return nil, ErrInvalidCredentials
	}
	if view == nil {
		return nil, ErrInvalidCredentials
	}

	level, err := tier.Parse(view.Tier)
	if err != nil {
		a.logger.Warn("influencer has no usable tier",
			slog.String("influencer_id", view.ID),
			slog.String("tier", view.Tier))
		return nil, ErrInvalidCredentials
	}

	inf := influencer.NewInfluencer(view.ID, view.ChannelName, view.BirthDate, view.Phone, level)
	if !inf.Matches(creds) {
		return nil, ErrInvalidCredentials
	}
	return inf, nil
}
