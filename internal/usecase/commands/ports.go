package commands

import (
	"context"

	"sponsor-portal/internal/domain/application"
	"sponsor-portal/internal/domain/campaign"
)

// NewApplication is the payload of a freshly submitted application
type NewApplication struct {
	ChannelName  string
	InfluencerID string
	CampaignID   string
	Email        string
}

// ApplicationKey identifies the one application an influencer may hold per campaign.
// ChannelName is the session's channel name as written on the application record.
type ApplicationKey struct {
	InfluencerID string
	CampaignID   string
	ChannelName  string
}

type ApplicationRepository interface {
	ExistsFor(ctx context.Context, key ApplicationKey) (bool, error)
	// Create returns an empty id when the store accepted the call but returned no record
	Create(ctx context.Context, app NewApplication) (string, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*application.Application, error)
	UpdateCheckin(ctx context.Context, id string, checkin application.Checkin) error
	// UpdateStatus also clears check-in in the same write when the status requires it
	UpdateStatus(ctx context.Context, id string, status application.Status) error
}

type CampaignRepository interface {
	FindByID(ctx context.Context, id string) (*campaign.Campaign, error)
	// ReplaceApplicants overwrites the whole link list
	ReplaceApplicants(ctx context.Context, id string, applicationIDs []string) error
}

// LoginAttemptTracker counts failed logins per client key
type LoginAttemptTracker interface {
	IsLocked(ctx context.Context, key string) (bool, error)
	RecordFailure(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}
