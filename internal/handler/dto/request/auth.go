package request

import (
	"sponsor-portal/internal/domain/influencer"
)

// LoginRequest formats are checked by ToDomain so each field gets its own message
type LoginRequest struct {
	ChannelName   string `json:"channelName" binding:"required"`
	BirthDate     string `json:"birthDate" binding:"required"`
	PhoneLastFour string `json:"phoneLastFour" binding:"required"`
}

func (r *LoginRequest) ToDomain() (influencer.Credentials, error) {
	return influencer.NewCredentials(r.ChannelName, r.BirthDate, r.PhoneLastFour)
}
