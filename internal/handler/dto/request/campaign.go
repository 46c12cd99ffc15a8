package request

import (
	"strings"

	"sponsor-portal/internal/usecase"
	"sponsor-portal/internal/usecase/commands"
)

type ApplyRequest struct {
	CampaignID string `json:"campaignId" binding:"required"`
	Email      string `json:"email" binding:"required"`
}

// ToInput takes identity from the session, never from the body
func (r ApplyRequest) ToInput(session *usecase.Session) commands.ApplyInput {
	return commands.ApplyInput{
		CampaignID:   strings.TrimSpace(r.CampaignID),
		InfluencerID: session.InfluencerID,
		ChannelName:  session.ChannelName,
		Email:        strings.TrimSpace(r.Email),
	}
}
