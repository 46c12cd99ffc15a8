package response

import "sponsor-portal/internal/usecase"

type SessionUser struct {
	ChannelName string `json:"channelName"`
	Tier        string `json:"tier"`
}

type LoginResponse struct {
	Success    bool        `json:"success"`
	Influencer SessionUser `json:"influencer"`
}

type MeResponse struct {
	User SessionUser `json:"user"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

func FromSession(s *usecase.Session) SessionUser {
	return SessionUser{
		ChannelName: s.ChannelName,
		Tier:        s.Tier.String(),
	}
}
