//go:build unit || e2e

package builder

import (
	"sponsor-portal/internal/domain/application"
	reqdto "sponsor-portal/internal/handler/dto/request"
	"sponsor-portal/internal/infra/recordstore"
	"sponsor-portal/internal/infra/schema"
	"sponsor-portal/internal/usecase/queries"
)

type ApplicationBuilder struct {
	ID                string
	ChannelName       string
	InfluencerID      string
	CampaignID        string
	Email             string
	AccommodationName string
	CouponCode        string
	CheckinDate       string
	CheckinSite       string
	Status            application.Status
	DepositConfirmed  bool
}

func NewApplicationBuilder() *ApplicationBuilder {
	return &ApplicationBuilder{
		ID:                "recApplication01",
		ChannelName:       "jane_camp",
		InfluencerID:      "recInfluencer0001",
		CampaignID:        "recCampaign00001",
		Email:             "jane@example.com",
		AccommodationName: "솔숲 오토캠핑장",
		CouponCode:        "CAMP-ABC123",
		Status:            application.StatusActive,
	}
}

func (b *ApplicationBuilder) With(mutate func(*ApplicationBuilder)) *ApplicationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ApplicationBuilder) BuildDomain() *application.Application {
	return &application.Application{
		ID:            b.ID,
		ChannelName:   b.ChannelName,
		InfluencerIDs: []string{b.InfluencerID},
		CampaignIDs:   []string{b.CampaignID},
		Email:         b.Email,
		CheckinDate:   b.CheckinDate,
		CheckinSite:   b.CheckinSite,
		Status:        b.Status,
	}
}

// BuildFields includes the lookup columns the base computes from the linked campaign
func (b *ApplicationBuilder) BuildFields() recordstore.Fields {
	f := recordstore.Fields{
		schema.Application.ChannelName:       b.ChannelName,
		schema.Application.Influencer:        recordstore.List([]string{b.InfluencerID}),
		schema.Application.Campaign:          recordstore.List([]string{b.CampaignID}),
		schema.Application.Email:             b.Email,
		schema.Application.AccommodationName: []any{b.AccommodationName},
		schema.Application.CouponCode:        []any{b.CouponCode},
	}
	if b.CheckinDate != "" {
		f[schema.Application.CheckinDate] = b.CheckinDate
	}
	if b.CheckinSite != "" {
		f[schema.Application.CheckinSite] = b.CheckinSite
	}
	if b.Status != application.StatusActive {
		f[schema.Application.Status] = b.Status.String()
	}
	if b.DepositConfirmed {
		f[schema.Application.DepositConfirmed] = true
	}
	return f
}

func (b *ApplicationBuilder) BuildView() queries.ApplicationView {
	return queries.ApplicationView{
		ID:                b.ID,
		ChannelName:       b.ChannelName,
		AccommodationName: b.AccommodationName,
		CouponCode:        b.CouponCode,
		CheckinDate:       b.CheckinDate,
		CheckinSite:       b.CheckinSite,
		Status:            b.Status.String(),
		DepositConfirmed:  b.DepositConfirmed,
	}
}

func (b *ApplicationBuilder) BuildApplyDTO() reqdto.ApplyRequest {
	return reqdto.ApplyRequest{
		CampaignID: b.CampaignID,
		Email:      b.Email,
	}
}

func (b *ApplicationBuilder) BuildCheckinDTO() reqdto.CheckinRequest {
	return reqdto.CheckinRequest{
		RecordID:    b.ID,
		CheckInDate: b.CheckinDate,
		CheckInSite: b.CheckinSite,
	}
}

// Fluent builder methods
func (b *ApplicationBuilder) WithID(id string) *ApplicationBuilder {
	b.ID = id
	return b
}

func (b *ApplicationBuilder) WithChannelName(name string) *ApplicationBuilder {
	b.ChannelName = name
	return b
}

func (b *ApplicationBuilder) WithInfluencerID(id string) *ApplicationBuilder {
	b.InfluencerID = id
	return b
}

func (b *ApplicationBuilder) WithCampaignID(id string) *ApplicationBuilder {
	b.CampaignID = id
	return b
}

func (b *ApplicationBuilder) WithCheckin(date, site string) *ApplicationBuilder {
	b.CheckinDate = date
	b.CheckinSite = site
	return b
}

func (b *ApplicationBuilder) WithStatus(status application.Status) *ApplicationBuilder {
	b.Status = status
	return b
}

func (b *ApplicationBuilder) AsDepositConfirmed() *ApplicationBuilder {
	b.DepositConfirmed = true
	return b
}
