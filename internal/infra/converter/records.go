package converter

import (
	"sponsor-portal/internal/domain/application"
	"sponsor-portal/internal/domain/campaign"
	"sponsor-portal/internal/domain/tier"
	"sponsor-portal/internal/infra/recordstore"
	"sponsor-portal/internal/infra/schema"
	"sponsor-portal/internal/usecase/queries"
)

func ToCampaign(rec recordstore.Record) *campaign.Campaign {
	f := rec.Fields
	c := &campaign.Campaign{
		ID:                rec.ID,
		AccommodationName: recordstore.Text(f, schema.Campaign.AccommodationName),
		Location:          recordstore.Text(f, schema.Campaign.Location),
		Deadline:          recordstore.Text(f, schema.Campaign.Deadline),
		DetailURL:         recordstore.Text(f, schema.Campaign.DetailURL),
		ApplicationURL:    recordstore.Text(f, schema.Campaign.ApplicationURL),
		Features:          recordstore.Text(f, schema.Campaign.Features),
		CouponCode:        recordstore.First(f, schema.Campaign.CouponCode),
		ApplicantIDs:      recordstore.Strings(f, schema.Campaign.Applicants),
		Terms:             make(map[tier.Level]campaign.Terms, len(tier.All)),
	}
	for _, level := range tier.All {
		names := schema.FieldsFor(level)
		c.Terms[level] = campaign.Terms{
			Price:     recordstore.Int(f, names.Price),
			Total:     recordstore.Int(f, names.Total),
			Available: recordstore.Int(f, names.Available),
		}
	}
	return c
}

func ToInfluencerView(rec recordstore.Record) *queries.InfluencerView {
	f := rec.Fields
	return &queries.InfluencerView{
		ID:          rec.ID,
		ChannelName: recordstore.First(f, schema.Influencer.ChannelName),
		BirthDate:   recordstore.Text(f, schema.Influencer.BirthDate),
		Phone:       recordstore.Text(f, schema.Influencer.Phone),
		Tier:        recordstore.First(f, schema.Influencer.Tier),
	}
}

func ToApplication(rec recordstore.Record) *application.Application {
	f := rec.Fields
	return &application.Application{
		ID:            rec.ID,
		ChannelName:   recordstore.First(f, schema.Application.ChannelName),
		InfluencerIDs: recordstore.Strings(f, schema.Application.Influencer),
		CampaignIDs:   recordstore.Strings(f, schema.Application.Campaign),
		Email:         recordstore.Text(f, schema.Application.Email),
		CheckinDate:   recordstore.Text(f, schema.Application.CheckinDate),
		CheckinSite:   recordstore.Text(f, schema.Application.CheckinSite),
		Status:        application.Status(recordstore.Text(f, schema.Application.Status)),
	}
}

func ToApplicationView(rec recordstore.Record) queries.ApplicationView {
	f := rec.Fields
	return queries.ApplicationView{
		ID:                rec.ID,
		ChannelName:       recordstore.First(f, schema.Application.ChannelName),
		AccommodationName: recordstore.First(f, schema.Application.AccommodationName),
		CouponCode:        recordstore.First(f, schema.Application.CouponCode),
		CheckinDate:       recordstore.Text(f, schema.Application.CheckinDate),
		CheckinSite:       recordstore.Text(f, schema.Application.CheckinSite),
		Status:            recordstore.Text(f, schema.Application.Status),
		DepositConfirmed:  recordstore.Bool(f, schema.Application.DepositConfirmed),
	}
}
