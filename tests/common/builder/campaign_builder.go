//go:build unit || e2e

package builder

import (
	"sponsor-portal/internal/domain/campaign"
	"sponsor-portal/internal/domain/tier"
	"sponsor-portal/internal/infra/recordstore"
	"sponsor-portal/internal/infra/schema"
)

type CampaignBuilder struct {
	ID                string
	AccommodationName string
	Location          string
	Deadline          string
	DetailURL         string
	ApplicationURL    string
	Features          string
	CouponCode        string
	ApplicantIDs      []string
	Terms             map[tier.Level]campaign.Terms
}

func NewCampaignBuilder() *CampaignBuilder {
	return &CampaignBuilder{
		ID:                "recCampaign00001",
		AccommodationName: "솔숲 오토캠핑장",
		Location:          "강원 홍천",
		Deadline:          "입실 후 2주 이내",
		DetailURL:         "https://example.com/camps/1",
		ApplicationURL:    "https://example.com/camps/1/apply",
		Features:          "계곡 바로 앞, 개별 화장실",
		CouponCode:        "CAMP-ABC123",
		Terms: map[tier.Level]campaign.Terms{
			tier.Icon:    {Price: 150000, Total: 3, Available: 1},
			tier.Partner: {Price: 80000, Total: 5, Available: 2},
			tier.Rising:  {Price: 30000, Total: 10, Available: 0},
		},
	}
}

func (b *CampaignBuilder) With(mutate func(*CampaignBuilder)) *CampaignBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CampaignBuilder) BuildDomain() *campaign.Campaign {
	terms := make(map[tier.Level]campaign.Terms, len(b.Terms))
	for k, v := range b.Terms {
		terms[k] = v
	}
	return &campaign.Campaign{
		ID:                b.ID,
		AccommodationName: b.AccommodationName,
		Location:          b.Location,
		Deadline:          b.Deadline,
		DetailURL:         b.DetailURL,
		ApplicationURL:    b.ApplicationURL,
		Features:          b.Features,
		CouponCode:        b.CouponCode,
		ApplicantIDs:      append([]string(nil), b.ApplicantIDs...),
		Terms:             terms,
	}
}

// BuildFields omits empty cells, as the hosted base does
func (b *CampaignBuilder) BuildFields() recordstore.Fields {
	f := recordstore.Fields{
		schema.Campaign.AccommodationName: b.AccommodationName,
		schema.Campaign.Location:          b.Location,
		schema.Campaign.Deadline:          b.Deadline,
		schema.Campaign.DetailURL:         b.DetailURL,
		schema.Campaign.ApplicationURL:    b.ApplicationURL,
		schema.Campaign.Features:          b.Features,
	}
	if b.CouponCode != "" {
		f[schema.Campaign.CouponCode] = b.CouponCode
	}
	if len(b.ApplicantIDs) > 0 {
		f[schema.Campaign.Applicants] = recordstore.List(b.ApplicantIDs)
	}
	for level, t := range b.Terms {
		names := schema.FieldsFor(level)
		f[names.Price] = t.Price
		f[names.Total] = t.Total
		f[names.Available] = t.Available
	}
	return f
}

// Fluent builder methods
func (b *CampaignBuilder) WithID(id string) *CampaignBuilder {
	b.ID = id
	return b
}

func (b *CampaignBuilder) WithAccommodationName(name string) *CampaignBuilder {
	b.AccommodationName = name
	return b
}

func (b *CampaignBuilder) WithCouponCode(code string) *CampaignBuilder {
	b.CouponCode = code
	return b
}

func (b *CampaignBuilder) WithoutCoupon() *CampaignBuilder {
	b.CouponCode = ""
	return b
}

func (b *CampaignBuilder) WithApplicants(ids ...string) *CampaignBuilder {
	b.ApplicantIDs = ids
	return b
}

func (b *CampaignBuilder) WithTerms(level tier.Level, terms campaign.Terms) *CampaignBuilder {
	b.Terms[level] = terms
	return b
}

func (b *CampaignBuilder) WithoutTerms(level tier.Level) *CampaignBuilder {
	delete(b.Terms, level)
	return b
}
