//go:build unit || e2e

package builder

import (
	"strings"

	"sponsor-portal/internal/domain/influencer"
	"sponsor-portal/internal/domain/tier"
	reqdto "sponsor-portal/internal/handler/dto/request"
	"sponsor-portal/internal/infra/recordstore"
	"sponsor-portal/internal/infra/schema"
	"sponsor-portal/internal/usecase/queries"
)

type InfluencerBuilder struct {
	ID          string
	ChannelName string
	BirthDate   string
	Phone       string
	Tier        tier.Level
}

func NewInfluencerBuilder() *InfluencerBuilder {
	return &InfluencerBuilder{
		ID:          "recInfluencer0001",
		ChannelName: "jane_camp",
		BirthDate:   "1995-03-15",
		Phone:       "010-1234-5678",
		Tier:        tier.Partner,
	}
}

func (b *InfluencerBuilder) With(mutate func(*InfluencerBuilder)) *InfluencerBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *InfluencerBuilder) BuildDomain() *influencer.Influencer {
	return influencer.NewInfluencer(b.ID, b.ChannelName, b.BirthDate, b.Phone, b.Tier)
}

// BuildFields renders the record the way the hosted base stores it, tier as a lookup list
func (b *InfluencerBuilder) BuildFields() recordstore.Fields {
	return recordstore.Fields{
		schema.Influencer.ChannelName: b.ChannelName,
		schema.Influencer.BirthDate:   b.BirthDate,
		schema.Influencer.Phone:       b.Phone,
		schema.Influencer.Tier:        []any{b.Tier.String()},
	}
}

func (b *InfluencerBuilder) BuildView() *queries.InfluencerView {
	return &queries.InfluencerView{
		ID:          b.ID,
		ChannelName: b.ChannelName,
		BirthDate:   b.BirthDate,
		Phone:       b.Phone,
		Tier:        b.Tier.String(),
	}
}

// BuildCredentials returns what the influencer types on the login form
func (b *InfluencerBuilder) BuildCredentials() (influencer.Credentials, error) {
	dto := b.BuildLoginDTO()
	return influencer.NewCredentials(dto.ChannelName, dto.BirthDate, dto.PhoneLastFour)
}

func (b *InfluencerBuilder) BuildLoginDTO() reqdto.LoginRequest {
	birth := strings.ReplaceAll(b.BirthDate, "-", "")
	if len(birth) == 8 {
		birth = birth[2:]
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, b.Phone)
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return reqdto.LoginRequest{
		ChannelName:   b.ChannelName,
		BirthDate:     birth,
		PhoneLastFour: digits,
	}
}

// Fluent builder methods
func (b *InfluencerBuilder) WithID(id string) *InfluencerBuilder {
	b.ID = id
	return b
}

func (b *InfluencerBuilder) WithChannelName(name string) *InfluencerBuilder {
	b.ChannelName = name
	return b
}

func (b *InfluencerBuilder) WithBirthDate(date string) *InfluencerBuilder {
	b.BirthDate = date
	return b
}

func (b *InfluencerBuilder) WithPhone(phone string) *InfluencerBuilder {
	b.Phone = phone
	return b
}

func (b *InfluencerBuilder) WithTier(level tier.Level) *InfluencerBuilder {
	b.Tier = level
	return b
}
