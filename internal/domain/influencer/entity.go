package influencer

import (
	"strings"

	"sponsor-portal/internal/domain/tier"
)

// Influencer is owned by the onboarding process; the portal only reads it
type Influencer struct {
	id          string
	channelName string
	birthDate   string
	phone       string
	tier        tier.Level
}

func NewInfluencer(id, channelName, birthDate, phone string, level tier.Level) *Influencer {
	return &Influencer{
		id:          id,
		channelName: strings.TrimSpace(channelName),
		birthDate:   strings.TrimSpace(birthDate),
		phone:       phone,
		tier:        level,
	}
}

func (i *Influencer) ID() string          { return i.id }
func (i *Influencer) ChannelName() string { return i.channelName }
func (i *Influencer) BirthDate() string   { return i.birthDate }
func (i *Influencer) Phone() string       { return i.phone }
func (i *Influencer) Tier() tier.Level    { return i.tier }

// Matches reports whether the typed credentials prove ownership of this record.
// The channel name was already used to find the record and is not compared again.
func (i *Influencer) Matches(c Credentials) bool {
	if i.birthDate != c.BirthDate() {
		return false
	}
	return PhoneSuffixMatches(i.phone, c.PhoneSuffix())
}
