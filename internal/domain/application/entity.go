package application

import (
	"errors"
	"strings"
	"time"
)

var ErrCheckinRequired = errors.New("check-in date and site are required")
var ErrInvalidCheckinDate = errors.New("check-in date must be YYYY-MM-DD")

type Checkin struct {
	date string
	site string
}

func NewCheckin(date, site string) (Checkin, error) {
	date = strings.TrimSpace(date)
	site = strings.TrimSpace(site)
	if date == "" || site == "" {
		return Checkin{}, ErrCheckinRequired
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return Checkin{}, ErrInvalidCheckinDate
	}
	return Checkin{date: date, site: site}, nil
}

func (c Checkin) Date() string { return c.date }
func (c Checkin) Site() string { return c.site }

// Application is one influencer's entry for one campaign
type Application struct {
	ID            string
	ChannelName   string
	InfluencerIDs []string
	CampaignIDs   []string
	Email         string
	CheckinDate   string
	CheckinSite   string
	Status        Status
}

// ChangeStatus applies a transition in place, clearing check-in when the new status requires it
func (a *Application) ChangeStatus(next Status) error {
	if !a.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	a.Status = next
	if next.ClearsCheckin() {
		a.CheckinDate = ""
		a.CheckinSite = ""
	}
	return nil
}

func (a *Application) OwnedBy(channelName string) bool {
	return channelName != "" && strings.TrimSpace(a.ChannelName) == strings.TrimSpace(channelName)
}
