package queries

// InfluencerView carries the fields needed to check login credentials
type InfluencerView struct {
	ID          string
	ChannelName string
	BirthDate   string
	Phone       string
	Tier        string
}

// CampaignView is a campaign as seen by one tier
type CampaignView struct {
	ID                string `json:"id"`
	AccommodationName string `json:"accommodationName"`
	Location          string `json:"location"`
	Deadline          string `json:"deadline"`
	DetailURL         string `json:"detailUrl"`
	ApplicationURL    string `json:"applicationUrl"`
	Features          string `json:"features"`
	Price             int    `json:"price"`
	TotalCount        int    `json:"totalCount"`
	AvailableCount    int    `json:"availableCount"`
	IsClosed          bool   `json:"isClosed"`
}

// ApplicationView is one row of "my applications"
type ApplicationView struct {
	ID                string `json:"id"`
	ChannelName       string `json:"channelName"`
	AccommodationName string `json:"accommodationName"`
	CouponCode        string `json:"couponCode"`
	CheckinDate       string `json:"checkInDate"`
	CheckinSite       string `json:"checkInSite"`
	Status            string `json:"status"`
	DepositConfirmed  bool   `json:"depositConfirmed"`
}
