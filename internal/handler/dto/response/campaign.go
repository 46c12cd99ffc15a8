package response

import (
	"sponsor-portal/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CampaignResponse struct {
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

type CampaignListResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
}

type ApplyResponse struct {
	Success    bool   `json:"success"`
	CouponCode string `json:"couponCode"`
}

func FromCampaignViews(views []queries.CampaignView) (*CampaignListResponse, error) {
	res := &CampaignListResponse{Campaigns: make([]CampaignResponse, 0, len(views))}
	if err := copier.Copy(&res.Campaigns, &views); err != nil {
		return nil, err
	}
	return res, nil
}
