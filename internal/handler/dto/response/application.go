package response

import (
	"sponsor-portal/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ApplicationResponse struct {
	ID                string `json:"id"`
	AccommodationName string `json:"accommodationName"`
	CouponCode        string `json:"couponCode"`
	CheckinDate       string `json:"checkInDate"`
	CheckinSite       string `json:"checkInSite"`
	Status            string `json:"status"`
	DepositConfirmed  bool   `json:"depositConfirmed"`
}

type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
}

func FromApplicationViews(views []queries.ApplicationView) (*ApplicationListResponse, error) {
	res := &ApplicationListResponse{Applications: make([]ApplicationResponse, 0, len(views))}
	if err := copier.Copy(&res.Applications, &views); err != nil {
		return nil, err
	}
	return res, nil
}
