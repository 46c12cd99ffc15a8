package request

import (
	"sponsor-portal/internal/domain/application"
)

type CheckinRequest struct {
	RecordID    string `json:"recordId" binding:"required"`
	CheckInDate string `json:"checkInDate" binding:"required"`
	CheckInSite string `json:"checkInSite" binding:"required"`
}

func (r CheckinRequest) ToDomain() (application.Checkin, error) {
	return application.NewCheckin(r.CheckInDate, r.CheckInSite)
}

type StatusRequest struct {
	RecordID string `json:"recordId" binding:"required"`
	Status   string `json:"status" binding:"required"`
}

func (r StatusRequest) ToDomain() (application.Status, error) {
	return application.ParseRequested(r.Status)
}
