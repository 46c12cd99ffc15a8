package commands

import (
	"context"

	"sponsor-portal/internal/domain/application"
	"sponsor-portal/internal/infra"
	"sponsor-portal/internal/pkg/errs"
)

var (
	ErrApplicationNotFound = errs.New("application not found")
	ErrInvalidTransition   = errs.New("reservation status transition not allowed")
)

type ReservationCommands interface {
	// SetCheckin overwrites date and site regardless of the reservation status
	SetCheckin(ctx context.Context, applicationID string, checkin application.Checkin) error
	SetReservationStatus(ctx context.Context, applicationID string, status application.Status) error
}

type reservationCommandsImpl struct {
	applications ApplicationRepository
}

func NewReservationCommands(applications ApplicationRepository) ReservationCommands {
	return &reservationCommandsImpl{
		applications: applications,
	}
}

func (r *reservationCommandsImpl) SetCheckin(ctx context.Context, applicationID string, checkin application.Checkin) error {
	if err := r.applications.UpdateCheckin(ctx, applicationID, checkin); err != nil {
		return mapApplicationErr(err, "failed to update check-in")
	}
	return nil
}

func (r *reservationCommandsImpl) SetReservationStatus(ctx context.Context, applicationID string, status application.Status) error {
	app, err := r.applications.FindByID(ctx, applicationID)
	if err != nil {
		return mapApplicationErr(err, "failed to load application")
	}

	if err := app.ChangeStatus(status); err != nil {
		return errs.Mark(err, ErrInvalidTransition)
	}

	if err := r.applications.UpdateStatus(ctx, applicationID, status); err != nil {
		return mapApplicationErr(err, "failed to update reservation status")
	}
	return nil
}

func mapApplicationErr(err error, msg string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrApplicationNotFound)
	}
	return errs.Wrap(err, msg)
}
