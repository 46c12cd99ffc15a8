package application

import "errors"

var ErrInvalidTransition = errors.New("reservation status transition not allowed")
var ErrInvalidStatus = errors.New("unknown reservation status")

// Status mirrors the store's single-select values; the empty value means active
type Status string

const (
	StatusActive    Status = ""
	StatusChanged   Status = "변경"
	StatusCancelled Status = "취소"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusChanged, StatusCancelled:
		return true
	default:
		return false
	}
}

// ParseRequested accepts only the statuses an influencer may ask for
func ParseRequested(s string) (Status, error) {
	switch Status(s) {
	case StatusChanged, StatusCancelled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusActive, StatusChanged:
		return next == StatusChanged || next == StatusCancelled
	default:
		return false
	}
}

// ClearsCheckin reports whether entering this status wipes the registered check-in
func (s Status) ClearsCheckin() bool {
	return s == StatusChanged
}
