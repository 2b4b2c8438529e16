package reservation

import "errors"

var ErrInvalidStatus = errors.New("invalid reservation status")

// Status tracks the stay lifecycle: an active stay checks in, and checks out
// once a payment for it succeeds.
type Status string

const (
	StatusCheckin  Status = "checkin"
	StatusCheckout Status = "checkout"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCheckin, StatusCheckout:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
