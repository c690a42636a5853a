package reservation

import "strings"

type Status string

const (
	StatusOpen     Status = "OPEN"
	StatusApproved Status = "APPROVED"
	StatusClosed   Status = "CLOSED"
	StatusCanceled Status = "CANCELED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusApproved, StatusClosed, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is permitted from s.
func (s Status) IsTerminal() bool {
	return s == StatusClosed || s == StatusCanceled
}

// ParseStatus accepts any letter case.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
