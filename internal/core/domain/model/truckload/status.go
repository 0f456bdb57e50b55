package truckload

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is the truckload lifecycle:
//
//	Draft ──promote──> Active ──complete──> Completed
//	                     ^                      │
//	                     └──────uncomplete──────┘
type Status int

const (
	Unknown Status = iota
	Draft
	Active
	Completed
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is not persisted
	return map[Status]string{
		Draft:     "draft",
		Active:    "active",
		Completed: "completed",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid truckload status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid truckload status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// transition returns to when the status equals from, and an InvalidStateError otherwise.
func (s Status) transition(from, to Status) (Status, error) {
	if s != from {
		return s, errs.NewInvalidStateError("truckload", s.String(), from.String())
	}
	return to, nil
}
