package order

import (
	"fmt"
	"strings"

	"orders/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	ONGOING ──> COMPLETED
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Ongoing
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Ongoing:   "ONGOING",
		Completed: "COMPLETED",
	}
}

// ParseStatus maps the persisted/wire name back to a Status. Matching is case-insensitive.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s != Ongoing && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateModify checks that items and the delivery address may still change.
func (s Status) ValidateModify() error {
	if s != Ongoing {
		return errs.NewStateIsInvalidErrorWithCause("status", s.String(),
			fmt.Errorf("%s order cannot be modified", s.String()))
	}
	return nil
}

// Complete is the only transition: ONGOING -> COMPLETED.
func (s Status) Complete() (Status, error) {
	if s != Ongoing {
		return Unknown, errs.NewStateIsInvalidErrorWithCause("status", s.String(),
			fmt.Errorf("%s is not a valid status to complete", s.String()))
	}

	return Completed, nil
}
