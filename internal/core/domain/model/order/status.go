package order

import (
	"fmt"

	"farmmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. Statuses are stored and
// matched as lowercase literals, exactly as they appear on the wire.
type Status string

const (
	// Pending is the initial status of a freshly placed order.
	Pending Status = "pending"

	// Processing indicates the order is being prepared by the farmer.
	Processing Status = "processing"

	// Shipped indicates the order has left the farm.
	Shipped Status = "shipped"

	// Delivered indicates the order reached the buyer.
	Delivered Status = "delivered"

	// Cancelled indicates the order was withdrawn before delivery.
	Cancelled Status = "cancelled"
)

// getValidStatuses returns the set of accepted status literals.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Pending:    {},
		Processing: {},
		Shipped:    {},
		Delivered:  {},
		Cancelled:  {},
	}
}

// StatusFromString converts a raw literal into a Status.
// Matching is case-sensitive; unknown literals are rejected.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is one of the accepted literals.
// The empty string and any unknown literal are invalid.
func (s Status) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("status")
	}
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the status literal. Implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
