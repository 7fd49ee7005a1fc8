package domain

import "errors"

var (
	// ErrContentNotFound is returned when the content item does not exist
	ErrContentNotFound = errors.New("content item not found")

	// ErrIdentityUnresolvable is returned when a request carries neither an
	// authenticated user id nor a client IP
	ErrIdentityUnresolvable = errors.New("viewer identity unresolvable")

	// ErrInvalidProgress is returned for a progress percentage outside [0,100]
	ErrInvalidProgress = errors.New("progress percentage out of range")

	// ErrInvalidTimeSpent is returned for a negative time-spent value
	ErrInvalidTimeSpent = errors.New("time spent must be non-negative")

	// ErrInvalidMonth is returned for a month string not in YYYY-MM form
	ErrInvalidMonth = errors.New("invalid month")

	// ErrMonetizationDisabled is returned by settlement entry points when
	// revenue distribution is administratively disabled
	ErrMonetizationDisabled = errors.New("monetization is disabled")
)
