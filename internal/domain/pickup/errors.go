package pickup

import "errors"

var (
	ErrRequestNotFound           = errors.New("pickup request not found")
	ErrInvalidServiceType        = errors.New("invalid service type")
	ErrInvalidStatus             = errors.New("invalid pickup status")
	ErrIllegalTransition         = errors.New("illegal status transition")
	ErrNotCancellable            = errors.New("request cannot be cancelled in its current status")
	ErrDuplicateTrackingNumber   = errors.New("tracking number already exists")
	ErrTrackingNumberImmutable   = errors.New("tracking number is already assigned")
	ErrPastPickupDate            = errors.New("pickup date must be in the future")
	ErrWeightBelowMinimum        = errors.New("weight must be at least 0.1 kg")
	ErrAgentMissingOperatorRole  = errors.New("assigned agent must have operator role")
)
