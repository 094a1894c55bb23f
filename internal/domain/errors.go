package domain

import "errors"

var (
	ErrFlightNotFound    = errors.New("flight not found")
	ErrInvalidFlight     = errors.New("invalid flight")
	ErrDuplicateFlightID = errors.New("duplicate flight id")
	ErrInvalidPrice      = errors.New("invalid price")
	ErrUnknownSource     = errors.New("unknown catalog source")
)
