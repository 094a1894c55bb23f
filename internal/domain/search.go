package domain

import (
	"fmt"
	"math"
	"strconv"
)

// SearchCriteria holds the optional search filters. A nil field places no
// constraint on that dimension; a non-nil zero MaxPrice is a real ceiling.
type SearchCriteria struct {
	Origin      *string
	Destination *string
	MaxPrice    *float64
}

// Matches reports whether f satisfies every supplied filter.
func (c SearchCriteria) Matches(f Flight) bool {
	if c.Origin != nil && f.Origin != *c.Origin {
		return false
	}
	if c.Destination != nil && f.Destination != *c.Destination {
		return false
	}
	if c.MaxPrice != nil && f.Price > *c.MaxPrice {
		return false
	}
	return true
}

func (c SearchCriteria) IsEmpty() bool {
	return c.Origin == nil && c.Destination == nil && c.MaxPrice == nil
}

func String(s string) *string {
	return &s
}

func Float(v float64) *float64 {
	return &v
}

// ParseCriteria turns raw query parameters into search criteria. Empty values
// mean "no filter"; maxPrice must be a finite, non-negative number.
func ParseCriteria(origin, destination, maxPrice string) (SearchCriteria, error) {
	var criteria SearchCriteria
	if origin != "" {
		criteria.Origin = String(origin)
	}
	if destination != "" {
		criteria.Destination = String(destination)
	}
	if maxPrice != "" {
		v, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return SearchCriteria{}, fmt.Errorf("%w: %q", ErrInvalidPrice, maxPrice)
		}
		criteria.MaxPrice = Float(v)
	}
	return criteria, nil
}
