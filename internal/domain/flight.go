package domain

import "fmt"

type Flight struct {
	ID             string  `json:"id" yaml:"id"`
	Origin         string  `json:"origin" yaml:"origin"`
	Destination    string  `json:"destination" yaml:"destination"`
	DepartureTime  string  `json:"departure_time" yaml:"departure_time"`
	ArrivalTime    string  `json:"arrival_time" yaml:"arrival_time"`
	Price          float64 `json:"price" yaml:"price"`
	AvailableSeats int     `json:"available_seats" yaml:"available_seats"`
	Airline        string  `json:"airline" yaml:"airline"`
}

// Validate checks the per-record invariants. Uniqueness of ids is a collection
// property and is checked by the engine.
func (f Flight) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidFlight)
	}
	if f.Price < 0 {
		return fmt.Errorf("%w: flight %s has negative price %.2f", ErrInvalidFlight, f.ID, f.Price)
	}
	if f.AvailableSeats < 0 {
		return fmt.Errorf("%w: flight %s has negative seat count %d", ErrInvalidFlight, f.ID, f.AvailableSeats)
	}
	return nil
}

func (f Flight) HasSeats() bool {
	return f.AvailableSeats > 0
}
