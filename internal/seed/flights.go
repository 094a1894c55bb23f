// Package seed holds the built-in flight catalog used when no other source is
// configured.
package seed

import "github.com/Domenick1991/flightsearch/internal/domain"

// Flights returns a fresh copy of the built-in catalog in its canonical order.
func Flights() []domain.Flight {
	return []domain.Flight{
		{ID: "FL001", Origin: "NYC", Destination: "LAX", DepartureTime: "08:00", ArrivalTime: "11:30", Price: 350.00, AvailableSeats: 45, Airline: "SkyWings"},
		{ID: "FL002", Origin: "LAX", Destination: "NYC", DepartureTime: "14:00", ArrivalTime: "22:30", Price: 375.00, AvailableSeats: 32, Airline: "SkyWings"},
		{ID: "FL003", Origin: "CHI", Destination: "MIA", DepartureTime: "10:15", ArrivalTime: "14:00", Price: 280.00, AvailableSeats: 58, Airline: "AirGlobe"},
		{ID: "FL004", Origin: "NYC", Destination: "LON", DepartureTime: "19:45", ArrivalTime: "08:30", Price: 620.00, AvailableSeats: 12, Airline: "TransAtlantic"},
		{ID: "FL005", Origin: "NYC", Destination: "LAX", DepartureTime: "16:30", ArrivalTime: "20:00", Price: 410.00, AvailableSeats: 0, Airline: "AirGlobe"},
	}
}
