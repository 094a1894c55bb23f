package flights

import (
	"fmt"

	"github.com/Domenick1991/flightsearch/internal/domain"
	"github.com/rs/zerolog"
)

// FlightUseCase is the read-only query contract over the flight catalog.
type FlightUseCase interface {
	All() []domain.Flight
	Search(criteria domain.SearchCriteria) []domain.Flight
	GetByID(id string) (domain.Flight, bool)
	CheckAvailability(id string) bool
	ListAirlines() []string
}

// FlightService answers queries over a collection fixed at construction.
// Nothing mutates the collection afterwards, so concurrent readers need no
// locking.
type FlightService struct {
	flights []domain.Flight
	byID    map[string]int
	logger  zerolog.Logger
}

type Option func(*FlightService)

func WithLogger(logger zerolog.Logger) Option {
	return func(s *FlightService) {
		s.logger = logger
	}
}

func NewFlightService(records []domain.Flight, opts ...Option) (*FlightService, error) {
	service := &FlightService{
		flights: make([]domain.Flight, 0, len(records)),
		byID:    make(map[string]int, len(records)),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(service)
	}

	for _, f := range records {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		if _, ok := service.byID[f.ID]; ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateFlightID, f.ID)
		}
		service.byID[f.ID] = len(service.flights)
		service.flights = append(service.flights, f)
	}

	service.logger.Info().Int("flights", len(service.flights)).Msg("flight catalog initialized")
	return service, nil
}

func (s *FlightService) All() []domain.Flight {
	out := make([]domain.Flight, len(s.flights))
	copy(out, s.flights)
	return out
}

func (s *FlightService) Search(criteria domain.SearchCriteria) []domain.Flight {
	if criteria.IsEmpty() {
		return s.All()
	}

	results := make([]domain.Flight, 0)
	for _, f := range s.flights {
		if criteria.Matches(f) {
			results = append(results, f)
		}
	}
	return results
}

func (s *FlightService) GetByID(id string) (domain.Flight, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return domain.Flight{}, false
	}
	return s.flights[idx], true
}

// CheckAvailability reports false both for an unknown id and for a flight
// with no seats left.
func (s *FlightService) CheckAvailability(id string) bool {
	f, ok := s.GetByID(id)
	return ok && f.HasSeats()
}

// ListAirlines returns each airline once. Callers must not depend on the order.
func (s *FlightService) ListAirlines() []string {
	seen := make(map[string]struct{})
	airlines := make([]string, 0)
	for _, f := range s.flights {
		if _, ok := seen[f.Airline]; ok {
			continue
		}
		seen[f.Airline] = struct{}{}
		airlines = append(airlines, f.Airline)
	}
	return airlines
}

var _ FlightUseCase = (*FlightService)(nil)
