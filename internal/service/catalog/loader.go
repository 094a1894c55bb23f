package catalog

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightsearch/internal/domain"
	"github.com/Domenick1991/flightsearch/internal/repository"
	"github.com/Domenick1991/flightsearch/internal/service/flights"
	"github.com/rs/zerolog"
)

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

// Loader fetches the initialization list for the flight engine, going to the
// source only when the cache has nothing usable.
type Loader struct {
	source repository.FlightSource
	cache  Cache
	logger zerolog.Logger
}

func NewLoader(source repository.FlightSource, cache Cache, logger zerolog.Logger) *Loader {
	return &Loader{source: source, cache: cache, logger: logger}
}

func (l *Loader) Load(ctx context.Context) ([]domain.Flight, error) {
	if l.cache != nil {
		cached, err := l.cache.GetFlights(ctx)
		if err != nil {
			l.logger.Warn().Err(err).Msg("flight cache read failed, falling back to source")
		} else if cached != nil {
			l.logger.Debug().Int("flights", len(cached)).Msg("flight catalog served from cache")
			return cached, nil
		}
	}

	records, err := l.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load flight catalog: %w", err)
	}

	if l.cache != nil {
		if err := l.cache.SetFlights(ctx, records); err != nil {
			l.logger.Warn().Err(err).Msg("flight cache write failed")
		}
	}
	return records, nil
}

// Build loads the catalog and constructs the query engine over it.
func (l *Loader) Build(ctx context.Context) (*flights.FlightService, error) {
	records, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}
	return flights.NewFlightService(records, flights.WithLogger(l.logger))
}
