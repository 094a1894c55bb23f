package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/Domenick1991/flightsearch/config"
	"github.com/Domenick1991/flightsearch/internal/domain"
	"github.com/Domenick1991/flightsearch/internal/seed"
	"github.com/jackc/pgx/v5/pgxpool"
	"gopkg.in/yaml.v3"
)

// FlightSource provides the initialization list for the flight catalog.
type FlightSource interface {
	List(ctx context.Context) ([]domain.Flight, error)
}

// MemoryFlightRepository serves a fixed list of flights.
type MemoryFlightRepository struct {
	flights []domain.Flight
}

func NewMemoryFlightRepository(flights []domain.Flight) *MemoryFlightRepository {
	return &MemoryFlightRepository{flights: flights}
}

func (r *MemoryFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Flight, len(r.flights))
	copy(out, r.flights)
	return out, nil
}

// FileFlightRepository reads flights from a YAML document with a top-level
// "flights" list. The file is read on every List call.
type FileFlightRepository struct {
	path string
}

type flightFile struct {
	Flights []domain.Flight `yaml:"flights"`
}

func NewFileFlightRepository(path string) *FileFlightRepository {
	return &FileFlightRepository{path: path}
}

func (r *FileFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read flights file: %w", err)
	}

	var doc flightFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse flights file %s: %w", r.path, err)
	}
	if doc.Flights == nil {
		doc.Flights = make([]domain.Flight, 0)
	}
	return doc.Flights, nil
}

// NewSource picks the catalog source named by cfg. pool is only used by the
// postgres source and may be nil otherwise.
func NewSource(cfg config.CatalogConfig, pool *pgxpool.Pool) (FlightSource, error) {
	switch cfg.Source {
	case config.CatalogSourceSeed, "":
		return NewMemoryFlightRepository(seed.Flights()), nil
	case config.CatalogSourceFile:
		return NewFileFlightRepository(cfg.File), nil
	case config.CatalogSourcePostgres:
		if pool == nil {
			return nil, fmt.Errorf("catalog source %q requires a database pool", cfg.Source)
		}
		return NewFlightRepository(pool), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSource, cfg.Source)
	}
}

var (
	_ FlightSource = (*MemoryFlightRepository)(nil)
	_ FlightSource = (*FileFlightRepository)(nil)
)
