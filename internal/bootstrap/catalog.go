package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Domenick1991/flightsearch/config"
	"github.com/Domenick1991/flightsearch/internal/cache"
	"github.com/Domenick1991/flightsearch/internal/repository"
	"github.com/Domenick1991/flightsearch/internal/service/catalog"
	"github.com/Domenick1991/flightsearch/internal/service/flights"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// BuildFlightService loads the configured catalog and returns the query engine.
// Connections opened for loading are closed before it returns; the engine
// keeps no reference to them.
func BuildFlightService(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*flights.FlightService, error) {
	var pool *pgxpool.Pool
	if cfg.Catalog.Source == config.CatalogSourcePostgres {
		p, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		defer p.Close()
		pool = p
	}

	source, err := repository.NewSource(cfg.Catalog, pool)
	if err != nil {
		return nil, err
	}

	var catalogCache catalog.Cache
	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis, cacheNamespace(cfg), time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second)
		defer redisCache.Close()
		catalogCache = redisCache
	}

	logger.Info().Str("source", cfg.Catalog.Source).Bool("cache", catalogCache != nil).Msg("loading flight catalog")
	return catalog.NewLoader(source, catalogCache, logger).Build(ctx)
}

// cacheNamespace scopes the catalog cache to one concrete source: two catalog
// files, two revisions of one file or two databases never share an entry.
func cacheNamespace(cfg *config.Config) string {
	switch cfg.Catalog.Source {
	case config.CatalogSourceFile:
		path, err := filepath.Abs(cfg.Catalog.File)
		if err != nil {
			path = cfg.Catalog.File
		}
		if info, err := os.Stat(path); err == nil {
			return fmt.Sprintf("file:%s@%d", path, info.ModTime().UnixNano())
		}
		return "file:" + path
	case config.CatalogSourcePostgres:
		return fmt.Sprintf("postgres:%s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)
	default:
		return config.CatalogSourceSeed
	}
}
