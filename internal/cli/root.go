// Package cli implements the flightsearch command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Domenick1991/flightsearch/config"
	"github.com/Domenick1991/flightsearch/internal/bootstrap"
	"github.com/Domenick1991/flightsearch/internal/domain"
	"github.com/Domenick1991/flightsearch/internal/logger"
	"github.com/Domenick1991/flightsearch/internal/service/flights"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type rootFlags struct {
	configPath  string
	catalogFile string
	logLevel    string
	jsonOutput  bool
}

var exampleUsage = strings.TrimSpace(`
  flightsearch search --origin NYC --destination LAX
  flightsearch search --max-price 300
  flightsearch get FL001
  flightsearch availability FL005
  flightsearch --catalog-file flights.yaml airlines
`)

func NewRootCommand(version string) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "flightsearch",
		Short:         "Query the flight catalog",
		Example:       exampleUsage,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	bindRootFlags(root.PersistentFlags(), flags)

	root.AddCommand(
		newSearchCommand(flags),
		newGetCommand(flags),
		newAvailabilityCommand(flags),
		newAirlinesCommand(flags),
		newDemoCommand(flags),
	)
	return root
}

func bindRootFlags(fs *pflag.FlagSet, flags *rootFlags) {
	fs.StringVar(&flags.configPath, "config", "", "path to config file (default $CONFIG_PATH or config.yaml)")
	fs.StringVar(&flags.catalogFile, "catalog-file", "", "read flights from this YAML file instead of the configured source")
	fs.StringVar(&flags.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	fs.BoolVar(&flags.jsonOutput, "json", false, "print results as JSON")
}

func loadService(cmd *cobra.Command, flags *rootFlags) (*flights.FlightService, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.configPath != "" {
		cfg, err = config.LoadConfig(flags.configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	if flags.catalogFile != "" {
		cfg.Catalog.Source = config.CatalogSourceFile
		cfg.Catalog.File = flags.catalogFile
	}
	// the CLI keeps stderr quiet unless asked; server log settings do not apply
	cfg.Log.Level = flags.logLevel
	cfg.Log.Pretty = true

	log := logger.New(cfg.Log)
	return bootstrap.BuildFlightService(cmd.Context(), cfg, log)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printFlight(w io.Writer, f domain.Flight) {
	fmt.Fprintf(w, "Flight %s: %s - %s, $%.2f, %s\n", f.ID, f.DepartureTime, f.ArrivalTime, f.Price, f.Airline)
}
