package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/Domenick1991/flightsearch/internal/domain"
	"github.com/spf13/cobra"
)

func newSearchCommand(flags *rootFlags) *cobra.Command {
	var (
		origin      string
		destination string
		maxPrice    float64
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search flights by origin, destination and maximum price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var criteria domain.SearchCriteria
			if origin != "" {
				criteria.Origin = domain.String(origin)
			}
			if destination != "" {
				criteria.Destination = domain.String(destination)
			}
			if cmd.Flags().Changed("max-price") {
				if maxPrice < 0 || math.IsNaN(maxPrice) || math.IsInf(maxPrice, 0) {
					return fmt.Errorf("%w: %v", domain.ErrInvalidPrice, maxPrice)
				}
				criteria.MaxPrice = domain.Float(maxPrice)
			}

			service, err := loadService(cmd, flags)
			if err != nil {
				return err
			}

			results := service.Search(criteria)
			out := cmd.OutOrStdout()
			if flags.jsonOutput {
				return writeJSON(out, results)
			}
			fmt.Fprintf(out, "Found %d flights:\n", len(results))
			for _, f := range results {
				printFlight(out, f)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&origin, "origin", "", "origin airport code")
	cmd.Flags().StringVar(&destination, "destination", "", "destination airport code")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price, inclusive")
	return cmd
}

func newGetCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get FLIGHT_ID",
		Short: "Show the details of one flight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := loadService(cmd, flags)
			if err != nil {
				return err
			}

			f, ok := service.GetByID(args[0])
			if !ok {
				return fmt.Errorf("%s: %w", args[0], domain.ErrFlightNotFound)
			}

			out := cmd.OutOrStdout()
			if flags.jsonOutput {
				return writeJSON(out, f)
			}
			fmt.Fprintf(out, "Flight:      %s\n", f.ID)
			fmt.Fprintf(out, "Airline:     %s\n", f.Airline)
			fmt.Fprintf(out, "Route:       %s -> %s\n", f.Origin, f.Destination)
			fmt.Fprintf(out, "Departs:     %s\n", f.DepartureTime)
			fmt.Fprintf(out, "Arrives:     %s\n", f.ArrivalTime)
			fmt.Fprintf(out, "Price:       $%.2f\n", f.Price)
			fmt.Fprintf(out, "Seats left:  %d\n", f.AvailableSeats)
			return nil
		},
	}
}

func newAvailabilityCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "availability FLIGHT_ID",
		Short: "Report whether a flight has seats left",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := loadService(cmd, flags)
			if err != nil {
				return err
			}

			available := service.CheckAvailability(args[0])
			out := cmd.OutOrStdout()
			if flags.jsonOutput {
				return writeJSON(out, map[string]any{"flight_id": args[0], "available": available})
			}
			fmt.Fprintf(out, "Flight %s availability: %t\n", args[0], available)
			return nil
		},
	}
}

func newAirlinesCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "airlines",
		Short: "List the airlines operating in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := loadService(cmd, flags)
			if err != nil {
				return err
			}

			airlines := service.ListAirlines()
			out := cmd.OutOrStdout()
			if flags.jsonOutput {
				return writeJSON(out, airlines)
			}
			fmt.Fprintf(out, "Airlines: %s\n", strings.Join(airlines, ", "))
			return nil
		},
	}
}

// newDemoCommand runs a short tour of every query against the catalog.
func newDemoCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := loadService(cmd, flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			results := service.Search(domain.SearchCriteria{Origin: domain.String("NYC"), Destination: domain.String("LAX")})
			fmt.Fprintf(out, "Found %d flights from NYC to LAX:\n", len(results))
			for _, f := range results {
				printFlight(out, f)
			}

			fmt.Fprintf(out, "\nFlight FL001 availability: %t\n", service.CheckAvailability("FL001"))
			fmt.Fprintf(out, "Flight FL005 availability: %t\n", service.CheckAvailability("FL005"))

			fmt.Fprintf(out, "\nAirlines: %s\n", strings.Join(service.ListAirlines(), ", "))
			return nil
		},
	}
}
