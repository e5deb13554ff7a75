package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhishtagatya/zomathon/internal/app"
	"github.com/abhishtagatya/zomathon/internal/config"
	"github.com/abhishtagatya/zomathon/internal/logger"
	"github.com/abhishtagatya/zomathon/pkg/zomato"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "zomathon: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := &session{cfg: cfg}
	defer s.close()

	return newRootCommand(s).ExecuteContext(ctx)
}

// session holds the runtime shared by subcommands. It is built lazily so
// persistent flags are applied to cfg first.
type session struct {
	cfg *config.Config
	app *app.App
}

func (s *session) open(cmd *cobra.Command) error {
	log, err := logger.Init(s.cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	log.DebugObj("zomathon starting", "config", s.cfg.Redacted())

	a, err := app.New(s.cfg, log, cmd.OutOrStdout())
	if err != nil {
		log.ErrorObj("failed to initialize app", "error", err)
		return err
	}
	s.app = a
	return nil
}

func (s *session) close() {
	if s.app != nil {
		_ = s.app.Close()
	}
	_ = logger.Close()
}

func newRootCommand(s *session) *cobra.Command {
	cfg := s.cfg

	root := &cobra.Command{
		Use:           "zomathon",
		Short:         "Query the Zomato restaurant API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.open(cmd)
		},
	}
	root.PersistentFlags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "log the resolved URL of every request")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(
		categoriesCommand(s),
		nearbyCommand(s),
		reviewsCommand(s),
		searchCommand(s),
		restaurantCommand(s),
		getCommand(s),
		runCommand(s),
		queriesCommand(s),
	)
	return root
}

func categoriesCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List restaurant categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.app.Categories(cmd.Context())
		},
	}
}

func nearbyCommand(s *session) *cobra.Command {
	var (
		coordinate string
		lat, lon   float64
	)
	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "List restaurants near a coordinate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			coord, err := coordinateFlags(cmd, coordinate, lat, lon)
			if err != nil {
				return err
			}
			if coord.IsZero() {
				return errors.New("nearby needs --coordinate or --lat and --lon")
			}
			return s.app.Nearby(cmd.Context(), coord)
		},
	}
	cmd.Flags().StringVar(&coordinate, "coordinate", "", `"<lat> <lon>" pair`)
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude")
	cmd.MarkFlagsMutuallyExclusive("coordinate", "lat")
	cmd.MarkFlagsMutuallyExclusive("coordinate", "lon")
	cmd.MarkFlagsRequiredTogether("lat", "lon")
	return cmd
}

func reviewsCommand(s *session) *cobra.Command {
	var (
		resID int
		req   app.ReviewsRequest
	)
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Print reviews for a restaurant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.app.Reviews(cmd.Context(), resID, req)
		},
	}
	cmd.Flags().IntVar(&resID, "res-id", 0, "restaurant id")
	cmd.Flags().IntVar(&req.Start, "start", 0, "offset of the first review")
	cmd.Flags().IntVar(&req.Count, "count", 0, "number of reviews to fetch")
	cmd.Flags().BoolVar(&req.UnseenOnly, "unseen", false, "skip reviews printed by earlier runs")
	_ = cmd.MarkFlagRequired("res-id")
	return cmd
}

func searchCommand(s *session) *cobra.Command {
	var (
		opts       zomato.SearchOptions
		entityType string
		coordinate string
	)
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search restaurants",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Query = args[0]
			}
			opts.EntityType = zomato.EntityType(entityType)
			if coordinate != "" {
				coord, err := zomato.ParseCoordinate(coordinate)
				if err != nil {
					return err
				}
				opts.Coordinate = coord
			}
			return s.app.Search(cmd.Context(), &opts)
		},
	}
	cmd.Flags().IntVar(&opts.EntityID, "entity-id", 0, "location entity id")
	cmd.Flags().StringVar(&entityType, "entity-type", "", "city, subzone, zone, landmark, metro or group")
	cmd.Flags().IntVar(&opts.Start, "start", 0, "offset of the first result")
	cmd.Flags().IntVar(&opts.Count, "count", 0, "number of results")
	cmd.Flags().StringVar(&coordinate, "coordinate", "", `"<lat> <lon>" pair`)
	cmd.Flags().Float64Var(&opts.Radius, "radius", 0, "radius around the coordinate in meters")
	cmd.Flags().IntSliceVar(&opts.Cuisines, "cuisines", nil, "cuisine ids")
	cmd.Flags().IntVar(&opts.Category, "category", 0, "category id")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "cost, rating or real_distance")
	cmd.Flags().StringVar(&opts.Order, "order", "", "asc or desc")
	return cmd
}

func restaurantCommand(s *session) *cobra.Command {
	var resID int
	cmd := &cobra.Command{
		Use:   "restaurant",
		Short: "Show restaurant details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.app.Restaurant(cmd.Context(), resID)
		},
	}
	cmd.Flags().IntVar(&resID, "res-id", 0, "restaurant id")
	_ = cmd.MarkFlagRequired("res-id")
	return cmd
}

func getCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "get <endpoint> [key=value...]",
		Short: "Call any endpoint and print the raw payload",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !zomato.KnownEndpoint(args[0]) {
				return fmt.Errorf("unknown endpoint %q (known: %v)", args[0], zomato.Endpoints)
			}
			params, err := app.ParseParams(args[1:])
			if err != nil {
				return err
			}
			return s.app.Raw(cmd.Context(), zomato.Endpoint(args[0]), params)
		},
	}
}

func runCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "run <query-id>",
		Short: "Run a saved query from the queries file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.app.RunQuery(cmd.Context(), args[0])
		},
	}
}

func queriesCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "queries",
		Short: "List saved queries",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return s.app.ListQueries()
		},
	}
}

func coordinateFlags(cmd *cobra.Command, coordinate string, lat, lon float64) (zomato.Coordinate, error) {
	if coordinate != "" {
		return zomato.ParseCoordinate(coordinate)
	}
	if cmd.Flags().Changed("lat") {
		return zomato.CoordinatePair(lat, lon), nil
	}
	return zomato.Coordinate{}, nil
}
