package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/tvmaze/config"
	"github.com/s0up4200/tvmaze/filter"
	"github.com/s0up4200/tvmaze/tvmaze"
)

var (
	cfgFile   string
	cfg       *config.Config
	logger    zerolog.Logger
	client    *tvmaze.Client
	filters   *filter.Manager
	formatter *tvmaze.ConsoleFormatter
	registry  *prometheus.Registry

	// Command flags
	filterExpr  string
	preset      string
	jsonOutput  bool
	showSummary bool
	logLevel    string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tvmaze",
	Short: "Query the TVMaze API from the command line",
	Long: `tvmaze is a CLI for the TVMaze REST API. It searches shows and people,
lists episodes, seasons, cast and crew, and prints the broadcast and streaming
schedules. Results can be narrowed with filter expressions.`,
	SilenceUsage:       true,
	PersistentPostRunE: logMetrics,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to listed shows or episodes")
	rootCmd.PersistentFlags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print records as JSON")
	rootCmd.PersistentFlags().BoolVar(&showSummary, "summary", false, "include summaries in the output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level from config")
}

// initializeApp loads the configuration and creates the client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if cmd.Flags().Changed("summary") {
		cfg.Output.ShowSummary = showSummary
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	registry = prometheus.NewRegistry()
	client, err = tvmaze.NewClient(tvmaze.Config{
		BaseURL: cfg.TVMaze.URL,
		APIKey:  cfg.TVMaze.APIKey,
		Product: tvmaze.ProductInfo{Name: "tvmaze", Version: appVersion},
	}, logger,
		tvmaze.WithTimeout(cfg.HTTP.Timeout),
		tvmaze.WithConcurrency(cfg.HTTP.Concurrency),
		tvmaze.WithMetrics(registry),
	)
	if err != nil {
		return fmt.Errorf("failed to create TVMaze client: %w", err)
	}

	filters = filter.NewManager(filter.DefaultCacheSize)
	if err := filters.RegisterFilters(cfg.Filter.Presets); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	formatter = tvmaze.NewConsoleFormatter()

	logger.Debug().
		Str("url", cfg.TVMaze.URL).
		Bool("api_key", cfg.TVMaze.APIKey != "").
		Dur("timeout", cfg.HTTP.Timeout).
		Msg("Client initialized")

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, no colour codes when stderr is redirected
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// logMetrics reports the request counters of the finished command at debug level
func logMetrics(cmd *cobra.Command, args []string) error {
	if registry == nil || zerolog.GlobalLevel() > zerolog.DebugLevel {
		return nil
	}

	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		if mf.GetName() != "tvmaze_client_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			event := logger.Debug()
			for _, label := range m.GetLabel() {
				event = event.Str(label.GetName(), label.GetValue())
			}
			event.Float64("count", m.GetCounter().GetValue()).Msg("Requests")
		}
	}
	return nil
}

// resolveFilter picks the --filter expression or the --preset filter.
// A nil filter matches everything.
func resolveFilter() (*filter.Filter, error) {
	f, err := filters.Resolve(filterExpr, preset)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	if f != nil {
		logger.Debug().Str("filter", f.String()).Msg("Filtering results")
	}
	return f, nil
}

// parseID parses a positive numeric TVMaze id argument
func parseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", what, arg)
	}
	return id, nil
}

func formatOptions() tvmaze.FormatOptions {
	return tvmaze.FormatOptions{
		ShowDetails: cfg.Output.ShowDetails,
		ShowSummary: cfg.Output.ShowSummary,
	}
}

// render prints v as JSON with --json, otherwise the formatted text
func render(v any, text func() string) error {
	if jsonOutput {
		out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Println(text())
	return nil
}
