package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/apigrate/sortly/config"
	"github.com/apigrate/sortly/sortly"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *sortly.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sortly",
	Short: "A CLI for the Sortly inventory management API",
	Long: `sortly is a CLI for browsing and managing your Sortly inventory:
list, search, create, move and delete items, and inspect custom field
definitions.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion sets the version information for the CLI
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
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

	// Add subcommands
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(fieldsCmd)
}

// initializeApp initializes the configuration, logger and API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create Sortly client
	client, err = sortly.NewClient(cfg.Sortly.APIToken, logger,
		sortly.WithBaseURL(cfg.Sortly.BaseURL),
		sortly.WithTimeout(time.Duration(cfg.Sortly.TimeoutSeconds)*time.Second),
	)
	if err != nil {
		return fmt.Errorf("failed to create Sortly client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
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

	// Console format; color only when stderr is a terminal
	noColor := !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
