package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/hubwire/config"
	"github.com/s0up4200/hubwire/github"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger

	// Command flags
	dryRun bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hubwire",
	Short: "A CLI for the GitHub REST API with transparent pagination",
	Long: `hubwire issues GET, POST, and PATCH requests against the GitHub
REST API (or any compatible JSON API), merging paginated list responses
into a single JSON result so you never chase Link headers by hand.`,
	PersistentPreRunE: initializeApp,
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
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "log write requests without sending them")

	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and logger
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override dry-run from command line if specified
	if cmd.Flags().Changed("dry-run") {
		cfg.Safety.DryRun = dryRun
	}

	return nil
}

// connect opens a new API connection from the loaded configuration.
// Each caller owns its connection; a connection handles one request at
// a time.
func connect() (*github.Connection, error) {
	conn, err := github.Connect(github.Config{
		BaseURL:    cfg.GitHub.BaseURL,
		Username:   cfg.GitHub.Username,
		Password:   cfg.GitHub.Password,
		OAuthToken: cfg.GitHub.OAuthToken,
		Accept:     cfg.GitHub.Accept,
		DryRun:     cfg.Safety.DryRun,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.GitHub.BaseURL, err)
	}
	return conn, nil
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

	// Console format; skip color codes when stderr is not a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the API",
	Long:  `Test the connection to the configured API endpoint and verify credentials.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to %s...\n", cfg.GitHub.BaseURL)

	conn, err := connect()
	if err != nil {
		return err
	}
	defer conn.Close()

	// The API root responds with the endpoint catalog.
	if _, err := conn.Get(context.Background(), "/"); err != nil {
		return fmt.Errorf("request to API root failed: %w", err)
	}

	fmt.Println("✓ Connection successful!")
	if cfg.GitHub.Username != "" {
		fmt.Printf("- Authentication: basic (%s)\n", cfg.GitHub.Username)
	} else if cfg.GitHub.OAuthToken != "" {
		fmt.Println("- Authentication: bearer token")
	} else {
		fmt.Println("- Authentication: anonymous")
	}
	fmt.Printf("- Dry run: %s\n", boolToStatus(cfg.Safety.DryRun))

	return nil
}

func boolToStatus(b bool) string {
	if b {
		return "Enabled"
	}
	return "Disabled"
}
