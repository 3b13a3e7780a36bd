package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jdlms/donut-shop/internal/app"
	"github.com/jdlms/donut-shop/internal/config"
	"github.com/jdlms/donut-shop/internal/logging"
)

var (
	flagDelay    time.Duration
	flagLogFile  string
	flagLogLevel string
	flagOutage   bool
)

var rootCmd = &cobra.Command{
	Use:   "donut-shop",
	Short: "Donut storefront TUI",
	Long:  "A terminal storefront: browse the menu by category and open an item to pick a quantity",
	RunE: func(cmd *cobra.Command, args []string) error {
		// This is the default behavior - start the TUI
		return startTUI(cmd)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&flagDelay, "delay", 0, "simulated fetch latency (overrides DONUT_FETCH_DELAY)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "log file path (overrides DONUT_LOG_FILE)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (overrides DONUT_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&flagOutage, "outage", false, "make every fetch fail (overrides DONUT_SIMULATE_OUTAGE)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies flags the user set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("delay") {
		cfg.FetchDelay = flagDelay
	}
	if flags.Changed("log-file") {
		cfg.LogFile = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("outage") {
		cfg.SimulateOutage = flagOutage
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// setupLogger opens the log file; logging to the terminal would corrupt the TUI
func setupLogger(cfg *config.Config) (*logrus.Logger, func(), error) {
	logger, closer, err := logging.New(logging.Options{
		File:   cfg.LogFile,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { closer.Close() }, nil
}

func startTUI(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.WithFields(logrus.Fields{
		"delay":  cfg.FetchDelay,
		"outage": cfg.SimulateOutage,
		"theme":  cfg.Theme,
	}).Info("Starting donut-shop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create and run the application
	state := app.CreateApp(cfg, logger)
	go func() {
		<-ctx.Done()
		app.Quit(state)
	}()

	if err := app.Run(ctx, state); err != nil {
		logger.WithError(err).Error("Storefront exited with error")
		return err
	}
	return nil
}
