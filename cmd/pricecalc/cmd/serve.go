package cmd

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/price-engine/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for price calculations.

The API provides endpoints for:
  - POST /api/v1/prices           - Build a price
  - POST /api/v1/prices/add       - Add two prices
  - POST /api/v1/prices/subtract  - Subtract two prices
  - POST /api/v1/prices/multiply  - Multiply a price by a factor
  - POST /api/v1/prices/divide    - Divide a price by a factor
  - POST /api/v1/prices/adjust    - Add or subtract a gross or nett amount
  - GET  /api/v1/calculators      - Active calculators
  - GET  /health                  - Health check

Flags override PRICE_ADDRESS, PRICE_DEBUG, PRICE_READ_TIMEOUT and
PRICE_WRITE_TIMEOUT.

Examples:
  # Start server on default port
  pricecalc serve

  # Start on custom port with per-currency rounding
  pricecalc serve --address :9090 --config calculators.yaml`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 30*time.Second, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, reg, logger, err := setup(slog.LevelInfo)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("address") {
		cfg.Address = serverAddr
	}
	if flags.Changed("debug") {
		cfg.Debug = serverDebug
	}
	if flags.Changed("read-timeout") {
		cfg.ReadTimeout = readTimeout
	}
	if flags.Changed("write-timeout") {
		cfg.WriteTimeout = writeTimeout
	}

	srv := server.NewServer(&server.Config{
		Address:      cfg.Address,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		Debug:        cfg.Debug,
		Registry:     reg,
		Logger:       logger,
	})

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", slog.String("error", err.Error()))
		}
	}()

	return srv.Run()
}
