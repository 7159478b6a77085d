// cmd/mcp-server/main.go — Standalone HTTP MCP server for tc
//
// Exposes the jet tools as an HTTP endpoint for AI agent frameworks.
//
// Usage:
//   go run ./cmd/mcp-server --port 8080 --rate 50 --burst 100
//
// Tool call endpoint: POST /tool
// Schema endpoint:    GET  /schema
// Health endpoint:    GET  /health
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

type options struct {
	port     int
	rate     float64
	burst    int
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:          "mcp-server",
		Short:        "Serve complex jet evaluation as MCP tools over HTTP",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.Flags().IntVar(&opts.port, "port", 8080, "Port to listen on")
	cmd.Flags().Float64Var(&opts.rate, "rate", 50, "Sustained tool calls per second")
	cmd.Flags().IntVar(&opts.burst, "burst", 100, "Burst size for tool calls")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	return cmd
}

func run(opts options) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", opts.logLevel, err)
	}
	if opts.rate <= 0 || opts.burst <= 0 {
		return fmt.Errorf("--rate and --burst must be positive")
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	addr := fmt.Sprintf(":%d", opts.port)
	logger.Info("tc MCP server listening",
		slog.String("addr", addr),
		slog.Float64("rate", opts.rate),
		slog.Int("burst", opts.burst))

	srv := &http.Server{
		Addr:              addr,
		Handler:           newMux(logger, rate.NewLimiter(rate.Limit(opts.rate), opts.burst)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server stopped", slog.String("error", err.Error()))
		return err
	}
	return nil
}
