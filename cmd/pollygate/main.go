// Pollygate is a stateless HTTP gateway that forwards text to AWS Polly and
// returns the synthesized audio.
//
// Usage:
//
//	pollygate [flags]
//	pollygate --config /path/to/pollygate.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/harshkhalkar/aws-polly-tts/internal/config"
	"github.com/harshkhalkar/aws-polly-tts/internal/health"
	"github.com/harshkhalkar/aws-polly-tts/internal/server"
	pollytts "github.com/harshkhalkar/aws-polly-tts/internal/tts/polly"
)

// version is set at build time via ldflags.
var version = "dev"

// @title       Polly TTS Gateway API
// @version     1.0
// @description Minimal HTTP gateway that synthesizes speech with AWS Polly.
// @BasePath    /
func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "", "path to config file (e.g. configs/pollygate.yaml)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("pollygate %s\n", version)
		os.Exit(0)
	}

	// Load configuration.
	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging.
	config.SetupLogging(cfg.Logging)
	slog.Info("pollygate starting", "version", version)

	// Create root context with signal handling for graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Build the Polly client once; it is shared read-only by all requests.
	synth, err := pollytts.New(ctx, cfg.AWS.Region, cfg.TTS)
	if err != nil {
		slog.Error("failed to initialize polly client", "error", err)
		os.Exit(1)
	}
	defer synth.Close()
	slog.Info("polly client ready",
		"region", cfg.AWS.Region,
		"voice", cfg.TTS.Voice,
		"engine", cfg.TTS.Engine,
		"language", cfg.TTS.Language)

	// Start health check server.
	healthServer := health.New(cfg.Server.HealthPort)
	go func() {
		if err := healthServer.ListenAndServe(ctx); err != nil {
			slog.Error("health server failed", "error", err)
		}
	}()

	// Start the gateway.
	srv := server.New(cfg.Server.Port, synth)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(ctx)
	}()

	healthServer.SetReady(true)
	slog.Info("pollygate ready",
		"port", cfg.Server.Port,
		"health_port", cfg.Server.HealthPort)

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining...")
		if err := srv.Close(); err != nil {
			slog.Error("server close error", "error", err)
		}
		<-errCh
	case err := <-errCh:
		if err != nil {
			slog.Error("gateway failed", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("pollygate stopped")
}
