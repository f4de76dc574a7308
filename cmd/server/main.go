package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/mdkeeper/internal/config"
	"github.com/iudanet/mdkeeper/internal/logging"
	"github.com/iudanet/mdkeeper/internal/server"
	"github.com/iudanet/mdkeeper/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", "", "listen address (overrides MDKEEPER_ADDR)")
	dbPath := flag.String("db", "", "database path (overrides MDKEEPER_DB)")
	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	if err := run(*addr, *dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(addr, dbPath string) error {
	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Address = addr
	}
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}

	logger := logging.NewLogger(cfg.Environment, cfg.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	logger.Info("storage ready",
		slog.String("db", cfg.DatabasePath),
		slog.String("version", Version))

	return server.New(cfg, store, logger, Version).Run(ctx, cfg.ShutdownTimeout)
}

func printVersion() {
	fmt.Printf("mdkeeper server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
