package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/iudanet/mdkeeper/internal/client/api"
	"github.com/iudanet/mdkeeper/internal/client/auth"
	"github.com/iudanet/mdkeeper/internal/client/cli"
	"github.com/iudanet/mdkeeper/internal/client/data"
	"github.com/iudanet/mdkeeper/internal/client/iocli"
	"github.com/iudanet/mdkeeper/internal/client/storage/boltdb"
	clientsync "github.com/iudanet/mdkeeper/internal/client/sync"
	"github.com/iudanet/mdkeeper/internal/config"
	"github.com/iudanet/mdkeeper/internal/logging"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	root, closeFn := cli.NewRootCommand(fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit), setup)
	err := root.ExecuteContext(ctx)
	closeFn()
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup собирает клиент: конфиг из окружения, флаги поверх него
func setup(ctx context.Context, opts cli.Options) (*cli.Cli, func() error, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, nil, err
	}
	if opts.ServerURL != "" {
		cfg.ServerURL = opts.ServerURL
	}
	if opts.DBPath != "" {
		cfg.DatabasePath = opts.DBPath
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	if opts.Env != "" {
		cfg.Environment = opts.Env
	}

	// без файла лога CLI молчит, чтобы не смешивать логи с выводом команд
	logger := logging.Discard()
	if cfg.LogFile != "" {
		logger = logging.NewLogger(cfg.Environment, cfg.LogFile)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o700); err != nil {
		return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	store, err := boltdb.New(ctx, cfg.DatabasePath, boltdb.WithMaxSize(cfg.StorageQuota))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	apiClient := api.NewClient(cfg.ServerURL)
	authService := auth.NewService(apiClient, store, logger)
	apiClient.SetTokenSource(authService)

	coordinator, err := clientsync.NewCoordinator(ctx, apiClient, authService, store, clientsync.Config{
		Debounce:    cfg.Debounce,
		MaxRetries:  cfg.MaxRetries,
		SyncOnStart: cfg.SyncOnStart,
	}, logger)
	if err != nil {
		return nil, nil, errors.Join(fmt.Errorf("failed to restore sync state: %w", err), store.Close())
	}

	dataService := data.NewService(store, coordinator, logger)
	c := cli.New(iocli.NewStdio(), authService, dataService, coordinator, coordinator, logger)

	closeFn := func() error {
		coordinator.Stop()
		return store.Close()
	}
	return c, closeFn, nil
}
