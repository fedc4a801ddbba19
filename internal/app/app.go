// Package app wires configuration, clients, storage and services
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/pulse/internal/clients/yahoo"
	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/interfaces"
	"github.com/bobmcallan/pulse/internal/services/health"
	"github.com/bobmcallan/pulse/internal/storage"
)

// App holds all initialized services and clients. It is the shared core
// used by cmd/pulse-server and by the HTTP handler tests.
type App struct {
	Config        *common.Config
	Logger        *common.Logger
	SnapshotStore interfaces.SnapshotStore
	MarketClient  interfaces.MarketDataClient
	HealthService interfaces.HealthService
	StartupTime   time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, logging, the snapshot store, the
// provider client and the health service. configPath may be empty, in
// which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	binDir := getBinaryDir()
	common.LoadVersionFromDir(binDir)

	// Load configuration - check provided path, PULSE_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("PULSE_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "pulse.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/pulse.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative cache and log paths to the binary directory
	if config.Cache.Path != "" && !filepath.IsAbs(config.Cache.Path) {
		config.Cache.Path = filepath.Join(binDir, config.Cache.Path)
	}
	if config.Logging.FilePath != "" && !filepath.IsAbs(config.Logging.FilePath) {
		config.Logging.FilePath = filepath.Join(binDir, config.Logging.FilePath)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	store, err := storage.NewSnapshotStore(logger, config.Cache)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize snapshot store: %w", err)
	}

	client := yahoo.NewClient(
		yahoo.WithBaseURL(config.Provider.BaseURL),
		yahoo.WithRateLimit(config.Provider.RateLimit),
		yahoo.WithTimeout(config.Provider.GetTimeout()),
		yahoo.WithUserAgent(config.Provider.UserAgent),
		yahoo.WithLogger(logger),
	)

	healthService := health.NewService(store, client, logger)

	return &App{
		Config:        config,
		Logger:        logger,
		SnapshotStore: store,
		MarketClient:  client,
		HealthService: healthService,
		StartupTime:   time.Now(),
	}, nil
}

// Close releases application resources.
func (a *App) Close() {
	if a.SnapshotStore != nil {
		if err := a.SnapshotStore.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Snapshot store close failed")
		}
	}
}
