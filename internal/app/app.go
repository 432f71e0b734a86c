package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"agenkas/internal/config"
	"agenkas/internal/service"
	"agenkas/internal/store"
)

type App struct {
	Service *service.Service
	Store   *store.Store
}

// NewApp initializes the database and services and returns the App entity
// together with a cleanup function.
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	dbPathRaw := cfg.Database.Path

	if dbPathRaw == "" {
		appDir, _ := GetAppDataDir()
		dbPathRaw = filepath.Join(appDir, "agenkas.db")
	}

	dbStore, err := store.NewStore(dbPathRaw, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	svc := service.NewService(dbStore)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
	}, cleanup, nil
}

func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".agenkas"), nil
	}

	return filepath.Join(configDir, "agenkas"), nil
}
