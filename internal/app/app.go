package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/fbar/internal/config"
	"github.com/hance08/fbar/internal/constants"
	"github.com/hance08/fbar/internal/logger"
	"github.com/hance08/fbar/internal/service"
	"github.com/hance08/fbar/internal/source"
	"github.com/hance08/fbar/internal/source/ynab"
	"github.com/hance08/fbar/internal/store"
	"go.uber.org/zap"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Logger  *zap.Logger
}

// NewApp validates the source settings, opens the local ledger and builds
// the account source selected by cfg, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	if err := cfg.ValidateSource(); err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	dbPath, err := DBPath(cfg)
	if err != nil {
		return nil, nil, err
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	var upstream source.AccountSource
	if cfg.Token != "" {
		upstream = ynab.NewClient(cfg.YNAB.BaseURL, cfg.Token,
			ynab.WithTimeout(cfg.YNAB.Timeout),
			ynab.WithBudget(cfg.Source.BudgetID),
			ynab.WithClosedAccounts(cfg.IncludeClosed),
			ynab.WithLogger(log.Named("ynab")),
		)
	}

	var src source.AccountSource = dbStore
	if cfg.Source.Kind == constants.SourceYNAB {
		src = upstream
	}

	svc := service.NewService(src, upstream, dbStore, cfg, log)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
		_ = log.Sync()
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Logger:  log,
	}, cleanup, nil
}

// DBPath returns the configured ledger path with "~" expanded, or the
// default path in the app data directory.
func DBPath(cfg *config.Config) (string, error) {
	if cfg.Database.Path == "" {
		appDir, err := AppDataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(appDir, constants.DefaultDBName), nil
	}
	return ExpandPath(cfg.Database.Path)
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppDirName), nil
	}

	return filepath.Join(configDir, constants.AppDirName), nil
}

func ExpandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if path[1] == '/' || path[1] == '\\' {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
