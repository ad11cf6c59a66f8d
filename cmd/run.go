package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathmonsters/internal/app"
	"github.com/abhisek/mathmonsters/internal/catalog"
	"github.com/abhisek/mathmonsters/internal/game"
	"github.com/abhisek/mathmonsters/internal/logging"
	"github.com/abhisek/mathmonsters/internal/save"
	"github.com/abhisek/mathmonsters/internal/store"
)

// env is the wiring shared by commands that touch the save.
type env struct {
	cat   *catalog.Catalog
	log   *logging.Logger
	db    *store.Store
	saves *save.Store
}

// openEnv loads config and the catalog, opens the database and builds the
// save store. The caller must call close.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	db, err := store.Open(dbPath)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("store opened", "path", dbPath, "catalog", cfg.CatalogPath)

	return &env{
		cat:   cat,
		log:   log,
		db:    db,
		saves: save.NewStore(db, cat, save.WithLogger(log.Zap())),
	}, nil
}

func (e *env) close() {
	if err := e.db.Close(); err != nil {
		e.log.Warn("close store", "error", err)
	}
	e.log.Sync()
}

// runApp opens the store, builds the game and launches the TUI.
func runApp(cmd *cobra.Command, skipWelcome bool) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	g := game.New(cmd.Context(), e.cat, e.saves, game.WithLogger(e.log.Zap()))
	return app.Run(app.Options{Game: g, Log: e.log, SkipWelcome: skipWelcome})
}
