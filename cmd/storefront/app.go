package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storefront/internal/config"
	"github.com/alexisbeaulieu97/storefront/internal/layout"
	"github.com/alexisbeaulieu97/storefront/internal/logger"
	"github.com/alexisbeaulieu97/storefront/internal/site"
	"github.com/alexisbeaulieu97/storefront/internal/storefrontapi"
)

// appContext bundles the long-lived services a command needs.
type appContext struct {
	cfg     *config.Config
	log     *logger.Logger
	api     *storefrontapi.Client
	layouts layout.Store
	// history is set only for the file backend with history enabled.
	history *layout.HistoryStore
	closers []func() error
}

func newAppContext(ctx context.Context, cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError("load configuration", flags.configPath, err, "Fix the reported field or run without --config to use defaults.")
	}

	log, err := newLogger(cfg, flags.verbose, cmd.ErrOrStderr())
	if err != nil {
		return nil, newCommandError("create logger", cfg.Log.Level, err, "Use one of trace, debug, info, warn, error.")
	}

	app := &appContext{
		cfg: cfg,
		log: log,
		api: storefrontapi.NewClient(storefrontapi.Options{
			BaseURL: cfg.API.BaseURL,
			Token:   cfg.API.Token,
			Timeout: cfg.API.Timeout,
		}),
	}
	if err := app.openLayouts(ctx); err != nil {
		app.Close() //nolint:errcheck
		return nil, newCommandError("open layout storage", cfg.Storage.Backend, err, "Check the storage section of your configuration.")
	}
	log.WithFields(map[string]any{
		"backend": cfg.Storage.Backend,
		"history": app.history != nil,
	}).Debug("layout storage ready")
	return app, nil
}

func newLogger(cfg *config.Config, verbose bool, w io.Writer) (*logger.Logger, error) {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	human := logger.IsTerminal(os.Stderr)
	if cfg.Log.HumanReadable != nil {
		human = *cfg.Log.HumanReadable
	}
	return logger.New(logger.Options{Level: level, HumanReadable: human, Writer: w})
}

func (a *appContext) openLayouts(ctx context.Context) error {
	storage := a.cfg.Storage
	switch storage.Backend {
	case config.BackendFile:
		files, err := layout.NewFileStore(storage.Path)
		if err != nil {
			return err
		}
		a.layouts = files
		if storage.History {
			history, err := layout.NewHistoryStore(files, layout.Signature{
				Name:  storage.Author.Name,
				Email: storage.Author.Email,
			})
			if err != nil {
				return err
			}
			a.layouts = history
			a.history = history
		}
	case config.BackendSQLite:
		db, err := layout.OpenSQLite(storage.Path)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, db.Close)
		store := layout.NewSQLiteStore(db)
		if err := store.Init(ctx); err != nil {
			return err
		}
		a.layouts = store
	case config.BackendFirestore:
		store, err := layout.NewFirestoreStore(ctx, storage.FirestoreProject)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, store.Close)
		a.layouts = store
	case config.BackendAPI:
		a.layouts = a.api
	default:
		return fmt.Errorf("unknown storage backend %q", storage.Backend)
	}
	return nil
}

// siteLayouts is the store the public storefront reads. The remote API
// serves public layouts by slug; every local backend is keyed by id.
func (a *appContext) siteLayouts() (layout.Store, site.ScopeFunc) {
	if a.cfg.Storage.Backend == config.BackendAPI {
		return a.api.Public(), site.BySlug
	}
	return a.layouts, site.ByID
}

func (a *appContext) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func scopeFor(storeID, pageID string) (layout.Scope, error) {
	scope := layout.PageScope(storeID, pageID)
	if err := scope.Validate(); err != nil {
		return layout.Scope{}, err
	}
	return scope, nil
}
