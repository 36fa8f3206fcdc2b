package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/storefront/internal/layout"
	"github.com/alexisbeaulieu97/storefront/internal/logger"
	"github.com/alexisbeaulieu97/storefront/internal/products"
	"github.com/alexisbeaulieu97/storefront/internal/render"
	"github.com/alexisbeaulieu97/storefront/internal/storefrontapi"
	"github.com/alexisbeaulieu97/storefront/internal/tui"
)

type builderOptions struct {
	pageID      string
	templateID  string
	previewPath string
	logFile     string
}

func newBuilderCmd(root *rootFlags) *cobra.Command {
	opts := &builderOptions{}

	cmd := &cobra.Command{
		Use:   "builder <store-id>",
		Short: "Edit a store or page layout in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return newCommandError("start builder", "checking the terminal", fmt.Errorf("stdout is not a terminal"), "Run the builder from an interactive shell.")
			}
			return runBuilder(cmd.Context(), cmd, root, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.pageID, "page", "p", "", "Page id (store layout when empty)")
	cmd.Flags().StringVar(&opts.templateID, "template", "", "Template id to start from when nothing is saved")
	cmd.Flags().StringVar(&opts.previewPath, "preview", "storefront-preview.html", "File the preview panel writes")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to a file while the builder runs")

	return cmd
}

func runBuilder(ctx context.Context, cmd *cobra.Command, root *rootFlags, storeID string, opts *builderOptions) error {
	scope, err := scopeFor(storeID, opts.pageID)
	if err != nil {
		return newCommandError("start builder", storeID, err, "Pass a store id.")
	}
	app, err := newAppContext(ctx, cmd, root)
	if err != nil {
		return err
	}
	defer app.Close() //nolint:errcheck

	// The builder owns the screen; logs go to --log-file or nowhere.
	log := logger.Nop()
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return newCommandError("start builder", opts.logFile, err, "Choose a writable --log-file.")
		}
		defer f.Close()
		log, err = logger.New(logger.Options{Level: app.cfg.Log.Level, Writer: f})
		if err != nil {
			return err
		}
	}

	loaded := layout.NewLoader(app.layouts, app.api, log).Load(ctx, scope, opts.templateID)

	store := render.Store{Name: storeID}
	if s, err := app.api.GetStore(ctx, storeID); err == nil {
		store = render.Store{Name: s.Name, Slug: s.Slug, Description: s.Description}
	} else {
		log.Warn(err, "store details unavailable")
	}
	var catalog []products.Product
	if list, err := app.api.GetProducts(ctx, storeID); err == nil {
		catalog = list
	} else {
		log.Warn(err, "products unavailable, previewing sample products")
	}

	model := tui.NewModel(ctx, tui.Options{
		Scope:       scope,
		Layout:      loaded.Layout(),
		Saver:       app.layouts,
		Upload:      uploader(app.api, storeID),
		Products:    catalog,
		Store:       store,
		PreviewPath: opts.previewPath,
		Logger:      log,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return newCommandError("run builder", scope.String(), err, "Re-run with --log-file to capture details.")
	}
	return nil
}

func uploader(api *storefrontapi.Client, storeID string) tui.Uploader {
	return func(ctx context.Context, path string) (string, error) {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		return api.Upload(ctx, storeID, storefrontapi.MediaImage, filepath.Base(path), f)
	}
}
