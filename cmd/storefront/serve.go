package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storefront/internal/server"
	"github.com/alexisbeaulieu97/storefront/internal/site"
)

type serveOptions struct {
	addr string
}

func newServeCmd(root *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve public store pages and the builder API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (overrides server.addr)")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, root *rootFlags, opts *serveOptions) error {
	app, err := newAppContext(ctx, cmd, root)
	if err != nil {
		return err
	}
	defer app.Close() //nolint:errcheck

	siteLayouts, scope := app.siteLayouts()
	srv := server.New(server.Options{
		Site: site.NewService(site.Options{
			Catalog:   app.api,
			Layouts:   siteLayouts,
			Templates: app.api,
			Scope:     scope,
			Logger:    app.log,
		}),
		Layouts:    app.layouts,
		Templates:  app.api,
		Subscriber: app.api,
		Logger:     app.log,
		Token:      app.cfg.Server.Token,
		Timeout:    app.cfg.Server.WriteTimeout,
	})

	addr := app.cfg.Server.Addr
	if opts.addr != "" {
		addr = opts.addr
	}
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      app.cfg.Server.WriteTimeout + 5*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.log.WithFields(map[string]any{"addr": addr}).Info("storefront listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return newCommandError("serve", addr, err, "Choose a free address with --addr.")
	case <-ctx.Done():
	}

	app.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
