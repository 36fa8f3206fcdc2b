package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storefront/internal/layout"
	"github.com/alexisbeaulieu97/storefront/internal/render"
	"github.com/alexisbeaulieu97/storefront/internal/site"
)

type renderOptions struct {
	file      string
	storeSlug string
	pageSlug  string
	storeName string
	mode      string
	device    string
	out       string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a layout file or a live store page to HTML",
		Long: `Render a layout to a standalone HTML document.

With --file the layout is read from disk and rendered offline. With --store
the page is rendered the way "serve" would, using the configured storage and
the storefront API.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (opts.file == "") == (opts.storeSlug == "") {
				return newCommandError("render", "choosing the input", fmt.Errorf("exactly one of --file or --store is required"), "Pass --file layout.json or --store <slug>.")
			}
			if opts.file != "" {
				return runRenderFile(cmd, root, opts)
			}
			return runRenderStore(cmd.Context(), cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Layout file (JSON or YAML)")
	cmd.Flags().StringVar(&opts.storeSlug, "store", "", "Store slug to render")
	cmd.Flags().StringVar(&opts.pageSlug, "page", "", "Page slug (home page when empty)")
	cmd.Flags().StringVar(&opts.storeName, "store-name", "", "Store name shown by blocks rendered from --file")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "Render mode: public or edit-preview (overrides render.default_mode)")
	cmd.Flags().StringVar(&opts.device, "device", string(render.DeviceDesktop), "Viewport: desktop or mobile")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write to a file instead of stdout")

	return cmd
}

func runRenderFile(cmd *cobra.Command, root *rootFlags, opts *renderOptions) error {
	data, err := os.ReadFile(opts.file)
	if err != nil {
		return newCommandError("render", "reading "+opts.file, err, "Check the path passed to --file.")
	}
	l, err := layout.Parse(opts.file, data)
	if err != nil {
		return newCommandError("render", "parsing "+opts.file, err, "Run 'storefront layout validate' for details.")
	}

	app, err := newAppContext(cmd.Context(), cmd, root)
	if err != nil {
		return err
	}
	defer app.Close() //nolint:errcheck

	modeValue := app.cfg.Render.DefaultMode
	if opts.mode != "" {
		modeValue = opts.mode
	}
	mode, err := render.ParseMode(modeValue)
	if err != nil {
		return newCommandError("render", "parsing --mode", err, "Use public or edit-preview.")
	}
	device := render.Device(opts.device)
	if device != render.DeviceDesktop && device != render.DeviceMobile {
		return newCommandError("render", "parsing --device", fmt.Errorf("unknown device %q", opts.device), "Use desktop or mobile.")
	}

	store := render.Store{Name: opts.storeName}
	ctx := render.Context{
		PageTheme: l.Theme,
		Mode:      mode,
		Device:    device,
		Store:     store,
	}
	body := render.RenderPage(l.Components, ctx)
	doc := render.Document(render.Shell{Title: opts.storeName, Store: store, PageTheme: l.Theme}, body)
	return writeOutput(cmd.OutOrStdout(), opts.out, render.HTML(doc))
}

func runRenderStore(ctx context.Context, cmd *cobra.Command, root *rootFlags, opts *renderOptions) error {
	app, err := newAppContext(ctx, cmd, root)
	if err != nil {
		return err
	}
	defer app.Close() //nolint:errcheck

	layouts, scope := app.siteLayouts()
	svc := site.NewService(site.Options{
		Catalog:   app.api,
		Layouts:   layouts,
		Templates: app.api,
		Scope:     scope,
		Logger:    app.log,
	})

	var result site.Result
	if opts.pageSlug == "" {
		result, err = svc.Home(ctx, opts.storeSlug)
	} else {
		result, err = svc.Page(ctx, opts.storeSlug, opts.pageSlug)
	}
	if err != nil {
		return newCommandError("render", "store "+opts.storeSlug, err, "Check that the store exists and the API is reachable.")
	}
	return writeOutput(cmd.OutOrStdout(), opts.out, result.HTML())
}

func writeOutput(stdout io.Writer, path, content string) error {
	if path == "" {
		_, err := io.WriteString(stdout, content+"\n")
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return newCommandError("write output", path, err, "Check that the directory exists and is writable.")
	}
	return nil
}
