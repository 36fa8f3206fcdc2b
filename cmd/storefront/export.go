package main

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storefront/internal/site"
)

type exportOptions struct {
	dir     string
	archive string
}

func newExportCmd(root *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export <store-slug>",
		Short: "Render a whole store to static files",
		Long: `Render the home page and every published page of a store, together with
the layouts, store record and products behind them.

Files are written to --dir (default "<slug>-export"), or packed into a zip
archive with --zip.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "Directory to write the export to")
	cmd.Flags().StringVar(&opts.archive, "zip", "", "Write a zip archive instead of a directory")

	return cmd
}

func runExport(cmd *cobra.Command, root *rootFlags, slug string, opts *exportOptions) error {
	if opts.dir != "" && opts.archive != "" {
		return newCommandError("export", "choosing the output", fmt.Errorf("--dir and --zip are mutually exclusive"), "Pass only one of --dir or --zip.")
	}

	ctx := cmd.Context()
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

	files, err := svc.Export(ctx, slug)
	if err != nil {
		return newCommandError("export", "store "+slug, err, "Check that the store exists and the API is reachable.")
	}

	target := opts.archive
	if target != "" {
		err = writeExportZip(target, files, time.Now())
	} else {
		target = opts.dir
		if target == "" {
			target = slug + "-export"
		}
		err = writeExportDir(target, files)
	}
	if err != nil {
		return newCommandError("export", "writing "+target, err, "Check that the destination is writable.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d files to %s\n", len(files), target)
	return nil
}

func writeExportDir(dir string, files []site.File) error {
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func writeExportZip(path string, files []site.File, modified time.Time) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	zw := zip.NewWriter(out)
	for _, f := range files {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: f.Path, Method: zip.Deflate, Modified: modified})
		if err != nil {
			return err
		}
		if _, err := w.Write(f.Data); err != nil {
			return err
		}
	}
	return zw.Close()
}
