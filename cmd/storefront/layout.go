package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storefront/internal/layout"
	"github.com/alexisbeaulieu97/storefront/pkg/diff"
)

type layoutScopeFlags struct {
	pageID string
}

func (f *layoutScopeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.pageID, "page", "p", "", "Page id (store layout when empty)")
}

func newLayoutCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Inspect, validate and save page layouts",
	}

	cmd.AddCommand(newLayoutShowCmd(root))
	cmd.AddCommand(newLayoutValidateCmd())
	cmd.AddCommand(newLayoutSaveCmd(root))
	cmd.AddCommand(newLayoutDiffCmd(root))
	cmd.AddCommand(newLayoutHistoryCmd(root))

	return cmd
}

func newLayoutShowCmd(root *rootFlags) *cobra.Command {
	var (
		scopeFlags layoutScopeFlags
		templateID string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "show <store-id>",
		Short: "Show the layout a store or page resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			scope, err := scopeFor(args[0], scopeFlags.pageID)
			if err != nil {
				return newCommandError("show layout", args[0], err, "Pass a store id.")
			}
			app, err := newAppContext(ctx, cmd, root)
			if err != nil {
				return err
			}
			defer app.Close() //nolint:errcheck

			loaded := layout.NewLoader(app.layouts, app.api, app.log).Load(ctx, scope, templateID)
			if jsonOutput {
				data, err := layout.Marshal(loaded.Layout())
				if err != nil {
					return newCommandError("show layout", scope.String(), err, "Resolve pending uploads in the stored layout.")
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Scope:      %s\n", scope)
			fmt.Fprintf(out, "Components: %s\n", loaded.ComponentSource)
			fmt.Fprintf(out, "Theme:      %s\n\n", loaded.ThemeSource)
			if len(loaded.Components) == 0 {
				fmt.Fprintln(out, "No components; the default content is rendered.")
				return nil
			}
			writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ORDER\tTYPE\tID")
			for _, c := range loaded.Components {
				fmt.Fprintf(writer, "%d\t%s\t%s\n", c.Order, c.Type, c.ID)
			}
			return writer.Flush()
		},
	}

	scopeFlags.register(cmd)
	cmd.Flags().StringVar(&templateID, "template", "", "Template id to fall back to")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the resolved layout as JSON")

	return cmd
}

func newLayoutValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate layout files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed []string
			for _, path := range args {
				l, err := readLayoutFile(path)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "✗ %s\n  %v\n", path, err)
					failed = append(failed, path)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ %s (%d components)\n", path, len(l.Components))
			}
			if len(failed) > 0 {
				return newCommandError("validate layouts", strings.Join(failed, ", "), errors.New("invalid layout"), "Fix the reported fields and run validate again.")
			}
			return nil
		},
	}

	return cmd
}

func newLayoutSaveCmd(root *rootFlags) *cobra.Command {
	var scopeFlags layoutScopeFlags

	cmd := &cobra.Command{
		Use:   "save <store-id> <file>",
		Short: "Save a layout file to a store or page",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			scope, err := scopeFor(args[0], scopeFlags.pageID)
			if err != nil {
				return newCommandError("save layout", args[0], err, "Pass a store id.")
			}
			l, err := readLayoutFile(args[1])
			if err != nil {
				return newCommandError("save layout", args[1], err, "Run 'storefront layout validate' for details.")
			}
			app, err := newAppContext(ctx, cmd, root)
			if err != nil {
				return err
			}
			defer app.Close() //nolint:errcheck

			if err := app.layouts.Save(ctx, scope, l); err != nil {
				return newCommandError("save layout", scope.String(), err, "Check the storage backend and try again.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d components to %s\n", len(l.Components), scope)
			return nil
		},
	}

	scopeFlags.register(cmd)

	return cmd
}

func newLayoutDiffCmd(root *rootFlags) *cobra.Command {
	var (
		scopeFlags layoutScopeFlags
		file       string
		from       string
		to         string
		contextN   int
	)

	cmd := &cobra.Command{
		Use:   "diff <store-id>",
		Short: "Diff the stored layout against a file or an earlier revision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if (file == "") == (from == "") {
				return newCommandError("diff layout", args[0], errors.New("exactly one of --file or --from is required"), "Pass --file layout.json or --from <revision>.")
			}
			scope, err := scopeFor(args[0], scopeFlags.pageID)
			if err != nil {
				return newCommandError("diff layout", args[0], err, "Pass a store id.")
			}
			app, err := newAppContext(ctx, cmd, root)
			if err != nil {
				return err
			}
			defer app.Close() //nolint:errcheck

			var (
				before, after           layout.Layout
				beforeLabel, afterLabel string
			)
			if file != "" {
				before, err = loadOrEmpty(ctx, app.layouts, scope)
				if err != nil {
					return newCommandError("diff layout", scope.String(), err, "Check the storage backend.")
				}
				after, err = readLayoutFile(file)
				if err != nil {
					return newCommandError("diff layout", file, err, "Run 'storefront layout validate' for details.")
				}
				beforeLabel, afterLabel = scope.String(), file
			} else {
				if app.history == nil {
					return newCommandError("diff layout", scope.String(), errors.New("layout history is not enabled"), "Use the file backend with storage.history: true.")
				}
				before, err = app.history.At(ctx, scope, from)
				if err != nil {
					return newCommandError("diff layout", from, err, "Run 'storefront layout history' to list revisions.")
				}
				beforeLabel = scope.String() + "@" + from
				if to == "" {
					after, err = loadOrEmpty(ctx, app.history, scope)
					afterLabel = scope.String()
				} else {
					after, err = app.history.At(ctx, scope, to)
					afterLabel = scope.String() + "@" + to
				}
				if err != nil {
					return newCommandError("diff layout", to, err, "Run 'storefront layout history' to list revisions.")
				}
			}

			beforeData, err := layout.Marshal(before)
			if err != nil {
				return err
			}
			afterData, err := layout.Marshal(after)
			if err != nil {
				return err
			}
			stats := diff.Count(beforeData, afterData)
			if stats.Empty() {
				fmt.Fprintln(cmd.OutOrStdout(), "No differences.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), diff.GenerateUnifiedDiff(beforeData, afterData, beforeLabel, afterLabel, contextN))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", stats)
			return nil
		},
	}

	scopeFlags.register(cmd)
	cmd.Flags().StringVarP(&file, "file", "f", "", "Layout file to compare with the stored layout")
	cmd.Flags().StringVar(&from, "from", "", "Revision to diff from")
	cmd.Flags().StringVar(&to, "to", "", "Revision to diff to (current layout when empty)")
	cmd.Flags().IntVarP(&contextN, "context", "U", 3, "Lines of context")

	return cmd
}

func newLayoutHistoryCmd(root *rootFlags) *cobra.Command {
	var (
		scopeFlags layoutScopeFlags
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "history <store-id>",
		Short: "List the saved revisions of a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			scope, err := scopeFor(args[0], scopeFlags.pageID)
			if err != nil {
				return newCommandError("list history", args[0], err, "Pass a store id.")
			}
			app, err := newAppContext(ctx, cmd, root)
			if err != nil {
				return err
			}
			defer app.Close() //nolint:errcheck

			if app.history == nil {
				return newCommandError("list history", scope.String(), errors.New("layout history is not enabled"), "Use the file backend with storage.history: true.")
			}
			revisions, err := app.history.History(ctx, scope)
			if err != nil {
				return newCommandError("list history", scope.String(), err, "Check the layout repository.")
			}

			if jsonOutput {
				return encodeJSON(cmd, revisions)
			}
			if len(revisions) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No saved revisions for %s.\n", scope)
				return nil
			}
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "REVISION\tSAVED\tAUTHOR\tMESSAGE")
			for _, r := range revisions {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", r.Short(), r.When.Format(time.RFC3339), r.Author, strings.TrimSpace(r.Message))
			}
			return writer.Flush()
		},
	}

	scopeFlags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func readLayoutFile(path string) (layout.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return layout.Layout{}, err
	}
	l, err := layout.Parse(path, data)
	if err != nil {
		return layout.Layout{}, err
	}
	if err := layout.Validate(l); err != nil {
		return layout.Layout{}, err
	}
	return l, nil
}

func loadOrEmpty(ctx context.Context, store layout.Store, scope layout.Scope) (layout.Layout, error) {
	l, err := store.Load(ctx, scope)
	if errors.Is(err, layout.ErrNotFound) {
		return layout.Empty(), nil
	}
	return l, err
}
