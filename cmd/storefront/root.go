package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Storefront composes, previews and serves store pages from saved layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to storefront.yaml (defaults apply when absent)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newTemplatesCmd())
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newLayoutCmd(flags))
	cmd.AddCommand(newBuilderCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
