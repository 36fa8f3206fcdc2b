package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
	"github.com/alexisbeaulieu97/storefront/internal/registry"
	"github.com/alexisbeaulieu97/storefront/internal/theme"
)

type templatesOptions struct {
	category   string
	search     string
	jsonOutput bool
}

func newTemplatesCmd() *cobra.Command {
	opts := &templatesOptions{}

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the block types the builder offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplates(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", string(registry.CategoryAll), "Filter by category")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Filter by name or description")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type templateJSON struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Category     string         `json:"category"`
	Description  string         `json:"description"`
	DefaultProps map[string]any `json:"defaultProps"`
}

func runTemplates(cmd *cobra.Command, opts *templatesOptions) error {
	category, err := registry.ParseCategory(opts.category)
	if err != nil {
		return newCommandError("list templates", "parsing --category", err, fmt.Sprintf("Use one of %v.", registry.Categories()))
	}
	templates := registry.New().Filter(category, opts.search)

	if opts.jsonOutput {
		out := make([]templateJSON, len(templates))
		for i, t := range templates {
			out[i] = templateJSON{
				ID:           string(t.ID),
				Name:         t.Name,
				Category:     string(t.Category),
				Description:  t.Description,
				DefaultProps: blocks.ToMap(t.DefaultProps()),
			}
		}
		return encodeJSON(cmd, out)
	}

	if len(templates) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No templates match.")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "TYPE\tNAME\tCATEGORY\tDESCRIPTION")
	for _, t := range templates {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Category.Label(), t.Description)
	}
	return writer.Flush()
}

func newThemesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the theme presets and font options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				return encodeJSON(cmd, map[string]any{
					"presets": theme.Presets(),
					"fonts":   theme.FontOptions(),
				})
			}
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "PRESET\tPRIMARY\tSECONDARY\tACCENT\tTEXT\tBACKGROUND")
			for _, p := range theme.Presets() {
				c := p.Colors
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\n", p.Name, c.Primary, c.Secondary, c.Accent, c.Text, c.Background)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func encodeJSON(cmd *cobra.Command, payload any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
