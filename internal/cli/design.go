package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cellstack/pkg/layout"
	"github.com/matzehuels/cellstack/pkg/pipeline"
	"github.com/matzehuels/cellstack/pkg/sizing"
)

// designCommand prints the specification card for a pack.
func (c *CLI) designCommand() *cobra.Command {
	var (
		flags   packFlags
		preview bool
		clamp   bool
	)

	cmd := &cobra.Command{
		Use:   "design",
		Short: "Size a pack and print its specification",
		Long: `Size a pack from a desired voltage and capacity and print the
resulting configuration, actual voltage, actual capacity and cell count.

Counts are rounded to the nearest whole cell, with at least one cell in
series and in parallel.`,
		Example: `  cellstack design -V 48 -C 15
  cellstack design -V 36 -C 10 --cell high_capacity --preview`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.options(cmd, flags)
			opts.Clamp = clamp
			cfg, sc, err := c.runDesign(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Println(renderStatsCard(cfg))
			if preview {
				fmt.Println()
				fmt.Println(renderPreview(sc))
			}
			if sc.LimitReached {
				fmt.Println()
				printLimitWarning()
			}
			fmt.Println()
			printNextStep("Render it", fmt.Sprintf("cellstack render -V %g -C %g -c %s", opts.Voltage, opts.Capacity, cfg.Cell.ID))
			return nil
		},
	}

	c.addPackFlags(cmd, &flags)
	cmd.Flags().BoolVar(&preview, "preview", false, "print a character preview of the layout")
	cmd.Flags().BoolVar(&clamp, "clamp", false, "clamp voltage and capacity to the designer ranges")
	c.registerPackCompletions(cmd)
	return cmd
}

// runDesign sizes and lays out the pack. The scene feeds the preview and the
// limit advisory.
func (c *CLI) runDesign(ctx context.Context, opts pipeline.Options) (sizing.Configuration, layout.Scene, error) {
	runner, err := c.newRunner()
	if err != nil {
		return sizing.Configuration{}, layout.Scene{}, err
	}
	defer runner.Close()

	cfg, err := runner.Size(opts)
	if err != nil {
		return sizing.Configuration{}, layout.Scene{}, err
	}
	sc, _, err := runner.LayoutWithCacheInfo(ctx, cfg, opts)
	if err != nil {
		return sizing.Configuration{}, layout.Scene{}, err
	}
	return cfg, sc, nil
}

func (c *CLI) registerPackCompletions(cmd *cobra.Command) {
	modes := make([]string, len(layout.Modes))
	for i, m := range layout.Modes {
		modes[i] = string(m)
	}
	_ = cmd.RegisterFlagCompletionFunc("mode", completeFromList(modes))
	_ = cmd.RegisterFlagCompletionFunc("cell", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return c.Settings.Catalog.IDs(), cobra.ShellCompDirectiveNoFileComp
	})
}
