package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cellstack/pkg/sizing"
	"github.com/matzehuels/cellstack/pkg/sweep"
)

// sweepCommand tabulates or plots pack voltage over a range of targets.
func (c *CLI) sweepCommand() *cobra.Command {
	var (
		cell   string
		output string
		format string
		opts   = sweep.Options{
			Min:  sizing.DefaultLimits.MinVoltage,
			Max:  sizing.DefaultLimits.MaxVoltage,
			Step: 1,
		}
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Show how the series count tracks a range of target voltages",
		Long: `Show how the series count tracks a range of target voltages.

Without --output, prints one row per series-count step. With --output, plots
actual against desired voltage as SVG or PNG.`,
		Example: `  cellstack sweep --min 10 --max 60 --step 0.5
  cellstack sweep --cell high_power -o sweep.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cell == "" {
				cell = c.Settings.Cell
			}
			spec, err := c.Settings.Catalog.Get(cell)
			if err != nil {
				return err
			}
			opts.Cell = spec

			points, err := sweep.Compute(opts)
			if err != nil {
				return err
			}
			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), renderSweepTable(points))
				return nil
			}

			if format == "" {
				format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
			}
			data, err := sweep.Plot(points, spec, format, sweep.DefaultWidth, sweep.DefaultHeight)
			if err != nil {
				return err
			}
			if err := writeArtifact(output, data); err != nil {
				return err
			}
			printSuccess("Plotted %d points for %s", len(points), spec.Name)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&cell, "cell", "c", "", "cell profile id")
	cmd.Flags().Float64Var(&opts.Min, "min", opts.Min, "lowest desired voltage")
	cmd.Flags().Float64Var(&opts.Max, "max", opts.Max, "highest desired voltage")
	cmd.Flags().Float64Var(&opts.Step, "step", opts.Step, "voltage step")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write a chart instead of a table")
	cmd.Flags().StringVarP(&format, "format", "f", "", "chart format: svg, png (default from --output extension)")
	return cmd
}

// renderSweepTable prints one row per distinct series count, with the
// desired voltage range that produces it.
func renderSweepTable(points []sweep.Point) string {
	var rows [][]string
	for i := 0; i < len(points); {
		j := i
		for j+1 < len(points) && points[j+1].Series == points[i].Series {
			j++
		}
		rows = append(rows, []string{
			fmt.Sprintf("%dS", points[i].Series),
			fmt.Sprintf("%.1f – %.1f V", points[i].Desired, points[j].Desired),
			fmt.Sprintf("%.1f V", points[i].Actual),
		})
		i = j + 1
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Series", "Desired", "Actual").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 { // header
				return headerStyle
			}
			if col == 2 {
				return cellStyle.Foreground(colorSky)
			}
			return cellStyle
		}).
		Render()
}
