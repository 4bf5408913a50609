package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cellstack/pkg/cells"
)

// cellsCommand lists the cell catalog.
func (c *CLI) cellsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cells",
		Short: "List the available cell profiles",
		Long: `List the available cell profiles.

The built-in 18650 profiles can be extended with [[cells]] entries in the
config file.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), renderCellTable(c.Settings.Catalog, c.Settings.Cell))
		},
	}
}

// renderCellTable renders the catalog with the default profile marked.
func renderCellTable(catalog cells.Catalog, defaultID string) string {
	specs := catalog.All()
	rows := make([][]string, 0, len(specs))
	for _, s := range specs {
		mark := ""
		if s.ID == defaultID {
			mark = "default"
		}
		rows = append(rows, []string{
			s.ID,
			s.Name,
			fmt.Sprintf("%.1f V", s.Voltage),
			fmt.Sprintf("%.1f Ah", s.Capacity),
			mark,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Name", "Voltage", "Capacity", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 { // header
				return headerStyle
			}
			switch {
			case row < len(specs) && specs[row].ID == defaultID:
				return cellStyle.Foreground(colorSky)
			case col == 2:
				return cellStyle.Foreground(colorSky)
			case col == 3:
				return cellStyle.Foreground(colorOrange)
			}
			return cellStyle
		})
	return t.Render()
}
