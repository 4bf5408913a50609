package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cellstack/pkg/render/sink"
	"github.com/matzehuels/cellstack/pkg/sizing"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorSky    = lipgloss.Color("#38bdf8") // positive side, primary accents
	colorOrange = lipgloss.Color("#fb923c") // negative side, capacity
	colorGreen  = lipgloss.Color("35")      // success
	colorYellow = lipgloss.Color("220")     // warnings
	colorRed    = lipgloss.Color("167")     // errors
	colorWhite  = lipgloss.Color("255")     // values
	colorGray   = lipgloss.Color("245")     // labels
	colorDim    = lipgloss.Color("240")     // muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorSky)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorSky)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
	styleCommand  = lipgloss.NewStyle().Foreground(colorSky)

	styleCard        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(1, 3)
	styleCardLabel   = lipgloss.NewStyle().Foreground(colorGray)
	styleCardConfig  = lipgloss.NewStyle().Bold(true).Foreground(colorSky)
	styleCardVoltage = lipgloss.NewStyle().Bold(true).Foreground(colorSky)
	styleCardAmps    = lipgloss.NewStyle().Bold(true).Foreground(colorOrange)
	styleCardCells   = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Println(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printCacheStatus prints whether results were served from cache.
func printCacheStatus(cached bool) {
	status, style := iconFresh, styleComputed
	if cached {
		status, style = iconCached, styleCached
	}
	fmt.Println("  " + style.Render(status))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// printLimitWarning prints the display-cap advisory.
func printLimitWarning() {
	printWarning("%s: %s", sink.NoticeTitle, sink.NoticeBody())
}

// =============================================================================
// Stats Card
// =============================================================================

// renderStatsCard renders the pack specification card.
func renderStatsCard(cfg sizing.Configuration) string {
	stat := func(label, value string, style lipgloss.Style) string {
		return lipgloss.JoinVertical(lipgloss.Center,
			styleCardLabel.Render(label),
			style.Render(value))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		stat("Actual Voltage", fmt.Sprintf("%.1f V", cfg.Voltage), styleCardVoltage),
		"    ",
		stat("Actual Capacity", fmt.Sprintf("%.1f Ah", cfg.Capacity), styleCardAmps),
		"    ",
		stat("Total Cells", fmt.Sprintf("%d", cfg.TotalCells), styleCardCells),
	)
	body := lipgloss.JoinVertical(lipgloss.Center,
		StyleTitle.Render("Pack Specifications"),
		"",
		styleCardLabel.Render("Configuration"),
		styleCardConfig.Render(cfg.Label()),
		"",
		row,
		"",
		StyleDim.Render(fmt.Sprintf("%s · %.0f Wh", cfg.Cell, cfg.Energy())),
	)
	return styleCard.Render(body)
}
