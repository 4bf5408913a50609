package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cellstack/pkg/cells"
	"github.com/matzehuels/cellstack/pkg/errors"
	"github.com/matzehuels/cellstack/pkg/layout"
	"github.com/matzehuels/cellstack/pkg/render/sink"
	"github.com/matzehuels/cellstack/pkg/sizing"
)

// Designer styles
var (
	styleSliderFill  = lipgloss.NewStyle().Foreground(colorSky)
	styleSliderAmps  = lipgloss.NewStyle().Foreground(colorOrange)
	styleSliderTrack = lipgloss.NewStyle().Foreground(colorDim)
	styleControl     = lipgloss.NewStyle().Foreground(colorGray).Width(10)
	styleNotice      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorYellow).Padding(0, 1)
)

const (
	sliderWidth = 30
	coarseSteps = 10

	// designerChrome is the number of lines the designer draws around the
	// preview viewport.
	designerChrome = 24
)

// =============================================================================
// Key Bindings
// =============================================================================

type designerKeys struct {
	VoltageUp, VoltageDown           key.Binding
	VoltageUpFast, VoltageDownFast   key.Binding
	CapacityUp, CapacityDown         key.Binding
	CapacityUpFast, CapacityDownFast key.Binding
	NextCell, PrevCell               key.Binding
	Mode                             key.Binding
	Reset                            key.Binding
	Accept                           key.Binding
	Help                             key.Binding
	Quit                             key.Binding
}

func newDesignerKeys() designerKeys {
	return designerKeys{
		VoltageUp:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "voltage +0.1")),
		VoltageDown:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "voltage -0.1")),
		VoltageUpFast:    key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("⇧↑", "voltage +1")),
		VoltageDownFast:  key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("⇧↓", "voltage -1")),
		CapacityUp:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "capacity +0.5")),
		CapacityDown:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "capacity -0.5")),
		CapacityUpFast:   key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("⇧→", "capacity +5")),
		CapacityDownFast: key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("⇧←", "capacity -5")),
		NextCell:         key.NewBinding(key.WithKeys("c", "tab"), key.WithHelp("c", "next cell")),
		PrevCell:         key.NewBinding(key.WithKeys("C", "shift+tab"), key.WithHelp("C", "previous cell")),
		Mode:             key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "layout mode")),
		Reset:            key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Accept:           key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "accept")),
		Help:             key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:             key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k designerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.VoltageUp, k.CapacityUp, k.NextCell, k.Mode, k.Accept, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k designerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.VoltageUp, k.VoltageDown, k.VoltageUpFast, k.VoltageDownFast},
		{k.CapacityUp, k.CapacityDown, k.CapacityUpFast, k.CapacityDownFast},
		{k.NextCell, k.PrevCell, k.Mode, k.Reset},
		{k.Accept, k.Help, k.Quit},
	}
}

// =============================================================================
// designerModel - Interactive pack designer
// =============================================================================

// designerModel is the bubbletea model behind 'cellstack tui'. Every change
// to a control resizes and re-lays-out the pack.
type designerModel struct {
	catalog cells.Catalog
	limits  sizing.Limits
	initial sizing.Request
	req     sizing.Request
	mode    layout.Mode

	cfg   sizing.Configuration
	scene layout.Scene
	err   error

	keys     designerKeys
	help     help.Model
	preview  viewport.Model
	accepted bool
}

func newDesignerModel(catalog cells.Catalog, req sizing.Request, mode layout.Mode) designerModel {
	vp := viewport.New(80, 16)
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
	}
	req = sizing.DefaultLimits.Clamp(req)
	m := designerModel{
		catalog: catalog,
		limits:  sizing.DefaultLimits,
		initial: req,
		req:     req,
		mode:    mode,
		keys:    newDesignerKeys(),
		help:    help.New(),
		preview: vp,
	}
	m.recompute()
	return m
}

func (m designerModel) Init() tea.Cmd {
	return nil
}

func (m designerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.preview.Width = msg.Width
		m.preview.Height = max(msg.Height-designerChrome, 5)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Accept):
			if m.err == nil {
				m.accepted = true
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.VoltageUp):
			m.req.Voltage = m.limits.StepVoltage(m.req.Voltage, 1)
		case key.Matches(msg, m.keys.VoltageDown):
			m.req.Voltage = m.limits.StepVoltage(m.req.Voltage, -1)
		case key.Matches(msg, m.keys.VoltageUpFast):
			m.req.Voltage = m.limits.StepVoltage(m.req.Voltage, coarseSteps)
		case key.Matches(msg, m.keys.VoltageDownFast):
			m.req.Voltage = m.limits.StepVoltage(m.req.Voltage, -coarseSteps)
		case key.Matches(msg, m.keys.CapacityUp):
			m.req.Capacity = m.limits.StepCapacity(m.req.Capacity, 1)
		case key.Matches(msg, m.keys.CapacityDown):
			m.req.Capacity = m.limits.StepCapacity(m.req.Capacity, -1)
		case key.Matches(msg, m.keys.CapacityUpFast):
			m.req.Capacity = m.limits.StepCapacity(m.req.Capacity, coarseSteps)
		case key.Matches(msg, m.keys.CapacityDownFast):
			m.req.Capacity = m.limits.StepCapacity(m.req.Capacity, -coarseSteps)
		case key.Matches(msg, m.keys.NextCell):
			m.req.Cell = m.catalog.Next(m.req.Cell.ID)
		case key.Matches(msg, m.keys.PrevCell):
			m.req.Cell = m.catalog.Prev(m.req.Cell.ID)
		case key.Matches(msg, m.keys.Mode):
			m.mode = m.mode.Next()
		case key.Matches(msg, m.keys.Reset):
			m.req = m.initial
		default:
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(msg)
			return m, cmd
		}
		m.recompute()
		return m, nil
	}
	return m, nil
}

// recompute sizes the pack from the controls and lays it out. A layout error
// (row mode on a multi-parallel pack) keeps the configuration and clears the
// scene.
func (m *designerModel) recompute() {
	m.cfg = sizing.Compute(m.req)
	m.scene, m.err = layout.Compute(m.cfg.Series, m.cfg.Parallel, m.mode)
	if m.err != nil {
		m.preview.SetContent(StyleWarning.Render(errors.UserMessage(m.err)))
		return
	}
	m.preview.SetContent(renderPreview(m.scene))
}

func (m designerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("18650 Battery Pack Designer"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("Visualize your custom battery configurations in real-time."))
	b.WriteString("\n\n")

	b.WriteString(m.controlLine("Voltage", renderSlider(m.req.Voltage, m.limits.MinVoltage, m.limits.MaxVoltage, styleSliderFill), fmt.Sprintf("%.1f V", m.req.Voltage)))
	b.WriteString(m.controlLine("Capacity", renderSlider(m.req.Capacity, m.limits.MinCapacity, m.limits.MaxCapacity, styleSliderAmps), fmt.Sprintf("%.1f Ah", m.req.Capacity)))
	b.WriteString(m.controlLine("Cell", StyleValue.Render(m.req.Cell.Name), ""))
	b.WriteString(m.controlLine("Layout", StyleValue.Render(string(m.mode)), ""))
	b.WriteString("\n")

	b.WriteString(renderStatsCard(m.cfg))
	b.WriteString("\n\n")
	b.WriteString(m.preview.View())
	b.WriteString("\n")

	if m.err == nil && m.scene.LimitReached {
		b.WriteString(styleNotice.Render(StyleWarning.Render(sink.NoticeTitle) + "\n" + sink.NoticeBody()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m designerModel) controlLine(label, control, value string) string {
	line := styleControl.Render(label) + control
	if value != "" {
		line += "  " + StyleValue.Render(value)
	}
	return line + "\n"
}

// renderSlider draws v's position between lo and hi as a bar.
func renderSlider(v, lo, hi float64, fill lipgloss.Style) string {
	filled := 0
	if hi > lo {
		filled = int(math.Round((v - lo) / (hi - lo) * sliderWidth))
	}
	filled = min(max(filled, 0), sliderWidth)
	return fill.Render(strings.Repeat("━", filled)) + styleSliderTrack.Render(strings.Repeat("─", sliderWidth-filled))
}

// =============================================================================
// Command
// =============================================================================

func (c *CLI) tuiCommand() *cobra.Command {
	var flags packFlags

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Design a pack interactively",
		Long: `Open the interactive pack designer. Voltage and capacity move in the
same steps as the web sliders; the specification card and a character preview
update with every key press. Press enter to accept the design.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.options(cmd, flags)
			spec, err := c.Settings.Catalog.Get(opts.Cell)
			if err != nil {
				return err
			}
			mode, err := layout.ParseMode(opts.Mode)
			if err != nil {
				return err
			}

			model := newDesignerModel(c.Settings.Catalog, sizing.Request{
				Voltage:  opts.Voltage,
				Capacity: opts.Capacity,
				Cell:     spec,
			}, mode)

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return err
			}

			m, ok := final.(designerModel)
			if !ok || !m.accepted {
				return nil
			}
			fmt.Println(renderStatsCard(m.cfg))
			fmt.Println()
			printNextStep("Render it", fmt.Sprintf("cellstack render -V %.1f -C %.1f -c %s -m %s", m.req.Voltage, m.req.Capacity, m.req.Cell.ID, m.mode))
			return nil
		},
	}

	c.addPackFlags(cmd, &flags)
	c.registerPackCompletions(cmd)
	return cmd
}
