package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/zoobzio/resval"
	rtea "github.com/zoobzio/resval/pkg/bubbletea"
	"github.com/zoobzio/resval/pkg/terminal"
	"go.uber.org/zap"
)

// fallbackTerminal is used when standard output is not a terminal.
var fallbackTerminal = resval.Dimensions{Width: 80, Height: 24}

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	hintStyle = lipgloss.NewStyle().Faint(true)
)

// previewModel draws a card sized by the engine. The card follows the
// terminal as it is resized.
type previewModel struct {
	engine *resval.Engine
	width  float64
	height float64
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "+", "=":
		m.width = min(m.width+10, 100)
		m.height = min(m.height+10, 100)
	case "-", "_":
		m.width = max(m.width-10, 10)
		m.height = max(m.height-10, 10)
	}
	return m, nil
}

func (m previewModel) View() string {
	dims := m.engine.ScreenDimensions()
	w := m.engine.WP(m.width).Value
	h := m.engine.HP(m.height).Value
	pad := m.engine.Spacing(2).Value

	body := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("terminal  %s %s", dims, dims.Orientation()),
		fmt.Sprintf("card      wp(%s) x hp(%s) = %sx%s",
			formatValue(m.width), formatValue(m.height), formatValue(w), formatValue(h)),
		fmt.Sprintf("spacing   %s", formatValue(pad)),
	)

	// Border takes two cells on each axis.
	card := cardStyle.
		Width(max(int(w)-2, 1)).
		Height(max(int(h)-2, 1)).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		card,
		hintStyle.Render("+/- resize card  q quit"),
	)
}

func newPreviewCmd() *cobra.Command {
	var standard float64

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Live terminal preview of responsive sizes",
		Long: `Renders a card sized with wp/hp against the terminal window and follows
resizes. Sizes are measured in cells; --rows sets the standard height in
rows that spacing is scaled against.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := fallbackTerminal
			term := terminal.Stdout()
			if term.IsTerminal() {
				if d, err := term.Dimensions(); err == nil {
					initial = d
				}
			}

			provider := rtea.New(initial)
			e := resval.New(provider).SyncMode()
			if err := e.Configure(resval.Options{}.WithStandardScreenHeight(standard)); err != nil {
				return err
			}
			if err := e.Start(cmd.Context()); err != nil {
				return err
			}
			defer e.Stop()

			logger.Debug("preview started", zap.Stringer("terminal", initial))

			model := rtea.Wrap(previewModel{engine: e, width: 60, height: 50}, provider, e)
			program := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err := program.Run()
			if err != nil && cmd.Context().Err() != nil {
				return nil
			}
			return err
		},
	}
	cmd.Flags().Float64Var(&standard, "rows", 24, "Standard height in rows")
	return cmd
}
