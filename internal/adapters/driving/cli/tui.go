package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/vcardqr/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive contact form",
	Long: `Launch a terminal form for entering contact details, previewing the QR
code and saving it.

Controls:
  Tab/↓, Shift+Tab/↑  Move between fields
  Ctrl+G              Generate the QR code
  Ctrl+S              Save the image (PNG, JPEG or BMP by extension)
  Ctrl+R              Clear the form
  F1                  Toggle help
  Ctrl+Q              Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

// newProgram builds the bubbletea program. Replaced in tests.
var newProgram = func(model tea.Model) interface{ Run() (tea.Model, error) } {
	return tea.NewProgram(model, tea.WithAltScreen())
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Card:     cardService,
		Pipeline: pipeline,
		Settings: settingsService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if _, err := newProgram(app).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
