package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/vcardqr/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/vcardqr/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/vcardqr/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/vcardqr/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vcardqr/internal/adapters/driving/tui/views/form"
	"github.com/custodia-labs/vcardqr/internal/adapters/driving/tui/views/preview"
	"github.com/custodia-labs/vcardqr/internal/core/domain"
)

const (
	formMaxWidth = 64
	chromeHeight = 4
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	// formView collects the contact fields.
	formView *form.View

	// previewView shows the current QR symbol.
	previewView *preview.View

	// statusBar shows progress and key hints.
	statusBar *status.Bar

	// savePrompt is the destination path input.
	savePrompt textinput.Model

	// mode tracks what keyboard input is routed to.
	mode messages.Mode

	// document is the last successfully serialized card.
	document domain.CardDocument

	// generation is bumped by clear so results of earlier generate
	// commands can be told apart.
	generation int

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	prompt := textinput.New()
	prompt.Prompt = "Save as: "
	prompt.CharLimit = 1024

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		formView:    form.NewView(s, km),
		previewView: preview.NewView(s),
		statusBar:   status.NewBar(s, km),
		savePrompt:  prompt,
		mode:        messages.ModeForm,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("vcardqr - Contact QR Code"),
		a.formView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return a, tea.Quit
		}
		switch a.mode {
		case messages.ModeSavePrompt:
			return a.updatePrompt(msg)
		case messages.ModeHelp:
			if keymap.Matches(msg.String(), a.keymap.Cancel) || keymap.Matches(msg.String(), a.keymap.Help) {
				a.mode = messages.ModeForm
			}
			return a, nil
		case messages.ModeForm:
			return a.updateForm(msg)
		}
		return a, nil

	case messages.CardGenerated:
		if msg.Generation != a.generation {
			a.discardStale(msg)
			return a, nil
		}
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.err = nil
		a.document = msg.Document
		a.previewView.SetSymbol(msg.Symbol)
		a.statusBar.SetState(status.StateGenerated)
		return a, nil

	case messages.CardSaved:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.err = nil
		a.statusBar.SetState(status.StateSaved)
		a.statusBar.SetMessage(msg.Result.Path)
		return a, nil

	case messages.FormCleared:
		a.statusBar.SetState(status.StateReady)
		a.statusBar.SetMessage("form cleared")
		return a, nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Cursor blink and other internal messages.
	var cmd tea.Cmd
	if a.mode == messages.ModeSavePrompt {
		a.savePrompt, cmd = a.savePrompt.Update(msg)
		return a, cmd
	}
	a.formView, cmd = a.formView.Update(msg)
	return a, cmd
}

// updateForm handles keys while the form has focus.
func (a *App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, a.keymap.Help):
		a.mode = messages.ModeHelp
		return a, nil

	case keymap.Matches(k, a.keymap.Generate):
		a.statusBar.SetState(status.StateGenerating)
		return a, a.generate(a.formView.Record())

	case keymap.Matches(k, a.keymap.Save):
		if !a.ports.Pipeline.State().CanExport() {
			a.setError(domain.ErrNothingGenerated)
			return a, nil
		}
		a.mode = messages.ModeSavePrompt
		a.savePrompt.SetValue(a.defaultSavePath())
		a.savePrompt.CursorEnd()
		a.statusBar.SetState(status.StatePrompt)
		return a, a.savePrompt.Focus()

	case keymap.Matches(k, a.keymap.Clear):
		return a, a.clear()
	}

	var cmd tea.Cmd
	a.formView, cmd = a.formView.Update(msg)
	return a, cmd
}

// updatePrompt handles keys while the save prompt is open.
func (a *App) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, a.keymap.Cancel):
		a.closePrompt()
		a.statusBar.SetState(status.StateReady)
		return a, nil

	case keymap.Matches(k, a.keymap.Confirm):
		path := strings.TrimSpace(a.savePrompt.Value())
		if path == "" {
			return a, nil
		}
		a.closePrompt()
		a.statusBar.SetState(status.StateSaving)
		return a, a.save(path)
	}

	var cmd tea.Cmd
	a.savePrompt, cmd = a.savePrompt.Update(msg)
	return a, cmd
}

func (a *App) closePrompt() {
	a.savePrompt.Blur()
	a.mode = messages.ModeForm
}

func (a *App) setError(err error) {
	a.err = err
	a.statusBar.SetError(err)
}

// generate serializes record and encodes it off the UI goroutine.
func (a *App) generate(record domain.ContactRecord) tea.Cmd {
	ctx := a.ctx
	card := a.ports.Card
	pipeline := a.ports.Pipeline
	generation := a.generation
	return func() tea.Msg {
		doc, err := card.Serialize(record)
		if err != nil {
			return messages.CardGenerated{Generation: generation, Err: err}
		}
		symbol, err := pipeline.Generate(ctx, doc)
		return messages.CardGenerated{Generation: generation, Document: doc, Symbol: symbol, Err: err}
	}
}

// discardStale drops a result that finished after a clear. If its symbol
// reached the pipeline after the reset, the pipeline is reset again so
// nothing from the cleared form can be saved.
func (a *App) discardStale(msg messages.CardGenerated) {
	if msg.Err != nil || msg.Symbol == nil {
		return
	}
	if a.ports.Pipeline.Current() == msg.Symbol {
		a.ports.Pipeline.Reset()
		a.previewView.Clear()
		a.document = ""
	}
}

// save exports the current symbol to path.
func (a *App) save(path string) tea.Cmd {
	ctx := a.ctx
	pipeline := a.ports.Pipeline
	return func() tea.Msg {
		result, err := pipeline.Export(ctx, path)
		return messages.CardSaved{Result: result, Err: err}
	}
}

// clear resets every field and discards the held symbol.
func (a *App) clear() tea.Cmd {
	a.generation++
	a.ports.Pipeline.Reset()
	a.previewView.Clear()
	a.document = ""
	a.err = nil
	return tea.Batch(
		a.formView.Reset(),
		func() tea.Msg { return messages.FormCleared{} },
	)
}

// defaultSavePath joins the configured output directory with the default
// file name for the current form contents.
func (a *App) defaultSavePath() string {
	name := a.formView.Record().DefaultFileName()
	if a.ports.Settings == nil {
		return name
	}
	settings, err := a.ports.Settings.Get()
	if err != nil || settings.Output.Directory == "" {
		return name
	}
	return filepath.Join(settings.Output.Directory, name)
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	formWidth := width / 2
	if formWidth > formMaxWidth {
		formWidth = formMaxWidth
	}
	a.formView.SetWidth(formWidth)
	a.previewView.SetHeight(height - chromeHeight)
	a.statusBar.SetWidth(width)
	a.savePrompt.Width = width - len(a.savePrompt.Prompt) - 2
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	if a.mode == messages.ModeHelp {
		return a.viewHelp()
	}

	title := a.styles.Title.Render("vcardqr")
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.styles.Panel.Render(a.formView.View()),
		a.styles.Panel.Render(a.previewView.View()),
	)

	parts := []string{title, body}
	if a.mode == messages.ModeSavePrompt {
		parts = append(parts, a.savePrompt.View())
	}
	parts = append(parts, a.statusBar.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-14s %s\n", h.Key, h.Desc))
		}
		b.WriteByte('\n')
	}
	b.WriteString(a.styles.Help.Render("[esc] back to form"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Mode returns what keyboard input is currently routed to.
func (a *App) Mode() messages.Mode {
	return a.mode
}

// Document returns the last generated card text.
func (a *App) Document() domain.CardDocument {
	return a.document
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}
