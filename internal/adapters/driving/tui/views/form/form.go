// Package form provides the contact entry view for the TUI.
package form

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/vcardqr/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/vcardqr/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/vcardqr/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vcardqr/internal/core/domain"
)

// Field index where each form group starts.
const (
	groupContact = 0
	groupAddress = 7
	groupOther   = 12
)

// View is the contact form. It holds one input per ContactRecord field.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	fields  []domain.ContactField
	inputs  []*input.FieldInput
	focused int
	width   int
}

// NewView creates a form with the first field focused.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	fields := domain.ContactFields()
	inputs := make([]*input.FieldInput, len(fields))
	for i, f := range fields {
		inputs[i] = input.NewFieldInput(s, f.Label, f.Required)
	}

	v := &View{
		styles: s,
		keymap: km,
		fields: fields,
		inputs: inputs,
	}
	v.inputs[0].Focus()
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.inputs[v.focused].Init()
}

// Update moves focus on navigation keys and forwards everything else to
// the focused input.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keymap.Matches(keyMsg.String(), v.keymap.Next):
			return v, v.FocusIndex(v.focused + 1)
		case keymap.Matches(keyMsg.String(), v.keymap.Prev):
			return v, v.FocusIndex(v.focused - 1)
		}
	}

	var cmd tea.Cmd
	v.inputs[v.focused], cmd = v.inputs[v.focused].Update(msg)
	return v, cmd
}

// FocusIndex focuses the field at i, wrapping around at both ends.
func (v *View) FocusIndex(i int) tea.Cmd {
	n := len(v.inputs)
	i = ((i % n) + n) % n

	v.inputs[v.focused].Blur()
	v.focused = i
	return v.inputs[i].Focus()
}

// Focused returns the index of the focused field.
func (v *View) Focused() int {
	return v.focused
}

// FocusedField returns the descriptor of the focused field.
func (v *View) FocusedField() domain.ContactField {
	return v.fields[v.focused]
}

// Record builds a ContactRecord from the current input values.
func (v *View) Record() domain.ContactRecord {
	var r domain.ContactRecord
	for i, f := range v.fields {
		f.Set(&r, v.inputs[i].Value())
	}
	return r
}

// SetRecord fills the inputs from r.
func (v *View) SetRecord(r domain.ContactRecord) {
	for i, f := range v.fields {
		v.inputs[i].SetValue(f.Get(r))
	}
}

// Reset clears every input and focuses the first field.
func (v *View) Reset() tea.Cmd {
	for _, in := range v.inputs {
		in.Reset()
	}
	return v.FocusIndex(0)
}

// SetWidth sets the width of every input.
func (v *View) SetWidth(width int) {
	v.width = width
	for _, in := range v.inputs {
		in.SetWidth(width)
	}
}

// View renders the form.
func (v *View) View() string {
	var b strings.Builder
	for i, in := range v.inputs {
		switch i {
		case groupContact:
			b.WriteString(v.styles.Section.UnsetMarginTop().Render("Contact"))
			b.WriteByte('\n')
		case groupAddress:
			b.WriteString(v.styles.Section.Render("Address"))
			b.WriteByte('\n')
		case groupOther:
			b.WriteString(v.styles.Section.Render("Other"))
			b.WriteByte('\n')
		}
		b.WriteString(in.View())
		b.WriteByte('\n')
	}
	return b.String()
}
