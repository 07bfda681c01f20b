// Package preview renders the generated QR symbol in the TUI.
package preview

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/vcardqr/internal/adapters/driving/tui/components/qrview"
	"github.com/custodia-labs/vcardqr/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vcardqr/internal/core/domain"
)

// View shows the current symbol, or a placeholder when none is held.
type View struct {
	styles *styles.Styles
	symbol *domain.EncodedSymbol
	height int
}

// NewView creates an empty preview.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s}
}

// SetSymbol replaces the displayed symbol.
func (v *View) SetSymbol(symbol *domain.EncodedSymbol) {
	v.symbol = symbol
}

// Symbol returns the displayed symbol.
func (v *View) Symbol() *domain.EncodedSymbol {
	return v.symbol
}

// Clear removes the displayed symbol.
func (v *View) Clear() {
	v.symbol = nil
}

// SetHeight sets the available height in lines.
func (v *View) SetHeight(height int) {
	v.height = height
}

// View renders the preview.
func (v *View) View() string {
	if v.symbol == nil || len(v.symbol.Modules) == 0 {
		return v.styles.Muted.Render("No QR code yet.\nPress ctrl+g to generate.")
	}

	var b strings.Builder
	if v.height > 0 && qrview.Lines(v.symbol.Modules)+2 > v.height {
		b.WriteString(v.styles.Muted.Render("Terminal too small to preview the QR code."))
	} else {
		art := strings.TrimSuffix(qrview.Render(v.symbol.Modules), "\n")
		b.WriteString(v.styles.QR.Render(art))
	}
	b.WriteByte('\n')

	info := fmt.Sprintf("%d modules, level %s", v.symbol.Size(), v.symbol.Level)
	if v.symbol.Image != nil {
		bounds := v.symbol.Image.Bounds()
		info = fmt.Sprintf("%d modules, %dx%d px, level %s",
			v.symbol.Size(), bounds.Dx(), bounds.Dy(), v.symbol.Level)
	}
	b.WriteString(v.styles.Muted.Render(info))
	return b.String()
}
