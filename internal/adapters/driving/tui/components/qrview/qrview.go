// Package qrview renders QR module grids as terminal text.
package qrview

import (
	"strings"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"
	fullBlock = "█"
	blank     = " "
)

// Render draws modules two rows per line using half blocks.
// Light modules are drawn as blocks so the symbol reads correctly on a
// dark terminal background. Odd heights are padded with a light row.
func Render(modules [][]bool) string {
	if len(modules) == 0 {
		return ""
	}

	var b strings.Builder
	for y := 0; y < len(modules); y += 2 {
		top := modules[y]
		var bottom []bool
		if y+1 < len(modules) {
			bottom = modules[y+1]
		}

		for x := range top {
			topLight := !top[x]
			bottomLight := bottom == nil || x >= len(bottom) || !bottom[x]
			b.WriteString(cell(topLight, bottomLight))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cell(topLight, bottomLight bool) string {
	switch {
	case topLight && bottomLight:
		return fullBlock
	case topLight:
		return upperHalf
	case bottomLight:
		return lowerHalf
	default:
		return blank
	}
}

// Lines returns the number of text lines Render produces for modules.
func Lines(modules [][]bool) int {
	return (len(modules) + 1) / 2
}
