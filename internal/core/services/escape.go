package services

import "strings"

// noteEscapeSteps are applied in order. Backslash must be handled
// before anything that introduces one, and LF before CR is dropped so a
// CRLF pair becomes a single \n.
var noteEscapeSteps = []struct{ old, new string }{
	{`\`, `\\`},
	{"\n", `\n`},
	{"\r", ""},
	{",", `\,`},
	{";", `\;`},
}

// EscapeText escapes a free-text value for a vCard property line.
// Carriage returns are dropped rather than escaped.
func EscapeText(s string) string {
	for _, step := range noteEscapeSteps {
		s = strings.ReplaceAll(s, step.old, step.new)
	}
	return s
}

// UnescapeText reverses EscapeText. Unknown escape sequences keep the
// escaped character; a trailing lone backslash is kept as is.
func UnescapeText(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n', 'N':
			b.WriteByte('\n')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
