package tui

import (
	"io"

	"github.com/muesli/termenv"
)

// Styler colors report lines for the terminal behind w.
type Styler struct {
	out *termenv.Output
}

// NewStyler detects the color profile of w.
func NewStyler(w io.Writer) Styler {
	return Styler{out: termenv.NewOutput(w)}
}

// PlainStyler never emits escape sequences.
func PlainStyler(w io.Writer) Styler {
	return Styler{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
}

// Pass styles a success line.
func (s Styler) Pass(text string) string {
	return s.out.String(text).Foreground(s.out.Color("#34d399")).Bold().String()
}

// Fail styles a failure line.
func (s Styler) Fail(text string) string {
	return s.out.String(text).Foreground(s.out.Color("#f87171")).Bold().String()
}

// Field styles a field path.
func (s Styler) Field(text string) string {
	return s.out.String(text).Foreground(s.out.Color("#fbbf24")).String()
}

// Muted styles secondary text.
func (s Styler) Muted(text string) string {
	return s.out.String(text).Faint().String()
}
