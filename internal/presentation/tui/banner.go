package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Tabitha ASCII art banner to w.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text, color string
	}{
		{"  _____     _     _ _   _           ", "#f472b6"},
		{" |_   _|_ _| |__ (_) |_| |__   __ _ ", "#fb7185"},
		{"   | |/ _` | '_ \\| | __| '_ \\ / _` |", "#fb923c"},
		{"   | | (_| | |_) | | |_| | | | (_| |", "#facc15"},
		{"   |_|\\__,_|_.__/|_|\\__|_| |_|\\__,_|", "#a3e635"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
