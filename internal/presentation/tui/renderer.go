package tui

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// NewFrameRenderer returns a renderer for simulation frames: the head
// caret line dimmed, the tape line in blue, matching the classic
// terminal output of the simulator.
func NewFrameRenderer() func(head, tape string) string {
	profile := termenv.ColorProfile()
	blue := profile.Color("#3b82f6")

	return func(head, tape string) string {
		var b strings.Builder
		b.WriteString(termenv.String(head).Faint().String())
		b.WriteString("\n")
		b.WriteString(termenv.String(tape).Foreground(blue).String())
		b.WriteString("\n")
		return b.String()
	}
}

// IsTerminal reports whether stdout is a TTY. The version command
// prints the banner only when it is.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
