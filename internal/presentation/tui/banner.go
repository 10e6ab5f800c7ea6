package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the loom ASCII banner.
func PrintBanner() {
	p := termenv.ColorProfile()
	s1 := termenv.String(" _                          ").Foreground(p.Color("#60a5fa"))
	s2 := termenv.String("| | ___   ___  _ __ ___    ").Foreground(p.Color("#3b82f6"))
	s3 := termenv.String("| |/ _ \\ / _ \\| '_ ` _ \\  ").Foreground(p.Color("#2563eb"))
	s4 := termenv.String("| | (_) | (_) | | | | | | ").Foreground(p.Color("#1d4ed8"))
	s5 := termenv.String("|_|\\___/ \\___/|_| |_| |_| ").Foreground(p.Color("#1e40af"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
