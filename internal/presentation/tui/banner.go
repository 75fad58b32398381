package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for the console front end.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Warm gradient (rose to violet)
	s1 := termenv.String("                  _                 _       ").Foreground(p.Color("#fb7185"))
	s2 := termenv.String("  ___  ___  _   _| |_ __ ___   __ _| |_ ___ ").Foreground(p.Color("#f472b6"))
	s3 := termenv.String(" / __|/ _ \\| | | | | '_ ` _ \\ / _` | __/ _ \\").Foreground(p.Color("#e879f9"))
	s4 := termenv.String(" \\__ \\ (_) | |_| | | | | | | | (_| | ||  __/").Foreground(p.Color("#c084fc"))
	s5 := termenv.String(" |___/\\___/ \\__,_|_|_| |_| |_|\\__,_|\\__\\___|").Foreground(p.Color("#a78bfa"))
	s6 := termenv.String("                                   ~ flow ~").Foreground(p.Color("#818cf8"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
