package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the aegraph banner followed by the version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`   __ _  ___  __ _ _ __ __ _ _ __ | |__`, "#818cf8"},
		{`  / _' |/ _ \/ _' | '__/ _' | '_ \| '_ \`, "#a78bfa"},
		{` | (_| |  __/ (_| | | | (_| | |_) | | | |`, "#c084fc"},
		{`  \__,_|\___|\__, |_|  \__,_| .__/|_| |_|`, "#e879f9"},
		{`             |___/          |_|`, "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  alpha existential graphs "+version).Faint())
	fmt.Fprintln(w)
}

// Prompt returns the REPL prompt, coloured when the terminal supports it.
func Prompt() string {
	p := termenv.ColorProfile()
	return termenv.String("ae> ").Foreground(p.Color("#a78bfa")).Bold().String()
}
