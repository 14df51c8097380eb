package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects OK/Fail; nil leaves a stream unchanged.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// ApplyColorProfile picks Lip Gloss's colour profile. disable (or NO_COLOR)
// forces plain ASCII; otherwise the terminal's own capabilities win.
func ApplyColorProfile(disable bool) {
	if disable || strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}

func OK(msg string)   { fmt.Fprintln(stdout, current.Success.Render("✔ "+msg)) }
func Fail(msg string) { fmt.Fprintln(stderr, current.Error.Render("✖ "+msg)) }
