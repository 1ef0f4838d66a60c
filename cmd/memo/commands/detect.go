package commands

import (
	"os"

	"golang.org/x/term"
)

// styledOutput reports whether stdout should carry terminal colors. Styling
// is off when stdout is not a TTY, when NO_COLOR is set, or in CI.
func styledOutput() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	ci := os.Getenv("CI")
	if ci == "true" || ci == "1" {
		return false
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}
