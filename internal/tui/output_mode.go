package tui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// OutputMode is how listing output is presented.
type OutputMode int

const (
	// OutputModePlain writes unstyled text (pipes, files, NO_COLOR).
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text to a terminal.
	OutputModeStyled
	// OutputModeInteractive runs the pager.
	OutputModeInteractive
)

// String implements fmt.Stringer.
func (m OutputMode) String() string {
	switch m {
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "plain"
	}
}

// DetectOutputMode picks the richest mode the current process can use.
// forcePlain and the NO_COLOR environment variable always win; interactive requires
// both stdin and stdout to be terminals and wantInteractive to be set.
func DetectOutputMode(forcePlain, wantInteractive bool) OutputMode {
	if forcePlain || os.Getenv("NO_COLOR") != "" || !isTerminal(os.Stdout) {
		return OutputModePlain
	}
	if wantInteractive && isTerminal(os.Stdin) {
		return OutputModeInteractive
	}
	return OutputModeStyled
}

// IsInteractive reports whether stdin and stdout are both terminals.
func IsInteractive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// RunPager runs m full-screen until the user quits or ctx is cancelled.
func RunPager(ctx context.Context, m *PagerModel) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
