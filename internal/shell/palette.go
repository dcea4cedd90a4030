package shell

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used for shell output. Colours are dropped
// automatically when the output is not a terminal.
type palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	rule  lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		title: r.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true),
		ok:    r.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		err:   r.NewStyle().Foreground(lipgloss.Color("#FF0000")),
		rule:  r.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}
