package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"jstrip/internal/driver"
)

// RunProgress drives a progress view until events is closed.
// The caller closes events once the run is over.
func RunProgress(out io.Writer, title string, files []string, events <-chan driver.Event) error {
	p := tea.NewProgram(NewProgressModel(title, files, events), tea.WithOutput(out))
	_, err := p.Run()
	return err
}
