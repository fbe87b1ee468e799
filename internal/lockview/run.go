package lockview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nfslockd/nfslock/internal/nfslock"
)

// Run launches the bubbletea program for handle until the user quits.
func Run(handle *nfslock.Handle) error {
	p := tea.NewProgram(New(handle))
	_, err := p.Run()
	return err
}
