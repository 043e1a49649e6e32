package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/eatsplit/internal/app"
)

// Run starts the interactive UI on the alternate screen and blocks until
// the user quits.
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
