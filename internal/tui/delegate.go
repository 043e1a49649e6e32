package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/eatsplit/internal/model"
	"github.com/idilsaglam/eatsplit/internal/ui"
)

// friendItem adapts model.Friend to bubbles/list.Item
type friendItem struct {
	model.Friend
	selected bool
}

func (i friendItem) Title() string       { return i.Name }
func (i friendItem) Description() string { return i.Message() }
func (i friendItem) FilterValue() string { return i.Name }

func (i friendItem) toggleLabel() string {
	if i.selected {
		return "Close"
	}
	return "Select"
}

// Two lines per friend: name + toggle, then the balance message.
type friendDelegate struct{}

func (d friendDelegate) Height() int                               { return 2 }
func (d friendDelegate) Spacing() int                              { return 1 }
func (d friendDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d friendDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(friendItem)
	if !ok {
		return
	}
	t := ui.Current()

	name := t.Title.Render(it.Name)
	if it.selected {
		name = t.Selected.Render(" " + it.Name + " ")
	}
	toggle := t.Muted.Render("[" + it.toggleLabel() + "]")

	prefix := "  "
	if index == m.Index() {
		prefix = t.Accent.Render(t.SymCursor + " ")
	}
	fmt.Fprintf(w, "%s%s %s\n", prefix, name, toggle)
	fmt.Fprintf(w, "  %s", standingStyle(it.Standing()).Render(it.Message()))
}

func standingStyle(s model.Standing) lipgloss.Style {
	t := ui.Current()
	switch s {
	case model.YouOwe:
		return t.Error.UnsetBold()
	case model.OwesYou:
		return t.Success
	default:
		return t.Muted
	}
}
