package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/eatsplit/internal/app"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// let the list own the keyboard while a filter is being typed
		if m.focus == fieldList && m.list.FilterState() == list.Filtering {
			break
		}
		if m.focus == fieldList {
			return m.updateList(msg)
		}
		return m.updateForm(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close) && m.list.FilterState() != list.Unfiltered:
		// esc clears an applied filter
	case key.Matches(msg, m.keys.Close):
		if m.app.Mode() == app.ModeIdle {
			return m, tea.Quit
		}
		cmd := m.closeForm()
		return m, cmd
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		m.app.ToggleAddFriend()
		m.resize(m.width, m.height)
		cmd := m.enterMode()
		return m, cmd
	case key.Matches(msg, m.keys.Select):
		it, ok := m.list.SelectedItem().(friendItem)
		if !ok {
			return m, nil
		}
		m.app.Select(it.ID)
		m.resize(m.width, m.height)
		cmd := m.enterMode()
		return m, cmd
	case key.Matches(msg, m.keys.Next):
		cmd := m.cycle(1)
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		cmd := m.cycle(-1)
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		cmd := m.closeForm()
		return m, cmd
	case key.Matches(msg, m.keys.Next):
		cmd := m.cycle(1)
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		cmd := m.cycle(-1)
		return m, cmd
	case key.Matches(msg, m.keys.Submit):
		cmd := m.submit()
		return m, cmd
	case m.focus == fieldPayer:
		if key.Matches(msg, m.keys.Payer) {
			m.app.SplitForm().TogglePayer()
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
		m.app.AddForm().Name = m.name.Value()
	case fieldImage:
		m.image, cmd = m.image.Update(msg)
		m.app.AddForm().Image = m.image.Value()
	case fieldBill:
		cmd = updateAmount(&m.bill, m.app.SplitForm().SetBill, msg)
	case fieldPaid:
		cmd = updateAmount(&m.paid, m.app.SplitForm().SetPaid, msg)
	}
	return m, cmd
}

// updateAmount feeds msg to in and reverts the edit when set rejects the
// new text.
func updateAmount(in *textinput.Model, set func(string) bool, msg tea.Msg) tea.Cmd {
	prev, pos := in.Value(), in.Position()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if in.Value() != prev && !set(in.Value()) {
		in.SetValue(prev)
		in.SetCursor(pos)
	}
	return cmd
}

func (m *Model) submit() tea.Cmd {
	switch m.app.Mode() {
	case app.ModeAddFriend:
		f, ok := m.app.SubmitAddFriend()
		if !ok {
			return nil
		}
		m.resize(m.width, m.height)
		cmd := m.enterMode()
		m.selectItem(f.ID)
		return cmd
	case app.ModeSplitBill:
		f, ok := m.app.SubmitSplit()
		if !ok {
			return nil
		}
		m.resize(m.width, m.height)
		cmd := m.enterMode()
		m.selectItem(f.ID)
		return cmd
	}
	return nil
}

func (m *Model) closeForm() tea.Cmd {
	switch m.app.Mode() {
	case app.ModeAddFriend:
		m.app.ToggleAddFriend()
	case app.ModeSplitBill:
		m.app.Deselect()
	}
	m.resize(m.width, m.height)
	return m.enterMode()
}

// selectItem moves the list cursor onto the friend with id.
func (m *Model) selectItem(id string) {
	for i, it := range m.list.VisibleItems() {
		if fi, ok := it.(friendItem); ok && fi.ID == id {
			m.list.Select(i)
			return
		}
	}
}
