package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/eatsplit/internal/app"
	"github.com/idilsaglam/eatsplit/internal/ui"
)

// field is a focus target. Every open form ends its tab order with the
// roster list so another friend can be picked without closing the form.
type field int

const (
	fieldList field = iota
	fieldName
	fieldImage
	fieldBill
	fieldPaid
	fieldPayer
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the Bubble Tea model over an app.App.
type Model struct {
	app  *app.App
	list list.Model
	keys keyMap

	name  textinput.Model
	image textinput.Model
	bill  textinput.Model
	paid  textinput.Model

	focus         field
	width, height int
}

func New(a *app.App) Model {
	m := Model{app: a, keys: defaultKeys()}

	l := list.New(nil, friendDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("friend", "friends")
	extra := func() []key.Binding { return []key.Binding{m.keys.Add, m.keys.Select} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra
	m.list = l

	m.name = newInput("Friend's name...", 40)
	m.image = newInput("Image URL...", 200)
	m.bill = newInput("0", 12)
	m.paid = newInput("0", 12)

	m.resize(defaultWidth, defaultHeight)
	m.refresh()
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	return ti
}

// App returns the underlying state container.
func (m Model) App() *app.App { return m.app }

func (m Model) Init() tea.Cmd { return nil }

// fields lists the focus order for the current mode.
func (m Model) fields() []field {
	switch m.app.Mode() {
	case app.ModeAddFriend:
		return []field{fieldName, fieldImage, fieldList}
	case app.ModeSplitBill:
		return []field{fieldBill, fieldPaid, fieldPayer, fieldList}
	default:
		return []field{fieldList}
	}
}

// cycle moves focus by step within the current tab order.
func (m *Model) cycle(step int) tea.Cmd {
	fs := m.fields()
	i := 0
	for j, f := range fs {
		if f == m.focus {
			i = j
			break
		}
	}
	i = (i + step + len(fs)) % len(fs)
	return m.setFocus(fs[i])
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	inputs := map[field]*textinput.Model{
		fieldName: &m.name, fieldImage: &m.image, fieldBill: &m.bill, fieldPaid: &m.paid,
	}
	var cmd tea.Cmd
	for k, in := range inputs {
		if k == f {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

// enterMode resets the inputs from the app drafts after a mode change and
// focuses the first field of the new mode.
func (m *Model) enterMode() tea.Cmd {
	add := m.app.AddForm()
	m.name.SetValue(add.Name)
	m.image.SetValue(add.Image)
	m.image.CursorEnd()
	m.bill.SetValue(m.app.SplitForm().BillText())
	m.paid.SetValue(m.app.SplitForm().PaidText())
	refresh := m.refresh()
	return tea.Batch(refresh, m.setFocus(m.fields()[0]))
}

func (m *Model) refresh() tea.Cmd {
	friends := m.app.Roster().Friends()
	items := make([]list.Item, 0, len(friends))
	for _, f := range friends {
		items = append(items, friendItem{Friend: f, selected: m.app.IsSelected(f.ID)})
	}

	owed, owing := m.app.Roster().Totals()
	t := ui.Current()
	m.list.Title = fmt.Sprintf("%s   %s %s  %s %s",
		t.Title.Render("Friends"),
		t.Success.Render("owed"), owed.String(),
		t.Error.UnsetBold().Render("owing"), owing.String(),
	)
	return m.list.SetItems(items)
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	listW := w - 4
	if m.app.Mode() == app.ModeSplitBill {
		listW = w/2 - 4
	}
	listH := h - 4
	if m.app.Mode() == app.ModeAddFriend {
		listH = h - 11
	}
	if listH < 6 {
		listH = 6
	}
	m.list.SetSize(listW, listH)
}
