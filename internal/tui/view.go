package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/eatsplit/internal/app"
	"github.com/idilsaglam/eatsplit/internal/model"
	"github.com/idilsaglam/eatsplit/internal/ui"
)

func (m Model) View() string {
	t := ui.Current()

	sidebar := []string{m.list.View()}
	if m.app.Mode() == app.ModeAddFriend {
		sidebar = append(sidebar, m.addFormView())
	}
	button := "Add friend"
	if m.app.Mode() == app.ModeAddFriend {
		button = "Close"
	}
	sidebar = append(sidebar, t.Accent.Render("[a] "+button))
	content := strings.Join(sidebar, "\n")

	if m.app.Mode() == app.ModeSplitBill {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ", m.splitFormView())
	}
	return ui.Box(content)
}

func (m Model) label(f field, text string) string {
	t := ui.Current()
	if m.focus == f {
		return t.Accent.Render(text)
	}
	return text
}

func (m Model) addFormView() string {
	lines := []string{
		m.label(fieldName, "Friend"),
		m.name.View(),
		m.label(fieldImage, "Image URL"),
		m.image.View(),
		ui.Current().Help.Render("enter add · tab next · esc close"),
	}
	return ui.Box(strings.Join(lines, "\n"))
}

func (m Model) splitFormView() string {
	t := ui.Current()
	friend, ok := m.app.Selected()
	if !ok {
		return ""
	}
	form := m.app.SplitForm()

	share := ""
	if s, ok := form.FriendShare(); ok {
		share = s.String()
	}
	payer := "You"
	if form.Payer() == model.PayerFriend {
		payer = friend.Name
	}
	payerLine := "  < " + payer + " >"
	if m.focus == fieldPayer {
		payerLine = t.Selected.Render(payerLine)
	}

	lines := []string{
		t.Title.Render("Split a bill with " + friend.Name),
		t.Muted.Render(friend.Image),
		"",
		m.label(fieldBill, "Bill value"),
		m.bill.View(),
		m.label(fieldPaid, "Your expense"),
		m.paid.View(),
		friend.Name + "'s expense",
		"  " + t.Muted.Render(share),
		m.label(fieldPayer, "Who is paying the bill"),
		payerLine,
	}
	if bill, ok := form.Bill(); ok {
		paid, _ := form.Paid()
		b, _ := bill.Float64()
		p, _ := paid.Float64()
		lines = append(lines, "", ui.ShareBar(p, b, 20))
	}
	lines = append(lines, "", t.Help.Render("enter split bill · tab next · esc close"))
	return ui.Box(strings.Join(lines, "\n"))
}
