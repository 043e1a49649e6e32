package cli

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/eatsplit/internal/model"
	"github.com/idilsaglam/eatsplit/internal/roster"
	"github.com/idilsaglam/eatsplit/internal/ui"
)

// -------------- rendering helpers --------------

func rosterPanel(r *roster.Roster, group bool) string {
	t := ui.Current()
	owed, owing := r.Totals()
	header := fmt.Sprintf("%s  %s %s  %s %s  %s %d",
		t.Title.Render("Friends"),
		t.Success.Render("owed"), owed.String(),
		t.Pending.Render("owing"), owing.String(),
		t.Accent.Render("Total"), r.Len(),
	)
	o, _ := owed.Float64()
	w, _ := owing.Float64()

	lines := []string{header, ui.ShareBar(o, o+w, 28), ""}
	if group {
		lines = append(lines, groupLines(r.Friends())...)
	} else {
		lines = append(lines, flatLines(r.Friends())...)
	}
	lines = append(lines, "", t.Muted.Render("Tip: split with `eatsplit split Clark 100 40`"))
	return ui.Panel(lines)
}

func flatLines(friends []model.Friend) []string {
	t := ui.Current()
	if len(friends) == 0 {
		return []string{t.Muted.Render("no friends")}
	}
	out := make([]string, 0, len(friends))
	for i, f := range friends {
		idx := fmt.Sprintf("%2d.", i+1)
		style := t.Muted
		switch f.Standing() {
		case model.YouOwe:
			style = t.Error.UnsetBold()
		case model.OwesYou:
			style = t.Success
		}
		name := ansi.Truncate(f.Name, 40, "...")
		out = append(out, fmt.Sprintf("%s %-12s %s", t.Muted.Render(idx), name, style.Render(f.Message())))
	}
	return out
}

func groupLines(friends []model.Friend) []string {
	t := ui.Current()
	buckets := map[model.Standing][]model.Friend{}
	for _, f := range friends {
		buckets[f.Standing()] = append(buckets[f.Standing()], f)
	}
	var lines []string
	for i, s := range []model.Standing{model.OwesYou, model.YouOwe, model.Even} {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, t.Accent.Render(sectionTitle(s)))
		if len(buckets[s]) == 0 {
			lines = append(lines, t.Muted.Render("(none)"))
			continue
		}
		lines = append(lines, flatLines(buckets[s])...)
	}
	return lines
}

func sectionTitle(s model.Standing) string {
	switch s {
	case model.OwesYou:
		return "Owes you"
	case model.YouOwe:
		return "You owe"
	default:
		return "Even"
	}
}
