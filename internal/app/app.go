// Package app is the single state container behind the UI: the roster,
// which form is open, the selected friend and the draft forms.
//
// View modes are mutually exclusive:
//
//	ModeIdle      no form visible
//	ModeAddFriend add-friend form open, nothing selected
//	ModeSplitBill split-bill form open for the selected friend
package app

import (
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/idilsaglam/eatsplit/internal/model"
	"github.com/idilsaglam/eatsplit/internal/roster"
	"github.com/idilsaglam/eatsplit/internal/split"
)

// DefaultImageBase is the avatar service new friends point at.
const DefaultImageBase = "https://i.pravatar.cc/48"

type Mode int

const (
	ModeIdle Mode = iota
	ModeAddFriend
	ModeSplitBill
)

func (m Mode) String() string {
	switch m {
	case ModeAddFriend:
		return "add-friend"
	case ModeSplitBill:
		return "split-bill"
	default:
		return "idle"
	}
}

// AddFriendForm is the add-friend draft.
type AddFriendForm struct {
	Name  string
	Image string
}

type App struct {
	roster   *roster.Roster
	mode     Mode
	selected string

	addForm   AddFriendForm
	splitForm split.Form

	imageBase string
	newID     func() string
	log       *slog.Logger
}

// Option configures an App.
type Option func(*App)

// WithImageBase sets the placeholder image URL of the add-friend form.
func WithImageBase(base string) Option {
	return func(a *App) {
		if base != "" {
			a.imageBase = base
		}
	}
}

// WithIDGenerator replaces uuid.NewString for new friend ids.
func WithIDGenerator(fn func() string) Option {
	return func(a *App) { a.newID = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.log = l }
}

func New(r *roster.Roster, opts ...Option) *App {
	a := &App{
		roster:    r,
		imageBase: DefaultImageBase,
		newID:     uuid.NewString,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.addForm = AddFriendForm{Image: a.imageBase}
	return a
}

func (a *App) Roster() *roster.Roster { return a.roster }
func (a *App) Mode() Mode             { return a.mode }

// Selected returns the friend the split-bill form is open for.
func (a *App) Selected() (model.Friend, bool) {
	if a.selected == "" {
		return model.Friend{}, false
	}
	return a.roster.Get(a.selected)
}

func (a *App) IsSelected(id string) bool { return id != "" && a.selected == id }

// AddForm and SplitForm expose the drafts for editing.
func (a *App) AddForm() *AddFriendForm { return &a.addForm }
func (a *App) SplitForm() *split.Form  { return &a.splitForm }

// ToggleAddFriend flips the add-friend form and always clears the selection.
func (a *App) ToggleAddFriend() {
	a.selected = ""
	a.splitForm = split.Form{}
	if a.mode == ModeAddFriend {
		a.mode = ModeIdle
		a.resetAddForm()
	} else {
		a.mode = ModeAddFriend
	}
	a.log.Debug("toggle add friend", "mode", a.mode.String())
}

// Select toggles the selection of id: selecting the current friend again
// deselects it. Any selection change closes the add-friend form and gives
// the split-bill form a fresh draft.
func (a *App) Select(id string) {
	if _, ok := a.roster.Get(id); !ok {
		return
	}
	if a.mode == ModeAddFriend {
		a.resetAddForm()
	}
	a.splitForm = split.Form{}
	if a.selected == id {
		a.selected = ""
		a.mode = ModeIdle
	} else {
		a.selected = id
		a.mode = ModeSplitBill
	}
	a.log.Debug("select friend", "friend_id", id, "mode", a.mode.String())
}

// Deselect clears the selection, hiding the split-bill form.
func (a *App) Deselect() {
	if a.selected == "" {
		return
	}
	a.Select(a.selected)
}

// SubmitAddFriend appends a friend built from the draft. It is a no-op
// returning false when the name or the image is empty.
func (a *App) SubmitAddFriend() (model.Friend, bool) {
	name := strings.TrimSpace(a.addForm.Name)
	image := strings.TrimSpace(a.addForm.Image)
	if name == "" || image == "" {
		return model.Friend{}, false
	}
	id := a.newID()
	f := model.Friend{
		ID:      id,
		Name:    name,
		Image:   withUserParam(image, id),
		Balance: decimal.Zero,
	}
	if err := a.roster.Add(f); err != nil {
		a.log.Warn("add friend rejected", "error", err)
		return model.Friend{}, false
	}
	a.mode = ModeIdle
	a.resetAddForm()
	a.log.Info("friend added", "friend_id", f.ID, "name", f.Name)
	return f, true
}

// SubmitSplit applies the split-bill draft to the selected friend and
// clears the selection. Incomplete drafts are ignored.
func (a *App) SubmitSplit() (model.Friend, bool) {
	if a.mode != ModeSplitBill || a.selected == "" {
		return model.Friend{}, false
	}
	delta, ok := a.splitForm.Delta()
	if !ok {
		return model.Friend{}, false
	}
	f, err := a.roster.Adjust(a.selected, delta)
	if err != nil {
		a.log.Warn("split rejected", "error", err)
		return model.Friend{}, false
	}
	a.selected = ""
	a.mode = ModeIdle
	a.splitForm = split.Form{}
	a.log.Info("bill split", "friend_id", f.ID, "delta", delta.String(), "balance", f.Balance.String())
	return f, true
}

// resetAddForm discards the add-friend draft.
func (a *App) resetAddForm() { a.addForm = AddFriendForm{Image: a.imageBase} }

// withUserParam appends u=<id> to the image URL's query.
func withUserParam(base, id string) string {
	u, err := url.Parse(base)
	if err != nil {
		sep := "?"
		if strings.Contains(base, "?") {
			sep = "&"
		}
		return base + sep + "u=" + url.QueryEscape(id)
	}
	q := u.Query()
	q.Set("u", id)
	u.RawQuery = q.Encode()
	return u.String()
}
