// Package roster holds the in-memory, insertion-ordered list of friends.
package roster

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/idilsaglam/eatsplit/internal/model"
)

var (
	ErrNotFound    = errors.New("friend not found")
	ErrDuplicateID = errors.New("duplicate friend id")
)

// Roster is append-only: friends are added or have their balance adjusted,
// never removed or reordered.
type Roster struct {
	friends []model.Friend
	index   map[string]int
}

// New builds a roster from friends in order. Duplicate ids are rejected.
func New(friends ...model.Friend) (*Roster, error) {
	r := &Roster{index: make(map[string]int, len(friends))}
	for _, f := range friends {
		if err := r.Add(f); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Seed returns the built-in sample friends.
func Seed() []model.Friend {
	return []model.Friend{
		{ID: "118836", Name: "Clark", Image: "https://i.pravatar.cc/48?u=118836", Balance: decimal.NewFromInt(-7)},
		{ID: "933372", Name: "Sarah", Image: "https://i.pravatar.cc/48?u=933372", Balance: decimal.NewFromInt(20)},
		{ID: "499476", Name: "Anthony", Image: "https://i.pravatar.cc/48?u=499476", Balance: decimal.Zero},
	}
}

// NewSeeded returns a roster holding the built-in sample friends.
func NewSeeded() *Roster {
	r, _ := New(Seed()...)
	return r
}

func (r *Roster) Add(f model.Friend) error {
	if f.ID == "" {
		return fmt.Errorf("add %q: empty id", f.Name)
	}
	if _, ok := r.index[f.ID]; ok {
		return fmt.Errorf("add %q: %w", f.ID, ErrDuplicateID)
	}
	r.index[f.ID] = len(r.friends)
	r.friends = append(r.friends, f)
	return nil
}

// Get looks a friend up by id.
func (r *Roster) Get(id string) (model.Friend, bool) {
	i, ok := r.index[id]
	if !ok {
		return model.Friend{}, false
	}
	return r.friends[i], true
}

// Adjust adds delta to one friend's balance and returns the updated entry.
func (r *Roster) Adjust(id string, delta decimal.Decimal) (model.Friend, error) {
	i, ok := r.index[id]
	if !ok {
		return model.Friend{}, fmt.Errorf("adjust %q: %w", id, ErrNotFound)
	}
	r.friends[i].Balance = r.friends[i].Balance.Add(delta)
	return r.friends[i], nil
}

// Friends returns a copy of the roster in insertion order.
func (r *Roster) Friends() []model.Friend {
	return append([]model.Friend(nil), r.friends...)
}

func (r *Roster) Len() int { return len(r.friends) }

// Totals sums what friends owe the user and what the user owes friends.
func (r *Roster) Totals() (owed, owing decimal.Decimal) {
	for _, f := range r.friends {
		switch f.Standing() {
		case model.OwesYou:
			owed = owed.Add(f.Balance)
		case model.YouOwe:
			owing = owing.Add(f.Balance.Abs())
		}
	}
	return
}
