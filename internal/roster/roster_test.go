package roster

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/idilsaglam/eatsplit/internal/model"
)

func TestSeededRoster(t *testing.T) {
	r := NewSeeded()
	if r.Len() != 3 {
		t.Fatalf("expected 3 seeded friends, got %d", r.Len())
	}
	names := []string{"Clark", "Sarah", "Anthony"}
	for i, f := range r.Friends() {
		if f.Name != names[i] {
			t.Fatalf("friend %d: got %q, want %q", i, f.Name, names[i])
		}
	}
	clark, ok := r.Get("118836")
	if !ok || !clark.Balance.Equal(decimal.NewFromInt(-7)) {
		t.Fatalf("unexpected Clark: %+v ok=%v", clark, ok)
	}
}

func TestAddRejectsDuplicates(t *testing.T) {
	r := NewSeeded()
	err := r.Add(model.Friend{ID: "118836", Name: "Other"})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if err := r.Add(model.Friend{Name: "NoID"}); err == nil {
		t.Fatalf("expected error for empty id")
	}
	if r.Len() != 3 {
		t.Fatalf("roster changed on rejected add: %d", r.Len())
	}
	if _, err := New(model.Friend{ID: "a"}, model.Friend{ID: "a"}); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("New should reject duplicates, got %v", err)
	}
}

func TestAdjustTouchesOnlyTarget(t *testing.T) {
	r := NewSeeded()
	before := r.Friends()

	got, err := r.Adjust("933372", decimal.NewFromInt(-40))
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if !got.Balance.Equal(decimal.NewFromInt(-20)) {
		t.Fatalf("Sarah balance = %s, want -20", got.Balance)
	}
	after := r.Friends()
	for i := range after {
		if after[i].ID == "933372" {
			continue
		}
		if !after[i].Balance.Equal(before[i].Balance) {
			t.Fatalf("%s changed: %s -> %s", after[i].Name, before[i].Balance, after[i].Balance)
		}
	}

	if _, err := r.Adjust("missing", decimal.NewFromInt(1)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFriendsReturnsCopy(t *testing.T) {
	r := NewSeeded()
	fs := r.Friends()
	fs[0].Balance = decimal.NewFromInt(1000)
	if f, _ := r.Get("118836"); !f.Balance.Equal(decimal.NewFromInt(-7)) {
		t.Fatalf("roster mutated through returned slice")
	}
}

func TestTotals(t *testing.T) {
	owed, owing := NewSeeded().Totals()
	if !owed.Equal(decimal.NewFromInt(20)) || !owing.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("totals owed=%s owing=%s", owed, owing)
	}
}
