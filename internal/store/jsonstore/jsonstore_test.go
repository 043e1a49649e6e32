package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "friends.json")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return p
}

func TestLoad(t *testing.T) {
	p := writeSeed(t, `[
  {"id": "1", "name": "Clark", "image": "https://i.pravatar.cc/48?u=1", "balance": -7},
  {"id": "2", "name": "Sarah", "image": "https://i.pravatar.cc/48?u=2", "balance": "20.5"}
]`)
	friends, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(friends) != 2 {
		t.Fatalf("got %d friends", len(friends))
	}
	if !friends[0].Balance.Equal(decimal.NewFromInt(-7)) || !friends[1].Balance.Equal(decimal.RequireFromString("20.5")) {
		t.Fatalf("balances: %s, %s", friends[0].Balance, friends[1].Balance)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(writeSeed(t, `{not json`)); err == nil || !strings.Contains(err.Error(), "json unmarshal") {
		t.Fatalf("expected unmarshal error, got %v", err)
	}
	if _, err := Load(writeSeed(t, `[{"name": "NoID"}]`)); err == nil {
		t.Fatalf("expected error for missing id")
	}
}
