package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFriendMessage(t *testing.T) {
	cases := []struct {
		balance  int64
		standing Standing
		want     string
	}{
		{-7, YouOwe, "You owe Clark 7"},
		{20, OwesYou, "Clark owes you 20"},
		{0, Even, "You and Clark are even"},
	}
	for _, tc := range cases {
		f := Friend{ID: "1", Name: "Clark", Balance: decimal.NewFromInt(tc.balance)}
		if got := f.Standing(); got != tc.standing {
			t.Fatalf("balance %d: standing %v, want %v", tc.balance, got, tc.standing)
		}
		if got := f.Message(); got != tc.want {
			t.Fatalf("balance %d: message %q, want %q", tc.balance, got, tc.want)
		}
	}
}

func TestFriendMessageDecimal(t *testing.T) {
	f := Friend{Name: "Sarah", Balance: decimal.RequireFromString("-12.5")}
	if got := f.Message(); got != "You owe Sarah 12.5" {
		t.Fatalf("got %q", got)
	}
}

func TestParsePayer(t *testing.T) {
	for in, want := range map[string]Payer{"user": PayerUser, "you": PayerUser, "friend": PayerFriend} {
		got, err := ParsePayer(in)
		if err != nil || got != want {
			t.Fatalf("%q: got %q err=%v", in, got, err)
		}
	}
	if _, err := ParsePayer("bank"); err == nil {
		t.Fatalf("expected error for unknown payer")
	}
	if PayerUser.Other() != PayerFriend || PayerFriend.Other() != PayerUser {
		t.Fatalf("Other should flip the payer")
	}
}
