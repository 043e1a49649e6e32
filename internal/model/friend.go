package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Friend is a person the user shares expenses with.
// Balance > 0 means the friend owes the user; < 0 means the user owes the friend.
type Friend struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Image   string          `json:"image"`
	Balance decimal.Decimal `json:"balance"`
}

// Standing classifies a balance by its sign.
type Standing int

const (
	Even Standing = iota
	YouOwe
	OwesYou
)

func (s Standing) String() string {
	switch s {
	case YouOwe:
		return "you owe"
	case OwesYou:
		return "owes you"
	default:
		return "even"
	}
}

func (f Friend) Standing() Standing {
	switch f.Balance.Sign() {
	case -1:
		return YouOwe
	case 1:
		return OwesYou
	default:
		return Even
	}
}

// Message is the one-line balance text shown next to a friend.
func (f Friend) Message() string {
	switch f.Standing() {
	case YouOwe:
		return fmt.Sprintf("You owe %s %s", f.Name, f.Balance.Abs().String())
	case OwesYou:
		return fmt.Sprintf("%s owes you %s", f.Name, f.Balance.String())
	default:
		return fmt.Sprintf("You and %s are even", f.Name)
	}
}

// Payer records who covered the whole bill.
type Payer string

const (
	PayerUser   Payer = "user"
	PayerFriend Payer = "friend"
)

// ParsePayer accepts "user"/"you" and "friend"; anything else is an error.
func ParsePayer(s string) (Payer, error) {
	switch s {
	case "user", "you", "me":
		return PayerUser, nil
	case "friend":
		return PayerFriend, nil
	}
	return "", fmt.Errorf("unknown payer %q", s)
}

// Other flips the payer.
func (p Payer) Other() Payer {
	if p == PayerFriend {
		return PayerUser
	}
	return PayerFriend
}
