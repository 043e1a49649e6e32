// Package split holds the draft state of a bill split with one friend.
package split

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/idilsaglam/eatsplit/internal/model"
)

// Form is the split-bill draft. The zero value is an empty form with the
// user recorded as payer.
type Form struct {
	bill decimal.NullDecimal
	paid decimal.NullDecimal

	billText string
	paidText string

	payer model.Payer
}

// Plain decimals only, no exponent notation.
var amountRegexp = regexp.MustCompile(`^[+-]?(\d+([.,]\d*)?|[.,]\d+)$`)

func parse(raw string) (decimal.NullDecimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.NullDecimal{}, true
	}
	if !amountRegexp.MatchString(raw) {
		return decimal.NullDecimal{}, false
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		return decimal.NullDecimal{}, false
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, true
}

// SetBill stores the bill total. Non-numeric input is rejected and the
// previous value kept. An empty string clears the field.
func (f *Form) SetBill(raw string) bool {
	v, ok := parse(raw)
	if !ok {
		return false
	}
	f.bill, f.billText = v, strings.TrimSpace(raw)
	return true
}

// SetPaid stores the user's part. Entries above the current bill (an unset
// bill counts as zero) or non-numeric entries are rejected.
func (f *Form) SetPaid(raw string) bool {
	v, ok := parse(raw)
	if !ok {
		return false
	}
	if v.Valid && v.Decimal.GreaterThan(f.bill.Decimal) {
		return false
	}
	f.paid, f.paidText = v, strings.TrimSpace(raw)
	return true
}

func (f *Form) SetPayer(p model.Payer) { f.payer = p }

func (f *Form) TogglePayer() { f.payer = f.Payer().Other() }

func (f Form) Payer() model.Payer {
	if f.payer == "" {
		return model.PayerUser
	}
	return f.payer
}

// BillText and PaidText return the accepted raw input.
func (f Form) BillText() string { return f.billText }
func (f Form) PaidText() string { return f.paidText }

func (f Form) Bill() (decimal.Decimal, bool) { return f.bill.Decimal, f.bill.Valid }
func (f Form) Paid() (decimal.Decimal, bool) { return f.paid.Decimal, f.paid.Valid }

// FriendShare is bill minus what the user paid; unset while the bill is unset.
func (f Form) FriendShare() (decimal.Decimal, bool) {
	if !f.bill.Valid {
		return decimal.Decimal{}, false
	}
	return f.bill.Decimal.Sub(f.paid.Decimal), true
}

// Delta is the change to apply to the friend's balance. ok is false when
// the bill or the paid amount is unset or zero.
func (f Form) Delta() (delta decimal.Decimal, ok bool) {
	if !f.bill.Valid || f.bill.Decimal.IsZero() || !f.paid.Valid || f.paid.Decimal.IsZero() {
		return decimal.Decimal{}, false
	}
	if f.Payer() == model.PayerFriend {
		return f.paid.Decimal.Neg(), true
	}
	share, _ := f.FriendShare()
	return share, true
}
