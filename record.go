package pricebook

import (
	"fmt"

	"github.com/etnz/pricebook/date"
)

// Record is one normalized purchase ledger line.
//
// A negative Quantity is a return of previously purchased stock. UnitPrice is
// never negative, even for returns, and Amount always carries the sign of
// Quantity.
type Record struct {
	Date      date.Date `json:"date"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Unit      string    `json:"unit,omitempty"`
	UnitPrice Money     `json:"unitPrice"`
	Amount    Money     `json:"amount"`
}

// NewRecord creates a record, deriving the amount sign from quantity.
func NewRecord(on date.Date, code, name string, quantity int, unit string, unitPrice, amount Money) Record {
	return Record{
		Date:      on,
		Code:      code,
		Name:      name,
		Quantity:  quantity,
		Unit:      unit,
		UnitPrice: unitPrice,
		Amount:    signed(amount, quantity),
	}
}

// IsPurchase reports whether r brings stock in.
func (r Record) IsPurchase() bool { return r.Quantity > 0 }

// IsReturn reports whether r gives stock back.
func (r Record) IsReturn() bool { return r.Quantity < 0 }

// Cost returns unit price times signed quantity, the weight of r in an average cost.
func (r Record) Cost() Money { return r.UnitPrice.Mul(r.Quantity) }

func (r Record) String() string {
	return fmt.Sprintf("%s %s %s %d%s %s %s", r.Date, r.Code, r.Name, r.Quantity, r.Unit, r.UnitPrice, r.Amount)
}

// signed returns |m| with the sign of quantity, zero for a zero quantity.
func signed(m Money, quantity int) Money {
	switch {
	case quantity > 0:
		return m.Abs()
	case quantity < 0:
		return m.Abs().Neg()
	default:
		return Money{}
	}
}
