package pricebook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// ledgerFormatter formats the signed integer, the currency sign is added in front
// of it: "$500", "$-250".
var ledgerFormatter = money.NewFormatter(0, "", "", "", "1")

func ledgerFormat(v int64) string { return "$" + ledgerFormatter.Format(v) }

// Money represents a monetary value. Ledgers use a single currency.
type Money struct {
	value decimal.Decimal
}

// M returns the Money for value.
func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// Decimal returns the exact value.
func (m Money) Decimal() decimal.Decimal { return m.value }

// Rounded returns the value rounded to the nearest integer, halves to even.
func (m Money) Rounded() int64 { return m.value.RoundBank(0).IntPart() }

// Truncated returns the integer part of the value.
func (m Money) Truncated() int64 { return m.value.IntPart() }

// String returns the rounded value formatted with the ledger currency sign.
func (m Money) String() string { return ledgerFormat(m.Rounded()) }

// TruncatedString is like String but drops the fractional part instead of rounding it.
func (m Money) TruncatedString() string { return ledgerFormat(m.Truncated()) }

// Plain returns the exact value without currency sign.
func (m Money) Plain() string { return m.value.String() }

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money               { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money               { return Money{value: m.value.Abs()} }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q int) Money          { return Money{value: m.value.Mul(newDecimal(q))} }

// Div divides m by a quantity. Dividing by zero returns zero.
func (m Money) Div(q int) Money {
	if q == 0 {
		return Money{}
	}
	return Money{value: m.value.Div(newDecimal(q))}
}

// MarshalJSON persists the exact value as a json number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON reads a json number.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}
