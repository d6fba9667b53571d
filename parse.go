package pricebook

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/etnz/pricebook/date"
	"github.com/shopspring/decimal"
)

// Reasons for discarding a ledger line.
var (
	ErrTooFewFields  = errors.New("too few fields")
	ErrInvalidDate   = errors.New("invalid date")
	ErrNoQuantity    = errors.New("no quantity")
	ErrInvalidPrice  = errors.New("invalid unit price")
	ErrInvalidAmount = errors.New("invalid amount")
)

// minFields is date, code, name, quantity+unit, unit price and amount.
const minFields = 6

var (
	quantityPattern = regexp.MustCompile(`-?\d+`)
	unitPattern     = regexp.MustCompile(`[\x{4e00}-\x{9fff}]+`)
)

// ParseLine parses one free-text ledger line:
//
//	<date> <code> <name...> <quantity><unit> <unit price> <amount>
//
// The name may span several tokens, they are concatenated without separator.
// The amount sign is not read from the line, it follows the quantity sign.
func ParseLine(line string) (Record, error) {
	p := strings.Fields(line)
	n := len(p)
	if n < minFields {
		return Record{}, fmt.Errorf("%w: got %d want at least %d", ErrTooFewFields, n, minFields)
	}

	on, err := date.ParseLedger(p[0])
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	quantity, unit, ok := splitQuantityUnit(p[n-3])
	if !ok {
		return Record{}, fmt.Errorf("%w in %q", ErrNoQuantity, p[n-3])
	}

	price, err := parseMoney(p[n-2])
	if err != nil || price.IsNegative() {
		return Record{}, fmt.Errorf("%w %q", ErrInvalidPrice, p[n-2])
	}

	amount, err := parseMoney(p[n-1])
	if err != nil {
		return Record{}, fmt.Errorf("%w %q", ErrInvalidAmount, p[n-1])
	}

	name := strings.Join(p[2:n-3], "")
	return NewRecord(on, p[1], name, quantity, unit, price, amount), nil
}

// splitQuantityUnit extracts the first signed integer and the first run of
// CJK ideographs of a token like "10支" or "-5盒".
func splitQuantityUnit(token string) (quantity int, unit string, ok bool) {
	q := quantityPattern.FindString(token)
	if q == "" {
		return 0, "", false
	}
	quantity, err := strconv.Atoi(q)
	if err != nil {
		return 0, "", false
	}
	return quantity, unitPattern.FindString(token), true
}

// parseMoney reads a decimal, tolerating a leading currency sign and thousands separators.
func parseMoney(token string) (Money, error) {
	s := strings.ReplaceAll(token, ",", "")
	s = strings.Replace(s, "$", "", 1)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return M(d), nil
}
