package pricebook

import (
	"strings"

	"github.com/etnz/pricebook/date"
)

// PricePoint is the unit price paid on a given day.
type PricePoint struct {
	Price Money     `json:"price"`
	Date  date.Date `json:"date"`
}

func pointOf(r Record) PricePoint { return PricePoint{Price: r.UnitPrice, Date: r.Date} }

// PriceIncrease reports that the latest purchase of an item was paid more than the previous one.
type PriceIncrease struct {
	Code   string     `json:"code"`
	Name   string     `json:"name"`
	Prior  PricePoint `json:"prior"`
	Latest PricePoint `json:"latest"`
}

// ConsecutiveIncrease reports that the last three purchases of an item were
// each paid more than the one before, in chronological order.
type ConsecutiveIncrease struct {
	Code   string     `json:"code"`
	Name   string     `json:"name"`
	First  PricePoint `json:"first"`
	Second PricePoint `json:"second"`
	Latest PricePoint `json:"latest"`
}

// PriceIncreases compares the two most recent purchases of every item and
// reports those whose price went up. Equal or lower prices report nothing.
func PriceIncreases(l *Ledger) []PriceIncrease {
	var out []PriceIncrease
	for _, g := range groupBy(l.Purchases(), byCode, strings.Compare) {
		tail, ok := window(g.records, 2)
		if !ok || !rising(tail) {
			continue
		}
		out = append(out, PriceIncrease{
			Code:   g.key,
			Name:   g.last().Name,
			Prior:  pointOf(tail[0]),
			Latest: pointOf(tail[1]),
		})
	}
	return out
}

// ConsecutiveIncreases reports items whose three most recent purchases form a
// strictly increasing price chain. It is independent of PriceIncreases, an
// item usually appears in both.
func ConsecutiveIncreases(l *Ledger) []ConsecutiveIncrease {
	var out []ConsecutiveIncrease
	for _, g := range groupBy(l.Purchases(), byCode, strings.Compare) {
		tail, ok := window(g.records, 3)
		if !ok || !rising(tail) {
			continue
		}
		out = append(out, ConsecutiveIncrease{
			Code:   g.key,
			Name:   g.last().Name,
			First:  pointOf(tail[0]),
			Second: pointOf(tail[1]),
			Latest: pointOf(tail[2]),
		})
	}
	return out
}

// window returns the n most recent records, or false if there are fewer.
func window(records []Record, n int) ([]Record, bool) {
	if len(records) < n {
		return nil, false
	}
	return records[len(records)-n:], true
}

// rising reports whether every unit price is strictly greater than the previous one.
func rising(records []Record) bool {
	for i := 1; i < len(records); i++ {
		if !records[i].UnitPrice.GreaterThan(records[i-1].UnitPrice) {
			return false
		}
	}
	return true
}
