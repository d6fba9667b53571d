package pricebook

import (
	"cmp"
	"strings"

	"github.com/etnz/pricebook/date"
)

// LatestPrice is the price paid on the most recent purchase of an item.
type LatestPrice struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	UnitPrice Money     `json:"unitPrice"`
	Date      date.Date `json:"date"`
}

// AverageCost is the quantity weighted average unit price of an item.
type AverageCost struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Average Money  `json:"averageCost"`
}

// YearlyCost is the quantity weighted average unit price of an item within a calendar year.
type YearlyCost struct {
	Year    int    `json:"year"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Average Money  `json:"averageCost"`
}

// yearItem identifies a yearly cost group.
type yearItem struct {
	year int
	code string
}

func byCode(r Record) string { return r.Code }

func byYearItem(r Record) yearItem { return yearItem{r.Date.Year(), r.Code} }

func compareYearItem(a, b yearItem) int {
	if c := cmp.Compare(a.year, b.year); c != 0 {
		return c
	}
	return strings.Compare(a.code, b.code)
}

// LatestPrices returns, for every item with at least one purchase, the last
// purchase record in date order. Returns never count as a price.
func LatestPrices(l *Ledger) []LatestPrice {
	groups := groupBy(l.Purchases(), byCode, strings.Compare)
	out := make([]LatestPrice, 0, len(groups))
	for _, g := range groups {
		last := g.last()
		out = append(out, LatestPrice{
			Code:      g.key,
			Name:      last.Name,
			UnitPrice: last.UnitPrice,
			Date:      last.Date,
		})
	}
	return out
}

// AverageCosts returns the weighted average cost of every item over its whole
// history, returns included.
func AverageCosts(l *Ledger) []AverageCost {
	groups := groupBy(l.Collect(), byCode, strings.Compare)
	out := make([]AverageCost, 0, len(groups))
	for _, g := range groups {
		out = append(out, AverageCost{
			Code:    g.key,
			Name:    g.last().Name,
			Average: WeightedAverage(g.records),
		})
	}
	return out
}

// YearlyAverageCosts returns the weighted average cost of every item for each
// calendar year it appears in, sorted by year then code.
func YearlyAverageCosts(l *Ledger) []YearlyCost {
	groups := groupBy(l.Collect(), byYearItem, compareYearItem)
	out := make([]YearlyCost, 0, len(groups))
	for _, g := range groups {
		out = append(out, YearlyCost{
			Year:    g.key.year,
			Code:    g.key.code,
			Name:    g.last().Name,
			Average: WeightedAverage(g.records),
		})
	}
	return out
}

// WeightedAverage returns Σ(unit price × quantity) / Σ(quantity).
//
// A negative quantity reduces both sums. It is zero when the quantities sum to zero.
func WeightedAverage(records []Record) Money {
	var total Money
	var quantity int
	for _, r := range records {
		total = total.Add(r.Cost())
		quantity += r.Quantity
	}
	return total.Div(quantity)
}
