package pricebook

import (
	"testing"

	"github.com/etnz/pricebook/date"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestPrices(t *testing.T) {
	got := LatestPrices(sampleLedger())

	require.Len(t, got, 4, "R004 has only returns and must not have a latest price")
	want := []struct {
		code  string
		name  string
		price int64
		on    string
	}{
		{"A001", "item A001", 60, "2024-05-11"},
		{"B002", "new name", 45, "2024-02-01"},
		{"C003", "item C003", 40, "2024-05-01"},
		{"Z005", "item Z005", 40, "2024-01-01"},
	}
	for i, w := range want {
		assert.Equal(t, w.code, got[i].Code)
		assert.Equal(t, w.name, got[i].Name)
		assert.Equal(t, w.price, got[i].UnitPrice.Rounded(), "price of %s", w.code)
		assert.Equal(t, date.MustParse(w.on), got[i].Date, "date of %s", w.code)
	}
}

func TestLatestPricesIgnoresReturns(t *testing.T) {
	before := LatestPrices(NewLedger(buy("2024-05-10", "A001", 10, 50)))
	after := LatestPrices(NewLedger(buy("2024-05-10", "A001", 10, 50), ret("2024-05-12", "A001", 5, 50)))
	assert.Equal(t, before, after)
}

func TestLatestPricesSameDayKeepsInputOrder(t *testing.T) {
	l := NewLedger(
		buy("2024-05-10", "T", 1, 50),
		buy("2024-05-10", "T", 1, 55),
		buy("2024-05-01", "T", 1, 70),
	)
	got := LatestPrices(l)
	require.Len(t, got, 1)
	assert.Equal(t, int64(55), got[0].UnitPrice.Rounded())
	assert.Equal(t, date.New(2024, 5, 10), got[0].Date)
}

// TestLatestPriceIsLastPurchaseDate checks the latest price date is the max purchase date of the item.
func TestLatestPriceIsLastPurchaseDate(t *testing.T) {
	l := sampleLedger()
	for _, p := range LatestPrices(l) {
		var last date.Date
		for _, r := range l.Records(Record.IsPurchase, func(r Record) bool { return r.Code == p.Code }) {
			if r.Date.After(last) {
				last = r.Date
			}
		}
		assert.Equal(t, last, p.Date, "latest date of %s", p.Code)
	}
}

func TestAverageCosts(t *testing.T) {
	got := AverageCosts(sampleLedger())

	want := map[string]int64{
		"A001": 57, // (500 + 600 - 250) / 15
		"B002": 42, // 1250 / 30
		"C003": 35,
		"R004": 10, // -30 / -3
		"Z005": 0,  // net quantity is zero
	}
	require.Len(t, got, len(want))
	for _, c := range got {
		assert.Equal(t, want[c.Code], c.Average.Rounded(), "average cost of %s", c.Code)
	}
	assert.Equal(t, "new name", got[1].Name, "the latest name wins")
}

func TestAverageCostsReturnsWeigh(t *testing.T) {
	purchases := []Record{
		buy("2024-05-10", "A001", 10, 50),
		buy("2024-05-11", "A001", 10, 60),
	}
	without := AverageCosts(NewLedger(purchases...))
	with := AverageCosts(NewLedger(append(purchases, ret("2024-05-12", "A001", 5, 50))...))

	assert.Equal(t, "55", without[0].Average.Plain())
	assert.True(t, with[0].Average.GreaterThan(without[0].Average), "returning cheap stock raises the average")
}

// TestAverageCostIdentity checks average × Σquantity = Σ(price × quantity).
func TestAverageCostIdentity(t *testing.T) {
	l := sampleLedger()
	tolerance := decimal.New(1, -6)
	for _, c := range AverageCosts(l) {
		var total Money
		var quantity int
		for _, r := range l.Records(func(r Record) bool { return r.Code == c.Code }) {
			total = total.Add(r.Cost())
			quantity += r.Quantity
		}
		if quantity == 0 {
			assert.True(t, c.Average.IsZero())
			continue
		}
		diff := c.Average.Mul(quantity).Sub(total).Decimal().Abs()
		assert.True(t, diff.LessThan(tolerance), "%s: average %s × %d != %s", c.Code, c.Average.Plain(), quantity, total.Plain())
	}
}

func TestYearlyAverageCosts(t *testing.T) {
	got := YearlyAverageCosts(sampleLedger())

	type row struct {
		year int
		code string
		name string
		avg  int64
	}
	want := []row{
		{2023, "B002", "item B002", 40},
		{2024, "A001", "item A001", 57},
		{2024, "B002", "new name", 42}, // 42.5 rounds half to even
		{2024, "C003", "item C003", 35},
		{2024, "R004", "item R004", 10},
		{2024, "Z005", "item Z005", 0},
	}
	var rows []row
	for _, c := range got {
		rows = append(rows, row{c.Year, c.Code, c.Name, c.Average.Rounded()})
	}
	assert.Equal(t, want, rows)
	assert.Equal(t, "42.5", got[2].Average.Plain(), "unrounded value is kept")
}

func TestAggregatesOnEmptyLedger(t *testing.T) {
	l := NewLedger()
	assert.Empty(t, LatestPrices(l))
	assert.Empty(t, AverageCosts(l))
	assert.Empty(t, YearlyAverageCosts(l))
}
