package pricebook

import (
	"fmt"

	"github.com/etnz/pricebook/date"
)

// Table names, as the downstream lookup tools read them.
const (
	SheetRecords     = "整理後明細"
	SheetReturns     = "退貨明細"
	SheetLatest      = "最新進價"
	SheetAverage     = "平均進貨成本"
	SheetYearly      = "年度進貨成本"
	SheetIncrease    = "漲價提醒"
	SheetConsecutive = "連續漲價提醒"
)

// Report holds every table derived from a ledger.
//
// A Report is a pure function of the ledger records: building it twice from
// the same ledger gives identical tables.
type Report struct {
	Records     []Record
	Returns     []Record
	Latest      []LatestPrice
	Average     []AverageCost
	Yearly      []YearlyCost
	Increases   []PriceIncrease
	Consecutive []ConsecutiveIncrease
}

// NewReport derives all tables from the ledger.
func NewReport(l *Ledger) *Report {
	return &Report{
		Records:     l.Collect(),
		Returns:     l.Returns(),
		Latest:      LatestPrices(l),
		Average:     AverageCosts(l),
		Yearly:      YearlyAverageCosts(l),
		Increases:   PriceIncreases(l),
		Consecutive: ConsecutiveIncreases(l),
	}
}

// Table is a named grid of cells. Cells are strings, ints or float64.
type Table struct {
	Name   string
	Header []string
	Rows   [][]any
}

// Strings returns the rows with every cell formatted as a string.
func (t Table) Strings() [][]string {
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			out[i][j] = fmt.Sprint(cell)
		}
	}
	return out
}

var recordHeader = []string{"日期", "年度", "品項編號", "品項名稱", "數量", "單位", "單價", "金額"}

// Tables returns the report tables in their publication order.
func (r *Report) Tables() []Table {
	return []Table{
		r.RecordsTable(),
		r.ReturnsTable(),
		r.LatestTable(),
		r.AverageTable(),
		r.YearlyTable(),
		r.IncreaseTable(),
		r.ConsecutiveTable(),
	}
}

// Table returns the table with that name.
func (r *Report) Table(name string) (Table, bool) {
	for _, t := range r.Tables() {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// RecordsTable lists every record, prices formatted as currency.
func (r *Report) RecordsTable() Table {
	t := Table{Name: SheetRecords, Header: recordHeader}
	for _, rec := range r.Records {
		t.Rows = append(t.Rows, []any{
			date.OrDash(rec.Date), rec.Date.Year(), rec.Code, rec.Name, rec.Quantity, rec.Unit,
			rec.UnitPrice.String(), rec.Amount.String(),
		})
	}
	return t
}

// ReturnsTable lists the returned records with plain numbers.
func (r *Report) ReturnsTable() Table {
	t := Table{Name: SheetReturns, Header: recordHeader}
	for _, rec := range r.Returns {
		t.Rows = append(t.Rows, []any{
			date.OrDash(rec.Date), rec.Date.Year(), rec.Code, rec.Name, rec.Quantity, rec.Unit,
			rec.UnitPrice.Decimal().InexactFloat64(), rec.Amount.Decimal().InexactFloat64(),
		})
	}
	return t
}

// LatestTable lists the latest purchase price of every item.
func (r *Report) LatestTable() Table {
	t := Table{Name: SheetLatest, Header: []string{"品項編號", "品項名稱", "最新進價", "最新進貨日"}}
	for _, p := range r.Latest {
		t.Rows = append(t.Rows, []any{p.Code, p.Name, p.UnitPrice.Decimal().InexactFloat64(), date.OrDash(p.Date)})
	}
	return t
}

// AverageTable lists the rounded average cost of every item.
func (r *Report) AverageTable() Table {
	t := Table{Name: SheetAverage, Header: []string{"品項編號", "品項名稱", "平均進貨成本"}}
	for _, c := range r.Average {
		t.Rows = append(t.Rows, []any{c.Code, c.Name, c.Average.Rounded()})
	}
	return t
}

// YearlyTable lists the rounded average cost of every item per year.
func (r *Report) YearlyTable() Table {
	t := Table{Name: SheetYearly, Header: []string{"年度", "品項編號", "品項名稱", "年度進貨成本"}}
	for _, c := range r.Yearly {
		t.Rows = append(t.Rows, []any{c.Year, c.Code, c.Name, c.Average.Rounded()})
	}
	return t
}

// IncreaseTable lists the single step price increases.
func (r *Report) IncreaseTable() Table {
	t := Table{Name: SheetIncrease, Header: []string{"品項編號", "品項名稱", "前次進價", "前次日期", "最新進價", "最新日期"}}
	for _, e := range r.Increases {
		t.Rows = append(t.Rows, []any{
			e.Code, e.Name,
			e.Prior.Price.TruncatedString(), date.OrDash(e.Prior.Date),
			e.Latest.Price.TruncatedString(), date.OrDash(e.Latest.Date),
		})
	}
	return t
}

// ConsecutiveTable lists the consecutive price increases.
func (r *Report) ConsecutiveTable() Table {
	t := Table{Name: SheetConsecutive, Header: []string{
		"品項編號", "品項名稱", "第一次漲價", "第一次日期", "第二次漲價", "第二次日期", "最新進價", "最新日期",
	}}
	for _, e := range r.Consecutive {
		t.Rows = append(t.Rows, []any{
			e.Code, e.Name,
			e.First.Price.TruncatedString(), date.OrDash(e.First.Date),
			e.Second.Price.TruncatedString(), date.OrDash(e.Second.Date),
			e.Latest.Price.TruncatedString(), date.OrDash(e.Latest.Date),
		})
	}
	return t
}
