package pricebook

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
)

// utf8BOM lets spreadsheet apps and chat clients detect the CSV encoding.
const utf8BOM = "\ufeff"

// EncodeCSV writes a table as UTF-8 CSV with a byte order mark, header first.
func EncodeCSV(w io.Writer, t Table) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("could not write %s header: %w", t.Name, err)
	}
	if err := cw.WriteAll(t.Strings()); err != nil {
		return fmt.Errorf("could not write %s rows: %w", t.Name, err)
	}
	return nil
}

// EncodeLatestCSV writes the latest price table, the one price lookups are served from.
func EncodeLatestCSV(w io.Writer, r *Report) error {
	return EncodeCSV(w, r.LatestTable())
}

// namedRows is one table of the JSON export.
type namedRows struct {
	name string
	rows any
}

// EncodeJSON writes the report as a single JSON object keyed by table name,
// tables in publication order.
func EncodeJSON(w io.Writer, r *Report) error {
	tables := []namedRows{
		{SheetRecords, orEmpty(r.Records)},
		{SheetReturns, orEmpty(r.Returns)},
		{SheetLatest, orEmpty(r.Latest)},
		{SheetAverage, orEmpty(r.Average)},
		{SheetYearly, orEmpty(r.Yearly)},
		{SheetIncrease, orEmpty(r.Increases)},
		{SheetConsecutive, orEmpty(r.Consecutive)},
	}
	var b bytes.Buffer
	b.WriteByte('{')
	for i, t := range tables {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(t.name)
		if err != nil {
			return err
		}
		rows, err := json.Marshal(t.rows)
		if err != nil {
			return fmt.Errorf("could not encode %s: %w", t.name, err)
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(rows)
	}
	b.WriteString("}\n")
	_, err := w.Write(b.Bytes())
	return err
}

// orEmpty makes nil tables encode as [] instead of null.
func orEmpty[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
