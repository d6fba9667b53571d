package pricebook

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// IsRawSheet reports whether a sheet holds ledger lines: "raw" or "raw_<anything>", case insensitive.
func IsRawSheet(name string) bool {
	n := strings.ToLower(name)
	return n == "raw" || strings.HasPrefix(n, "raw_")
}

// DecodeWorkbook reads the ledger lines from the first column of every raw
// sheet of a workbook, in workbook order. Other sheets are ignored. A workbook
// without raw sheet gives an empty ledger.
func DecodeWorkbook(r io.Reader) (*Ledger, Stats, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("could not open workbook: %w", err)
	}
	defer f.Close()
	return decodeWorkbook(f)
}

func decodeWorkbook(f *excelize.File) (*Ledger, Stats, error) {
	var d lineDecoder
	found := false
	for _, sheet := range f.GetSheetList() {
		if !IsRawSheet(sheet) {
			continue
		}
		found = true
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, d.stats, fmt.Errorf("could not read sheet %q: %w", sheet, err)
		}
		var sheetDecoder lineDecoder
		for i, row := range rows {
			if len(row) == 0 {
				continue
			}
			sheetDecoder.decode(sheet, i+1, row[0])
		}
		logStats(sheet, sheetDecoder.stats)
		d.records = append(d.records, sheetDecoder.records...)
		d.stats.Add(sheetDecoder.stats)
	}
	if !found {
		Log.Warn("no raw sheet found in workbook")
	}
	return d.ledger(), d.stats, nil
}

// OpenWorkbook reads the ledger lines of the workbook at path.
func OpenWorkbook(path string) (*Ledger, Stats, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("could not open workbook %q: %w", path, err)
	}
	defer f.Close()
	return decodeWorkbook(f)
}

// Open loads a ledger from a file: a workbook (.xlsx, .xlsm), normalized
// records (.jsonl) or free text, one ledger line per line.
func Open(path string) (*Ledger, Stats, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" || ext == ".xlsm" {
		if _, err := os.Stat(path); err != nil {
			return nil, Stats{}, err
		}
		return OpenWorkbook(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, err
	}
	defer f.Close()

	switch ext {
	case ".jsonl":
		l, err := DecodeLedger(f)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("could not decode %q: %w", path, err)
		}
		return l, Stats{Lines: l.Len(), Parsed: l.Len()}, nil
	default:
		return DecodeLines(f, filepath.Base(path))
	}
}

// EncodeWorkbook writes one sheet per report table: a header row, then the
// data rows. Column widths are fitted to their content.
func EncodeWorkbook(w io.Writer, r *Report) error {
	f, err := newWorkbook(r)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("could not write workbook: %w", err)
	}
	return nil
}

// SaveWorkbook writes the report workbook to path. Concurrent writers to the same path are not coordinated.
func SaveWorkbook(path string, r *Report) error {
	f, err := newWorkbook(r)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("could not save workbook %q: %w", path, err)
	}
	return nil
}

func newWorkbook(r *Report) (*excelize.File, error) {
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)
	for i, t := range r.Tables() {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, t.Name); err != nil {
				return nil, fmt.Errorf("could not name sheet %q: %w", t.Name, err)
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			return nil, fmt.Errorf("could not create sheet %q: %w", t.Name, err)
		}
		if err := writeTable(f, t); err != nil {
			return nil, fmt.Errorf("could not write sheet %q: %w", t.Name, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeTable(f *excelize.File, t Table) error {
	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(t.Name, "A1", &header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(t.Name, cell, &row); err != nil {
			return err
		}
	}
	return fitColumns(f, t)
}

// minColumnWidth is the narrowest fitted column.
const minColumnWidth = 10

// fitColumns sizes every column to its widest cell plus a margin, counting
// CJK ideographs as two characters.
func fitColumns(f *excelize.File, t Table) error {
	for col, cells := range t.columns() {
		width := minColumnWidth
		for _, c := range cells {
			if c == "" {
				continue
			}
			width = max(width, displayWidth(c)+2)
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(t.Name, name, name, float64(width)); err != nil {
			return err
		}
	}
	return nil
}

// columns returns the table cells, header included, column by column.
func (t Table) columns() [][]string {
	cols := make([][]string, len(t.Header))
	for i, h := range t.Header {
		cols[i] = append(cols[i], h)
	}
	for _, row := range t.Strings() {
		for i, c := range row {
			if i < len(cols) {
				cols[i] = append(cols[i], c)
			}
		}
	}
	return cols
}

// displayWidth counts CJK ideographs as two columns and every other rune as one.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		if r >= '\u4e00' && r <= '\u9fff' {
			n += 2
		} else {
			n++
		}
	}
	return n
}
