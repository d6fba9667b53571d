// Package renderer turns pricebook reports into markdown, for display in a terminal.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/pricebook"
)

// TableMarkdown renders a report table as a markdown table under a level 2
// title. An empty table renders as a single line saying so.
func TableMarkdown(t pricebook.Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", t.Name)
	if len(t.Rows) == 0 {
		fmt.Fprintln(&b, "_No entries._")
		return b.String()
	}
	writeTable(&b, t)
	return b.String()
}

func writeTable(w io.Writer, t pricebook.Table) {
	fmt.Fprintf(w, "| %s |\n", strings.Join(t.Header, " | "))
	align := make([]string, len(t.Header))
	for i := range t.Header {
		align[i] = ":---"
		if len(t.Rows) > 0 && i < len(t.Rows[0]) && numeric(t.Rows[0][i]) {
			align[i] = "---:"
		}
	}
	fmt.Fprintf(w, "|%s|\n", strings.Join(align, "|"))
	for _, row := range t.Strings() {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = escape(c)
		}
		fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
	}
}

// AlertsMarkdown renders both price alert tables. Tables without entries are left out.
func AlertsMarkdown(r *pricebook.Report, consecutiveOnly bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Price Alerts\n\n")
	printed := false
	if !consecutiveOnly {
		ConditionalBlock(&b, func(w io.Writer) bool {
			fmt.Fprint(w, TableMarkdown(r.IncreaseTable())+"\n")
			return len(r.Increases) > 0
		})
		printed = len(r.Increases) > 0
	}
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, TableMarkdown(r.ConsecutiveTable())+"\n")
		return len(r.Consecutive) > 0
	})
	printed = printed || len(r.Consecutive) > 0
	if !printed {
		fmt.Fprintln(&b, "No price increase.")
	}
	return b.String()
}

// SummaryMarkdown renders what a build read and produced.
func SummaryMarkdown(r *pricebook.Report, s pricebook.Stats, outputs []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Price Book\n\n")
	fmt.Fprintln(&b, "| Input | Count |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Lines read | %d |\n", s.Lines)
	fmt.Fprintf(&b, "| Records | %d |\n", s.Parsed)
	for _, k := range s.Reasons() {
		fmt.Fprintf(&b, "| Skipped: %s | %d |\n", k, s.Skipped[k])
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "| Table | Rows |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, t := range r.Tables() {
		fmt.Fprintf(&b, "| %s | %d |\n", t.Name, len(t.Rows))
	}

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Outputs\n\n")
		for _, o := range outputs {
			fmt.Fprintf(w, "* %s\n", o)
		}
		return len(outputs) > 0
	})
	return b.String()
}
