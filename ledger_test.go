package pricebook

import (
	"reflect"
	"testing"
)

func TestLedger_Append(t *testing.T) {
	l := NewLedger(
		buy("2025-01-15", "B", 1, 10),
		buy("2025-01-10", "A", 1, 10),
	)
	l.Append(buy("2025-01-10", "C", 1, 10), buy("2025-01-01", "D", 1, 10))

	var got []string
	for _, r := range l.Records() {
		got = append(got, r.Code)
	}
	want := []string{"D", "A", "C", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Ledger.Records() = %v want %v", got, want)
	}
}

func TestLedger_Filters(t *testing.T) {
	l := sampleLedger()

	testCases := []struct {
		name string
		got  []Record
		want int
	}{
		{"all", l.Collect(), 12},
		{"purchases", l.Purchases(), 9},
		{"returns", l.Returns(), 3},
		{"A001 returns", l.Collect(Record.IsReturn, func(r Record) bool { return r.Code == "A001" }), 1},
	}
	for _, tc := range testCases {
		if len(tc.got) != tc.want {
			t.Errorf("%s: got %d records want %d", tc.name, len(tc.got), tc.want)
		}
	}

	if got, want := l.Items(), []string{"A001", "B002", "C003", "R004", "Z005"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Ledger.Items() = %v want %v", got, want)
	}
}

func TestLedger_RecordsStop(t *testing.T) {
	n := 0
	for range sampleLedger().Records() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("Records() iterated %d times want 2", n)
	}
}
