package pricebook

import (
	"iter"
	"slices"
	"sort"
)

// Ledger represents a list of purchase records.
//
// In a Ledger records are always in chronological order, records on the same
// day keep the order they were appended in.
type Ledger struct {
	records []Record
}

// NewLedger creates an ledger with the given records.
func NewLedger(records ...Record) *Ledger {
	l := &Ledger{records: make([]Record, 0, len(records))}
	l.Append(records...)
	return l
}

// Append appends records to this ledger and maintains the chronological order.
func (l *Ledger) Append(records ...Record) {
	l.records = append(l.records, records...)
	l.stableSort()
}

// Len returns the number of records.
func (l *Ledger) Len() int { return len(l.records) }

// Records returns an iterator that yields each record accepted by all filters, in chronological order.
func (l *Ledger) Records(filters ...func(Record) bool) iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, r := range l.records {
			accept := true
			for _, filter := range filters {
				if !filter(r) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, r) {
				return
			}
		}
	}
}

// Collect returns a copy of the records accepted by all filters.
func (l *Ledger) Collect(filters ...func(Record) bool) []Record {
	var out []Record
	for _, r := range l.Records(filters...) {
		out = append(out, r)
	}
	return out
}

// Purchases returns the purchase-only records.
func (l *Ledger) Purchases() []Record { return l.Collect(Record.IsPurchase) }

// Returns returns the records with a negative quantity.
func (l *Ledger) Returns() []Record { return l.Collect(Record.IsReturn) }

// Items returns the sorted list of item codes present in the ledger.
func (l *Ledger) Items() []string {
	codes := make(map[string]struct{})
	for _, r := range l.records {
		codes[r.Code] = struct{}{}
	}
	out := make([]string, 0, len(codes))
	for c := range codes {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// stableSort sorts the ledger by record date. The sort is stable, meaning
// records on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.records, func(i, j int) bool {
		return l.records[i].Date.Before(l.records[j].Date)
	})
}

// group is the ordered set of records sharing a key.
type group[K comparable] struct {
	key     K
	records []Record
}

// last returns the most recent record of the group.
func (g group[K]) last() Record { return g.records[len(g.records)-1] }

// groupBy splits chronologically ordered records by key. Records keep their
// order within a group, groups are sorted with cmp.
func groupBy[K comparable](records []Record, key func(Record) K, cmp func(a, b K) int) []group[K] {
	index := make(map[K]int)
	var groups []group[K]
	for _, r := range records {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, group[K]{key: k})
		}
		groups[i].records = append(groups[i].records, r)
	}
	slices.SortFunc(groups, func(a, b group[K]) int { return cmp(a.key, b.key) })
	return groups
}
