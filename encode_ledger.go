package pricebook

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

// Stats counts what happened to the lines of a ledger source.
type Stats struct {
	Lines   int            // non empty lines read
	Parsed  int            // lines turned into records
	Skipped map[string]int // discarded lines by reason
}

// SkippedTotal returns the number of discarded lines.
func (s Stats) SkippedTotal() int {
	n := 0
	for _, v := range s.Skipped {
		n += v
	}
	return n
}

// Add merges the counters of o into s.
func (s *Stats) Add(o Stats) {
	s.Lines += o.Lines
	s.Parsed += o.Parsed
	for k, v := range o.Skipped {
		s.skip(k, v)
	}
}

func (s *Stats) skip(reason string, n int) {
	if s.Skipped == nil {
		s.Skipped = make(map[string]int)
	}
	s.Skipped[reason] += n
}

// Reasons returns the skip reasons in a stable order.
func (s Stats) Reasons() []string { return slices.Sorted(maps.Keys(s.Skipped)) }

// ErrLineTooLong rejects ledger lines longer than maxLineLength bytes.
var ErrLineTooLong = errors.New("line too long")

const (
	maxLineLength   = 64 * 1024
	maxRecordLength = 1024 * 1024
)

// reason maps a parse error to its sentinel text.
func reason(err error) string {
	for _, e := range []error{ErrLineTooLong, ErrTooFewFields, ErrInvalidDate, ErrNoQuantity, ErrInvalidPrice, ErrInvalidAmount} {
		if errors.Is(err, e) {
			return e.Error()
		}
	}
	return err.Error()
}

// lineDecoder accumulates the parsed records of one or more sources.
type lineDecoder struct {
	records []Record
	stats   Stats
}

// decode parses one line. Malformed lines are counted and logged, never fatal.
func (d *lineDecoder) decode(source string, index int, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	d.stats.Lines++
	rec, err := parseBounded(line)
	if err != nil {
		d.stats.skip(reason(err), 1)
		Log.WithFields(logrus.Fields{
			"source": source,
			"line":   index,
			"reason": err.Error(),
		}).Debug("skipping ledger line")
		return
	}
	d.stats.Parsed++
	d.records = append(d.records, rec)
}

func parseBounded(line string) (Record, error) {
	if len(line) > maxLineLength {
		return Record{}, fmt.Errorf("%w: %d bytes", ErrLineTooLong, len(line))
	}
	return ParseLine(line)
}

// ledger returns the decoded records in a sorted ledger.
func (d *lineDecoder) ledger() *Ledger { return NewLedger(d.records...) }

// DecodeLines reads one ledger line per text line. Lines that cannot be parsed
// are skipped and counted in Stats. Only a read failure is an error.
func DecodeLines(r io.Reader, source string) (*Ledger, Stats, error) {
	var d lineDecoder
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if line != "" {
			d.decode(source, n, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, d.stats, fmt.Errorf("error reading from %s: %w", source, err)
		}
	}
	logStats(source, d.stats)
	return d.ledger(), d.stats, nil
}

func logStats(source string, s Stats) {
	fields := logrus.Fields{"source": source, "lines": s.Lines, "parsed": s.Parsed, "skipped": s.SkippedTotal()}
	for _, k := range s.Reasons() {
		fields["skipped."+strings.ReplaceAll(k, " ", "_")] = s.Skipped[k]
	}
	Log.WithFields(fields).Info("ledger decoded")
}

// EncodeLedger writes the normalized records in JSONL format, in chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, r := range l.Records() {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal record %v: %w", r, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}

// DecodeLedger reads records previously written by EncodeLedger.
// Unlike free text lines, a normalized record that cannot be decoded is an error.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordLength)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("could not decode record on line %d: %w", n, err)
		}
		records = append(records, NewRecord(rec.Date, rec.Code, rec.Name, rec.Quantity, rec.Unit, rec.UnitPrice, rec.Amount))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return NewLedger(records...), nil
}
