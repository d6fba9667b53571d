package date

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// LedgerFormat is the format used to display dates in reports.
const LedgerFormat = "2006/01/02"

// RepublicEraOffset is the number of years between the Republic era and the Gregorian calendar.
const RepublicEraOffset = 1911

// Placeholder is rendered in place of a missing date.
const Placeholder = "-"

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Ledger formats the date the way reports display it (2024/05/10).
func (d Date) Ledger() string { return d.time().Format(LedgerFormat) }

// OrDash returns the ledger representation of d, or the Placeholder if d is the zero Date.
func OrDash(d Date) string {
	if d.IsZero() {
		return Placeholder
	}
	return d.Ledger()
}

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	// We use a slightly more permisive format for read, to support 2025-7-1 instead of 2025-07-01
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

var ledgerDate = regexp.MustCompile(`^(\d{3,4})/(\d+)/(\d+)$`)

// ParseLedger parses a date as written in a purchase ledger.
//
// A 3-digit year is a Republic-era year (113/5/10 is 2024-05-10), a 4-digit
// year is Gregorian (2024/5/10). Month and day may be zero padded
// (113/005/010). Days that do not exist in the calendar are rejected.
func ParseLedger(str string) (Date, error) {
	m := ledgerDate.FindStringSubmatch(str)
	if m == nil {
		return Date{}, fmt.Errorf("invalid ledger date %q want YYY/M/D or YYYY/M/D", str)
	}
	year, _ := strconv.Atoi(m[1])
	month, errM := strconv.Atoi(m[2])
	day, errD := strconv.Atoi(m[3])
	if errM != nil || errD != nil {
		return Date{}, fmt.Errorf("invalid ledger date %q: no such day", str)
	}
	if len(m[1]) == 3 {
		year += RepublicEraOffset
	}
	d := New(year, time.Month(month), day)
	if d.y != year || int(d.m) != month || d.d != day {
		return Date{}, fmt.Errorf("invalid ledger date %q: no such day", str)
	}
	return d, nil
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
