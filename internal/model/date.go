package model

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Date is a calendar date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// DateFromGotime returns the date of the given time in its location.
func DateFromGotime(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Prev returns the previous date.
func (d Date) Prev() Date {
	return DateFromGotime(d.ToGotime().AddDate(0, 0, -1))
}

// Next returns the following date.
func (d Date) Next() Date {
	return DateFromGotime(d.ToGotime().AddDate(0, 0, 1))
}

// ToString formats the date as YYYY-MM-DD.
func (d Date) ToString() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) String() string { return d.ToString() }

// Valid reports whether the date exists, e.g., 2021-02-29 does not.
func (d Date) Valid() bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	return DateFromGotime(d.ToGotime()) == d
}

// ToWeekday returns the weekday of the date.
func (d Date) ToWeekday() time.Weekday {
	return d.ToGotime().Weekday()
}

// ToGotime returns midnight of the date in the local timezone.
func (d Date) ToGotime() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Local)
}

var dateRegex = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// FromString parses a date in the format YYYY-MM-DD.
func FromString(s string) (Date, error) {
	match := dateRegex.FindStringSubmatch(s)
	if match == nil {
		return Date{}, fmt.Errorf("'%s' does not match YYYY-MM-DD", s)
	}
	y, _ := strconv.Atoi(match[1])
	m, _ := strconv.Atoi(match[2])
	dd, _ := strconv.Atoi(match[3])
	d := Date{Year: y, Month: m, Day: dd}
	if !d.Valid() {
		return Date{}, fmt.Errorf("'%s' is not a valid date", s)
	}
	return d, nil
}
