// Package dateutil parses the loosely formatted date strings found in
// metadata records and option values.
package dateutil

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/jinzhu/now"
)

// Parse parses a date string in an unknown format.
func Parse(value string) (time.Time, error) {
	return dateparse.ParseStrict(value)
}

// MustParse is like Parse but panics on error.
func MustParse(value string) time.Time {
	t, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return t
}

// Day truncates a time to the beginning of its day.
func Day(t time.Time) time.Time {
	return now.With(t).BeginningOfDay()
}

// ISODate renders the day of t in ISO form, e.g. 2027-06-01.
func ISODate(t time.Time) string {
	return Day(t).Format("2006-01-02")
}
