// Package dateutils decodes the compact date formats used by MT940 statements.
package dateutils

import (
	"regexp"
	"strconv"
	"time"

	"fjacquet/mt940/internal/models"
	"fjacquet/mt940/internal/parsererror"
)

var (
	dateRegex      = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})$`)
	shortDateRegex = regexp.MustCompile(`^(\d{2})(\d{2})$`)
)

// ParseMT940Date decodes a "YYMMDD" date. Statements only carry two year digits, so every
// year is taken to be 20YY.
func ParseMT940Date(s string) (models.Date, error) {
	m := dateRegex.FindStringSubmatch(s)
	if m == nil {
		return models.Date{}, &parsererror.DateError{Input: s}
	}
	return build(s, "20"+m[1], m[2], m[3])
}

// ParseMT940ShortDate decodes a "MMDD" date, borrowing the year from a related full date.
// Entries booked across a year boundary get the wrong year.
func ParseMT940ShortDate(year int, s string) (models.Date, error) {
	m := shortDateRegex.FindStringSubmatch(s)
	if m == nil {
		return models.Date{}, &parsererror.DateError{Input: s}
	}
	return build(s, strconv.Itoa(year), m[1], m[2])
}

// build validates the calendar date. time.Date normalizes overflowing values, so the
// result is compared against its inputs to detect days such as February 30.
func build(input, yearStr, monthStr, dayStr string) (models.Date, error) {
	year, _ := strconv.Atoi(yearStr)
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)

	d := models.NewDate(year, time.Month(month), day)
	if month < 1 || month > 12 || d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return models.Date{}, &parsererror.DateError{Input: input, Year: yearStr, Month: monthStr, Day: dayStr}
	}
	return d, nil
}
