package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date represents a calendar date
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate converts a yyyy-mm-dd formatted string into a Date struct
func ParseDate(dateStr string) (Date, error) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %v", err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid month: %v", err)
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day: %v", err)
	}

	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month must be between 1 and 12")
	}

	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("day %d is out of range for %d-%02d", day, year, month)
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// DaysInMonth returns the number of days in a given month
func DaysInMonth(year, month int) int {
	if month == 2 {
		// Check for leap year
		if (year%4 == 0 && year%100 != 0) || (year%400 == 0) {
			return 29
		}
		return 28
	}

	// Months with 30 days: April, June, September, November
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}

	// All other months have 31 days
	return 31
}

// String formats the date as yyyy-mm-dd
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Before reports whether d falls strictly before other
func (d Date) Before(other Date) bool {
	return d.midnight().Before(other.midnight())
}

func (d Date) midnight() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Today returns the current date in the server's local reference time
func Today() Date {
	now := time.Now()
	return Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

// RentalDays returns the rental duration in whole days with both the start
// and end dates included, so start == end counts as 1 day
func RentalDays(start, end Date) (int32, error) {
	s, e := start.midnight(), end.midnight()
	if e.Before(s) {
		return 0, fmt.Errorf("end date must be >= start date")
	}
	return int32(e.Sub(s).Hours()/24) + 1, nil
}

// ComputeTotalCents derives the total rental cost from a per-day price.
// Prices are handled in minor units (cents), so no rounding beyond the
// currency's standard 2-decimal precision can occur.
func ComputeTotalCents(pricePerDayCents int64, days int32) int64 {
	return pricePerDayCents * int64(days)
}
