package booking

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// HourToNumber converts "HH:MM" to fractional hours: "14:30" is 14.5.
// Only whole and half hours are accepted.
func HourToNumber(hour string) (float64, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(hour), ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHour, hour)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 24 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHour, hour)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || (m != 0 && m != 30) || (h == 24 && m != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHour, hour)
	}
	return float64(h) + float64(m)/60, nil
}

// NumberToHour is the inverse of HourToNumber. 24 wraps to "00:00".
func NumberToHour(n float64) string {
	h := int(math.Floor(n))
	m := int(math.Round((n - float64(h)) * 60))
	return fmt.Sprintf("%02d:%02d", h%24, m)
}

// slot turns fractional hours into the integer half-hour index used as the
// occupancy key, so lookups are exact matches.
func slot(hour float64) int {
	return int(math.Round(hour * 2))
}

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Window returns the range [from, from+days] truncated to whole days.
func Window(from time.Time, days int) DateRange {
	start := day(from)
	return DateRange{Start: start, End: start.AddDate(0, 0, days)}
}

func ParseRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{Start: s, End: e}, nil
}

// Dates lists every day of the range, both ends included. An inverted range
// yields nothing.
func (r DateRange) Dates() []string {
	var dates []string
	for d := day(r.Start); !d.After(day(r.End)); d = d.AddDate(0, 0, 1) {
		dates = append(dates, FormatDate(d))
	}
	return dates
}

// Contains reports whether date falls within the range.
func (r DateRange) Contains(date string) bool {
	d, err := ParseDate(date)
	if err != nil {
		return false
	}
	return !d.Before(day(r.Start)) && !d.After(day(r.End))
}

func (r DateRange) StartDate() string {
	return FormatDate(r.Start)
}

func (r DateRange) EndDate() string {
	return FormatDate(r.End)
}

func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
