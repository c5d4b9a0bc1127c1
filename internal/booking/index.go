// Package booking tracks which tables are taken at each half hour and runs
// the table reservation form on top of that.
package booking

import (
	"bistro/pkg/model"
	"slices"
)

// Index maps a date and a half-hour slot to the tables occupied then.
// A missing date or slot means every table is free.
type Index struct {
	booked map[string]map[int][]int
}

func NewIndex() *Index {
	return &Index{booked: map[string]map[int][]int{}}
}

// Build replays bookings and one-off events on their own dates, and daily
// recurring events on every date of r. Entries with an unreadable hour are
// returned in skipped and left out of the index. Recurring events with any
// repeat other than daily are ignored.
func Build(bookings []model.BookingEntry, oneOff []model.Event, recurring []model.Event, r DateRange) (idx *Index, skipped []error) {
	idx = NewIndex()

	for _, b := range bookings {
		if err := idx.MarkOccupied(b.Date, b.Hour, b.Duration, b.Table); err != nil {
			skipped = append(skipped, err)
		}
	}
	for _, e := range oneOff {
		if err := idx.MarkOccupied(e.Date, e.Hour, e.Duration, e.Table); err != nil {
			skipped = append(skipped, err)
		}
	}

	dates := r.Dates()
	for _, e := range recurring {
		if !e.Repeat.IsDaily() {
			continue
		}
		for _, date := range dates {
			if err := idx.MarkOccupied(date, e.Hour, e.Duration, e.Table); err != nil {
				skipped = append(skipped, err)
				break
			}
		}
	}

	return idx, skipped
}

// MarkOccupied occupies table on date for every half hour from hour up to,
// but not including, hour+duration.
func (idx *Index) MarkOccupied(date, hour string, duration float64, table int) error {
	start, err := HourToNumber(hour)
	if err != nil {
		return err
	}
	idx.mark(date, start, duration, table)
	return nil
}

func (idx *Index) mark(date string, start, duration float64, table int) {
	slots := idx.booked[date]
	if slots == nil {
		slots = map[int][]int{}
		idx.booked[date] = slots
	}
	for h := start; h < start+duration; h += 0.5 {
		key := slot(h)
		if !slices.Contains(slots[key], table) {
			slots[key] = append(slots[key], table)
		}
	}
}

// IsOccupied reports whether table is taken at exactly (date, hour).
func (idx *Index) IsOccupied(date string, hour float64, table int) bool {
	return slices.Contains(idx.booked[date][slot(hour)], table)
}

// Tables returns the tables taken at (date, hour) in ascending order.
func (idx *Index) Tables(date string, hour float64) []int {
	tables := slices.Clone(idx.booked[date][slot(hour)])
	slices.Sort(tables)
	return tables
}

// Len counts occupied (date, slot, table) entries.
func (idx *Index) Len() int {
	n := 0
	for _, slots := range idx.booked {
		for _, tables := range slots {
			n += len(tables)
		}
	}
	return n
}
