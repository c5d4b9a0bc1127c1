// Package quantity implements the bounded counter shared by menu items,
// cart lines and the booking form.
package quantity

import (
	"bistro/pkg/config"
	"bistro/pkg/notify"
	"strconv"
	"strings"
	"unicode"
)

// Widget is an integer counter bounded to [Min, Max].
//
// Every SetValue call notifies subscribers, including calls that leave the
// value unchanged, so a renderer can overwrite whatever the user typed with
// the value the widget actually holds.
type Widget struct {
	settings config.AmountWidget
	value    int

	Updated notify.Notifier[int]
}

func New(settings config.AmountWidget) *Widget {
	return &Widget{
		settings: settings,
		value:    settings.Default,
	}
}

// NewWithValue seeds the widget with an initial value. Out-of-range values
// fall back to the configured default.
func NewWithValue(settings config.AmountWidget, initial int) *Widget {
	w := New(settings)
	if w.inRange(initial) {
		w.value = initial
	}
	return w
}

func (w *Widget) Value() int {
	return w.value
}

func (w *Widget) Settings() config.AmountWidget {
	return w.settings
}

// SetValue reads the leading integer of raw ("3abc" and "3.5" are 3) and
// takes it when it lies within bounds. Input without a leading integer or
// out of range leaves the value as it was. It returns the effective value
// and always notifies.
func (w *Widget) SetValue(raw string) int {
	n, ok := leadingInt(raw)
	if ok && n != w.value && w.inRange(n) {
		w.value = n
	}
	w.Updated.Notify(w.value)
	return w.value
}

// Set is SetValue for callers that already hold an integer.
func (w *Widget) Set(n int) int {
	return w.SetValue(strconv.Itoa(n))
}

func (w *Widget) Increase() int {
	return w.Set(w.value + 1)
}

func (w *Widget) Decrease() int {
	return w.Set(w.value - 1)
}

// Reset returns the widget to its configured default and notifies.
func (w *Widget) Reset() int {
	return w.Set(w.settings.Default)
}

// leadingInt parses an optional sign and the digits that follow it, after
// leading whitespace. Anything after the digits is ignored.
func leadingInt(raw string) (int, bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func (w *Widget) inRange(n int) bool {
	return n >= w.settings.Min && n <= w.settings.Max
}
