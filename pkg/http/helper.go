package http

import (
	"net/http"
	"time"

	apperrors "bistro/pkg/errors"
)

const DateLayout = "2006-01-02"

// ExtractDate reads a YYYY-MM-DD query parameter. Missing parameters are
// rejected when required and otherwise come back as the zero time.
func ExtractDate(r *http.Request, name string, required bool) (time.Time, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		if required {
			return time.Time{}, apperrors.InvalidInput("missing " + name + " parameter")
		}
		return time.Time{}, nil
	}

	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, apperrors.InvalidInput("invalid " + name + " parameter: " + s)
	}
	return d, nil
}

// ExtractDateRange reads start and end. end is required; start is only
// required when requireStart is set. A start after end is rejected.
func ExtractDateRange(r *http.Request, requireStart bool) (start, end time.Time, err error) {
	start, err = ExtractDate(r, "start", requireStart)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = ExtractDate(r, "end", true)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !start.IsZero() && start.After(end) {
		return time.Time{}, time.Time{}, apperrors.InvalidInput("start must not be after end")
	}
	return start, end, nil
}
