package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// RepeatDaily marks an event that recurs every day. A one-off event carries
// an empty Repeat, which travels as JSON false.
const RepeatDaily = "daily"

// Repeat is the recurrence of an event: false on the wire for one-off
// events, a string such as "daily" otherwise.
type Repeat string

func (r Repeat) MarshalJSON() ([]byte, error) {
	if r == "" {
		return []byte("false"), nil
	}
	return json.Marshal(string(r))
}

func (r *Repeat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("false")), bytes.Equal(data, []byte("null")):
		*r = ""
		return nil
	case bytes.Equal(data, []byte("true")):
		return fmt.Errorf("repeat must be false or a recurrence name, got true")
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid repeat value %s: %w", data, err)
	}
	*r = Repeat(s)
	return nil
}

// IsDaily reports whether the event recurs every day.
func (r Repeat) IsDaily() bool {
	return r == RepeatDaily
}

// BookingEntry is a stored reservation as the availability index sees it.
type BookingEntry struct {
	ID       string  `json:"id,omitempty" bson:"_id,omitempty"`
	Date     string  `json:"date" bson:"date" validate:"required,datetime=2006-01-02"`
	Hour     string  `json:"hour" bson:"hour" validate:"required,half_hour"`
	Duration float64 `json:"duration" bson:"duration" validate:"gt=0,max=24"`
	Table    int     `json:"table" bson:"table" validate:"min=1"`
}

// Event is a restaurant event that occupies a table. A daily event occupies
// its table at the same hour on every day of the visible window.
type Event struct {
	ID       string  `json:"id,omitempty" bson:"_id,omitempty"`
	Date     string  `json:"date" bson:"date" validate:"required,datetime=2006-01-02"`
	Hour     string  `json:"hour" bson:"hour" validate:"required,half_hour"`
	Duration float64 `json:"duration" bson:"duration" validate:"gt=0,max=24"`
	Table    int     `json:"table" bson:"table" validate:"min=1"`
	Repeat   Repeat  `json:"repeat" bson:"repeat"`
}

// Reservation is the payload a booking session submits.
type Reservation struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,uuid4"`
	Date      string    `json:"date" bson:"date" validate:"required,datetime=2006-01-02"`
	Hour      string    `json:"hour" bson:"hour" validate:"required,half_hour"`
	Table     int       `json:"table" bson:"table" validate:"min=1"`
	Duration  int       `json:"duration" bson:"duration" validate:"min=1,max=24"`
	People    int       `json:"ppl" bson:"ppl" validate:"min=1,max=50"`
	Starters  []string  `json:"starters" bson:"starters" validate:"max=10,dive,min=1,max=50"`
	Phone     string    `json:"phone" bson:"phone" validate:"required,e164"`
	Address   string    `json:"address" bson:"address" validate:"required,min=3,max=200"`
	CreatedAt time.Time `json:"created_at,omitzero" bson:"created_at"`
}

// Entry returns the part of the reservation that occupies a table.
func (r Reservation) Entry() BookingEntry {
	return BookingEntry{
		ID:       r.ID,
		Date:     r.Date,
		Hour:     r.Hour,
		Duration: float64(r.Duration),
		Table:    r.Table,
	}
}
