// Package availability computes bookable time slots from a restaurant's weekly
// opening hours. It is pure: no I/O, no clock reads, no errors. Bad data
// degrades to "closed" so callers never have to branch on failure.
package availability

import (
	"fmt"
	"time"
)

// DefaultGranularityMinutes is the gap between candidate reservation start times.
const DefaultGranularityMinutes = 30

// DefaultHorizonDays is how far ahead the date picker looks.
const DefaultHorizonDays = 30

// Window is one weekday's service window. Weekday follows time.Weekday:
// 0 = Sunday .. 6 = Saturday, independent of any locale.
type Window struct {
	Weekday   int
	OpenTime  string // "HH:MM", 24h
	CloseTime string
	IsClosed  bool
}

// Slot is a candidate reservation start time for a single date.
type Slot struct {
	Time           string `json:"time"`
	AvailableSeats int    `json:"availableSeats"`
	Available      bool   `json:"available"`
}

// DateInfo tags one calendar date as bookable or not, for date pickers.
type DateInfo struct {
	Date string `json:"date"` // YYYY-MM-DD
	Open bool   `json:"open"`
}

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// windowFor returns the window matching the date's weekday. Missing rows are
// treated as closed.
func windowFor(hours []Window, date time.Time) (Window, bool) {
	weekday := int(date.Weekday())
	for _, w := range hours {
		if w.Weekday == weekday {
			return w, true
		}
	}
	return Window{}, false
}

// IsOpenOn reports whether the restaurant takes reservations on the given
// date. A missing weekday row, a closed flag, or an unparsable window all
// count as closed.
func IsOpenOn(hours []Window, date time.Time) bool {
	w, ok := windowFor(hours, date)
	if !ok || w.IsClosed {
		return false
	}
	open, err := ParseClock(w.OpenTime)
	if err != nil {
		return false
	}
	close, err := ParseClock(w.CloseTime)
	if err != nil {
		return false
	}
	return open < close
}

// GenerateSlots emits every candidate start time for the date, one per
// granularity step, starting at the window's open time. A slot only has to
// start strictly before closing time; the meal may run past it. Closed days
// yield an empty slice, never an error.
func GenerateSlots(hours []Window, date time.Time, granularityMinutes int) []Slot {
	if granularityMinutes <= 0 {
		granularityMinutes = DefaultGranularityMinutes
	}
	if !IsOpenOn(hours, date) {
		return []Slot{}
	}
	w, _ := windowFor(hours, date)
	open, _ := ParseClock(w.OpenTime)
	close, _ := ParseClock(w.CloseTime)

	slots := make([]Slot, 0, (close-open)/granularityMinutes+1)
	for t := open; t < close; t += granularityMinutes {
		slots = append(slots, Slot{Time: FormatClock(t)})
	}
	return slots
}

// Annotate fills in remaining capacity per slot. bookedByTime maps a slot's
// "HH:MM" to the seats already committed there; party is the requested
// headcount. Seats never go negative and never exceed capacity.
func Annotate(slots []Slot, capacity int, bookedByTime map[string]int, party int) []Slot {
	for i := range slots {
		seats := capacity - bookedByTime[slots[i].Time]
		if seats < 0 {
			seats = 0
		}
		if seats > capacity {
			seats = capacity
		}
		slots[i].AvailableSeats = seats
		slots[i].Available = party > 0 && seats >= party
	}
	return slots
}

// ListDates returns horizonDays consecutive dates starting at from, each
// flagged open or closed.
func ListDates(hours []Window, from time.Time, horizonDays int) []DateInfo {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	dates := make([]DateInfo, 0, horizonDays)
	for i := 0; i < horizonDays; i++ {
		d := from.AddDate(0, 0, i)
		dates = append(dates, DateInfo{
			Date: d.Format("2006-01-02"),
			Open: IsOpenOn(hours, d),
		})
	}
	return dates
}
