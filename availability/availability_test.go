package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-01 is a Monday, 2024-01-07 a Sunday.
var (
	monday = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
)

func weekOpen(open, close string) []Window {
	hours := make([]Window, 0, 7)
	for d := 0; d < 7; d++ {
		hours = append(hours, Window{Weekday: d, OpenTime: open, CloseTime: close})
	}
	return hours
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, m)

	m, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
	_, err = ParseClock("9am")
	assert.Error(t, err)
	_, err = ParseClock("")
	assert.Error(t, err)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:00", FormatClock(540))
	assert.Equal(t, "00:05", FormatClock(5))
	assert.Equal(t, "23:30", FormatClock(23*60+30))
}

func TestIsOpenOn(t *testing.T) {
	hours := weekOpen("09:00", "17:00")
	assert.True(t, IsOpenOn(hours, monday))

	// closed flag wins
	hours[0].IsClosed = true // weekday 0 = Sunday
	assert.False(t, IsOpenOn(hours, sunday))
	assert.True(t, IsOpenOn(hours, monday))
}

func TestIsOpenOnMissingWeekday(t *testing.T) {
	// only a Monday row; every other day is closed by absence
	hours := []Window{{Weekday: 1, OpenTime: "09:00", CloseTime: "17:00"}}
	assert.True(t, IsOpenOn(hours, monday))
	assert.False(t, IsOpenOn(hours, sunday))
}

func TestIsOpenOnMalformedTimes(t *testing.T) {
	// unparsable or inverted windows read as closed, never panic
	for _, w := range []Window{
		{Weekday: 1, OpenTime: "", CloseTime: "17:00"},
		{Weekday: 1, OpenTime: "09:00", CloseTime: "banana"},
		{Weekday: 1, OpenTime: "17:00", CloseTime: "09:00"},
		{Weekday: 1, OpenTime: "09:00", CloseTime: "09:00"},
	} {
		assert.False(t, IsOpenOn([]Window{w}, monday), "window %+v", w)
	}
}

func TestGenerateSlotsBasic(t *testing.T) {
	hours := []Window{{Weekday: 1, OpenTime: "09:00", CloseTime: "10:30"}}
	slots := GenerateSlots(hours, monday, 30)

	times := make([]string, 0, len(slots))
	for _, s := range slots {
		times = append(times, s.Time)
	}
	// 10:30 itself is excluded: a slot must start strictly before closing
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, times)
}

func TestGenerateSlotsClosedDay(t *testing.T) {
	hours := []Window{{Weekday: 0, IsClosed: true, OpenTime: "09:00", CloseTime: "17:00"}}
	assert.Empty(t, GenerateSlots(hours, sunday, 30))
	assert.Empty(t, GenerateSlots(nil, monday, 30))
}

func TestGenerateSlotsShortWindow(t *testing.T) {
	// window shorter than one step still yields the opening slot
	hours := []Window{{Weekday: 1, OpenTime: "09:00", CloseTime: "09:15"}}
	slots := GenerateSlots(hours, monday, 30)
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].Time)
}

func TestGenerateSlotsOrderingAndGranularity(t *testing.T) {
	hours := weekOpen("11:00", "22:00")
	slots := GenerateSlots(hours, monday, 30)
	require.NotEmpty(t, slots)

	assert.Equal(t, "11:00", slots[0].Time)
	for i := 1; i < len(slots); i++ {
		prev, err := ParseClock(slots[i-1].Time)
		require.NoError(t, err)
		cur, err := ParseClock(slots[i].Time)
		require.NoError(t, err)
		assert.Equal(t, 30, cur-prev, "slots must be 30 minutes apart")
	}
	last, _ := ParseClock(slots[len(slots)-1].Time)
	close, _ := ParseClock("22:00")
	assert.Less(t, last, close)
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	hours := weekOpen("09:00", "17:00")
	assert.Equal(t, GenerateSlots(hours, monday, 30), GenerateSlots(hours, monday, 30))
}

func TestGenerateSlotsDefaultGranularity(t *testing.T) {
	hours := []Window{{Weekday: 1, OpenTime: "09:00", CloseTime: "10:00"}}
	// zero/negative granularity falls back to the default rather than looping forever
	slots := GenerateSlots(hours, monday, 0)
	require.Len(t, slots, 2)
	assert.Equal(t, "09:30", slots[1].Time)
}

func TestAnnotateCapacity(t *testing.T) {
	hours := []Window{{Weekday: 1, OpenTime: "12:00", CloseTime: "13:00"}}
	slots := GenerateSlots(hours, monday, 30)
	require.Len(t, slots, 2)

	booked := map[string]int{"12:00": 28}
	slots = Annotate(slots, 30, booked, 4)

	assert.Equal(t, 2, slots[0].AvailableSeats)
	assert.False(t, slots[0].Available) // party of 4 does not fit in 2 seats
	assert.Equal(t, 30, slots[1].AvailableSeats)
	assert.True(t, slots[1].Available)
}

func TestAnnotateClamps(t *testing.T) {
	slots := []Slot{{Time: "12:00"}, {Time: "12:30"}}
	booked := map[string]int{
		"12:00": 99, // overbooked upstream; never go negative
		"12:30": -5, // garbage count; never exceed capacity
	}
	slots = Annotate(slots, 30, booked, 2)
	assert.Equal(t, 0, slots[0].AvailableSeats)
	assert.False(t, slots[0].Available)
	assert.Equal(t, 30, slots[1].AvailableSeats)
	assert.True(t, slots[1].Available)
}

func TestListDates(t *testing.T) {
	hours := weekOpen("09:00", "17:00")
	hours[0].IsClosed = true // Sundays closed

	dates := ListDates(hours, monday, 3)
	require.Len(t, dates, 3)
	assert.Equal(t, "2024-01-01", dates[0].Date)
	assert.Equal(t, "2024-01-02", dates[1].Date)
	assert.Equal(t, "2024-01-03", dates[2].Date)
	for _, d := range dates {
		assert.True(t, d.Open)
	}

	// horizon crossing the closed Sunday
	dates = ListDates(hours, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), 2)
	require.Len(t, dates, 2)
	assert.True(t, dates[0].Open)  // Saturday
	assert.False(t, dates[1].Open) // Sunday
}

func TestListDatesDefaultHorizon(t *testing.T) {
	dates := ListDates(weekOpen("09:00", "17:00"), monday, 0)
	assert.Len(t, dates, DefaultHorizonDays)
}
