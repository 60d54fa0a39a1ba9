package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niksankarkee/restosaas-sub000/entity"
	"github.com/niksankarkee/restosaas-sub000/repository"
)

func fullWeek(open, close string) []entity.OpeningHour {
	hours := make([]entity.OpeningHour, 7)
	for d := 0; d < 7; d++ {
		hours[d] = entity.OpeningHour{Weekday: d, OpenTime: open, CloseTime: close}
	}
	return hours
}

func TestReplaceWeek(t *testing.T) {
	db := newTestDB(t)
	rest := newTestRestaurant(t, db, "sakura-tei", 30)
	svc := NewOpeningHourService(repository.NewOpeningHourRepository(db))

	week := fullWeek("11:00", "22:00")
	week[0].IsClosed = true
	require.NoError(t, svc.ReplaceWeek(rest.ID, week))

	saved, err := svc.Week(rest.ID)
	require.NoError(t, err)
	require.Len(t, saved, 7)
	assert.True(t, saved[0].IsClosed)
	assert.Equal(t, "11:00", saved[1].OpenTime)
	assert.Equal(t, "22:00", saved[1].CloseTime)
}

func TestReplaceWeekValidation(t *testing.T) {
	db := newTestDB(t)
	rest := newTestRestaurant(t, db, "sakura-tei", 30)
	svc := NewOpeningHourService(repository.NewOpeningHourRepository(db))

	// wrong row count
	assert.Error(t, svc.ReplaceWeek(rest.ID, fullWeek("09:00", "21:00")[:6]))

	// duplicate weekday
	week := fullWeek("09:00", "21:00")
	week[6].Weekday = 0
	assert.Error(t, svc.ReplaceWeek(rest.ID, week))

	// weekday out of range
	week = fullWeek("09:00", "21:00")
	week[6].Weekday = 7
	assert.Error(t, svc.ReplaceWeek(rest.ID, week))

	// malformed times
	week = fullWeek("09:00", "21:00")
	week[2].OpenTime = "9am"
	assert.Error(t, svc.ReplaceWeek(rest.ID, week))

	// open after close
	week = fullWeek("22:00", "09:00")
	assert.Error(t, svc.ReplaceWeek(rest.ID, week))

	// closed rows skip time validation
	week = fullWeek("09:00", "21:00")
	week[3].IsClosed = true
	week[3].OpenTime = ""
	week[3].CloseTime = ""
	assert.NoError(t, svc.ReplaceWeek(rest.ID, week))

	// a failed replace leaves the previous table intact
	saved, err := svc.Week(rest.ID)
	require.NoError(t, err)
	assert.Len(t, saved, 7)
}
