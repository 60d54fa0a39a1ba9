package jobs

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/niksankarkee/restosaas-sub000/entity"
	"github.com/niksankarkee/restosaas-sub000/pkg/mailer"
	"github.com/niksankarkee/restosaas-sub000/repository"
)

func newSchedulerTest(t *testing.T) (*ReservationScheduler, *repository.ReservationRepository, uint) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Restaurant{}, &entity.ReservationStatus{}, &entity.Reservation{},
	))
	for _, name := range []string{"Pending", "Confirmed", "Cancelled", "Completed"} {
		require.NoError(t, db.Create(&entity.ReservationStatus{StatusName: name}).Error)
	}

	rest := &entity.Restaurant{Name: "Sakura Tei", Slug: "sakura-tei", Capacity: 30}
	require.NoError(t, db.Create(rest).Error)

	repo := repository.NewReservationRepository(db)
	sched := NewReservationScheduler(repo, mailer.New("", "RestoSaaS", "no-reply@restosaas.local"))
	return sched, repo, rest.ID
}

func addReservation(t *testing.T, repo *repository.ReservationRepository, restID uint, date, status string) *entity.Reservation {
	t.Helper()
	statusID, err := repo.StatusID(status)
	require.NoError(t, err)

	res := &entity.Reservation{
		RestaurantID:        restID,
		Date:                date,
		Time:                "19:00",
		DurationMinutes:     90,
		Party:               2,
		CustomerName:        "Hanako Yamada",
		CustomerEmail:       "hanako@example.com",
		ConfirmationCode:    uuid.NewString(),
		ReservationStatusID: statusID,
	}
	require.NoError(t, repo.Create(res))
	return res
}

func TestCompletePast(t *testing.T) {
	sched, repo, restID := newSchedulerTest(t)
	now := time.Date(2024, 6, 10, 3, 0, 0, 0, time.UTC)

	past := addReservation(t, repo, restID, "2024-06-09", "Confirmed")
	today := addReservation(t, repo, restID, "2024-06-10", "Confirmed")
	pending := addReservation(t, repo, restID, "2024-06-01", "Pending")

	sched.CompletePast(now)

	statusOf := func(id uint) string {
		res, err := repo.FindByID(id)
		require.NoError(t, err)
		return res.ReservationStatus.StatusName
	}
	assert.Equal(t, "Completed", statusOf(past.ID))
	assert.Equal(t, "Confirmed", statusOf(today.ID))
	assert.Equal(t, "Pending", statusOf(pending.ID))
}

func TestCompletePastIsIdempotent(t *testing.T) {
	sched, repo, restID := newSchedulerTest(t)
	now := time.Date(2024, 6, 10, 3, 0, 0, 0, time.UTC)

	past := addReservation(t, repo, restID, "2024-06-09", "Confirmed")

	sched.CompletePast(now)
	sched.CompletePast(now)

	res, err := repo.FindByID(past.ID)
	require.NoError(t, err)
	assert.Equal(t, "Completed", res.ReservationStatus.StatusName)
}

func TestSendRemindersWithoutKeyDoesNotFail(t *testing.T) {
	sched, repo, restID := newSchedulerTest(t)
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	addReservation(t, repo, restID, "2024-06-11", "Confirmed")

	// keyless mailer logs and drops; the sweep must not touch statuses
	sched.SendReminders(now)

	list, err := repo.FindConfirmedOnDate("2024-06-11")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
