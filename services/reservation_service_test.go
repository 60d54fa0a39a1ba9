package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niksankarkee/restosaas-sub000/entity"
	"github.com/niksankarkee/restosaas-sub000/repository"
)

func newReservationService(t *testing.T) (*ReservationService, *entity.Restaurant) {
	t.Helper()
	db := newTestDB(t)
	rest := newTestRestaurant(t, db, "sakura-tei", 30)

	svc := NewReservationService(
		repository.NewReservationRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewCourseRepository(db),
		nil, // no mail in tests
	)
	return svc, rest
}

func bookingInput(slug, date, timeOfDay string, party int) CreateReservationInput {
	return CreateReservationInput{
		RestaurantSlug: slug,
		Date:           date,
		Time:           timeOfDay,
		Party:          party,
		CustomerName:   "Hanako Yamada",
		CustomerEmail:  "hanako@example.com",
		CustomerPhone:  "090-0000-0000",
	}
}

func TestCreateReservation(t *testing.T) {
	svc, _ := newReservationService(t)

	res, err := svc.Create(bookingInput("sakura-tei", "2024-06-10", "18:30", 4))
	require.NoError(t, err)

	assert.NotEmpty(t, res.ConfirmationCode)
	assert.Equal(t, 90, res.DurationMinutes)
	assert.Equal(t, 4, res.Party)

	got, err := svc.Repo.FindByCode(res.ConfirmationCode)
	require.NoError(t, err)
	assert.Equal(t, "Pending", got.ReservationStatus.StatusName)
}

func TestCreateReservationUnknownRestaurant(t *testing.T) {
	svc, _ := newReservationService(t)

	_, err := svc.Create(bookingInput("no-such-place", "2024-06-10", "18:30", 2))
	assert.True(t, IsNotFound(err))
}

func TestCreateReservationBadDate(t *testing.T) {
	svc, _ := newReservationService(t)

	_, err := svc.Create(bookingInput("sakura-tei", "10/06/2024", "18:30", 2))
	assert.ErrorIs(t, err, ErrBadDate)
}

func TestCreateReservationOffGridTime(t *testing.T) {
	svc, _ := newReservationService(t)

	// 18:15 is not on the 30-minute grid
	_, err := svc.Create(bookingInput("sakura-tei", "2024-06-10", "18:15", 2))
	assert.ErrorIs(t, err, ErrNoSuchSlot)

	// 21:00 is the closing time, not a bookable start
	_, err = svc.Create(bookingInput("sakura-tei", "2024-06-10", "21:00", 2))
	assert.ErrorIs(t, err, ErrNoSuchSlot)
}

func TestCreateReservationClosedDay(t *testing.T) {
	svc, rest := newReservationService(t)

	require.NoError(t, svc.Repo.DB.Model(&entity.OpeningHour{}).
		Where("restaurant_id = ? AND weekday = ?", rest.ID, 1).
		Update("is_closed", true).Error)

	// 2024-06-10 is a Monday
	_, err := svc.Create(bookingInput("sakura-tei", "2024-06-10", "18:30", 2))
	assert.ErrorIs(t, err, ErrClosedDay)
}

func TestCreateReservationCapacity(t *testing.T) {
	svc, _ := newReservationService(t)

	_, err := svc.Create(bookingInput("sakura-tei", "2024-06-10", "19:00", 28))
	require.NoError(t, err)

	// 2 seats left at 19:00
	_, err = svc.Create(bookingInput("sakura-tei", "2024-06-10", "19:00", 4))
	assert.ErrorIs(t, err, ErrNotEnoughSeats)

	// exactly fitting party still books
	_, err = svc.Create(bookingInput("sakura-tei", "2024-06-10", "19:00", 2))
	require.NoError(t, err)

	// other slots are unaffected
	_, err = svc.Create(bookingInput("sakura-tei", "2024-06-10", "19:30", 10))
	require.NoError(t, err)
}

func TestCancelledSeatsAreFreed(t *testing.T) {
	svc, _ := newReservationService(t)

	res, err := svc.Create(bookingInput("sakura-tei", "2024-06-10", "19:00", 30))
	require.NoError(t, err)

	_, err = svc.Create(bookingInput("sakura-tei", "2024-06-10", "19:00", 1))
	assert.ErrorIs(t, err, ErrNotEnoughSeats)

	_, err = svc.CancelByCode(res.ConfirmationCode)
	require.NoError(t, err)

	_, err = svc.Create(bookingInput("sakura-tei", "2024-06-10", "19:00", 30))
	require.NoError(t, err)
}

func TestCreateReservationWithCourse(t *testing.T) {
	svc, rest := newReservationService(t)

	course := &entity.Course{Name: "Omakase", Price: 12000_00, IsActive: true, RestaurantID: rest.ID}
	require.NoError(t, svc.CourseRepo.Create(course))
	inactive := &entity.Course{Name: "Winter Special", Price: 9000_00, IsActive: false, RestaurantID: rest.ID}
	require.NoError(t, svc.CourseRepo.Create(inactive))

	in := bookingInput("sakura-tei", "2024-06-10", "18:00", 2)
	in.CourseID = &course.ID
	res, err := svc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, course.ID, *res.CourseID)

	in.CourseID = &inactive.ID
	_, err = svc.Create(in)
	assert.ErrorIs(t, err, ErrCourseInactive)

	other := newTestRestaurant(t, svc.Repo.DB, "ume-an", 10)
	otherCourse := &entity.Course{Name: "Kaiseki", Price: 8000_00, IsActive: true, RestaurantID: other.ID}
	require.NoError(t, svc.CourseRepo.Create(otherCourse))

	in.CourseID = &otherCourse.ID
	_, err = svc.Create(in)
	assert.ErrorIs(t, err, ErrCourseMismatch)
}

func TestSlotsAnnotated(t *testing.T) {
	svc, _ := newReservationService(t)

	_, err := svc.Create(bookingInput("sakura-tei", "2024-06-10", "12:00", 28))
	require.NoError(t, err)

	slots, err := svc.Slots("sakura-tei", "2024-06-10", 4)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	assert.Equal(t, "09:00", slots[0].Time)
	for _, s := range slots {
		assert.GreaterOrEqual(t, s.AvailableSeats, 0)
		assert.LessOrEqual(t, s.AvailableSeats, 30)
		if s.Time == "12:00" {
			assert.Equal(t, 2, s.AvailableSeats)
			assert.False(t, s.Available)
		} else {
			assert.Equal(t, 30, s.AvailableSeats)
			assert.True(t, s.Available)
		}
	}
}

func TestSlotsClosedDayIsEmptyNotError(t *testing.T) {
	svc, rest := newReservationService(t)

	require.NoError(t, svc.Repo.DB.Model(&entity.OpeningHour{}).
		Where("restaurant_id = ? AND weekday = ?", rest.ID, 1).
		Update("is_closed", true).Error)

	slots, err := svc.Slots("sakura-tei", "2024-06-10", 2)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestDates(t *testing.T) {
	svc, rest := newReservationService(t)

	// close Sundays
	require.NoError(t, svc.Repo.DB.Model(&entity.OpeningHour{}).
		Where("restaurant_id = ? AND weekday = ?", rest.ID, 0).
		Update("is_closed", true).Error)

	// 2024-06-08 Sat, 09 Sun, 10 Mon
	dates, err := svc.Dates("sakura-tei", "2024-06-08", 3)
	require.NoError(t, err)
	require.Len(t, dates, 3)
	assert.True(t, dates[0].Open)
	assert.False(t, dates[1].Open)
	assert.True(t, dates[2].Open)
}

func TestTransitions(t *testing.T) {
	svc, _ := newReservationService(t)

	res, err := svc.Create(bookingInput("sakura-tei", "2024-06-10", "18:30", 2))
	require.NoError(t, err)

	// Pending cannot complete directly
	_, err = svc.Transition(res.ID, "Completed")
	assert.ErrorIs(t, err, ErrBadTransition)

	confirmed, err := svc.Transition(res.ID, "Confirmed")
	require.NoError(t, err)
	assert.Equal(t, "Confirmed", confirmed.ReservationStatus.StatusName)

	completed, err := svc.Transition(res.ID, "Completed")
	require.NoError(t, err)
	assert.Equal(t, "Completed", completed.ReservationStatus.StatusName)

	// terminal states stay terminal
	_, err = svc.Transition(res.ID, "Cancelled")
	assert.ErrorIs(t, err, ErrBadTransition)
}

func TestCancelByCode(t *testing.T) {
	svc, _ := newReservationService(t)

	res, err := svc.Create(bookingInput("sakura-tei", "2024-06-10", "18:30", 2))
	require.NoError(t, err)

	cancelled, err := svc.CancelByCode(res.ConfirmationCode)
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", cancelled.ReservationStatus.StatusName)

	_, err = svc.CancelByCode(res.ConfirmationCode)
	assert.ErrorIs(t, err, ErrAlreadyResolved)

	_, err = svc.CancelByCode("not-a-code")
	assert.True(t, IsNotFound(err))
}
