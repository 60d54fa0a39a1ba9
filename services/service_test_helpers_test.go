package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/niksankarkee/restosaas-sub000/entity"
)

// newTestDB opens a private in-memory sqlite database with the full schema
// and the reservation status rows seeded.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Organization{}, &entity.User{},
		&entity.RestaurantCategory{}, &entity.RestaurantStatus{}, &entity.Restaurant{},
		&entity.OpeningHour{}, &entity.RestaurantImage{},
		&entity.MenuType{}, &entity.MenuStatus{}, &entity.Menu{},
		&entity.Course{},
		&entity.ReservationStatus{}, &entity.Reservation{},
		&entity.Review{},
	))

	for _, name := range []string{"Pending", "Confirmed", "Cancelled", "Completed"} {
		require.NoError(t, db.Create(&entity.ReservationStatus{StatusName: name}).Error)
	}
	return db
}

// newTestRestaurant saves a restaurant open every day 09:00-21:00 with the
// given capacity.
func newTestRestaurant(t *testing.T, db *gorm.DB, slug string, capacity int) *entity.Restaurant {
	t.Helper()

	rest := &entity.Restaurant{
		Name:     slug,
		Slug:     slug,
		Capacity: capacity,
	}
	require.NoError(t, db.Create(rest).Error)

	for d := 0; d < 7; d++ {
		require.NoError(t, db.Create(&entity.OpeningHour{
			RestaurantID: rest.ID,
			Weekday:      d,
			OpenTime:     "09:00",
			CloseTime:    "21:00",
		}).Error)
	}
	return rest
}
