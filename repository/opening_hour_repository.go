// repository/opening_hour_repository.go
package repository

import (
	"gorm.io/gorm"

	"github.com/niksankarkee/restosaas-sub000/entity"
)

type OpeningHourRepository struct {
	DB *gorm.DB
}

func NewOpeningHourRepository(db *gorm.DB) *OpeningHourRepository {
	return &OpeningHourRepository{DB: db}
}

func (r *OpeningHourRepository) FindByRestaurant(restID uint) ([]entity.OpeningHour, error) {
	var hours []entity.OpeningHour
	err := r.DB.
		Where("restaurant_id = ?", restID).
		Order("weekday").
		Find(&hours).Error
	return hours, err
}

// ReplaceAll swaps the restaurant's whole weekly table in one transaction, so
// the unique (restaurant, weekday) index never sees a half-written week.
func (r *OpeningHourRepository) ReplaceAll(restID uint, hours []entity.OpeningHour) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("restaurant_id = ?", restID).
			Delete(&entity.OpeningHour{}).Error; err != nil {
			return err
		}
		for i := range hours {
			hours[i].ID = 0
			hours[i].RestaurantID = restID
		}
		return tx.Create(&hours).Error
	})
}
