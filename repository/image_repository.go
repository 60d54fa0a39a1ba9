// repository/image_repository.go
package repository

import (
	"gorm.io/gorm"

	"github.com/niksankarkee/restosaas-sub000/entity"
)

type ImageRepository struct {
	DB *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{DB: db}
}

func (r *ImageRepository) FindByRestaurant(restID uint) ([]entity.RestaurantImage, error) {
	var images []entity.RestaurantImage
	err := r.DB.
		Where("restaurant_id = ?", restID).
		Order("position").
		Find(&images).Error
	return images, err
}

func (r *ImageRepository) FindByID(id uint) (*entity.RestaurantImage, error) {
	var img entity.RestaurantImage
	if err := r.DB.First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *ImageRepository) Create(img *entity.RestaurantImage) error {
	return r.DB.Create(img).Error
}

func (r *ImageRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.RestaurantImage{}, id).Error
}

// SetMain flips the main flag to the given image within one transaction.
func (r *ImageRepository) SetMain(restID, imageID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.RestaurantImage{}).
			Where("restaurant_id = ?", restID).
			Update("is_main", false).Error; err != nil {
			return err
		}
		return tx.Model(&entity.RestaurantImage{}).
			Where("id = ? AND restaurant_id = ?", imageID, restID).
			Update("is_main", true).Error
	})
}

func (r *ImageRepository) MaxPosition(restID uint) (int, error) {
	var max int
	err := r.DB.Model(&entity.RestaurantImage{}).
		Where("restaurant_id = ?", restID).
		Select("COALESCE(MAX(position), -1)").
		Scan(&max).Error
	return max, err
}
