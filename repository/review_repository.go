// repository/review_repository.go
package repository

import (
	"gorm.io/gorm"

	"github.com/niksankarkee/restosaas-sub000/entity"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) FindByRestaurant(restID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.
		Preload("User").
		Where("restaurant_id = ?", restID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) FindByUserAndRestaurant(userID, restID uint) (*entity.Review, error) {
	var review entity.Review
	err := r.DB.
		Where("user_id = ? AND restaurant_id = ?", userID, restID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) Update(review *entity.Review) error {
	return r.DB.Save(review).Error
}

func (r *ReviewRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Review{}, id).Error
}

// AverageRating for a restaurant card; zero when unreviewed.
func (r *ReviewRepository) AverageRating(restID uint) (float64, int64, error) {
	var avg float64
	var count int64

	if err := r.DB.Model(&entity.Review{}).
		Where("restaurant_id = ?", restID).
		Count(&count).Error; err != nil {
		return 0, 0, err
	}
	if count == 0 {
		return 0, 0, nil
	}
	err := r.DB.Model(&entity.Review{}).
		Where("restaurant_id = ?", restID).
		Select("AVG(rating)").
		Scan(&avg).Error
	return avg, count, err
}
