// repository/restaurant_repository.go
package repository

import (
	"gorm.io/gorm"

	"github.com/niksankarkee/restosaas-sub000/entity"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.
		Preload("RestaurantCategory").
		Preload("RestaurantStatus").
		Preload("Images").
		Find(&rests).Error
	return rests, err
}

// Search filters by free-text name match and optional lookup ids.
func (r *RestaurantRepository) Search(name, categoryID, statusID string) ([]entity.Restaurant, error) {
	q := r.DB.
		Preload("RestaurantCategory").
		Preload("RestaurantStatus").
		Preload("Images")

	if name != "" {
		q = q.Where("name LIKE ?", "%"+name+"%")
	}
	if categoryID != "" {
		q = q.Where("restaurant_category_id = ?", categoryID)
	}
	if statusID != "" {
		q = q.Where("restaurant_status_id = ?", statusID)
	}

	var rests []entity.Restaurant
	err := q.Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("RestaurantCategory").
		Preload("RestaurantStatus").
		Preload("OpeningHours").
		Preload("Images").
		First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindBySlug(slug string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("RestaurantCategory").
		Preload("RestaurantStatus").
		Preload("OpeningHours").
		Preload("Images").
		Where("slug = ?", slug).
		First(&rest).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindByOwner(ownerID uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("RestaurantCategory").
		Preload("RestaurantStatus").
		Preload("OpeningHours").
		Preload("Images").
		Where("owner_id = ?", ownerID).
		First(&rest).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Update(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

func (r *RestaurantRepository) CountBySlugPrefix(prefix string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("slug = ? OR slug LIKE ?", prefix, prefix+"-%").
		Count(&count).Error
	return count, err
}
