// repository/course_repository.go
package repository

import (
	"gorm.io/gorm"

	"github.com/niksankarkee/restosaas-sub000/entity"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) FindByRestaurant(restID uint) ([]entity.Course, error) {
	var courses []entity.Course
	err := r.DB.Where("restaurant_id = ?", restID).Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindActiveByRestaurant(restID uint) ([]entity.Course, error) {
	var courses []entity.Course
	err := r.DB.
		Where("restaurant_id = ? AND is_active = ?", restID, true).
		Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByID(id uint) (*entity.Course, error) {
	var course entity.Course
	if err := r.DB.First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) Create(course *entity.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) Update(course *entity.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Course{}, id).Error
}
