// services/course_service.go
package services

import (
	"errors"

	"github.com/niksankarkee/restosaas-sub000/entity"
	"github.com/niksankarkee/restosaas-sub000/repository"
)

type CourseService struct {
	Repo *repository.CourseRepository
}

func NewCourseService(repo *repository.CourseRepository) *CourseService {
	return &CourseService{Repo: repo}
}

func (s *CourseService) ListByRestaurant(restID uint) ([]entity.Course, error) {
	return s.Repo.FindByRestaurant(restID)
}

func (s *CourseService) ListActive(restID uint) ([]entity.Course, error) {
	return s.Repo.FindActiveByRestaurant(restID)
}

func (s *CourseService) Get(id uint) (*entity.Course, error) {
	return s.Repo.FindByID(id)
}

func (s *CourseService) Create(course *entity.Course) error {
	if course.Name == "" {
		return errors.New("course name required")
	}
	if course.Price < 0 {
		return errors.New("price cannot be negative")
	}
	return s.Repo.Create(course)
}

func (s *CourseService) Update(id uint, updates func(*entity.Course)) (*entity.Course, error) {
	course, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	updates(course)
	if course.Price < 0 {
		return nil, errors.New("price cannot be negative")
	}
	if err := s.Repo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
