// services/restaurant_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/niksankarkee/restosaas-sub000/availability"
	"github.com/niksankarkee/restosaas-sub000/entity"
	"github.com/niksankarkee/restosaas-sub000/repository"
	"github.com/niksankarkee/restosaas-sub000/utils"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.Repo.FindAll()
}

func (s *RestaurantService) Search(name, categoryID, statusID string) ([]entity.Restaurant, error) {
	return s.Repo.Search(name, categoryID, statusID)
}

func (s *RestaurantService) GetBySlug(slug string) (*entity.Restaurant, error) {
	return s.Repo.FindBySlug(slug)
}

func (s *RestaurantService) GetByOwner(ownerID uint) (*entity.Restaurant, error) {
	return s.Repo.FindByOwner(ownerID)
}

// UpdateProfile patches the fields the back-office exposes; ownership was
// already checked by the caller.
func (s *RestaurantService) UpdateProfile(rest *entity.Restaurant, name, address, description, phone string, capacity int, categoryID uint) error {
	if name != "" {
		rest.Name = name
	}
	if address != "" {
		rest.Address = address
	}
	if description != "" {
		rest.Description = description
	}
	if phone != "" {
		rest.PhoneNumber = phone
	}
	if capacity > 0 {
		rest.Capacity = capacity
	}
	if categoryID > 0 {
		rest.RestaurantCategoryID = categoryID
	}
	return s.Repo.Update(rest)
}

// Create provisions a restaurant under an organization with a unique slug.
func (s *RestaurantService) Create(rest *entity.Restaurant) error {
	if rest.Name == "" {
		return errors.New("restaurant name required")
	}
	base := utils.Slugify(rest.Name)
	if base == "" {
		return errors.New("restaurant name yields empty slug")
	}

	taken, err := s.Repo.CountBySlugPrefix(base)
	if err != nil {
		return err
	}
	rest.Slug = base
	if taken > 0 {
		rest.Slug = fmt.Sprintf("%s-%d", base, taken+1)
	}
	return s.Repo.Create(rest)
}

// Windows converts persisted opening hours into the pure availability form.
func Windows(hours []entity.OpeningHour) []availability.Window {
	windows := make([]availability.Window, 0, len(hours))
	for _, h := range hours {
		windows = append(windows, availability.Window{
			Weekday:   h.Weekday,
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
			IsClosed:  h.IsClosed,
		})
	}
	return windows
}
