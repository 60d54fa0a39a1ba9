// services/menu_service.go
package services

import (
	"errors"

	"github.com/niksankarkee/restosaas-sub000/entity"
	"github.com/niksankarkee/restosaas-sub000/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) ListByRestaurant(restID uint) ([]entity.Menu, error) {
	return s.Repo.FindByRestaurant(restID)
}

func (s *MenuService) Get(id uint) (*entity.Menu, error) {
	return s.Repo.FindByID(id)
}

func (s *MenuService) Create(menu *entity.Menu) error {
	if menu.MenuName == "" {
		return errors.New("menu name required")
	}
	if menu.Price < 0 {
		return errors.New("price cannot be negative")
	}
	return s.Repo.Create(menu)
}

// Update patches an existing menu after the caller verified it belongs to the
// owner's restaurant.
func (s *MenuService) Update(id uint, updates func(*entity.Menu)) (*entity.Menu, error) {
	menu, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	updates(menu)
	if menu.Price < 0 {
		return nil, errors.New("price cannot be negative")
	}
	if err := s.Repo.Update(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
