// services/opening_hour_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/niksankarkee/restosaas-sub000/availability"
	"github.com/niksankarkee/restosaas-sub000/entity"
	"github.com/niksankarkee/restosaas-sub000/repository"
)

type OpeningHourService struct {
	Repo *repository.OpeningHourRepository
}

func NewOpeningHourService(repo *repository.OpeningHourRepository) *OpeningHourService {
	return &OpeningHourService{Repo: repo}
}

func (s *OpeningHourService) Week(restID uint) ([]entity.OpeningHour, error) {
	return s.Repo.FindByRestaurant(restID)
}

// ReplaceWeek validates and saves the full 7-row weekly table. Bad time
// strings are rejected here so the availability generator downstream can
// assume pre-validated input.
func (s *OpeningHourService) ReplaceWeek(restID uint, hours []entity.OpeningHour) error {
	if len(hours) != 7 {
		return errors.New("expected exactly 7 weekday rows")
	}

	seen := make(map[int]bool, 7)
	for _, h := range hours {
		if h.Weekday < 0 || h.Weekday > 6 {
			return fmt.Errorf("weekday %d out of range", h.Weekday)
		}
		if seen[h.Weekday] {
			return fmt.Errorf("duplicate weekday %d", h.Weekday)
		}
		seen[h.Weekday] = true

		if h.IsClosed {
			continue
		}
		open, err := availability.ParseClock(h.OpenTime)
		if err != nil {
			return fmt.Errorf("weekday %d: bad open time %q", h.Weekday, h.OpenTime)
		}
		close, err := availability.ParseClock(h.CloseTime)
		if err != nil {
			return fmt.Errorf("weekday %d: bad close time %q", h.Weekday, h.CloseTime)
		}
		if open >= close {
			return fmt.Errorf("weekday %d: open time must be before close time", h.Weekday)
		}
	}

	return s.Repo.ReplaceAll(restID, hours)
}
