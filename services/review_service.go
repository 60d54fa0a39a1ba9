// services/review_service.go
package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/niksankarkee/restosaas-sub000/entity"
	"github.com/niksankarkee/restosaas-sub000/repository"
)

type ReviewService struct {
	Repo *repository.ReviewRepository
}

func NewReviewService(repo *repository.ReviewRepository) *ReviewService {
	return &ReviewService{Repo: repo}
}

func (s *ReviewService) ListByRestaurant(restID uint) ([]entity.Review, error) {
	return s.Repo.FindByRestaurant(restID)
}

func (s *ReviewService) Rating(restID uint) (float64, int64, error) {
	return s.Repo.AverageRating(restID)
}

// Upsert creates or updates the caller's review for the restaurant (one per
// user per restaurant).
func (s *ReviewService) Upsert(userID, restID uint, rating int, comments string) (*entity.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}

	existing, err := s.Repo.FindByUserAndRestaurant(userID, restID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.Rating = rating
		existing.Comments = comments
		existing.ReviewDate = time.Now()
		if err := s.Repo.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	review := &entity.Review{
		UserID:       userID,
		RestaurantID: restID,
		Rating:       rating,
		Comments:     comments,
		ReviewDate:   time.Now(),
	}
	if err := s.Repo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Delete(userID, restID uint) error {
	existing, err := s.Repo.FindByUserAndRestaurant(userID, restID)
	if err != nil {
		return err
	}
	return s.Repo.Delete(existing.ID)
}
