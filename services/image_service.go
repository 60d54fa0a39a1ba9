// services/image_service.go
package services

import (
	"errors"

	"github.com/niksankarkee/restosaas-sub000/entity"
	"github.com/niksankarkee/restosaas-sub000/repository"
	"github.com/niksankarkee/restosaas-sub000/utils"
)

// ImageService keeps the gallery rules: the first image a restaurant gets
// becomes its main image, and deleting the main image promotes the earliest
// remaining one.
type ImageService struct {
	Repo      *repository.ImageRepository
	UploadDir string
}

func NewImageService(repo *repository.ImageRepository, uploadDir string) *ImageService {
	return &ImageService{Repo: repo, UploadDir: uploadDir}
}

func (s *ImageService) List(restID uint) ([]entity.RestaurantImage, error) {
	return s.Repo.FindByRestaurant(restID)
}

// AddBase64 decodes and stores an uploaded image.
func (s *ImageService) AddBase64(restID uint, b64 string) (*entity.RestaurantImage, error) {
	if len(b64) > 10*1024*1024 { // limit 10MB
		return nil, errors.New("file too large")
	}

	path, err := utils.SaveBase64Image(b64, s.UploadDir)
	if err != nil {
		return nil, errors.New("invalid image payload")
	}

	maxPos, err := s.Repo.MaxPosition(restID)
	if err != nil {
		return nil, err
	}

	img := &entity.RestaurantImage{
		RestaurantID: restID,
		Path:         path,
		Position:     maxPos + 1,
		IsMain:       maxPos < 0, // first image becomes main
	}
	if err := s.Repo.Create(img); err != nil {
		return nil, err
	}
	return img, nil
}

// Remove deletes an image; if it was the main one, the lowest-position
// survivor takes over.
func (s *ImageService) Remove(restID, imageID uint) error {
	img, err := s.Repo.FindByID(imageID)
	if err != nil {
		return err
	}
	if img.RestaurantID != restID {
		return errors.New("image does not belong to restaurant")
	}

	wasMain := img.IsMain
	if err := s.Repo.Delete(imageID); err != nil {
		return err
	}
	if !wasMain {
		return nil
	}

	remaining, err := s.Repo.FindByRestaurant(restID)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		return nil
	}
	return s.Repo.SetMain(restID, remaining[0].ID)
}

// SetMain lets the owner pick the card image explicitly.
func (s *ImageService) SetMain(restID, imageID uint) error {
	img, err := s.Repo.FindByID(imageID)
	if err != nil {
		return err
	}
	if img.RestaurantID != restID {
		return errors.New("image does not belong to restaurant")
	}
	return s.Repo.SetMain(restID, imageID)
}
