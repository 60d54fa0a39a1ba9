// repository/organization_repository.go
package repository

import (
	"gorm.io/gorm"

	"github.com/niksankarkee/restosaas-sub000/entity"
)

type OrganizationRepository struct {
	DB *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{DB: db}
}

func (r *OrganizationRepository) FindAll() ([]entity.Organization, error) {
	var orgs []entity.Organization
	err := r.DB.Order("id").Find(&orgs).Error
	return orgs, err
}

func (r *OrganizationRepository) FindByID(id uint) (*entity.Organization, error) {
	var org entity.Organization
	err := r.DB.Preload("Restaurants").First(&org, id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) Create(org *entity.Organization) error {
	return r.DB.Create(org).Error
}

func (r *OrganizationRepository) Update(org *entity.Organization) error {
	return r.DB.Save(org).Error
}

func (r *OrganizationRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Organization{}, id).Error
}
