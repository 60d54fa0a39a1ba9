// services/admin_service.go
package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/niksankarkee/restosaas-sub000/entity"
	"github.com/niksankarkee/restosaas-sub000/repository"
)

// AdminService backs the super-admin console: organizations, restaurants and
// users across all tenants.
type AdminService struct {
	OrgRepo  *repository.OrganizationRepository
	RestRepo *repository.RestaurantRepository
	UserRepo *repository.UserRepository
	RestSvc  *RestaurantService
}

func NewAdminService(
	orgRepo *repository.OrganizationRepository,
	restRepo *repository.RestaurantRepository,
	userRepo *repository.UserRepository,
	restSvc *RestaurantService,
) *AdminService {
	return &AdminService{
		OrgRepo:  orgRepo,
		RestRepo: restRepo,
		UserRepo: userRepo,
		RestSvc:  restSvc,
	}
}

// ---- Organizations ----

func (s *AdminService) ListOrganizations() ([]entity.Organization, error) {
	return s.OrgRepo.FindAll()
}

func (s *AdminService) GetOrganization(id uint) (*entity.Organization, error) {
	return s.OrgRepo.FindByID(id)
}

func (s *AdminService) CreateOrganization(name, contactEmail string) (*entity.Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("organization name required")
	}
	org := &entity.Organization{Name: name, ContactEmail: strings.TrimSpace(contactEmail)}
	if err := s.OrgRepo.Create(org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *AdminService) UpdateOrganization(id uint, name, contactEmail string) (*entity.Organization, error) {
	org, err := s.OrgRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		org.Name = name
	}
	if contactEmail != "" {
		org.ContactEmail = contactEmail
	}
	if err := s.OrgRepo.Update(org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *AdminService) DeleteOrganization(id uint) error {
	org, err := s.OrgRepo.FindByID(id)
	if err != nil {
		return err
	}
	if len(org.Restaurants) > 0 {
		return errors.New("organization still has restaurants")
	}
	return s.OrgRepo.Delete(id)
}

// ---- Restaurants ----

func (s *AdminService) ListRestaurants() ([]entity.Restaurant, error) {
	return s.RestRepo.FindAll()
}

// ProvisionRestaurant creates a restaurant under an organization and promotes
// the chosen user to owner of it.
func (s *AdminService) ProvisionRestaurant(orgID, ownerID, categoryID, statusID uint, name, address string, capacity int) (*entity.Restaurant, error) {
	if _, err := s.OrgRepo.FindByID(orgID); err != nil {
		return nil, errors.New("organization not found")
	}
	owner, err := s.UserRepo.FindByID(ownerID)
	if err != nil {
		return nil, errors.New("owner user not found")
	}

	rest := &entity.Restaurant{
		Name:                 name,
		Address:              address,
		Capacity:             capacity,
		OrganizationID:       orgID,
		OwnerID:              ownerID,
		RestaurantCategoryID: categoryID,
		RestaurantStatusID:   statusID,
	}
	if err := s.RestSvc.Create(rest); err != nil {
		return nil, err
	}

	// attach the owner to the tenant and grant the role
	if owner.Role == "customer" {
		if err := s.UserRepo.Update(ownerID, map[string]any{
			"role":            "owner",
			"organization_id": orgID,
		}); err != nil {
			return nil, err
		}
	}
	return rest, nil
}

func (s *AdminService) SetRestaurantStatus(restID, statusID uint) (*entity.Restaurant, error) {
	rest, err := s.RestRepo.FindByID(restID)
	if err != nil {
		return nil, err
	}
	rest.RestaurantStatusID = statusID
	if err := s.RestRepo.Update(rest); err != nil {
		return nil, err
	}
	return s.RestRepo.FindByID(restID)
}

// ---- Users ----

func (s *AdminService) ListUsers(role string) ([]entity.User, error) {
	return s.UserRepo.FindAll(role)
}

func (s *AdminService) SetUserRole(userID uint, role string) error {
	switch role {
	case "customer", "owner", "admin":
	default:
		return errors.New("unknown role")
	}
	return s.UserRepo.Update(userID, map[string]any{"role": role})
}

// CreateUser lets the console pre-provision owner accounts.
func (s *AdminService) CreateUser(email, password, firstName, lastName, role string, orgID *uint) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	count, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Email:          email,
		Password:       string(hashed),
		FirstName:      firstName,
		LastName:       lastName,
		Role:           role,
		OrganizationID: orgID,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Dashboard counts for the console landing page.
func (s *AdminService) Dashboard() (map[string]int64, error) {
	db := s.RestRepo.DB
	counts := map[string]int64{}
	for name, model := range map[string]any{
		"organizations": &entity.Organization{},
		"restaurants":   &entity.Restaurant{},
		"users":         &entity.User{},
		"reservations":  &entity.Reservation{},
		"reviews":       &entity.Review{},
	} {
		var n int64
		if err := db.Model(model).Count(&n).Error; err != nil {
			return nil, err
		}
		counts[name] = n
	}
	return counts, nil
}

// IsNotFound reports whether an error is the gorm missing-row case; shared by
// controllers mapping service errors onto status codes.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
