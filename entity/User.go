package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `gorm:"not null;default:customer" json:"role"` // customer / owner / admin

	// owners and admins are attached to a tenant
	OrganizationID *uint         `json:"organizationId,omitempty"`
	Organization   *Organization `json:"-"`

	// Relations, preload only when needed
	RestaurantsOwned []Restaurant  `gorm:"foreignKey:OwnerID" json:"-"`
	Reservations     []Reservation `json:"-"`
	Reviews          []Review      `json:"-"`
}
