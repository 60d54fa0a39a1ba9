package entity

import (
	"gorm.io/gorm"
)

// Organization is the tenant boundary: every restaurant belongs to exactly one.
type Organization struct {
	gorm.Model
	Name         string `gorm:"size:200;not null" json:"name"`
	ContactEmail string `json:"contactEmail"`

	Restaurants []Restaurant `json:"-"`
	Users       []User       `gorm:"foreignKey:OrganizationID" json:"-"`
}
