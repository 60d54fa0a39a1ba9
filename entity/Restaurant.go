package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"size:200;not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Address     string `json:"address"`
	Description string `json:"description"`
	PhoneNumber string `json:"phoneNumber"`
	Capacity    int    `gorm:"not null;default:0" json:"capacity"` // total seats

	RestaurantCategoryID uint               `json:"categoryId"`
	RestaurantCategory   RestaurantCategory `json:"-"`
	RestaurantStatusID   uint               `json:"statusId"`
	RestaurantStatus     RestaurantStatus   `json:"-"`

	OrganizationID uint         `json:"organizationId"`
	Organization   Organization `json:"-"`

	OwnerID uint `json:"ownerId"` // users.id
	Owner   User `gorm:"foreignKey:OwnerID" json:"-"`

	OpeningHours []OpeningHour     `json:"-"`
	Images       []RestaurantImage `json:"-"`
	Menus        []Menu            `json:"-"`
	Courses      []Course          `json:"-"`
	Reservations []Reservation     `json:"-"`
	Reviews      []Review          `json:"-"`
}
