package entity

import (
	"gorm.io/gorm"
)

// Course is a prix-fixe offering a guest can attach to a reservation.
type Course struct {
	gorm.Model
	Name        string `gorm:"size:200;not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // cents
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Reservations []Reservation `json:"-"`
}
