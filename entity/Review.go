package entity

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating     int       `json:"rating"`
	Comments   string    `json:"comments"`
	ReviewDate time.Time `json:"reviewDate"`

	UserID       uint       `gorm:"not null;uniqueIndex:idx_user_restaurant_review" json:"userId"`
	User         User       `json:"-"`
	RestaurantID uint       `gorm:"not null;uniqueIndex:idx_user_restaurant_review" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
