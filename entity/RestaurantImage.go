package entity

import (
	"gorm.io/gorm"
)

// RestaurantImage lives under /uploads on disk; at most one image per
// restaurant carries IsMain.
type RestaurantImage struct {
	gorm.Model
	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Path     string `gorm:"not null" json:"path"`
	IsMain   bool   `gorm:"default:false" json:"isMain"`
	Position int    `gorm:"default:0" json:"position"`
}
