package entity

import (
	"gorm.io/gorm"
)

// OpeningHour is one weekday's service window. Exactly one row per weekday 0-6
// (0 = Sunday) per restaurant; times are wall-clock "HH:MM", 24-hour, and when
// IsClosed is false OpenTime must be before CloseTime (no overnight windows).
type OpeningHour struct {
	gorm.Model
	RestaurantID uint       `gorm:"not null;uniqueIndex:idx_restaurant_weekday" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Weekday   int    `gorm:"not null;uniqueIndex:idx_restaurant_weekday" json:"weekday"` // 0=Sunday .. 6=Saturday
	OpenTime  string `gorm:"size:5" json:"openTime"`
	CloseTime string `gorm:"size:5" json:"closeTime"`
	IsClosed  bool   `gorm:"default:false" json:"isClosed"`
}
