package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	MenuName string `json:"menuName"`
	Detail   string `json:"detail"`
	Price    int64  `json:"price"` // cents
	Picture  string `json:"picture"`

	MenuTypeID uint     `json:"menuTypeId"`
	MenuType   MenuType `json:"-"` // preload on detail only

	MenuStatusID uint       `json:"menuStatusId"`
	MenuStatus   MenuStatus `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
