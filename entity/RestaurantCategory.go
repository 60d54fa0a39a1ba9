package entity

import (
	"gorm.io/gorm"
)

type RestaurantCategory struct {
	gorm.Model
	CategoryName string `gorm:"size:100;uniqueIndex;not null" json:"categoryName"`

	Restaurants []Restaurant `gorm:"foreignKey:RestaurantCategoryID" json:"-"`
}
