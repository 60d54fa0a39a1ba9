package entity

import (
	"gorm.io/gorm"
)

type ReservationStatus struct {
	gorm.Model
	StatusName string `gorm:"size:100;uniqueIndex;not null" json:"statusName"`

	Reservations []Reservation `json:"-"`
}
