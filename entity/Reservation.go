package entity

import (
	"gorm.io/gorm"
)

type Reservation struct {
	gorm.Model
	Date            string `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	Time            string `gorm:"size:5;not null" json:"time"`        // HH:MM, slot aligned
	DurationMinutes int    `gorm:"not null;default:90" json:"durationMinutes"`
	Party           int    `gorm:"not null" json:"party"`

	// guest snapshot, kept even when the reservation has a user account
	CustomerName    string `gorm:"not null" json:"customerName"`
	CustomerEmail   string `gorm:"not null" json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	SpecialRequests string `json:"specialRequests"`

	ConfirmationCode string `gorm:"uniqueIndex;not null" json:"confirmationCode"`

	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	UserID *uint `json:"userId,omitempty"` // nil for guest bookings
	User   *User `json:"-"`

	CourseID *uint   `json:"courseId,omitempty"`
	Course   *Course `json:"-"`

	ReservationStatusID uint              `json:"statusId"`
	ReservationStatus   ReservationStatus `json:"status"`
}
