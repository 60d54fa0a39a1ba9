// repository/reservation_repository.go
package repository

import (
	"gorm.io/gorm"

	"github.com/niksankarkee/restosaas-sub000/entity"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

// StatusID resolves a lifecycle name ("Pending", ...) to its lookup row id.
func (r *ReservationRepository) StatusID(name string) (uint, error) {
	var status entity.ReservationStatus
	if err := r.DB.Where("status_name = ?", name).First(&status).Error; err != nil {
		return 0, err
	}
	return status.ID, nil
}

func (r *ReservationRepository) FindByID(id uint) (*entity.Reservation, error) {
	var res entity.Reservation
	err := r.DB.
		Preload("ReservationStatus").
		Preload("Course").
		First(&res, id).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) FindByCode(code string) (*entity.Reservation, error) {
	var res entity.Reservation
	err := r.DB.
		Preload("ReservationStatus").
		Preload("Restaurant").
		Where("confirmation_code = ?", code).
		First(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) FindByUser(userID uint) ([]entity.Reservation, error) {
	var list []entity.Reservation
	err := r.DB.
		Preload("ReservationStatus").
		Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("date DESC, time DESC").
		Find(&list).Error
	return list, err
}

func (r *ReservationRepository) FindByRestaurantAndDate(restID uint, date string) ([]entity.Reservation, error) {
	var list []entity.Reservation
	q := r.DB.
		Preload("ReservationStatus").
		Preload("Course").
		Where("restaurant_id = ?", restID)
	if date != "" {
		q = q.Where("date = ?", date)
	}
	err := q.Order("date, time").Find(&list).Error
	return list, err
}

// BookedSeatsByTime sums committed party sizes per slot for one date.
// Cancelled reservations do not hold seats.
func (r *ReservationRepository) BookedSeatsByTime(restID uint, date string) (map[string]int, error) {
	cancelledID, err := r.StatusID("Cancelled")
	if err != nil {
		return nil, err
	}

	type row struct {
		Time  string
		Seats int
	}
	var rows []row
	err = r.DB.Model(&entity.Reservation{}).
		Select("time, SUM(party) AS seats").
		Where("restaurant_id = ? AND date = ? AND reservation_status_id <> ?", restID, date, cancelledID).
		Group("time").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	booked := make(map[string]int, len(rows))
	for _, r := range rows {
		booked[r.Time] = r.Seats
	}
	return booked, nil
}

func (r *ReservationRepository) Create(res *entity.Reservation) error {
	return r.DB.Create(res).Error
}

func (r *ReservationRepository) UpdateStatus(id, statusID uint) error {
	return r.DB.Model(&entity.Reservation{}).
		Where("id = ?", id).
		Update("reservation_status_id", statusID).Error
}

// FindConfirmedBefore lists confirmed reservations dated strictly before the
// given day. The nightly sweep marks these completed.
func (r *ReservationRepository) FindConfirmedBefore(date string) ([]entity.Reservation, error) {
	confirmedID, err := r.StatusID("Confirmed")
	if err != nil {
		return nil, err
	}
	var list []entity.Reservation
	err = r.DB.
		Where("reservation_status_id = ? AND date < ?", confirmedID, date).
		Find(&list).Error
	return list, err
}

// FindConfirmedOnDate lists confirmed reservations for a single day, with the
// restaurant preloaded for reminder mail.
func (r *ReservationRepository) FindConfirmedOnDate(date string) ([]entity.Reservation, error) {
	confirmedID, err := r.StatusID("Confirmed")
	if err != nil {
		return nil, err
	}
	var list []entity.Reservation
	err = r.DB.
		Preload("Restaurant").
		Where("reservation_status_id = ? AND date = ?", confirmedID, date).
		Find(&list).Error
	return list, err
}
