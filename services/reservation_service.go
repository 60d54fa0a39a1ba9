// services/reservation_service.go
package services

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/niksankarkee/restosaas-sub000/availability"
	"github.com/niksankarkee/restosaas-sub000/entity"
	"github.com/niksankarkee/restosaas-sub000/pkg/mailer"
	"github.com/niksankarkee/restosaas-sub000/repository"
)

const DefaultDurationMinutes = 90

var (
	ErrClosedDay       = errors.New("restaurant is closed on that date")
	ErrBadDate         = errors.New("invalid date, expected YYYY-MM-DD")
	ErrNoSuchSlot      = errors.New("time is not a bookable slot on that date")
	ErrNotEnoughSeats  = errors.New("not enough seats available at that time")
	ErrBadTransition   = errors.New("reservation cannot change to that state")
	ErrCourseMismatch  = errors.New("course not offered by this restaurant")
	ErrCourseInactive  = errors.New("course is not currently offered")
	ErrAlreadyResolved = errors.New("reservation already cancelled or completed")
)

// legal lifecycle moves, keyed by current status name
var transitions = map[string]map[string]bool{
	"Pending":   {"Confirmed": true, "Cancelled": true},
	"Confirmed": {"Completed": true, "Cancelled": true},
}

type ReservationService struct {
	Repo       *repository.ReservationRepository
	RestRepo   *repository.RestaurantRepository
	CourseRepo *repository.CourseRepository
	Mailer     *mailer.Mailer
}

func NewReservationService(
	repo *repository.ReservationRepository,
	restRepo *repository.RestaurantRepository,
	courseRepo *repository.CourseRepository,
	m *mailer.Mailer,
) *ReservationService {
	return &ReservationService{
		Repo:       repo,
		RestRepo:   restRepo,
		CourseRepo: courseRepo,
		Mailer:     m,
	}
}

// Slots answers "what can I book at this restaurant on this date" with
// remaining seats per slot for the requested party.
func (s *ReservationService) Slots(slug, dateStr string, party int) ([]availability.Slot, error) {
	rest, err := s.RestRepo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrBadDate
	}

	slots := availability.GenerateSlots(Windows(rest.OpeningHours), date, availability.DefaultGranularityMinutes)
	if len(slots) == 0 {
		return slots, nil
	}

	booked, err := s.Repo.BookedSeatsByTime(rest.ID, dateStr)
	if err != nil {
		// degrade to full capacity rather than failing the lookup
		log.Printf("booked-seats query failed for %s %s: %v", slug, dateStr, err)
		booked = map[string]int{}
	}
	return availability.Annotate(slots, rest.Capacity, booked, party), nil
}

// Dates feeds the date picker: horizon consecutive days flagged open/closed.
func (s *ReservationService) Dates(slug, fromStr string, horizonDays int) ([]availability.DateInfo, error) {
	rest, err := s.RestRepo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	from := time.Now()
	if fromStr != "" {
		from, err = time.Parse("2006-01-02", fromStr)
		if err != nil {
			return nil, ErrBadDate
		}
	}
	return availability.ListDates(Windows(rest.OpeningHours), from, horizonDays), nil
}

type CreateReservationInput struct {
	RestaurantSlug  string
	Date            string // YYYY-MM-DD
	Time            string // HH:MM
	Party           int
	CourseID        *uint
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	SpecialRequests string
	UserID          *uint // nil for guests
}

// Create books a slot. Seat capacity is re-checked inside a transaction so
// two simultaneous bookings cannot oversell a slot.
func (s *ReservationService) Create(in CreateReservationInput) (*entity.Reservation, error) {
	rest, err := s.RestRepo.FindBySlug(in.RestaurantSlug)
	if err != nil {
		return nil, err
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, ErrBadDate
	}

	slots := availability.GenerateSlots(Windows(rest.OpeningHours), date, availability.DefaultGranularityMinutes)
	if len(slots) == 0 {
		return nil, ErrClosedDay
	}
	validTime := false
	for _, slot := range slots {
		if slot.Time == in.Time {
			validTime = true
			break
		}
	}
	if !validTime {
		return nil, ErrNoSuchSlot
	}

	if in.CourseID != nil {
		course, err := s.CourseRepo.FindByID(*in.CourseID)
		if err != nil {
			return nil, ErrCourseMismatch
		}
		if course.RestaurantID != rest.ID {
			return nil, ErrCourseMismatch
		}
		if !course.IsActive {
			return nil, ErrCourseInactive
		}
	}

	res := &entity.Reservation{
		RestaurantID:     rest.ID,
		Date:             in.Date,
		Time:             in.Time,
		DurationMinutes:  DefaultDurationMinutes,
		Party:            in.Party,
		CustomerName:     in.CustomerName,
		CustomerEmail:    in.CustomerEmail,
		CustomerPhone:    in.CustomerPhone,
		SpecialRequests:  in.SpecialRequests,
		ConfirmationCode: uuid.NewString(),
		UserID:           in.UserID,
		CourseID:         in.CourseID,
	}

	err = s.Repo.DB.Transaction(func(tx *gorm.DB) error {
		txRepo := repository.NewReservationRepository(tx)

		statusID, err := txRepo.StatusID("Pending")
		if err != nil {
			return err
		}
		res.ReservationStatusID = statusID

		booked, err := txRepo.BookedSeatsByTime(rest.ID, in.Date)
		if err != nil {
			return err
		}
		if rest.Capacity-booked[in.Time] < in.Party {
			return ErrNotEnoughSeats
		}

		return txRepo.Create(res)
	})
	if err != nil {
		return nil, err
	}

	if s.Mailer != nil {
		if err := s.Mailer.SendReservationConfirmation(
			res.CustomerName, res.CustomerEmail, rest.Name,
			res.Date, res.Time, res.ConfirmationCode, res.Party,
		); err != nil {
			log.Printf("confirmation mail failed for %s: %v", res.ConfirmationCode, err)
		}
	}

	return res, nil
}

func (s *ReservationService) ListForUser(userID uint) ([]entity.Reservation, error) {
	return s.Repo.FindByUser(userID)
}

func (s *ReservationService) ListForRestaurant(restID uint, date string) ([]entity.Reservation, error) {
	return s.Repo.FindByRestaurantAndDate(restID, date)
}

// Transition moves a reservation along its lifecycle; anything outside the
// transitions table is rejected.
func (s *ReservationService) Transition(id uint, target string) (*entity.Reservation, error) {
	res, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	current := res.ReservationStatus.StatusName
	if allowed := transitions[current]; !allowed[target] {
		return nil, ErrBadTransition
	}

	statusID, err := s.Repo.StatusID(target)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateStatus(id, statusID); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

// CancelByCode cancels via the confirmation code the guest received by mail.
// The code acts as the capability; no account is required.
func (s *ReservationService) CancelByCode(code string) (*entity.Reservation, error) {
	res, err := s.Repo.FindByCode(code)
	if err != nil {
		return nil, err
	}

	current := res.ReservationStatus.StatusName
	if current != "Pending" && current != "Confirmed" {
		return nil, ErrAlreadyResolved
	}

	statusID, err := s.Repo.StatusID("Cancelled")
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateStatus(res.ID, statusID); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(res.ID)
}
