// jobs/reservation_scheduler.go
package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/niksankarkee/restosaas-sub000/pkg/mailer"
	"github.com/niksankarkee/restosaas-sub000/repository"
)

// ReservationScheduler runs the nightly reservation sweep: confirmed
// reservations whose date has passed become Completed, and guests with a
// confirmed table tomorrow get a reminder mail.
type ReservationScheduler struct {
	Repo   *repository.ReservationRepository
	Mailer *mailer.Mailer
}

func NewReservationScheduler(repo *repository.ReservationRepository, m *mailer.Mailer) *ReservationScheduler {
	return &ReservationScheduler{Repo: repo, Mailer: m}
}

// Start registers the cron entries and starts the scheduler in its own
// goroutines (robfig/cron runs jobs off the caller's thread).
func (s *ReservationScheduler) Start() *cron.Cron {
	c := cron.New()

	// nightly at 03:00, close out yesterday's confirmed reservations
	c.AddFunc("0 3 * * *", func() {
		log.Println("[RESERVATION-SCHEDULER] completing past confirmed reservations...")
		s.CompletePast(time.Now())
	})

	// daily at 09:00, remind tomorrow's guests
	c.AddFunc("0 9 * * *", func() {
		log.Println("[RESERVATION-SCHEDULER] sending next-day reminders...")
		s.SendReminders(time.Now())
	})

	c.Start()
	log.Println("[RESERVATION-SCHEDULER] started")
	return c
}

// CompletePast marks confirmed reservations dated before today as Completed.
func (s *ReservationScheduler) CompletePast(now time.Time) {
	today := now.Format("2006-01-02")

	past, err := s.Repo.FindConfirmedBefore(today)
	if err != nil {
		log.Printf("[RESERVATION-SCHEDULER] fetch past confirmed failed: %v", err)
		return
	}
	if len(past) == 0 {
		return
	}

	completedID, err := s.Repo.StatusID("Completed")
	if err != nil {
		log.Printf("[RESERVATION-SCHEDULER] status lookup failed: %v", err)
		return
	}
	for _, res := range past {
		if err := s.Repo.UpdateStatus(res.ID, completedID); err != nil {
			log.Printf("[RESERVATION-SCHEDULER] complete %d failed: %v", res.ID, err)
		}
	}
	log.Printf("[RESERVATION-SCHEDULER] completed %d reservation(s)", len(past))
}

// SendReminders mails every confirmed guest booked for tomorrow.
func (s *ReservationScheduler) SendReminders(now time.Time) {
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

	list, err := s.Repo.FindConfirmedOnDate(tomorrow)
	if err != nil {
		log.Printf("[RESERVATION-SCHEDULER] fetch reminders failed: %v", err)
		return
	}
	for _, res := range list {
		if err := s.Mailer.SendReservationReminder(
			res.CustomerName, res.CustomerEmail, res.Restaurant.Name,
			res.Date, res.Time, res.Party,
		); err != nil {
			log.Printf("[RESERVATION-SCHEDULER] reminder for %s failed: %v", res.ConfirmationCode, err)
		}
	}
	if len(list) > 0 {
		log.Printf("[RESERVATION-SCHEDULER] sent %d reminder(s)", len(list))
	}
}
