package mailer

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends transactional reservation mail through SendGrid. With no API
// key configured it logs and drops the message, so local setups work without
// credentials.
type Mailer struct {
	apiKey   string
	fromName string
	fromAddr string
}

func New(apiKey, fromName, fromAddr string) *Mailer {
	return &Mailer{apiKey: apiKey, fromName: fromName, fromAddr: fromAddr}
}

func (m *Mailer) send(toName, toAddr, subject, plain string) error {
	if m.apiKey == "" {
		log.Printf("[MAILER] no api key, skipping mail to %s: %s", toAddr, subject)
		return nil
	}

	from := mail.NewEmail(m.fromName, m.fromAddr)
	to := mail.NewEmail(toName, toAddr)
	message := mail.NewSingleEmail(from, subject, to, plain, plain)

	client := sendgrid.NewSendClient(m.apiKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// SendReservationConfirmation mails the guest their confirmation code.
func (m *Mailer) SendReservationConfirmation(toName, toAddr, restaurant, date, timeOfDay, code string, party int) error {
	subject := fmt.Sprintf("Reservation received at %s", restaurant)
	body := fmt.Sprintf(
		"Hi %s,\n\nWe received your reservation at %s for %d guest(s) on %s at %s.\n"+
			"Your confirmation code is %s. The restaurant will confirm shortly.\n",
		toName, restaurant, party, date, timeOfDay, code)
	return m.send(toName, toAddr, subject, body)
}

// SendReservationReminder mails the guest the day before a confirmed visit.
func (m *Mailer) SendReservationReminder(toName, toAddr, restaurant, date, timeOfDay string, party int) error {
	subject := fmt.Sprintf("Reminder: your table at %s", restaurant)
	body := fmt.Sprintf(
		"Hi %s,\n\nA reminder of your reservation at %s for %d guest(s) on %s at %s.\nSee you soon!\n",
		toName, restaurant, party, date, timeOfDay)
	return m.send(toName, toAddr, subject, body)
}
