package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer is the thin SMTP relay behind event reminders.
type Mailer struct {
	cfg SMTPConfig
}

func New(cfg SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) SendReminder(to, eventTitle string, start time.Time) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Reminder: %s", eventTitle))
	msg.SetBody("text/plain", ReminderBody(eventTitle, start))

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	return d.DialAndSend(msg)
}

func ReminderBody(eventTitle string, start time.Time) string {
	return fmt.Sprintf("The event %q starts tomorrow at %s.",
		eventTitle, start.In(time.Local).Format("15:04"))
}
