package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer отправляет уведомления по SMTP. Отправка синхронная,
// вызывающая сторона сама решает, критична ли ошибка.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("gateway mailer, send to %s: %w", to, err)
	}

	return nil
}
