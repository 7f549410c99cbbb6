package mailer

import (
	"context"
	"fmt"
	"io"
	"time"

	"gopkg.in/gomail.v2"

	"vacation-tracker/internal/config"
)

// Mailer - внешняя почтовая возможность: получатель, тема, тело и вложения
type Mailer interface {
	Send(ctx context.Context, to, subject, body string, attachments map[string][]byte) error
}

// SMTPMailer отправляет почту через SMTP-сервер с ограничением по времени
type SMTPMailer struct {
	dialer  *gomail.Dialer
	from    string
	timeout time.Duration
}

// NewSMTPMailer создает новый экземпляр SMTPMailer
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:    cfg.From,
		timeout: cfg.Timeout,
	}
}

// Send отправляет письмо. Вызов ограничен таймаутом из конфигурации:
// зависшее SMTP-соединение считается ошибкой доставки, а не блокирует процесс.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string, attachments map[string][]byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	for name, data := range attachments {
		data := data
		msg.Attach(name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}))
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("ошибка отправки письма: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("отправка письма прервана по таймауту: %w", ctx.Err())
	}
}
