package mail

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"

	"museum-ticketing/config"
	"museum-ticketing/internal/model"
	"museum-ticketing/internal/ticket"

	"github.com/domodwyer/mailyak/v3"
)

// Mailer 通知派送邊界：失敗只回報，絕不回滾已提交的訂票
type Mailer interface {
	SendTicket(ctx context.Context, booking *model.Booking, artifact *ticket.Artifact) error
}

type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) Mailer {
	return &SMTPMailer{cfg: cfg}
}

func ticketEmailBody(booking *model.Booking) string {
	return fmt.Sprintf(`Hello Visitor,

Thank you for booking with PixelPast!

Your booking details:
Museum: %s
Date: %s
Tickets: %d
Booking ID: %s

Your official ticket is attached to this email. Please show it at the entrance.

Enjoy your visit!

Best regards,
The PixelPast Team
`, booking.MuseumName, booking.TourDate, booking.Tickets, booking.BookingID)
}

func (m *SMTPMailer) SendTicket(ctx context.Context, booking *model.Booking, artifact *ticket.Artifact) error {
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	msg := mailyak.New(fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port), auth)
	msg.From(m.cfg.From)
	msg.FromName(m.cfg.FromName)
	msg.To(booking.Email)
	msg.Subject(fmt.Sprintf("Booking Confirmation: %s", booking.MuseumName))
	msg.Plain().Set(ticketEmailBody(booking))
	msg.AttachWithMimeType(artifact.Filename, bytes.NewReader(artifact.Data), artifact.ContentType)

	// SMTP 對話本身不吃 ctx，用 goroutine 讓呼叫端的逾時生效
	done := make(chan error, 1)
	go func() {
		done <- msg.Send()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send ticket email: %w", err)
		}
		return nil
	}
}
