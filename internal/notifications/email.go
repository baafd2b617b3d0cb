package notifications

import (
	"fmt"
	"net/smtp"
	"strings"

	"gatherly/internal/shared/config"
	"gatherly/pkg/logger"
)

// EmailSender delivers the rendered booking emails.
type EmailSender interface {
	SendBookingConfirmation(n *BookingNotification) error
	SendBookingCancellation(n *BookingNotification) error
}

// NewEmailSender returns an SMTP sender when SMTP is configured and a
// log-only sender otherwise, so local runs work without a mail relay.
func NewEmailSender(cfg config.EmailConfig, log *logger.Logger) EmailSender {
	if cfg.SMTPHost == "" {
		return &logEmailSender{log: log}
	}
	return &smtpEmailSender{cfg: cfg, log: log}
}

type smtpEmailSender struct {
	cfg config.EmailConfig
	log *logger.Logger
}

func (s *smtpEmailSender) SendBookingConfirmation(n *BookingNotification) error {
	subject := fmt.Sprintf("Booking confirmed: %s", n.EventTitle)
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour booking for %s on %s at %s is confirmed.\r\nSeats: %s\r\nTickets: %d\r\nTotal: %.2f\r\n\r\nSee you there!\r\nGatherly",
		n.UserName, n.EventTitle, n.EventDate, n.EventTime,
		strings.Join(n.SeatLabels, ", "), n.NumTickets, n.TotalPrice,
	)
	return s.send(n.UserEmail, subject, body)
}

func (s *smtpEmailSender) SendBookingCancellation(n *BookingNotification) error {
	subject := fmt.Sprintf("Booking cancelled: %s", n.EventTitle)
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour booking for %s on %s has been cancelled.\r\nSeats released: %s\r\n\r\nGatherly",
		n.UserName, n.EventTitle, n.EventDate,
		strings.Join(n.SeatLabels, ", "),
	)
	return s.send(n.UserEmail, subject, body)
}

func (s *smtpEmailSender) send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)

	message := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n",
		s.cfg.FromEmail, to, subject, body,
	))

	if err := smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	s.log.Info("email sent", "to", to, "subject", subject)
	return nil
}

// logEmailSender records what would have been sent.
type logEmailSender struct {
	log *logger.Logger
}

func (s *logEmailSender) SendBookingConfirmation(n *BookingNotification) error {
	s.log.Info("booking confirmation email (smtp disabled)",
		"to", n.UserEmail, "event", n.EventTitle, "seats", strings.Join(n.SeatLabels, ", "))
	return nil
}

func (s *logEmailSender) SendBookingCancellation(n *BookingNotification) error {
	s.log.Info("booking cancellation email (smtp disabled)",
		"to", n.UserEmail, "event", n.EventTitle)
	return nil
}
