// Package mailer sends portfolio notification mail and issues the signed
// tokens used by the email-verification endpoint.
package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

// Notifier is the narrow interface services depend on; tests swap in a fake.
type Notifier interface {
	Notify(subject, body string) error
}

// Mailer sends mail over SMTP with PLAIN auth. Credentials come from the
// MAIL_USERNAME / MAIL_PASSWORD environment variables via config.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	to       string
	logger   *slog.Logger
}

// New creates a mailer. An empty username disables sending; Notify then
// logs and returns nil so contact submissions never fail on mail setup.
func New(host, port, username, password, to string, logger *slog.Logger) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		to:       to,
		logger:   logger,
	}
}

// Notify sends a plain-text mail to the configured recipient.
func (m *Mailer) Notify(subject, body string) error {
	if m.username == "" || m.to == "" {
		m.logger.Debug("mail disabled, skipping notification", "subject", subject)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + m.username,
		"To: " + m.to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	addr := m.host + ":" + m.port
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	if err := smtp.SendMail(addr, auth, m.username, []string{m.to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	m.logger.Info("notification mail sent", "subject", subject)
	return nil
}
