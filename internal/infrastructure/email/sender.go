// Package email implements the EmailSender port over SMTP (gomail). When SMTP
// is not configured the sender runs in mock mode and only logs the message,
// so local development works without a mail server.
package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/insuretrack/insuretrack-api/internal/application/ports"
	"github.com/insuretrack/insuretrack-api/pkg/config"
	"github.com/insuretrack/insuretrack-api/pkg/logger"
)

var _ ports.EmailSender = (*Sender)(nil)

// Sender sends transactional mail via SMTP.
type Sender struct {
	cfg     config.SMTPConfig
	baseURL string
	log     *logger.Logger
}

// NewSender builds the mail adapter. baseURL is used for reset links.
func NewSender(cfg config.SMTPConfig, baseURL string, log *logger.Logger) *Sender {
	return &Sender{cfg: cfg, baseURL: baseURL, log: log}
}

// SendPasswordReset mails a single-use reset link to the account holder.
func (s *Sender) SendPasswordReset(to, username, token string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, token)
	subject, body := passwordResetBody(username, resetLink)
	return s.send(to, subject, body)
}

// SendBrokerNotice mails a compliance deficiency summary to a broker.
func (s *Sender) SendBrokerNotice(to, subject, body string) error {
	return s.send(to, subject, body)
}

func (s *Sender) send(to, subject, body string) error {
	if !s.cfg.Configured() {
		s.log.Info().
			Str("to", to).
			Str("subject", subject).
			Msg("smtp not configured, mail logged only")
		return nil
	}

	m := gomail.NewMessage()
	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("email: send to %s: %w", to, err)
	}
	s.log.Info().Str("to", to).Str("subject", subject).Msg("mail sent")
	return nil
}

func passwordResetBody(username, resetLink string) (subject, body string) {
	subject = "Reset Your Password - INsuretrack"
	body = fmt.Sprintf(`Hello %s,

You requested to reset your password for your INsuretrack account.

Click the link below to reset your password:
%s

This link expires in 1 hour. If you did not request a reset, you can ignore
this message and your password will remain unchanged.

The INsuretrack Team`, username, resetLink)
	return subject, body
}
