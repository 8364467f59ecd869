// Package mailer delivers transactional email over SMTP.
package mailer

import (
	"context"
	"fmt"

	mail "github.com/go-mail/mail"

	"github.com/gymgrid/gymgrid-backend/pkg/config"
)

// Sender delivers platform email. Implementations must be safe for
// concurrent use.
type Sender interface {
	SendPasswordReset(ctx context.Context, to, token string) error
}

type dialer interface {
	DialAndSend(...*mail.Message) error
}

// SMTPSender delivers mail through a single SMTP relay.
type SMTPSender struct {
	from   string
	dialer dialer
}

// NewSMTPSender builds a sender from SMTP config.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		from:   cfg.DefaultFrom,
		dialer: mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// SendPasswordReset mails the reset token to the account address. The
// context is consulted before dialing; go-mail itself does not support
// cancellation mid-send.
func (s *SMTPSender) SendPasswordReset(ctx context.Context, to, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Reset your GymGrid password")
	m.SetBody("text/plain", fmt.Sprintf(
		"A password reset was requested for this account.\n\n"+
			"Reset token: %s\n\n"+
			"The token expires in one hour. If you did not request this, ignore this email.\n",
		token,
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
