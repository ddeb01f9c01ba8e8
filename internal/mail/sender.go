package mail

import (
	"errors"
	"fmt"
	"net/smtp"
)

// Sender delivers a composed message. The production implementation is
// SMTPSender; tests substitute their own.
type Sender interface {
	Send(msg *Message) error
}

// SMTPSender delivers messages through a plain SMTP relay. Credentials
// come from configuration, never from package state.
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Validate checks that the sender is configured well enough to attempt
// delivery.
func (s *SMTPSender) Validate() error {
	if s.Host == "" {
		return errors.New("smtp host not configured")
	}
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("smtp port %d out of range", s.Port)
	}
	return nil
}

// Send encodes and delivers msg in a single attempt.
func (s *SMTPSender) Send(msg *Message) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}

	data, err := msg.Encode()
	if err != nil {
		return err
	}

	var auth smtp.Auth
	if s.Username != "" {
		auth = smtp.PlainAuth("", s.Username, s.Password, s.Host)
	}

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	if err := smtp.SendMail(addr, auth, msg.From, msg.To, data); err != nil {
		return fmt.Errorf("sending via %s: %w", addr, err)
	}
	return nil
}
