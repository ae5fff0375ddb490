package mail

import (
	"context"
	"errors"
	"fmt"

	"edu_crm/internal/logger"

	"gopkg.in/gomail.v2"
)

// SMTPProvider is one SMTP relay.
type SMTPProvider struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPSender tries each provider in order until one accepts the message.
type SMTPSender struct {
	from      string
	fromName  string
	providers []SMTPProvider
	dial      func(p SMTPProvider, m *gomail.Message) error
}

func NewSMTPSender(from, fromName string, providers ...SMTPProvider) *SMTPSender {
	return &SMTPSender{
		from:      from,
		fromName:  fromName,
		providers: providers,
		dial: func(p SMTPProvider, m *gomail.Message) error {
			return gomail.NewDialer(p.Host, p.Port, p.Username, p.Password).DialAndSend(m)
		},
	}
}

func (s *SMTPSender) Name() string { return ProviderSMTP }

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if len(s.providers) == 0 {
		return errors.New("no smtp provider configured")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.fromName)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetBody("text/html", msg.HTML)

	var errs []error
	for i, p := range s.providers {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := s.dial(p, m)
		if err == nil {
			if i > 0 {
				logger.WithModule("mail").WithField("host", p.Host).Warn("email sent through fallback smtp provider")
			}
			return nil
		}
		logger.WithModule("mail").WithError(err).WithField("host", p.Host).Warn("smtp provider failed")
		errs = append(errs, fmt.Errorf("%s: %w", p.Host, err))
	}
	return fmt.Errorf("all smtp providers failed: %w", errors.Join(errs...))
}
