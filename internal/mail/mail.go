// Package mail sends transactional email through Resend or SMTP.
package mail

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"edu_crm/config"
	"edu_crm/internal/common"
	"edu_crm/internal/logger"
	"edu_crm/internal/metrics"
)

const (
	ProviderResend = "resend"
	ProviderSMTP   = "smtp"
)

// Message is a provider independent email.
type Message struct {
	To      []string
	Subject string
	HTML    string
	ReplyTo string
}

// Sender delivers a Message through one provider.
type Sender interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

// Service picks a Sender by name, falling back to the configured default.
type Service struct {
	senders     map[string]Sender
	defaultName string
	adminInbox  string
}

// NewService registers every sender the configuration can build.
func NewService(cfg *config.Configuration) (*Service, error) {
	var senders []Sender
	if cfg.ResendAPIKey != "" {
		senders = append(senders, NewResendSender(cfg.ResendAPIKey, formatFrom(cfg.MailFromName, cfg.MailFrom)))
	}
	if cfg.SMTPHost != "" {
		providers := []SMTPProvider{{Host: cfg.SMTPHost, Port: cfg.SMTPPort, Username: cfg.SMTPUsername, Password: cfg.SMTPPassword}}
		if cfg.SMTPFallbackHost != "" {
			providers = append(providers, SMTPProvider{Host: cfg.SMTPFallbackHost, Port: cfg.SMTPFallbackPort, Username: cfg.SMTPFallbackUser, Password: cfg.SMTPFallbackPasswd})
		}
		senders = append(senders, NewSMTPSender(cfg.MailFrom, cfg.MailFromName, providers...))
	}
	if len(senders) == 0 {
		return nil, fmt.Errorf("no mail provider configured")
	}
	return NewServiceWith(cfg.MailProvider, cfg.MailAdminInbox, senders...), nil
}

// NewServiceWith builds a Service from explicit senders. An unknown defaultName selects the first sender.
func NewServiceWith(defaultName, adminInbox string, senders ...Sender) *Service {
	s := &Service{senders: map[string]Sender{}, adminInbox: adminInbox}
	for _, snd := range senders {
		s.senders[snd.Name()] = snd
	}
	if _, ok := s.senders[defaultName]; ok {
		s.defaultName = defaultName
	} else if len(senders) > 0 {
		s.defaultName = senders[0].Name()
	}
	return s
}

// AdminInbox is the address contact-form submissions go to.
func (s *Service) AdminInbox() string {
	return s.adminInbox
}

// DefaultProvider is the sender used when a message names none.
func (s *Service) DefaultProvider() string {
	return s.defaultName
}

// Providers lists the configured sender names.
func (s *Service) Providers() []string {
	names := make([]string, 0, len(s.senders))
	for n := range s.senders {
		names = append(names, n)
	}
	return names
}

// Send delivers msg through provider, or the default provider when empty.
// A Service without senders answers ErrMailUnavailable.
func (s *Service) Send(ctx context.Context, provider string, msg Message) error {
	if len(s.senders) == 0 {
		return common.ErrMailUnavailable
	}
	if provider == "" {
		provider = s.defaultName
	}
	sender, ok := s.senders[provider]
	if !ok {
		return common.WithDetails(common.ErrInvalidInput, "unknown mail provider: "+provider)
	}
	if len(msg.To) == 0 {
		return common.WithDetails(common.ErrRequiredField, "to")
	}
	for _, to := range msg.To {
		if err := validateEmailAddress(to); err != nil {
			return common.WithDetails(common.ErrInvalidInput, err.Error())
		}
	}

	err := sender.Send(ctx, msg)
	metrics.MailDeliveries.WithLabelValues(sender.Name(), metrics.Outcome(err)).Inc()
	log := logger.WithModule("mail").WithFields(map[string]interface{}{
		"provider":   sender.Name(),
		"recipients": len(msg.To),
		"subject":    msg.Subject,
	})
	if err != nil {
		log.WithError(err).Error("email delivery failed")
		return common.WithDetails(common.ErrMailFailure, err.Error())
	}
	log.Info("email sent")
	return nil
}

func validateEmailAddress(addr string) error {
	if strings.ContainsAny(addr, "\r\n") {
		return fmt.Errorf("invalid email address: %q", addr)
	}
	if _, err := mail.ParseAddress(addr); err != nil {
		return fmt.Errorf("invalid email address %q: %w", addr, err)
	}
	return nil
}

// formatFrom renders `Name <addr>`. Names with specials or non-ASCII text are quoted or encoded.
func formatFrom(name, addr string) string {
	if name == "" {
		return addr
	}
	if strings.ContainsAny(name, "\"(),.:;<>@[\\]") || !isASCII(name) {
		return (&mail.Address{Name: name, Address: addr}).String()
	}
	return name + " <" + addr + ">"
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
