// Package mailsvc sends staff-composed email and handles the public contact form.
package mailsvc

import (
	"context"
	"strings"
	"time"

	"edu_crm/internal/api/access"
	"edu_crm/internal/api/mail/dto"
	"edu_crm/internal/common"
	"edu_crm/internal/logger"
	"edu_crm/internal/mail"
	"edu_crm/internal/utility"
)

const replyTimeout = 15 * time.Second

type MailService struct {
	Mailer *mail.Service

	// Async sends the contact auto-reply in the background.
	Async bool
}

func NewMailService(mailer *mail.Service) *MailService {
	return &MailService{Mailer: mailer, Async: true}
}

// Send delivers a staff-composed message through the requested or default provider.
func (s *MailService) Send(ctx context.Context, actor *access.Identity, input *dto.SendInput) (*dto.SendResult, error) {
	to := make([]string, 0, len(input.To))
	seen := map[string]bool{}
	for _, addr := range input.To {
		addr = utility.NormalizeEmail(addr)
		if addr != "" && !seen[addr] {
			seen[addr] = true
			to = append(to, addr)
		}
	}
	err := s.Mailer.Send(ctx, input.Provider, mail.Message{
		To:      to,
		Subject: strings.TrimSpace(input.Subject),
		HTML:    input.HTML,
		ReplyTo: input.ReplyTo,
	})
	if err != nil {
		return nil, err
	}
	logger.Audit("mail.send", actor.IDHex()).WithField("recipients", len(to)).Info("staff email sent")
	provider := input.Provider
	if provider == "" {
		provider = s.Mailer.DefaultProvider()
	}
	return &dto.SendResult{Provider: provider, Recipients: len(to)}, nil
}

// Contact forwards a contact-form submission to the admin inbox, then sends the auto-reply best-effort.
func (s *MailService) Contact(ctx context.Context, input *dto.ContactInput) error {
	inbox := s.Mailer.AdminInbox()
	if inbox == "" {
		return common.WithDetails(common.ErrMailUnavailable, "admin inbox not configured")
	}
	data := mail.ContactData{
		Name:           strings.TrimSpace(input.Name),
		Email:          utility.NormalizeEmail(input.Email),
		Phone:          strings.TrimSpace(input.Phone),
		ProductCompany: strings.TrimSpace(input.ProductCompany),
		Message:        strings.TrimSpace(input.Message),
	}
	html, err := mail.Render("contact_admin.html", data)
	if err != nil {
		return err
	}
	if err := s.Mailer.Send(ctx, "", mail.Message{
		To:      []string{inbox},
		Subject: "New enquiry from " + data.Name,
		HTML:    html,
		ReplyTo: data.Email,
	}); err != nil {
		return err
	}

	reply := func() {
		body, err := mail.Render("contact_reply.html", data)
		if err != nil {
			logger.WithModule("mail").WithError(err).Error("could not render contact reply")
			return
		}
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), replyTimeout)
		defer cancel()
		_ = s.Mailer.Send(rctx, "", mail.Message{To: []string{data.Email}, Subject: "We received your enquiry", HTML: body})
	}
	if s.Async {
		go utility.GoProtect(reply)
	} else {
		reply()
	}
	return nil
}

// Providers lists the configured providers.
func (s *MailService) Providers() []string {
	return s.Mailer.Providers()
}
