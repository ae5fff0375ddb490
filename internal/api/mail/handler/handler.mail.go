// Package mailhdl serves the /mail routes.
package mailhdl

import (
	"sort"

	"edu_crm/internal/api/access"
	basehdl "edu_crm/internal/api/base/handler"
	"edu_crm/internal/api/mail/dto"
	mailsvc "edu_crm/internal/api/mail/service"

	"github.com/gofiber/fiber/v3"
)

type MailHandler struct {
	MailService *mailsvc.MailService
}

func NewMailHandler(svc *mailsvc.MailService) *MailHandler {
	return &MailHandler{MailService: svc}
}

// HandleSend handles POST /mail/send.
func (h *MailHandler) HandleSend(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.SendInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleError(c, err)
		}
		data, err := h.MailService.Send(c.Context(), access.FromCtx(c), &input)
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleContact handles POST /mail/contact.
func (h *MailHandler) HandleContact(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.ContactInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleError(c, err)
		}
		err := h.MailService.Contact(c.Context(), &input)
		return basehdl.HandleMessage(c, "Enquiry received", nil, err)
	})
}

// HandleProviders handles GET /mail/providers.
func (h *MailHandler) HandleProviders(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		providers := h.MailService.Providers()
		sort.Strings(providers)
		return basehdl.HandleResponse(c, providers, nil)
	})
}
