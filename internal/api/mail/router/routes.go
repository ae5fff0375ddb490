// Package router registers the /mail routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	"edu_crm/internal/api/access"
	mailhdl "edu_crm/internal/api/mail/handler"
	mailsvc "edu_crm/internal/api/mail/service"
	apirouter "edu_crm/internal/api/router"
)

func Register(svc *mailsvc.MailService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		h := mailhdl.NewMailHandler(svc)
		group := v1.Group("/mail")
		mailers := apirouter.Roles(access.Mailers...)

		r.Handle(group, fiber.MethodPost, "/send", mailers, h.HandleSend)
		r.Handle(group, fiber.MethodGet, "/providers", mailers, h.HandleProviders)
		r.Handle(group, fiber.MethodPost, "/contact", apirouter.Public(), h.HandleContact)
		return nil
	}
}
