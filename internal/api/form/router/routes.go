// Package router registers the /form routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	"edu_crm/internal/api/access"
	formhdl "edu_crm/internal/api/form/handler"
	formsvc "edu_crm/internal/api/form/service"
	apirouter "edu_crm/internal/api/router"
)

// Register returns the lead route registration bound to svc.
func Register(svc *formsvc.FormService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		h := formhdl.NewFormHandler(svc)
		group := v1.Group("/form")

		r.Handle(group, fiber.MethodPost, "/import", apirouter.Roles(access.Admins...), h.HandleImport)
		r.RegisterCRUDRoutes(group, h, apirouter.CRUDConfig{
			Create: apirouter.Public(),
			List:   apirouter.Roles(access.FormReaders...),
			Get:    apirouter.Roles(access.FormReaders...),
			Update: apirouter.Roles(access.FormWriters...),
			Status: apirouter.Roles(access.FormWriters...),
			Assign: apirouter.Roles(access.Assigners...),
			Remark: apirouter.Roles(access.FormWriters...),
			Delete: apirouter.Roles(access.Admins...),
		})
		return nil
	}
}
