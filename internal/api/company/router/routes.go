// Package router registers the /companies routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	"edu_crm/internal/api/access"
	companyhdl "edu_crm/internal/api/company/handler"
	companysvc "edu_crm/internal/api/company/service"
	apirouter "edu_crm/internal/api/router"
)

func Register(svc *companysvc.CompanyService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		h := companyhdl.NewCompanyHandler(svc)
		group := v1.Group("/companies")
		admins := apirouter.Roles(access.Admins...)

		r.RegisterCRUDRoutes(group, h, apirouter.CRUDConfig{
			Create: admins,
			List:   apirouter.Public(),
			Update: admins,
			Delete: apirouter.Roles(access.AdminOnly...),
		})
		r.Handle(group, fiber.MethodGet, "/:slug", apirouter.Public(), h.HandleGetBySlug)
		return nil
	}
}
