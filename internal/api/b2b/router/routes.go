// Package router registers the /b2b routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	"edu_crm/internal/api/access"
	b2bhdl "edu_crm/internal/api/b2b/handler"
	b2bsvc "edu_crm/internal/api/b2b/service"
	apirouter "edu_crm/internal/api/router"
)

func Register(svc *b2bsvc.B2BService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		staff := apirouter.Roles(access.B2B...)
		r.RegisterCRUDRoutes(v1.Group("/b2b"), b2bhdl.NewB2BHandler(svc), apirouter.CRUDConfig{
			Create: apirouter.Public(),
			List:   staff,
			Get:    staff,
			Update: staff,
			Status: staff,
			Delete: apirouter.Roles(access.Admins...),
		})
		return nil
	}
}
