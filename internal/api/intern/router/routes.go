// Package router registers the /intern-applied-data routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	"edu_crm/internal/api/access"
	internhdl "edu_crm/internal/api/intern/handler"
	internsvc "edu_crm/internal/api/intern/service"
	apirouter "edu_crm/internal/api/router"
)

// Register returns the internship application route registration bound to svc.
func Register(svc *internsvc.InternService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		h := internhdl.NewInternHandler(svc)
		r.RegisterCRUDRoutes(v1.Group("/intern-applied-data"), h, apirouter.CRUDConfig{
			Create: apirouter.Public(),
			List:   apirouter.Roles(access.ApplicationReaders...),
			Get:    apirouter.Roles(access.ApplicationReaders...),
			Update: apirouter.Roles(access.ApplicationWriters...),
			Status: apirouter.Roles(access.ApplicationWriters...),
			Assign: apirouter.Roles(access.Assigners...),
			Remark: apirouter.Roles(access.ApplicationWriters...),
			Delete: apirouter.Roles(access.Admins...),
		})
		return nil
	}
}
