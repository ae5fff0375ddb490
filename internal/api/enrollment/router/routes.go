// Package router registers the /enrollment routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	"edu_crm/internal/api/access"
	enrollmenthdl "edu_crm/internal/api/enrollment/handler"
	enrollmentsvc "edu_crm/internal/api/enrollment/service"
	apirouter "edu_crm/internal/api/router"
)

// Register returns the enrollment route registration bound to svc.
func Register(svc *enrollmentsvc.EnrollmentService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		h := enrollmenthdl.NewEnrollmentHandler(svc)
		r.RegisterCRUDRoutes(v1.Group("/enrollment"), h, apirouter.CRUDConfig{
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
