// Package router registers the /admission-form routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	"edu_crm/internal/api/access"
	admissionhdl "edu_crm/internal/api/admission/handler"
	admissionsvc "edu_crm/internal/api/admission/service"
	apirouter "edu_crm/internal/api/router"
)

func Register(svc *admissionsvc.AdmissionService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		staff := apirouter.Roles(access.Admission...)
		r.RegisterCRUDRoutes(v1.Group("/admission-form"), admissionhdl.NewAdmissionHandler(svc), apirouter.CRUDConfig{
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
