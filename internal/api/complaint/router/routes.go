// Package router registers the /complaint routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	"edu_crm/internal/api/access"
	complainthdl "edu_crm/internal/api/complaint/handler"
	complaintsvc "edu_crm/internal/api/complaint/service"
	apirouter "edu_crm/internal/api/router"
)

func Register(svc *complaintsvc.ComplaintService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		staff := apirouter.Roles(access.Complaints...)
		r.RegisterCRUDRoutes(v1.Group("/complaint"), complainthdl.NewComplaintHandler(svc), apirouter.CRUDConfig{
			Create: apirouter.Public(),
			List:   staff,
			Get:    staff,
			Update: staff,
			Status: staff,
			Remark: staff,
			Delete: apirouter.Roles(access.Admins...),
		})
		return nil
	}
}
