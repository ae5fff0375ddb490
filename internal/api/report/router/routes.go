// Package router registers the /reports routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	"edu_crm/internal/api/access"
	reporthdl "edu_crm/internal/api/report/handler"
	reportsvc "edu_crm/internal/api/report/service"
	apirouter "edu_crm/internal/api/router"
)

func Register(svc *reportsvc.ReportService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		readers := apirouter.Roles(access.Reports...)
		r.RegisterCRUDRoutes(v1.Group("/reports"), reporthdl.NewReportHandler(svc), apirouter.CRUDConfig{
			Create: readers,
			List:   readers,
			Get:    readers,
			Update: readers,
			Delete: apirouter.Roles(access.Admins...),
		})
		return nil
	}
}
