// Package router registers the /team routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	"edu_crm/internal/api/access"
	apirouter "edu_crm/internal/api/router"
	teamhdl "edu_crm/internal/api/team/handler"
	teamsvc "edu_crm/internal/api/team/service"
)

// Register returns the team route registration bound to svc.
func Register(svc *teamsvc.TeamService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		h := teamhdl.NewTeamHandler(svc)
		group := v1.Group("/team")

		r.Handle(group, fiber.MethodGet, "/:id/assigned", apirouter.Roles(access.TeamReaders...), h.HandleAssigned)
		r.RegisterCRUDRoutes(group, h, apirouter.CRUDConfig{
			Create: apirouter.Roles(access.Admins...),
			List:   apirouter.Roles(access.TeamReaders...),
			Get:    apirouter.Roles(access.TeamReaders...),
			Update: apirouter.Roles(access.Admins...),
			Status: apirouter.Roles(access.Admins...),
			Delete: apirouter.StrictRoles(access.AdminOnly...),
		})
		return nil
	}
}
