// Package router registers the /auth routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	authhdl "edu_crm/internal/api/auth/handler"
	authsvc "edu_crm/internal/api/auth/service"
	apirouter "edu_crm/internal/api/router"
)

// Register returns the auth route registration bound to svc.
func Register(svc *authsvc.AuthService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		h := authhdl.NewAuthHandler(svc)
		group := v1.Group("/auth")

		r.Handle(group, fiber.MethodPost, "/login", apirouter.Public(), h.HandleLogin)
		r.Handle(group, fiber.MethodGet, "/me", apirouter.StrictRoles(), h.HandleMe)
		r.Handle(group, fiber.MethodPut, "/change-password", apirouter.StrictRoles(), h.HandleChangePassword)
		r.Handle(group, fiber.MethodPost, "/push-token", apirouter.Roles(), h.HandleAddPushToken)
		r.Handle(group, fiber.MethodDelete, "/push-token", apirouter.Roles(), h.HandleRemovePushToken)
		return nil
	}
}
