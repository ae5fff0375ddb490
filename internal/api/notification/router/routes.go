// Package router registers the /notifications routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	"edu_crm/internal/api/access"
	notificationhdl "edu_crm/internal/api/notification/handler"
	notificationsvc "edu_crm/internal/api/notification/service"
	apirouter "edu_crm/internal/api/router"
)

// Register returns the notification route registration bound to svc.
func Register(svc *notificationsvc.NotificationService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		h := notificationhdl.NewNotificationHandler(svc)
		group := v1.Group("/notifications")
		own := apirouter.Roles()

		r.Handle(group, fiber.MethodGet, "/", own, h.HandleList)
		r.Handle(group, fiber.MethodGet, "/unread-count", own, h.HandleUnreadCount)
		r.Handle(group, fiber.MethodPatch, "/read-all", own, h.HandleMarkAllRead)
		r.Handle(group, fiber.MethodPost, "/broadcast", apirouter.Roles(access.Admins...), h.HandleBroadcast)
		r.Handle(group, fiber.MethodPatch, "/:id/read", own, h.HandleMarkRead)
		r.Handle(group, fiber.MethodDelete, "/:id", own, h.HandleDelete)
		return nil
	}
}
