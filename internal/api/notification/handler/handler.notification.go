// Package notificationhdl serves the /notifications routes.
package notificationhdl

import (
	"edu_crm/internal/api/access"
	basehdl "edu_crm/internal/api/base/handler"
	"edu_crm/internal/api/notification/dto"
	notificationsvc "edu_crm/internal/api/notification/service"
	"edu_crm/internal/common"

	"github.com/gofiber/fiber/v3"
)

// NotificationHandler handles the caller's notifications and admin broadcasts.
type NotificationHandler struct {
	service *notificationsvc.NotificationService
}

func NewNotificationHandler(service *notificationsvc.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// HandleList handles GET /notifications.
func (h *NotificationHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		data, err := h.service.List(c.Context(), access.FromCtx(c), basehdl.ParseListQuery(c, "unread", "type"))
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleUnreadCount handles GET /notifications/unread-count.
func (h *NotificationHandler) HandleUnreadCount(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		count, err := h.service.UnreadCount(c.Context(), access.FromCtx(c))
		return basehdl.HandleResponse(c, fiber.Map{"count": count}, err)
	})
}

// HandleMarkRead handles PATCH /notifications/:id/read.
func (h *NotificationHandler) HandleMarkRead(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ParseID(c, "id")
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		data, err := h.service.MarkRead(c.Context(), access.FromCtx(c), id)
		return basehdl.HandleMessage(c, common.MsgUpdated, data, err)
	})
}

// HandleMarkAllRead handles PATCH /notifications/read-all.
func (h *NotificationHandler) HandleMarkAllRead(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		count, err := h.service.MarkAllRead(c.Context(), access.FromCtx(c))
		return basehdl.HandleMessage(c, common.MsgUpdated, fiber.Map{"updated": count}, err)
	})
}

// HandleDelete handles DELETE /notifications/:id.
func (h *NotificationHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ParseID(c, "id")
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		err = h.service.Delete(c.Context(), access.FromCtx(c), id)
		return basehdl.HandleMessage(c, common.MsgDeleted, fiber.Map{"id": id.Hex()}, err)
	})
}

// HandleBroadcast handles POST /notifications/broadcast.
func (h *NotificationHandler) HandleBroadcast(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.BroadcastInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleError(c, err)
		}
		count, err := h.service.Broadcast(c.Context(), access.FromCtx(c), &input)
		return basehdl.HandleCreated(c, fiber.Map{"recipients": count}, err)
	})
}
