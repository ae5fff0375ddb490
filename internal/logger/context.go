package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest returns an app log entry carrying request id, method, path and client IP.
func WithRequest(c fiber.Ctx) *logrus.Entry {
	entry := GetAppLogger().WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	})

	requestID, _ := c.Locals("requestid").(string)
	if requestID == "" {
		requestID = c.Get("X-Request-ID")
	}
	if requestID == "" {
		requestID = c.GetRespHeader("X-Request-ID")
	}
	if requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}
	if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
		entry = entry.WithField("user_id", userID)
	}
	return entry
}

func WithModule(module string) *logrus.Entry {
	return GetAppLogger().WithField("module", module)
}

func WithFields(fields map[string]interface{}) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields(fields))
}

func WithError(err error) *logrus.Entry {
	return GetAppLogger().WithError(err)
}

// Audit returns an audit entry for an action performed by actor.
func Audit(action, actorID string) *logrus.Entry {
	return GetAuditLogger().WithFields(logrus.Fields{
		"action": action,
		"actor":  actorID,
	})
}
