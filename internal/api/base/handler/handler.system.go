package basehdl

import (
	"context"
	"time"

	"edu_crm/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"
)

// SystemHandler serves the health endpoint.
type SystemHandler struct {
	client *mongo.Client
}

func NewSystemHandler(client *mongo.Client) *SystemHandler {
	return &SystemHandler{client: client}
}

// HandleHealth reports API and database status. A failed ping answers 503.
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	services := fiber.Map{"api": "ok"}
	healthData := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services":  services,
	}

	if h.client == nil {
		healthData["status"] = "degraded"
		services["database"] = "not_initialized"
		return JSONResponse(c, common.StatusOK, SuccessBody(common.StatusOK, common.MsgSuccess, healthData))
	}

	if err := h.client.Ping(ctx, nil); err != nil {
		healthData["status"] = "degraded"
		services["database"] = "error"
		healthData["database_error"] = err.Error()
		return JSONResponse(c, common.StatusServiceUnavailable, fiber.Map{
			"success": false,
			"status":  "error",
			"code":    common.ErrCodeDatabaseConnection.Code,
			"message": "Service degraded",
			"data":    healthData,
		})
	}
	services["database"] = "ok"
	return JSONResponse(c, common.StatusOK, SuccessBody(common.StatusOK, common.MsgSuccess, healthData))
}
