// Package teamhdl serves the /team routes.
package teamhdl

import (
	"edu_crm/internal/api/access"
	basehdl "edu_crm/internal/api/base/handler"
	teamdto "edu_crm/internal/api/team/dto"
	teammodels "edu_crm/internal/api/team/models"
	teamsvc "edu_crm/internal/api/team/service"
	"edu_crm/internal/common"

	"github.com/gofiber/fiber/v3"
)

// TeamHandler handles team member management.
type TeamHandler struct {
	*basehdl.BaseHandler[teammodels.Team, teamdto.TeamCreateInput, teamdto.TeamUpdateInput]
	TeamService *teamsvc.TeamService
}

func NewTeamHandler(svc *teamsvc.TeamService) *TeamHandler {
	base := basehdl.NewBaseHandler[teammodels.Team, teamdto.TeamCreateInput, teamdto.TeamUpdateInput](svc, "avatar").
		WithListKeys("role", "isActive")
	return &TeamHandler{BaseHandler: base, TeamService: svc}
}

// HandleStatus handles PATCH /team/:id/status {isActive}.
func (h *TeamHandler) HandleStatus(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ParseID(c, "id")
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		var input teamdto.TeamStatusInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleError(c, err)
		}
		data, err := h.TeamService.SetActive(c.Context(), access.FromCtx(c), id, *input.IsActive)
		return basehdl.HandleMessage(c, common.MsgUpdated, data, err)
	})
}

// HandleAssigned handles GET /team/:id/assigned.
func (h *TeamHandler) HandleAssigned(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ParseID(c, "id")
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		data, err := h.TeamService.Assigned(c.Context(), id)
		return basehdl.HandleResponse(c, data, err)
	})
}
