// Package internhdl serves the /intern-applied-data routes.
package internhdl

import (
	basehdl "edu_crm/internal/api/base/handler"
	"edu_crm/internal/api/intern/dto"
	"edu_crm/internal/api/intern/models"
	internsvc "edu_crm/internal/api/intern/service"
)

type InternHandler struct {
	*basehdl.BaseHandler[models.InternAppliedData, dto.InternCreateInput, dto.InternUpdateInput]
}

func NewInternHandler(svc *internsvc.InternService) *InternHandler {
	base := basehdl.NewBaseHandler[models.InternAppliedData, dto.InternCreateInput, dto.InternUpdateInput](svc, "resume", "photo").
		WithListKeys("domain", "preferredMode", "college")
	return &InternHandler{BaseHandler: base}
}
