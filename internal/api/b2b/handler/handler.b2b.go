// Package b2bhdl serves the /b2b routes.
package b2bhdl

import (
	"edu_crm/internal/api/b2b/dto"
	"edu_crm/internal/api/b2b/models"
	b2bsvc "edu_crm/internal/api/b2b/service"
	basehdl "edu_crm/internal/api/base/handler"
)

type B2BHandler struct {
	*basehdl.BaseHandler[models.B2B, dto.B2BCreateInput, dto.B2BUpdateInput]
}

func NewB2BHandler(svc *b2bsvc.B2BService) *B2BHandler {
	return &B2BHandler{BaseHandler: basehdl.NewBaseHandler[models.B2B, dto.B2BCreateInput, dto.B2BUpdateInput](svc)}
}
