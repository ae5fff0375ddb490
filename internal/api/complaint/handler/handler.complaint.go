// Package complainthdl serves the /complaint routes.
package complainthdl

import (
	basehdl "edu_crm/internal/api/base/handler"
	"edu_crm/internal/api/complaint/dto"
	"edu_crm/internal/api/complaint/models"
	complaintsvc "edu_crm/internal/api/complaint/service"
)

type ComplaintHandler struct {
	*basehdl.BaseHandler[models.Complaint, dto.ComplaintCreateInput, dto.ComplaintUpdateInput]
}

func NewComplaintHandler(svc *complaintsvc.ComplaintService) *ComplaintHandler {
	base := basehdl.NewBaseHandler[models.Complaint, dto.ComplaintCreateInput, dto.ComplaintUpdateInput](svc, "attachment").
		WithListKeys("priority")
	return &ComplaintHandler{BaseHandler: base}
}
