// Package reporthdl serves the /reports routes.
package reporthdl

import (
	basehdl "edu_crm/internal/api/base/handler"
	"edu_crm/internal/api/report/dto"
	"edu_crm/internal/api/report/models"
	reportsvc "edu_crm/internal/api/report/service"
)

type ReportHandler struct {
	*basehdl.BaseHandler[models.Report, dto.ReportCreateInput, dto.ReportUpdateInput]
}

func NewReportHandler(svc *reportsvc.ReportService) *ReportHandler {
	return &ReportHandler{BaseHandler: basehdl.NewBaseHandler[models.Report, dto.ReportCreateInput, dto.ReportUpdateInput](svc, "file").
		WithListKeys("category", "periodFrom", "periodTo")}
}
