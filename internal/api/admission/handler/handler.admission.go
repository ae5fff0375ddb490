// Package admissionhdl serves the /admission-form routes.
package admissionhdl

import (
	"edu_crm/internal/api/admission/dto"
	"edu_crm/internal/api/admission/models"
	admissionsvc "edu_crm/internal/api/admission/service"
	basehdl "edu_crm/internal/api/base/handler"
)

type AdmissionHandler struct {
	*basehdl.BaseHandler[models.AdmissionForm, dto.AdmissionCreateInput, dto.AdmissionUpdateInput]
}

func NewAdmissionHandler(svc *admissionsvc.AdmissionService) *AdmissionHandler {
	base := basehdl.NewBaseHandler[models.AdmissionForm, dto.AdmissionCreateInput, dto.AdmissionUpdateInput](svc, "photo").
		WithListKeys("course")
	return &AdmissionHandler{BaseHandler: base}
}
