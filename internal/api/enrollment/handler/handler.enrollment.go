// Package enrollmenthdl serves the /enrollment routes.
package enrollmenthdl

import (
	basehdl "edu_crm/internal/api/base/handler"
	"edu_crm/internal/api/enrollment/dto"
	"edu_crm/internal/api/enrollment/models"
	enrollmentsvc "edu_crm/internal/api/enrollment/service"
)

type EnrollmentHandler struct {
	*basehdl.BaseHandler[models.Enrollment, dto.EnrollmentCreateInput, dto.EnrollmentUpdateInput]
}

func NewEnrollmentHandler(svc *enrollmentsvc.EnrollmentService) *EnrollmentHandler {
	base := basehdl.NewBaseHandler[models.Enrollment, dto.EnrollmentCreateInput, dto.EnrollmentUpdateInput](svc).
		WithListKeys("course", "callStatus", "interviewStatus", "aptitudeStatus", "hrStatus", "feesStatus", "admissionLetterStatus")
	return &EnrollmentHandler{BaseHandler: base}
}
