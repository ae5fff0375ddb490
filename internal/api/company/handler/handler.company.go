// Package companyhdl serves the /companies routes.
package companyhdl

import (
	"edu_crm/internal/api/access"
	basehdl "edu_crm/internal/api/base/handler"
	"edu_crm/internal/api/company/dto"
	"edu_crm/internal/api/company/models"
	companysvc "edu_crm/internal/api/company/service"

	"github.com/gofiber/fiber/v3"
)

type CompanyHandler struct {
	*basehdl.BaseHandler[models.Company, dto.CompanyCreateInput, dto.CompanyUpdateInput]
	CompanyService *companysvc.CompanyService
}

func NewCompanyHandler(svc *companysvc.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Company, dto.CompanyCreateInput, dto.CompanyUpdateInput](svc, "logo"),
		CompanyService: svc,
	}
}

// HandleGetBySlug handles GET /companies/:slug.
func (h *CompanyHandler) HandleGetBySlug(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		data, err := h.CompanyService.GetBySlug(c.Context(), access.FromCtx(c), c.Params("slug"))
		return basehdl.HandleResponse(c, data, err)
	})
}
