// Package formhdl serves the /form routes.
package formhdl

import (
	"edu_crm/internal/api/access"
	basehdl "edu_crm/internal/api/base/handler"
	"edu_crm/internal/api/form/dto"
	"edu_crm/internal/api/form/models"
	formsvc "edu_crm/internal/api/form/service"
	"edu_crm/internal/common"

	"github.com/gofiber/fiber/v3"
)

// FormHandler handles leads.
type FormHandler struct {
	*basehdl.BaseHandler[models.Form, dto.FormCreateInput, dto.FormUpdateInput]
	FormService *formsvc.FormService
}

func NewFormHandler(svc *formsvc.FormService) *FormHandler {
	base := basehdl.NewBaseHandler[models.Form, dto.FormCreateInput, dto.FormUpdateInput](svc, "resume").
		WithListKeys("source")
	return &FormHandler{BaseHandler: base, FormService: svc}
}

// HandleImport handles POST /form/import with an xlsx workbook in the "file" field.
func (h *FormHandler) HandleImport(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		fh, err := c.FormFile("file")
		if err != nil {
			return basehdl.HandleError(c, common.WithDetails(common.ErrFileRequired, "file"))
		}
		f, err := fh.Open()
		if err != nil {
			return basehdl.HandleError(c, common.WithDetails(common.ErrInvalidFormat, "file"))
		}
		defer f.Close()
		data, err := h.FormService.Import(c.Context(), access.FromCtx(c), f)
		return basehdl.HandleCreated(c, data, err)
	})
}
