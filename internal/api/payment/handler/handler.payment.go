// Package paymenthdl serves the /payment-detail routes.
package paymenthdl

import (
	basehdl "edu_crm/internal/api/base/handler"
	"edu_crm/internal/api/payment/dto"
	"edu_crm/internal/api/payment/models"
	paymentsvc "edu_crm/internal/api/payment/service"

	"github.com/gofiber/fiber/v3"
)

type PaymentHandler struct {
	*basehdl.BaseHandler[models.PaymentDetail, dto.PaymentCreateInput, dto.PaymentCreateInput]
	PaymentService *paymentsvc.PaymentService
}

func NewPaymentHandler(svc *paymentsvc.PaymentService) *PaymentHandler {
	base := basehdl.NewBaseHandler[models.PaymentDetail, dto.PaymentCreateInput, dto.PaymentCreateInput](svc, "screenshot").
		WithListKeys("paymentMode", "currency")
	return &PaymentHandler{BaseHandler: base, PaymentService: svc}
}

// HandleSummary handles GET /payment-detail/summary with the list filters.
func (h *PaymentHandler) HandleSummary(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		data, err := h.PaymentService.Summary(c.Context(), basehdl.ParseListQuery(c, h.ListKeys...))
		return basehdl.HandleResponse(c, data, err)
	})
}
