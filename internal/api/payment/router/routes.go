// Package router registers the /payment-detail routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	"edu_crm/internal/api/access"
	paymenthdl "edu_crm/internal/api/payment/handler"
	paymentsvc "edu_crm/internal/api/payment/service"
	apirouter "edu_crm/internal/api/router"
)

func Register(svc *paymentsvc.PaymentService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		h := paymenthdl.NewPaymentHandler(svc)
		group := v1.Group("/payment-detail")
		readers := apirouter.Roles(access.Payments...)

		r.Handle(group, fiber.MethodGet, "/summary", readers, h.HandleSummary)
		r.RegisterCRUDRoutes(group, h, apirouter.CRUDConfig{
			Create: apirouter.Public(),
			List:   readers,
			Get:    readers,
			Status: apirouter.Roles(access.Admins...),
			Delete: apirouter.Roles(access.Admins...),
		})
		return nil
	}
}
