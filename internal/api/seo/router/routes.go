// Package router registers the /seo routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	"edu_crm/internal/api/access"
	apirouter "edu_crm/internal/api/router"
	seohdl "edu_crm/internal/api/seo/handler"
	seosvc "edu_crm/internal/api/seo/service"
)

func Register(svc *seosvc.SeoService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		content := apirouter.Roles(access.Content...)
		r.RegisterCRUDRoutes(v1.Group("/seo"), seohdl.NewSeoHandler(svc), apirouter.CRUDConfig{
			Create: content,
			List:   apirouter.Public(),
			Get:    apirouter.Public(),
			Update: content,
			Delete: apirouter.Roles(access.Admins...),
		})
		return nil
	}
}
