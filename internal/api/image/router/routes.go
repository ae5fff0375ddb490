// Package router registers the /image routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	"edu_crm/internal/api/access"
	imagehdl "edu_crm/internal/api/image/handler"
	imagesvc "edu_crm/internal/api/image/service"
	apirouter "edu_crm/internal/api/router"
)

func Register(svc *imagesvc.ImageService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		content := apirouter.Roles(access.Content...)
		r.RegisterCRUDRoutes(v1.Group("/image"), imagehdl.NewImageHandler(svc), apirouter.CRUDConfig{
			Create: content,
			List:   apirouter.Public(),
			Get:    apirouter.Public(),
			Update: content,
			Delete: apirouter.Roles(access.Admins...),
		})
		return nil
	}
}
