// Package router registers the /blog routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	"edu_crm/internal/api/access"
	bloghdl "edu_crm/internal/api/blog/handler"
	blogsvc "edu_crm/internal/api/blog/service"
	apirouter "edu_crm/internal/api/router"
)

func Register(svc *blogsvc.BlogService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		h := bloghdl.NewBlogHandler(svc)
		group := v1.Group("/blog")
		content := apirouter.Roles(access.Content...)

		r.Handle(group, fiber.MethodGet, "/slug/:slug", apirouter.Public(), h.HandleGetBySlug)
		r.Handle(group, fiber.MethodPatch, "/:id/publish", content, h.HandlePublish)
		r.RegisterCRUDRoutes(group, h, apirouter.CRUDConfig{
			Create: content,
			List:   apirouter.Public(),
			Get:    apirouter.Public(),
			Update: content,
			Delete: apirouter.Roles(access.Admins...),
		})
		return nil
	}
}
