// Package router registers the /social-media routes.
package router

import (
	"github.com/gofiber/fiber/v3"

	"edu_crm/internal/api/access"
	apirouter "edu_crm/internal/api/router"
	socialmediahdl "edu_crm/internal/api/socialmedia/handler"
	socialmediasvc "edu_crm/internal/api/socialmedia/service"
)

func Register(svc *socialmediasvc.SocialMediaService) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		content := apirouter.Roles(access.Content...)
		r.RegisterCRUDRoutes(v1.Group("/social-media"), socialmediahdl.NewSocialMediaHandler(svc), apirouter.CRUDConfig{
			Create: content,
			List:   apirouter.Public(),
			Get:    apirouter.Public(),
			Update: content,
			Delete: apirouter.Roles(access.Admins...),
		})
		return nil
	}
}
