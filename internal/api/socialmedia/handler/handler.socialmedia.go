// Package socialmediahdl serves the /social-media routes.
package socialmediahdl

import (
	basehdl "edu_crm/internal/api/base/handler"
	"edu_crm/internal/api/socialmedia/dto"
	"edu_crm/internal/api/socialmedia/models"
	socialmediasvc "edu_crm/internal/api/socialmedia/service"
)

type SocialMediaHandler struct {
	*basehdl.BaseHandler[models.SocialMedia, dto.SocialMediaCreateInput, dto.SocialMediaUpdateInput]
}

func NewSocialMediaHandler(svc *socialmediasvc.SocialMediaService) *SocialMediaHandler {
	return &SocialMediaHandler{BaseHandler: basehdl.NewBaseHandler[models.SocialMedia, dto.SocialMediaCreateInput, dto.SocialMediaUpdateInput](svc).
		WithListKeys("platform", "active")}
}
