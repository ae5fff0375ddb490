// Package seohdl serves the /seo routes.
package seohdl

import (
	basehdl "edu_crm/internal/api/base/handler"
	"edu_crm/internal/api/seo/dto"
	"edu_crm/internal/api/seo/models"
	seosvc "edu_crm/internal/api/seo/service"
)

type SeoHandler struct {
	*basehdl.BaseHandler[models.Seo, dto.SeoCreateInput, dto.SeoUpdateInput]
}

func NewSeoHandler(svc *seosvc.SeoService) *SeoHandler {
	return &SeoHandler{BaseHandler: basehdl.NewBaseHandler[models.Seo, dto.SeoCreateInput, dto.SeoUpdateInput](svc, "ogImage").
		WithListKeys("page")}
}
