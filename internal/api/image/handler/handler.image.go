// Package imagehdl serves the /image routes.
package imagehdl

import (
	basehdl "edu_crm/internal/api/base/handler"
	"edu_crm/internal/api/image/dto"
	"edu_crm/internal/api/image/models"
	imagesvc "edu_crm/internal/api/image/service"
)

type ImageHandler struct {
	*basehdl.BaseHandler[models.Image, dto.ImageCreateInput, dto.ImageUpdateInput]
}

func NewImageHandler(svc *imagesvc.ImageService) *ImageHandler {
	return &ImageHandler{BaseHandler: basehdl.NewBaseHandler[models.Image, dto.ImageCreateInput, dto.ImageUpdateInput](svc, "image").
		WithListKeys("category")}
}
