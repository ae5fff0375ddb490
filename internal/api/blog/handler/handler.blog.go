// Package bloghdl serves the /blog routes.
package bloghdl

import (
	"edu_crm/internal/api/access"
	basehdl "edu_crm/internal/api/base/handler"
	"edu_crm/internal/api/blog/dto"
	"edu_crm/internal/api/blog/models"
	blogsvc "edu_crm/internal/api/blog/service"

	"github.com/gofiber/fiber/v3"
)

type BlogHandler struct {
	*basehdl.BaseHandler[models.Blog, dto.BlogCreateInput, dto.BlogUpdateInput]
	BlogService *blogsvc.BlogService
}

func NewBlogHandler(svc *blogsvc.BlogService) *BlogHandler {
	base := basehdl.NewBaseHandler[models.Blog, dto.BlogCreateInput, dto.BlogUpdateInput](svc, "coverImage").
		WithListKeys("tag", "category")
	return &BlogHandler{BaseHandler: base, BlogService: svc}
}

// HandleGetBySlug handles GET /blog/slug/:slug.
func (h *BlogHandler) HandleGetBySlug(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		data, err := h.BlogService.GetBySlug(c.Context(), c.Params("slug"))
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandlePublish handles PATCH /blog/:id/publish.
func (h *BlogHandler) HandlePublish(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ParseID(c, "id")
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		var input dto.PublishInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleError(c, err)
		}
		publish := input.Published == nil || *input.Published
		data, err := h.BlogService.Publish(c.Context(), access.FromCtx(c), id, publish)
		return basehdl.HandleResponse(c, data, err)
	})
}
