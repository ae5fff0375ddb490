package basehdl

import (
	"context"

	"edu_crm/internal/api/access"
	basemodels "edu_crm/internal/api/base/models"
	"edu_crm/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CRUDService is the contract a domain service offers to the generic handler.
// actor is nil for anonymous callers on public routes.
type CRUDService[T any, CreateInput any, UpdateInput any] interface {
	Create(ctx context.Context, actor *access.Identity, input *CreateInput, files basemodels.Files) (T, error)
	List(ctx context.Context, actor *access.Identity, q basemodels.ListQuery) (*basemodels.PaginateResult[T], error)
	Get(ctx context.Context, actor *access.Identity, id primitive.ObjectID) (T, error)
	Update(ctx context.Context, actor *access.Identity, id primitive.ObjectID, input *UpdateInput, files basemodels.Files) (T, error)
	Delete(ctx context.Context, actor *access.Identity, id primitive.ObjectID) error
}

// StatusUpdater is implemented by services with enumerated status fields.
type StatusUpdater[T any] interface {
	UpdateStatus(ctx context.Context, actor *access.Identity, id primitive.ObjectID, field, value string) (T, error)
}

// Assigner is implemented by services whose records can be assigned to a team member.
type Assigner[T any] interface {
	Assign(ctx context.Context, actor *access.Identity, id primitive.ObjectID, email string) (T, error)
}

// Remarker is implemented by services whose records keep a remark log.
type Remarker[T any] interface {
	AddRemark(ctx context.Context, actor *access.Identity, id primitive.ObjectID, text string) (T, error)
}

// BaseHandler serves the create/list/get/update/delete routes of one resource.
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	Service    CRUDService[T, CreateInput, UpdateInput]
	FileFields []string // multipart fields read on create and update
	ListKeys   []string // resource specific list filters
}

func NewBaseHandler[T any, CreateInput any, UpdateInput any](service CRUDService[T, CreateInput, UpdateInput], fileFields ...string) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{Service: service, FileFields: fileFields}
}

// WithListKeys sets the extra query keys passed to List.
func (h *BaseHandler[T, CreateInput, UpdateInput]) WithListKeys(keys ...string) *BaseHandler[T, CreateInput, UpdateInput] {
	h.ListKeys = keys
	return h
}

// HandleCreate handles POST /.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleCreate(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var input CreateInput
		if err := ParseRequestBody(c, &input); err != nil {
			return HandleError(c, err)
		}
		data, err := h.Service.Create(c.Context(), access.FromCtx(c), &input, FormFiles(c, h.FileFields...))
		return HandleCreated(c, data, err)
	})
}

// HandleList handles GET / with pagination and the shared filters.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleList(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		data, err := h.Service.List(c.Context(), access.FromCtx(c), ParseListQuery(c, h.ListKeys...))
		return HandleResponse(c, data, err)
	})
}

// HandleGet handles GET /:id.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleGet(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := ParseID(c, "id")
		if err != nil {
			return HandleError(c, err)
		}
		data, err := h.Service.Get(c.Context(), access.FromCtx(c), id)
		return HandleResponse(c, data, err)
	})
}

// HandleUpdate handles PUT /:id.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleUpdate(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := ParseID(c, "id")
		if err != nil {
			return HandleError(c, err)
		}
		var input UpdateInput
		if err := ParseRequestBody(c, &input); err != nil {
			return HandleError(c, err)
		}
		data, err := h.Service.Update(c.Context(), access.FromCtx(c), id, &input, FormFiles(c, h.FileFields...))
		return HandleMessage(c, common.MsgUpdated, data, err)
	})
}

// HandleDelete handles DELETE /:id.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleDelete(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := ParseID(c, "id")
		if err != nil {
			return HandleError(c, err)
		}
		err = h.Service.Delete(c.Context(), access.FromCtx(c), id)
		return HandleMessage(c, common.MsgDeleted, fiber.Map{"id": id.Hex()}, err)
	})
}

// HandleStatus handles PATCH /:id/status. The service must implement StatusUpdater.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleStatus(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		svc, ok := h.Service.(StatusUpdater[T])
		if !ok {
			return HandleError(c, common.ErrInvalidOperation)
		}
		id, err := ParseID(c, "id")
		if err != nil {
			return HandleError(c, err)
		}
		var input basemodels.StatusInput
		if err := ParseRequestBody(c, &input); err != nil {
			return HandleError(c, err)
		}
		field, value := input.Resolve()
		if value == "" {
			return HandleError(c, common.WithDetails(common.ErrRequiredField, field))
		}
		data, err := svc.UpdateStatus(c.Context(), access.FromCtx(c), id, field, value)
		return HandleMessage(c, common.MsgUpdated, data, err)
	})
}

// HandleAssign handles PATCH /:id/assign. The service must implement Assigner.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleAssign(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		svc, ok := h.Service.(Assigner[T])
		if !ok {
			return HandleError(c, common.ErrInvalidOperation)
		}
		id, err := ParseID(c, "id")
		if err != nil {
			return HandleError(c, err)
		}
		var input basemodels.AssignInput
		if err := ParseRequestBody(c, &input); err != nil {
			return HandleError(c, err)
		}
		data, err := svc.Assign(c.Context(), access.FromCtx(c), id, input.Email)
		return HandleMessage(c, "Assigned successfully", data, err)
	})
}

// HandleRemark handles POST /:id/remarks. The service must implement Remarker.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleRemark(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		svc, ok := h.Service.(Remarker[T])
		if !ok {
			return HandleError(c, common.ErrInvalidOperation)
		}
		id, err := ParseID(c, "id")
		if err != nil {
			return HandleError(c, err)
		}
		var input basemodels.RemarkInput
		if err := ParseRequestBody(c, &input); err != nil {
			return HandleError(c, err)
		}
		data, err := svc.AddRemark(c.Context(), access.FromCtx(c), id, input.Text)
		return HandleCreated(c, data, err)
	})
}
