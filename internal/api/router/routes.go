// Package router holds the route registration helpers shared by the domain routers.
package router

import (
	"strings"

	"edu_crm/internal/api/middleware"

	"github.com/gofiber/fiber/v3"
)

// Route guards are applied as handler decorators (see middleware.Auth). Do not pass auth handlers as
// route middleware with group.Get(path, mw, h): on Fiber v3 they are skipped for some route shapes.

// CRUDHandler is the handler set registered by RegisterCRUDRoutes. basehdl.BaseHandler implements it.
type CRUDHandler interface {
	HandleCreate(c fiber.Ctx) error
	HandleList(c fiber.Ctx) error
	HandleGet(c fiber.Ctx) error
	HandleUpdate(c fiber.Ctx) error
	HandleDelete(c fiber.Ctx) error
	HandleStatus(c fiber.Ctx) error
	HandleAssign(c fiber.Ctx) error
	HandleRemark(c fiber.Ctx) error
}

// Guard says who may call a route.
type Guard struct {
	Public bool     // anonymous callers allowed; identity attached when a valid token is sent
	Strict bool     // re-check the member in the database
	Roles  []string // empty admits any authenticated role
}

// Public admits everyone.
func Public() *Guard { return &Guard{Public: true} }

// Roles admits authenticated callers holding one of roles.
func Roles(roles ...string) *Guard { return &Guard{Roles: roles} }

// StrictRoles is Roles plus a member lookup.
func StrictRoles(roles ...string) *Guard { return &Guard{Strict: true, Roles: roles} }

// CRUDConfig holds the guard of each generic route. A nil guard leaves the route unregistered.
type CRUDConfig struct {
	Create *Guard // POST /
	List   *Guard // GET /
	Get    *Guard // GET /:id
	Update *Guard // PUT /:id
	Status *Guard // PATCH /:id/status
	Assign *Guard // PATCH /:id/assign
	Remark *Guard // POST /:id/remarks
	Delete *Guard // DELETE /:id
}

// Router registers guarded routes.
type Router struct {
	app  *fiber.App
	Auth *middleware.Auth
}

// RoutePrefix holds the API prefixes.
type RoutePrefix struct {
	Base string // /api
	V1   string // /api/v1
}

func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

func NewRouter(app *fiber.App, auth *middleware.Auth) *Router {
	return &Router{app: app, Auth: auth}
}

// Wrap decorates h with the checks of g.
func (r *Router) Wrap(g *Guard, h fiber.Handler) fiber.Handler {
	switch {
	case g == nil:
		return h
	case g.Public:
		return r.Auth.Optional(h)
	case g.Strict:
		return r.Auth.Strict(g.Roles, h)
	default:
		return r.Auth.Require(g.Roles, h)
	}
}

// Handle registers one guarded route on group.
func (r *Router) Handle(group fiber.Router, method, path string, g *Guard, h fiber.Handler) {
	handler := r.Wrap(g, h)
	switch strings.ToUpper(method) {
	case fiber.MethodGet:
		group.Get(path, handler)
	case fiber.MethodPost:
		group.Post(path, handler)
	case fiber.MethodPut:
		group.Put(path, handler)
	case fiber.MethodPatch:
		group.Patch(path, handler)
	case fiber.MethodDelete:
		group.Delete(path, handler)
	}
}

// RegisterCRUDRoutes registers the generic routes of one resource. Register static paths such as
// /import before calling it so they are matched ahead of /:id.
func (r *Router) RegisterCRUDRoutes(group fiber.Router, h CRUDHandler, cfg CRUDConfig) {
	if cfg.Create != nil {
		r.Handle(group, fiber.MethodPost, "/", cfg.Create, h.HandleCreate)
	}
	if cfg.List != nil {
		r.Handle(group, fiber.MethodGet, "/", cfg.List, h.HandleList)
	}
	if cfg.Get != nil {
		r.Handle(group, fiber.MethodGet, "/:id", cfg.Get, h.HandleGet)
	}
	if cfg.Update != nil {
		r.Handle(group, fiber.MethodPut, "/:id", cfg.Update, h.HandleUpdate)
	}
	if cfg.Status != nil {
		r.Handle(group, fiber.MethodPatch, "/:id/status", cfg.Status, h.HandleStatus)
	}
	if cfg.Assign != nil {
		r.Handle(group, fiber.MethodPatch, "/:id/assign", cfg.Assign, h.HandleAssign)
	}
	if cfg.Remark != nil {
		r.Handle(group, fiber.MethodPost, "/:id/remarks", cfg.Remark, h.HandleRemark)
	}
	if cfg.Delete != nil {
		r.Handle(group, fiber.MethodDelete, "/:id", cfg.Delete, h.HandleDelete)
	}
}

// RegisterFunc registers the routes of one domain. Domain routers export one.
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes mounts every domain under /api/v1. Callers pass each domain's Register to avoid import cycles.
func SetupRoutes(app *fiber.App, auth *middleware.Auth, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app, auth)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
