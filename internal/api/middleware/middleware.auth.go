// Package middleware holds the authentication decorators and the global request middleware.
package middleware

import (
	"context"
	"errors"
	"strings"

	"edu_crm/internal/api/access"
	basehdl "edu_crm/internal/api/base/handler"
	"edu_crm/internal/common"
	"edu_crm/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TokenVerifier turns a bearer token into the caller identity.
type TokenVerifier interface {
	Verify(token string) (*access.Identity, error)
}

// MemberResolver re-reads a team member for strict routes. It returns common.ErrNotFound for
// a deleted member and common.ErrAccountDisabled for a deactivated one.
type MemberResolver interface {
	ResolveMember(ctx context.Context, id primitive.ObjectID) (*access.Identity, error)
}

// Auth wraps route handlers with authentication and role checks.
//
// The checks are handler decorators rather than chained fiber middleware: route-level middleware
// registered with Get(path, mw, h) or a group Use() is unreliable on Fiber v3.
type Auth struct {
	Tokens  TokenVerifier
	Members MemberResolver
}

func NewAuth(tokens TokenVerifier, members MemberResolver) *Auth {
	return &Auth{Tokens: tokens, Members: members}
}

// bearer extracts the token. ok is false when the header is absent.
func bearer(c fiber.Ctx) (token string, present bool) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", true
	}
	return strings.TrimSpace(parts[1]), true
}

func (a *Auth) authenticate(c fiber.Ctx) (*access.Identity, error) {
	token, present := bearer(c)
	if !present {
		logger.WithRequest(c).Warn("missing Authorization header")
		return nil, common.ErrTokenMissing
	}
	if token == "" {
		return nil, common.ErrTokenInvalid
	}
	id, err := a.Tokens.Verify(token)
	if err != nil {
		logger.WithRequest(c).WithFields(logrus.Fields{"error": err.Error()}).Warn("rejected bearer token")
		return nil, common.ErrTokenInvalid
	}
	return id, nil
}

func authorize(id *access.Identity, roles []string) error {
	if len(roles) > 0 && !id.HasRole(roles...) {
		return common.ErrForbidden
	}
	return nil
}

// Require admits callers with a valid token and one of roles (any role when roles is empty).
func (a *Auth) Require(roles []string, h fiber.Handler) fiber.Handler {
	return func(c fiber.Ctx) error {
		id, err := a.authenticate(c)
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		if err := authorize(id, roles); err != nil {
			logger.WithRequest(c).WithField("role", id.Role).Warn("role not permitted")
			return basehdl.HandleError(c, err)
		}
		access.SetCtx(c, id)
		return h(c)
	}
}

// Strict is Require plus a lookup of the team member, rejecting deleted or deactivated accounts.
// The identity passed on carries the stored role and name.
func (a *Auth) Strict(roles []string, h fiber.Handler) fiber.Handler {
	return func(c fiber.Ctx) error {
		id, err := a.authenticate(c)
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		current, err := a.Members.ResolveMember(c.Context(), id.ID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return basehdl.HandleError(c, common.ErrTokenInvalid)
			}
			return basehdl.HandleError(c, err)
		}
		if err := authorize(current, roles); err != nil {
			return basehdl.HandleError(c, err)
		}
		access.SetCtx(c, current)
		return h(c)
	}
}

// Optional attaches the identity when a valid token is present. Anonymous or invalid tokens pass through.
func (a *Auth) Optional(h fiber.Handler) fiber.Handler {
	return func(c fiber.Ctx) error {
		if token, present := bearer(c); present && token != "" {
			if id, err := a.Tokens.Verify(token); err == nil {
				access.SetCtx(c, id)
			}
		}
		return h(c)
	}
}
