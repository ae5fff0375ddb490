package authhdl

import (
	"edu_crm/internal/api/access"
	authdto "edu_crm/internal/api/auth/dto"
	authsvc "edu_crm/internal/api/auth/service"
	basehdl "edu_crm/internal/api/base/handler"

	"github.com/gofiber/fiber/v3"
)

// AuthHandler serves /auth.
type AuthHandler struct {
	service *authsvc.AuthService
}

func NewAuthHandler(service *authsvc.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// HandleLogin handles POST /auth/login.
func (h *AuthHandler) HandleLogin(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.LoginInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleError(c, err)
		}
		result, err := h.service.Login(c.Context(), &input)
		return basehdl.HandleMessage(c, "Login successful", result, err)
	})
}

// HandleMe handles GET /auth/me.
func (h *AuthHandler) HandleMe(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		data, err := h.service.Me(c.Context(), access.FromCtx(c))
		return basehdl.HandleResponse(c, data, err)
	})
}

// HandleChangePassword handles PUT /auth/change-password.
func (h *AuthHandler) HandleChangePassword(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.ChangePasswordInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleError(c, err)
		}
		err := h.service.ChangePassword(c.Context(), access.FromCtx(c), &input)
		return basehdl.HandleMessage(c, "Password changed", nil, err)
	})
}

// HandleAddPushToken handles POST /auth/push-token.
func (h *AuthHandler) HandleAddPushToken(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.PushTokenInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleError(c, err)
		}
		err := h.service.AddPushToken(c.Context(), access.FromCtx(c).ID, input.Token)
		return basehdl.HandleMessage(c, "Push token registered", nil, err)
	})
}

// HandleRemovePushToken handles DELETE /auth/push-token.
func (h *AuthHandler) HandleRemovePushToken(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.PushTokenInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleError(c, err)
		}
		err := h.service.RemovePushToken(c.Context(), access.FromCtx(c).ID, input.Token)
		return basehdl.HandleMessage(c, "Push token removed", nil, err)
	})
}
