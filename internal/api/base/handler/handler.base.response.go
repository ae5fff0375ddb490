package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"edu_crm/internal/common"
	"edu_crm/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// showStack controls whether error bodies carry a stack trace. Turned off in production.
var showStack = true

// SetShowStack toggles stack traces in error bodies.
func SetShowStack(v bool) {
	showStack = v
}

// JSONResponse writes data as JSON with an explicit utf-8 charset.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SuccessBody is the envelope for every successful response.
func SuccessBody(statusCode int, message string, data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"status":  "success",
		"code":    statusCode,
		"message": message,
		"data":    data,
	}
}

// ErrorBody renders err into the error envelope and returns the HTTP status to use.
func ErrorBody(err error, stack []byte) (int, fiber.Map) {
	var customErr *common.Error
	if !errors.As(err, &customErr) {
		customErr = common.WithDetails(common.NewError(
			common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, nil,
		), err.Error()).(*common.Error)
	}

	var cause interface{} = customErr.Message
	if customErr.Details != nil {
		cause = customErr.Details
		if e, ok := customErr.Details.(error); ok {
			cause = e.Error()
		}
	}

	body := fiber.Map{
		"success": false,
		"status":  "error",
		"code":    customErr.Code.Code,
		"message": customErr.Message,
		"error":   cause,
	}
	if showStack {
		if stack == nil {
			stack = debug.Stack()
		}
		body["stack"] = string(stack)
	}
	return customErr.StatusCode, body
}

// HandleResponse writes the success envelope (200) or the error envelope for err.
func HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		return HandleError(c, err)
	}
	return JSONResponse(c, common.StatusOK, SuccessBody(common.StatusOK, common.MsgSuccess, data))
}

// HandleCreated writes a 201 success envelope.
func HandleCreated(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		return HandleError(c, err)
	}
	return JSONResponse(c, common.StatusCreated, SuccessBody(common.StatusCreated, common.MsgCreated, data))
}

// HandleMessage writes a 200 success envelope with a custom message.
func HandleMessage(c fiber.Ctx, message string, data interface{}, err error) error {
	if err != nil {
		return HandleError(c, err)
	}
	return JSONResponse(c, common.StatusOK, SuccessBody(common.StatusOK, message, data))
}

// HandleError writes the error envelope. Server-side failures are logged with the request context.
func HandleError(c fiber.Ctx, err error) error {
	status, body := ErrorBody(err, nil)
	if status >= common.StatusInternalServerError {
		logger.WithRequest(c).WithError(err).Error("request failed")
	}
	return JSONResponse(c, status, body)
}

// SafeHandler runs fn and converts a panic into a 500 error envelope.
func SafeHandler(c fiber.Ctx, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"panic": fmt.Sprint(r),
				"path":  c.Path(),
				"stack": string(stack),
			}).Error("handler panic")
			status, body := ErrorBody(common.NewError(
				common.ErrCodeInternalServer,
				common.MsgInternalError,
				common.StatusInternalServerError,
				fmt.Sprint(r),
			), stack)
			err = JSONResponse(c, status, body)
		}
	}()
	return fn()
}

// ErrorHandler is installed as the Fiber app error handler so framework errors share the envelope.
func ErrorHandler(c fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := common.ErrCodeValidationInput
		switch {
		case fe.Code == fiber.StatusNotFound:
			code = common.ErrCodeDatabaseQuery
		case fe.Code == fiber.StatusTooManyRequests:
			code = common.ErrCodeBusinessOperation
		case fe.Code >= fiber.StatusInternalServerError:
			code = common.ErrCodeInternalServer
		}
		err = common.NewError(code, fe.Message, fe.Code, nil)
	}
	return HandleError(c, err)
}
