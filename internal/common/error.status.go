package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP status codes used across handlers.
const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusNoContent = 204

	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusRequestTooLarge     = 413
	StatusUnsupportedMedia    = 415
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
)

// Response messages
const (
	MsgSuccess = "Operation completed successfully"
	MsgCreated = "Created successfully"
	MsgUpdated = "Updated successfully"
	MsgDeleted = "Deleted successfully"

	MsgBadRequest      = "Invalid request"
	MsgUnauthorized    = "Authentication required"
	MsgForbidden       = "You do not have access to this resource"
	MsgNotFound        = "Resource not found"
	MsgConflict        = "Resource already exists"
	MsgInternalError   = "Internal server error"
	MsgTokenMissing    = "Missing bearer token"
	MsgTokenInvalid    = "Invalid or expired token"
	MsgValidationError = "Validation failed"
	MsgInvalidFormat   = "Invalid data format"
)

// ErrorCode is a hierarchical error classification.
type ErrorCode struct {
	Code        string // e.g. AUTH_001
	Category    string
	SubCategory string
	Description string
}

var (
	ErrCodeInternalServer = ErrorCode{Code: "SYS_001", Category: "System", SubCategory: "Internal", Description: "Internal system error"}
	ErrCodeUnavailable    = ErrorCode{Code: "SYS_002", Category: "System", SubCategory: "Unavailable", Description: "Service not configured"}
	ErrCodeRouteNotFound  = ErrorCode{Code: "SYS_003", Category: "System", SubCategory: "Route", Description: "Route not found"}

	ErrCodeAuthToken       = ErrorCode{Code: "AUTH_001", Category: "Authentication", SubCategory: "Token", Description: "Token error"}
	ErrCodeAuthCredentials = ErrorCode{Code: "AUTH_002", Category: "Authentication", SubCategory: "Credentials", Description: "Credential error"}
	ErrCodeAuthRole        = ErrorCode{Code: "AUTH_003", Category: "Authentication", SubCategory: "Role", Description: "Role not permitted"}

	ErrCodeValidationInput  = ErrorCode{Code: "VAL_001", Category: "Validation", SubCategory: "Input", Description: "Invalid input"}
	ErrCodeValidationFormat = ErrorCode{Code: "VAL_002", Category: "Validation", SubCategory: "Format", Description: "Invalid format"}
	ErrCodeValidationFile   = ErrorCode{Code: "VAL_003", Category: "Validation", SubCategory: "File", Description: "Invalid attachment"}

	ErrCodeDatabaseConnection = ErrorCode{Code: "DB_001", Category: "Database", SubCategory: "Connection", Description: "Database connection error"}
	ErrCodeDatabaseQuery      = ErrorCode{Code: "DB_002", Category: "Database", SubCategory: "Query", Description: "Database query error"}

	ErrCodeBusinessState     = ErrorCode{Code: "BIZ_001", Category: "Business", SubCategory: "State", Description: "Invalid business state"}
	ErrCodeBusinessOperation = ErrorCode{Code: "BIZ_002", Category: "Business", SubCategory: "Operation", Description: "Invalid business operation"}

	ErrCodeExternalStorage = ErrorCode{Code: "EXT_001", Category: "External", SubCategory: "Storage", Description: "Object storage error"}
	ErrCodeExternalMail    = ErrorCode{Code: "EXT_002", Category: "External", SubCategory: "Mail", Description: "Mail delivery error"}
)

// Error carries an error code, a user-facing message and the HTTP status to answer with.
type Error struct {
	Code       ErrorCode
	Message    string
	StatusCode int
	Details    any
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches on code and message so that WithDetails copies still satisfy errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code.Code == t.Code.Code && e.Message == t.Message
}

// NewError builds a new *Error.
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// WithDetails returns a copy of a predefined *Error carrying details. Non *Error values are returned unchanged.
func WithDetails(err error, details any) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	cp := *e
	cp.Details = details
	return &cp
}

var (
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Invalid email or password", StatusUnauthorized, nil)
	ErrAccountDisabled    = NewError(ErrCodeAuthCredentials, "Account is deactivated", StatusForbidden, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, MsgTokenMissing, StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, MsgTokenInvalid, StatusForbidden, nil)
	ErrForbidden          = NewError(ErrCodeAuthRole, MsgForbidden, StatusForbidden, nil)

	ErrInvalidInput    = NewError(ErrCodeValidationInput, MsgValidationError, StatusBadRequest, nil)
	ErrInvalidFormat   = NewError(ErrCodeValidationFormat, MsgInvalidFormat, StatusBadRequest, nil)
	ErrInvalidObjectID = NewError(ErrCodeValidationFormat, "Invalid id", StatusBadRequest, nil)
	ErrRequiredField   = NewError(ErrCodeValidationInput, "Missing required field", StatusBadRequest, nil)
	ErrInvalidStatus   = NewError(ErrCodeValidationInput, "Invalid status value", StatusBadRequest, nil)
	ErrFileRequired    = NewError(ErrCodeValidationFile, "Attachment is required", StatusBadRequest, nil)
	ErrFileType        = NewError(ErrCodeValidationFile, "Attachment type not allowed", StatusUnsupportedMedia, nil)
	ErrFileTooLarge    = NewError(ErrCodeValidationFile, "Attachment too large", StatusRequestTooLarge, nil)

	ErrNotFound   = NewError(ErrCodeDatabaseQuery, MsgNotFound, StatusNotFound, nil)
	ErrDuplicate  = NewError(ErrCodeDatabaseQuery, MsgConflict, StatusConflict, nil)
	ErrConnection = NewError(ErrCodeDatabaseConnection, "Database connection error", StatusServiceUnavailable, nil)
	ErrTimeout    = NewError(ErrCodeDatabaseConnection, "Database timeout", StatusServiceUnavailable, nil)
	ErrQuery      = NewError(ErrCodeDatabaseQuery, "Database query error", StatusInternalServerError, nil)

	ErrAssigneeInactive = NewError(ErrCodeBusinessState, "Assignee is deactivated", StatusBadRequest, nil)
	ErrInvalidOperation = NewError(ErrCodeBusinessOperation, "Operation not allowed", StatusBadRequest, nil)

	ErrStorage         = NewError(ErrCodeExternalStorage, "Could not store attachment", StatusBadGateway, nil)
	ErrMailFailure     = NewError(ErrCodeExternalMail, "Could not send email", StatusBadGateway, nil)
	ErrMailUnavailable = NewError(ErrCodeUnavailable, "Mail is not configured", StatusServiceUnavailable, nil)

	ErrRouteNotFound = NewError(ErrCodeRouteNotFound, "Route not found", StatusNotFound, nil)
)

// ConvertMongoError maps driver errors onto *Error values. *Error inputs pass through.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return WithDetails(ErrDuplicate, err.Error())
	}
	if mongo.IsTimeout(err) {
		return ErrTimeout
	}
	if mongo.IsNetworkError(err) {
		return ErrConnection
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		switch {
		case cmdErr.Code == 2 || cmdErr.Code == 9 || cmdErr.Code == 14:
			// BadValue, FailedToParse, TypeMismatch
			return WithDetails(ErrInvalidInput, cmdErr.Message)
		case cmdErr.Code >= 6 && cmdErr.Code <= 7:
			return ErrConnection
		}
	}

	return WithDetails(ErrQuery, err.Error())
}
