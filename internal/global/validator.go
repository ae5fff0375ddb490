package global

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles known to the role validator. Kept in sync with access.AllRoles.
var KnownRoles = map[string]bool{
	"admin": true, "manager": true, "sales": true, "marketing": true, "counsellor": true,
	"telecaller": true, "hr": true, "developer": true, "analyst": true,
}

var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// InitValidator creates the shared validator and registers the custom tags.
func InitValidator() {
	Validate = NewValidator()
}

// NewValidator returns a validator with the custom tags registered and json field names in errors.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("no_xss", validateNoXSS)
	_ = v.RegisterValidation("role", validateRole)
	_ = v.RegisterValidation("phone", validatePhone)
	_ = v.RegisterValidation("objectid", validateObjectID)
	return v
}

func validateNoXSS(fl validator.FieldLevel) bool {
	dangerous := []string{
		"<script", "javascript:", "onerror=", "onload=", "onclick=", "onmouseover=",
		"eval(", "document.cookie", "document.write", "<iframe", "<object", "<embed",
	}
	value := strings.ToLower(fl.Field().String())
	for _, p := range dangerous {
		if strings.Contains(value, p) {
			return false
		}
	}
	return true
}

func validateRole(fl validator.FieldLevel) bool {
	return KnownRoles[fl.Field().String()]
}

// validatePhone accepts 7 to 15 digits with an optional leading +, ignoring spaces and dashes.
func validatePhone(fl validator.FieldLevel) bool {
	value := strings.NewReplacer(" ", "", "-", "").Replace(fl.Field().String())
	return phonePattern.MatchString(value)
}

func validateObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}
