// Package basehdl holds the request parsing, response envelope and generic CRUD handler shared by every domain.
package basehdl

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	basemodels "edu_crm/internal/api/base/models"
	"edu_crm/internal/common"
	"edu_crm/internal/global"
	"edu_crm/internal/utility"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validatorOnce sync.Once

func validate() *validator.Validate {
	validatorOnce.Do(func() {
		if global.Validate == nil {
			global.InitValidator()
		}
	})
	return global.Validate
}

// ValidateInput runs the struct validator and reports failing fields as "field: tag".
func ValidateInput(input interface{}) error {
	err := validate().Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			if fe.Param() != "" {
				fields = append(fields, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
				continue
			}
			fields = append(fields, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
		}
		return common.WithDetails(common.ErrInvalidInput, fields)
	}
	return common.WithDetails(common.ErrInvalidInput, err.Error())
}

// ParseRequestBody binds a JSON, urlencoded or multipart body into input through its json and form tags,
// then validates it. An empty body binds nothing.
func ParseRequestBody(c fiber.Ctx, input interface{}) error {
	if len(bytes.TrimSpace(c.Body())) > 0 {
		if err := c.Bind().Body(input); err != nil {
			return common.WithDetails(common.ErrInvalidFormat, err.Error())
		}
	}
	return ValidateInput(input)
}

// FormFiles collects the uploaded files for the given field names. Missing fields are skipped.
func FormFiles(c fiber.Ctx, fields ...string) basemodels.Files {
	files := basemodels.Files{}
	if !strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm) {
		return files
	}
	for _, field := range fields {
		if fh, err := c.FormFile(field); err == nil && fh != nil {
			files[field] = fh
		}
	}
	return files
}

// ParsePagination reads ?page and ?limit. Bounds are applied by the repository.
func ParsePagination(c fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page <= 0 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}
	return page, limit
}

// ParseListQuery reads the shared list filters. extraKeys are copied into ListQuery.Extra.
func ParseListQuery(c fiber.Ctx, extraKeys ...string) basemodels.ListQuery {
	page, limit := ParsePagination(c)
	q := basemodels.ListQuery{
		Page:           page,
		Limit:          limit,
		Status:         strings.TrimSpace(c.Query("status")),
		ProductCompany: strings.TrimSpace(c.Query("productCompany")),
		AssignedTo:     strings.TrimSpace(c.Query("assignedTo")),
		Search:         strings.TrimSpace(c.Query("search")),
		From:           parseTimeParam(c.Query("from"), false),
		To:             parseTimeParam(c.Query("to"), true),
	}
	if len(extraKeys) > 0 {
		q.Extra = make(map[string]string, len(extraKeys))
		for _, k := range extraKeys {
			if v := c.Query(k); v != "" {
				q.Extra[k] = v
			}
		}
	}
	return q
}

// parseTimeParam accepts unix millis, RFC3339 or YYYY-MM-DD. A bare date used as an upper bound covers the whole day.
func parseTimeParam(v string, endOfDay bool) int64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
		return ms
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UnixMilli()
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		start, end := utility.DayBounds(t)
		if endOfDay {
			return end
		}
		return start
	}
	return 0
}

// ParseID reads an ObjectID route parameter.
func ParseID(c fiber.Ctx, param string) (primitive.ObjectID, error) {
	return utility.ParseObjectID(c.Params(param))
}
