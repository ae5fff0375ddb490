package basehdl_test

import (
	"net/http"
	"testing"

	basehdl "edu_crm/internal/api/base/handler"
	basemodels "edu_crm/internal/api/base/models"
	"edu_crm/internal/common"
	"edu_crm/internal/testutil"

	"github.com/gofiber/fiber/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addressInput struct {
	City string `json:"city" form:"city"`
}

type profileInput struct {
	Name    string          `json:"name" form:"name" validate:"required"`
	Skills  []string        `json:"skills" form:"skills"`
	Tags    []string        `json:"tags" form:"tags"`
	Age     int             `json:"age" form:"age"`
	Active  *bool           `json:"active" form:"active"`
	Fee     decimal.Decimal `json:"fee" form:"fee"`
	Address *addressInput   `json:"address" form:"address"`
}

func echo(c fiber.Ctx) error {
	var in profileInput
	if err := basehdl.ParseRequestBody(c, &in); err != nil {
		return basehdl.HandleError(c, err)
	}
	files := basehdl.FormFiles(c, "resume", "photo")
	return basehdl.HandleResponse(c, fiber.Map{"input": in, "files": len(files)}, nil)
}

type echoed struct {
	Input profileInput
	Files int
}

func TestParseMultipartBody(t *testing.T) {
	app := testutil.NewApp()
	app.Post("/", echo)

	req := testutil.MultipartRequest(t, http.MethodPost, "/", map[string]string{
		"name": "Asha", "skills": "go", "tags[]": "crm", "age": "21", "active": "false",
		"fee": "1500.50", "address[city]": "Pune",
	}, "", testutil.File{Field: "resume", Name: "cv.pdf", Content: []byte("%PDF")})
	status, env := testutil.Do(t, app, req)
	require.Equal(t, http.StatusOK, status, string(env.Error))

	var out echoed
	testutil.DecodeData(t, env, &out)
	assert.Equal(t, "Asha", out.Input.Name)
	assert.Equal(t, []string{"go"}, out.Input.Skills)
	assert.Equal(t, []string{"crm"}, out.Input.Tags)
	assert.Equal(t, 21, out.Input.Age)
	require.NotNil(t, out.Input.Active)
	assert.False(t, *out.Input.Active)
	assert.Equal(t, "1500.5", out.Input.Fee.String())
	require.NotNil(t, out.Input.Address)
	assert.Equal(t, "Pune", out.Input.Address.City)
	assert.Equal(t, 1, out.Files)
}

func TestParseUrlencodedBody(t *testing.T) {
	app := testutil.NewApp()
	app.Post("/", echo)

	req := testutil.RawRequest(t, http.MethodPost, "/", fiber.MIMEApplicationForm, "name=Ravi&skills=go&skills=sql&age=", "")
	status, env := testutil.Do(t, app, req)
	require.Equal(t, http.StatusOK, status, string(env.Error))
	var out echoed
	testutil.DecodeData(t, env, &out)
	assert.Equal(t, []string{"go", "sql"}, out.Input.Skills)
	assert.Zero(t, out.Input.Age)
	assert.Nil(t, out.Input.Active)

	req = testutil.RawRequest(t, http.MethodPost, "/", fiber.MIMEApplicationForm, "name=Ravi&age=old", "")
	status, env = testutil.Do(t, app, req)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, common.ErrCodeValidationFormat.Code, env.ErrorCode())
}

func TestParseJSONBody(t *testing.T) {
	app := testutil.NewApp()
	app.Post("/", echo)

	status, env := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost, "/", nil, ""))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VAL_001", env.ErrorCode())

	req := testutil.JSONRequest(t, http.MethodPost, "/", map[string]interface{}{"name": "Ravi", "age": 30}, "")
	status, env = testutil.Do(t, app, req)
	require.Equal(t, http.StatusOK, status)
	var out echoed
	testutil.DecodeData(t, env, &out)
	assert.Equal(t, 30, out.Input.Age)
	assert.Zero(t, out.Files)
}

func TestParseListQuery(t *testing.T) {
	app := testutil.NewApp()
	var got basemodels.ListQuery
	app.Get("/", func(c fiber.Ctx) error {
		got = basehdl.ParseListQuery(c, "category")
		return c.SendStatus(http.StatusNoContent)
	})

	_, err := app.Test(testutil.JSONRequest(t, http.MethodGet, "/?page=0&limit=x&status=read&from=2026-03-02&to=2026-03-02&category=exams&assignedTo=unassigned", nil, ""))
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.Page)
	assert.EqualValues(t, 10, got.Limit)
	assert.Equal(t, "read", got.Status)
	assert.Equal(t, "unassigned", got.AssignedTo)
	assert.Equal(t, "exams", got.Extra["category"])
	assert.Equal(t, int64(24*60*60*1000), got.To-got.From)
}
