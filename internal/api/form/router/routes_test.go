package router

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"edu_crm/internal/api/access"
	"edu_crm/internal/api/base/service/servicetest"
	"edu_crm/internal/api/form/models"
	formsvc "edu_crm/internal/api/form/service"
	"edu_crm/internal/api/lead/leadtest"
	apirouter "edu_crm/internal/api/router"
	"edu_crm/internal/testutil"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func setup(t *testing.T) (*fiber.App, *servicetest.MemoryRepo[models.Form], *leadtest.Env) {
	t.Helper()
	env := leadtest.New(t)
	repo := servicetest.NewMemoryRepo[models.Form]()
	svc := formsvc.NewFormServiceWith(repo, env.Team, env.Notifier, env.Mailer, env.Attachments)
	app := testutil.NewApp()
	require.NoError(t, apirouter.SetupRoutes(app, testutil.NewAuth(env.Team), Register(svc)))
	return app, repo, env
}

func TestPublicCreateAndAutoAssign(t *testing.T) {
	app, _, env := setup(t)
	body := map[string]string{"name": "Asha", "phone": "9876543210", "course": "MBA"}

	status, resp := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost, "/api/v1/form/", body, ""))
	require.Equal(t, http.StatusCreated, status, string(resp.Error))
	var anon models.Form
	testutil.DecodeData(t, resp, &anon)
	assert.Nil(t, anon.AssignedTo)
	assert.Equal(t, models.StatusUnread, anon.Status)

	status, resp = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost, "/api/v1/form/", body, "garbage"))
	require.Equal(t, http.StatusCreated, status)

	member, sales := env.Member(t, access.RoleSales)
	status, resp = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost, "/api/v1/form/", body, testutil.Token(t, sales)))
	require.Equal(t, http.StatusCreated, status)
	var owned models.Form
	testutil.DecodeData(t, resp, &owned)
	require.NotNil(t, owned.AssignedTo)
	assert.Equal(t, member.ID, *owned.AssignedTo)
}

func TestCreateValidation(t *testing.T) {
	app, repo, _ := setup(t)
	body := map[string]string{"name": "A", "phone": "12ab", "email": "nope", "status": "hot"}

	status, resp := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost, "/api/v1/form/", body, ""))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, resp.Success)
	assert.Equal(t, 0, repo.Len())
}

func TestListIsScopedAndGuarded(t *testing.T) {
	app, _, env := setup(t)
	_, marketing := env.Member(t, access.RoleMarketing)
	_, sales := env.Member(t, access.RoleSales)
	body := map[string]string{"name": "Lead", "phone": "9876543210"}
	for _, token := range []string{"", testutil.Token(t, marketing), testutil.Token(t, sales)} {
		status, _ := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost, "/api/v1/form/", body, token))
		require.Equal(t, http.StatusCreated, status)
	}

	status, _ := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, "/api/v1/form/", nil, ""))
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, "/api/v1/form/", nil, "invalid.token.value"))
	assert.Equal(t, http.StatusForbidden, status)
	_, hr := env.Member(t, access.RoleHR)
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, "/api/v1/form/", nil, testutil.Token(t, hr)))
	assert.Equal(t, http.StatusForbidden, status)

	status, resp := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, "/api/v1/form/?limit=50", nil, testutil.Token(t, marketing)))
	require.Equal(t, http.StatusOK, status)
	var page struct {
		Items []models.Form `json:"items"`
		Total int64         `json:"total"`
	}
	testutil.DecodeData(t, resp, &page)
	assert.EqualValues(t, 2, page.Total)
	for _, f := range page.Items {
		if f.AssignedTo != nil {
			assert.Equal(t, marketing.ID, *f.AssignedTo)
		}
	}

	_, analyst := env.Member(t, access.RoleAnalyst)
	status, resp = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, "/api/v1/form/", nil, testutil.Token(t, analyst)))
	require.Equal(t, http.StatusOK, status)
	testutil.DecodeData(t, resp, &page)
	assert.EqualValues(t, 3, page.Total)
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPut, "/api/v1/form/"+page.Items[0].ID.Hex(), map[string]string{"city": "Pune"}, testutil.Token(t, analyst)))
	assert.Equal(t, http.StatusForbidden, status)
}

func TestStatusAssignAndDelete(t *testing.T) {
	app, repo, env := setup(t)
	_, admin := env.Member(t, access.RoleAdmin)
	sales, salesID := env.Member(t, access.RoleSales)
	f, err := repo.InsertOne(context.Background(), models.Form{Name: "Asha", Phone: "9876543210", Status: models.StatusUnread})
	require.NoError(t, err)
	adminToken := testutil.Token(t, admin)

	status, _ := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPatch, "/api/v1/form/"+f.ID.Hex()+"/status", map[string]string{"status": "hot"}, adminToken))
	assert.Equal(t, http.StatusBadRequest, status)
	stored, err := repo.FindOneById(context.Background(), f.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnread, stored.Status)

	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPatch, "/api/v1/form/"+f.ID.Hex()+"/status", map[string]string{"status": "follow_up"}, adminToken))
	assert.Equal(t, http.StatusOK, status)

	assign := map[string]string{"email": sales.Email}
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPatch, "/api/v1/form/"+f.ID.Hex()+"/assign", assign, testutil.Token(t, salesID)))
	assert.Equal(t, http.StatusForbidden, status)
	status, resp := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPatch, "/api/v1/form/"+f.ID.Hex()+"/assign", assign, adminToken))
	require.Equal(t, http.StatusOK, status, string(resp.Error))
	var assigned models.Form
	testutil.DecodeData(t, resp, &assigned)
	assert.Equal(t, sales.ID, *assigned.AssignedTo)
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPatch, "/api/v1/form/"+f.ID.Hex()+"/assign", map[string]string{"email": "ghost@crm.test"}, adminToken))
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost, "/api/v1/form/"+f.ID.Hex()+"/remarks", map[string]string{"text": "Called"}, testutil.Token(t, salesID)))
	assert.Equal(t, http.StatusCreated, status)

	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodDelete, "/api/v1/form/"+f.ID.Hex(), nil, testutil.Token(t, salesID)))
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodDelete, "/api/v1/form/"+f.ID.Hex(), nil, adminToken))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, repo.Len())
}

func TestImportRoute(t *testing.T) {
	app, repo, env := setup(t)
	_, admin := env.Member(t, access.RoleAdmin)

	book := excelize.NewFile()
	sheet := book.GetSheetName(0)
	require.NoError(t, book.SetSheetRow(sheet, "A1", &[]interface{}{"name", "phone"}))
	require.NoError(t, book.SetSheetRow(sheet, "A2", &[]interface{}{"Asha", "9876543210"}))
	var buf bytes.Buffer
	require.NoError(t, book.Write(&buf))

	file := testutil.File{Field: "file", Name: "leads.xlsx", Content: buf.Bytes()}
	status, _ := testutil.Do(t, app, testutil.MultipartRequest(t, http.MethodPost, "/api/v1/form/import", nil, "", file))
	assert.Equal(t, http.StatusUnauthorized, status)

	status, resp := testutil.Do(t, app, testutil.MultipartRequest(t, http.MethodPost, "/api/v1/form/import", nil, testutil.Token(t, admin), file))
	require.Equal(t, http.StatusCreated, status, string(resp.Error))
	assert.Equal(t, 1, repo.Len())

	status, _ = testutil.Do(t, app, testutil.MultipartRequest(t, http.MethodPost, "/api/v1/form/import", nil, testutil.Token(t, admin)))
	assert.Equal(t, http.StatusBadRequest, status)
}
