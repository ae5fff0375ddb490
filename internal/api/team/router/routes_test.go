package router

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"edu_crm/internal/api/access"
	"edu_crm/internal/api/base/service/servicetest"
	apirouter "edu_crm/internal/api/router"
	teamdto "edu_crm/internal/api/team/dto"
	teammodels "edu_crm/internal/api/team/models"
	teamsvc "edu_crm/internal/api/team/service"
	"edu_crm/internal/storage"
	"edu_crm/internal/testutil"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*fiber.App, *teamsvc.TeamService) {
	t.Helper()
	svc := teamsvc.NewTeamServiceWith(servicetest.NewMemoryRepo[teammodels.Team]("email"), storage.NewAttachments(storage.NewMemoryStore(), 1))
	app := testutil.NewApp()
	require.NoError(t, apirouter.SetupRoutes(app, testutil.NewAuth(svc), Register(svc)))
	return app, svc
}

func member(t *testing.T, svc *teamsvc.TeamService, email, role string) *access.Identity {
	t.Helper()
	m, err := svc.Create(context.Background(), nil, &teamdto.TeamCreateInput{
		Name: "Member", Email: email, Role: role, Password: "password123",
	}, nil)
	require.NoError(t, err)
	return teamsvc.IdentityOf(m)
}

func TestCreateRequiresAdmin(t *testing.T) {
	app, _ := setup(t)
	body := map[string]string{"name": "New Hire", "email": "new@crm.test", "role": "sales", "password": "password123"}

	status, env := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost, "/api/v1/team/", body, ""))
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "AUTH_001", env.ErrorCode())

	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost, "/api/v1/team/", body, "not-a-jwt"))
	assert.Equal(t, http.StatusForbidden, status)

	sales := testutil.Token(t, testutil.Identity(access.RoleSales))
	status, env = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost, "/api/v1/team/", body, sales))
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "AUTH_003", env.ErrorCode())

	admin := testutil.Token(t, testutil.Identity(access.RoleAdmin))
	status, env = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost, "/api/v1/team/", body, admin))
	require.Equal(t, http.StatusCreated, status, string(env.Error))
	var created map[string]interface{}
	testutil.DecodeData(t, env, &created)
	assert.Equal(t, "new@crm.test", created["email"])
	assert.NotContains(t, created, "passwordHash")
}

func TestCreateValidation(t *testing.T) {
	app, _ := setup(t)
	admin := testutil.Token(t, testutil.Identity(access.RoleAdmin))
	body := map[string]string{"name": "X", "email": "nope", "role": "owner", "password": "short"}

	status, env := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost, "/api/v1/team/", body, admin))
	assert.Equal(t, http.StatusBadRequest, status)
	var fields []string
	require.NoError(t, json.Unmarshal(env.Error, &fields))
	assert.Len(t, fields, 4)
}

func TestStatusAndStrictDelete(t *testing.T) {
	app, svc := setup(t)
	admin := member(t, svc, "admin@crm.test", access.RoleAdmin)
	sales := member(t, svc, "sales@crm.test", access.RoleSales)
	adminToken := testutil.Token(t, admin)

	status, env := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPatch,
		"/api/v1/team/"+sales.ID.Hex()+"/status", map[string]bool{"isActive": false}, adminToken))
	require.Equal(t, http.StatusOK, status, string(env.Error))
	var updated teammodels.Team
	testutil.DecodeData(t, env, &updated)
	assert.False(t, updated.IsActive)

	manager := testutil.Token(t, testutil.Identity(access.RoleManager))
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodDelete, "/api/v1/team/"+sales.ID.Hex(), nil, manager))
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodDelete, "/api/v1/team/"+sales.ID.Hex(), nil, adminToken))
	assert.Equal(t, http.StatusOK, status)

	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, "/api/v1/team/"+sales.ID.Hex(), nil, adminToken))
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListFiltersByRole(t *testing.T) {
	app, svc := setup(t)
	member(t, svc, "s1@crm.test", access.RoleSales)
	member(t, svc, "s2@crm.test", access.RoleSales)
	member(t, svc, "hr@crm.test", access.RoleHR)
	token := testutil.Token(t, testutil.Identity(access.RoleCounsellor))

	status, env := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, "/api/v1/team/?role=sales", nil, token))
	require.Equal(t, http.StatusOK, status)
	var page struct {
		Items []teammodels.Team `json:"items"`
		Total int64             `json:"total"`
	}
	testutil.DecodeData(t, env, &page)
	assert.EqualValues(t, 2, page.Total)
	for _, m := range page.Items {
		assert.Equal(t, access.RoleSales, m.Role)
	}
}
