package router

import (
	"context"
	"net/http"
	"testing"

	"edu_crm/internal/api/access"
	"edu_crm/internal/api/base/service/servicetest"
	"edu_crm/internal/api/enrollment/models"
	enrollmentsvc "edu_crm/internal/api/enrollment/service"
	"edu_crm/internal/api/lead/leadtest"
	apirouter "edu_crm/internal/api/router"
	"edu_crm/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollmentRoutes(t *testing.T) {
	env := leadtest.New(t)
	repo := servicetest.NewMemoryRepo[models.Enrollment]()
	svc := enrollmentsvc.NewEnrollmentServiceWith(repo, env.Team, env.Notifier, env.Mailer)
	app := testutil.NewApp()
	require.NoError(t, apirouter.SetupRoutes(app, testutil.NewAuth(env.Team), Register(svc)))

	_, hr := env.Member(t, access.RoleHR)
	token := testutil.Token(t, hr)
	body := map[string]interface{}{"name": "Asha", "phone": "9876543210", "course": "Full Stack", "education": map[string]bool{"tenth": true}}
	status, resp := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost, "/api/v1/enrollment/", body, token))
	require.Equal(t, http.StatusCreated, status, string(resp.Error))
	var created models.Enrollment
	testutil.DecodeData(t, resp, &created)
	require.NotNil(t, created.AssignedTo)
	assert.Equal(t, hr.ID, *created.AssignedTo)
	assert.True(t, created.Education.Tenth)

	url := "/api/v1/enrollment/" + created.ID.Hex() + "/status"
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPatch, url, map[string]string{"field": "callStatus", "value": "connected"}, token))
	assert.Equal(t, http.StatusOK, status)
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPatch, url, map[string]string{"field": "callStatus", "value": "busy"}, token))
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPatch, url, map[string]string{"field": "callStatus"}, token))
	assert.Equal(t, http.StatusBadRequest, status)

	stored, err := repo.FindOneById(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "connected", stored.CallStatus)

	_, developer := env.Member(t, access.RoleDeveloper)
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, "/api/v1/enrollment/", nil, testutil.Token(t, developer)))
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, "/api/v1/enrollment/"+created.ID.Hex(), nil, token))
	assert.Equal(t, http.StatusOK, status)
}
