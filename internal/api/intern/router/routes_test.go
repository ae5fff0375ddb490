package router

import (
	"net/http"
	"testing"

	"edu_crm/internal/api/access"
	"edu_crm/internal/api/base/service/servicetest"
	"edu_crm/internal/api/intern/models"
	internsvc "edu_crm/internal/api/intern/service"
	"edu_crm/internal/api/lead/leadtest"
	apirouter "edu_crm/internal/api/router"
	"edu_crm/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternRoutes(t *testing.T) {
	env := leadtest.New(t)
	repo := servicetest.NewMemoryRepo[models.InternAppliedData]()
	svc := internsvc.NewInternServiceWith(repo, env.Team, env.Notifier, env.Mailer, env.Attachments)
	app := testutil.NewApp()
	require.NoError(t, apirouter.SetupRoutes(app, testutil.NewAuth(env.Team), Register(svc)))

	fields := map[string]string{
		"name": "Asha", "email": "asha@mail.test", "phone": "9876543210",
		"cgpa": "8.2", "yearOfPassing": "2025", "skills": "Go", "preferredMode": "hybrid",
	}
	resume := testutil.File{Field: "resume", Name: "cv.pdf", Content: []byte("%PDF")}
	status, resp := testutil.Do(t, app, testutil.MultipartRequest(t, http.MethodPost, "/api/v1/intern-applied-data/", fields, "", resume))
	require.Equal(t, http.StatusCreated, status, string(resp.Error))
	var created models.InternAppliedData
	testutil.DecodeData(t, resp, &created)
	assert.Equal(t, 8.2, created.CGPA)
	assert.Equal(t, 2025, created.YearOfPassing)
	assert.Equal(t, []string{"Go"}, created.Skills)
	assert.NotEmpty(t, created.Resume)

	fields["preferredMode"] = "mars"
	status, _ = testutil.Do(t, app, testutil.MultipartRequest(t, http.MethodPost, "/api/v1/intern-applied-data/", fields, ""))
	assert.Equal(t, http.StatusBadRequest, status)

	_, hr := env.Member(t, access.RoleHR)
	hrToken := testutil.Token(t, hr)
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, "/api/v1/intern-applied-data/", nil, hrToken))
	assert.Equal(t, http.StatusOK, status)
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodDelete, "/api/v1/intern-applied-data/"+created.ID.Hex(), nil, hrToken))
	assert.Equal(t, http.StatusForbidden, status)

	_, manager := env.Member(t, access.RoleManager)
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodDelete, "/api/v1/intern-applied-data/"+created.ID.Hex(), nil, testutil.Token(t, manager)))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{created.Resume}, env.Store.Removed())
}
