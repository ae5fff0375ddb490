package router

import (
	"net/http"
	"testing"

	"edu_crm/internal/api/access"
	"edu_crm/internal/api/base/service/servicetest"
	"edu_crm/internal/api/blog/models"
	blogsvc "edu_crm/internal/api/blog/service"
	apirouter "edu_crm/internal/api/router"
	"edu_crm/internal/storage"
	"edu_crm/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogRoutes(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := blogsvc.NewBlogServiceWith(servicetest.NewMemoryRepo[models.Blog]("slug"), storage.NewAttachments(store, 1))
	app := testutil.NewApp()
	require.NoError(t, apirouter.SetupRoutes(app, testutil.NewAuth(nil), Register(svc)))

	writer := testutil.Token(t, testutil.Identity(access.RoleMarketing))
	fields := map[string]string{"title": "Placement Stories", "content": "<p>Our alumni</p>", "tags[]": "alumni"}
	status, resp := testutil.Do(t, app, testutil.MultipartRequest(t, http.MethodPost, "/api/v1/blog/", fields, writer,
		testutil.File{Field: "coverImage", Name: "cover.png", Content: []byte("png")}))
	require.Equal(t, http.StatusCreated, status, string(resp.Error))
	var created models.Blog
	testutil.DecodeData(t, resp, &created)
	assert.Contains(t, created.CoverImage, store.BaseURL+"/blogs/")
	assert.Equal(t, []string{"alumni"}, created.Tags)

	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, "/api/v1/blog/slug/placement-stories", nil, ""))
	assert.Equal(t, http.StatusNotFound, status)

	url := "/api/v1/blog/" + created.ID.Hex()
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPatch, url+"/publish", nil, testutil.Token(t, testutil.Identity(access.RoleSales))))
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPatch, url+"/publish", nil, writer))
	assert.Equal(t, http.StatusOK, status)

	status, resp = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, "/api/v1/blog/slug/placement-stories", nil, ""))
	require.Equal(t, http.StatusOK, status)
	var found models.Blog
	testutil.DecodeData(t, resp, &found)
	assert.Equal(t, models.StatusPublished, found.Status)

	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPatch, url+"/publish", map[string]bool{"published": false}, writer))
	assert.Equal(t, http.StatusOK, status)
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, url, nil, ""))
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, url, nil, writer))
	assert.Equal(t, http.StatusOK, status)

	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodDelete, url, nil, testutil.Token(t, testutil.Identity(access.RoleManager))))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, store.Len())
}
