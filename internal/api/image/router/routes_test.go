package router

import (
	"net/http"
	"testing"

	"edu_crm/internal/api/access"
	"edu_crm/internal/api/base/service/servicetest"
	"edu_crm/internal/api/image/models"
	imagesvc "edu_crm/internal/api/image/service"
	apirouter "edu_crm/internal/api/router"
	"edu_crm/internal/storage"
	"edu_crm/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageRoutes(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := imagesvc.NewImageServiceWith(servicetest.NewMemoryRepo[models.Image](), storage.NewAttachments(store, 1))
	app := testutil.NewApp()
	require.NoError(t, apirouter.SetupRoutes(app, testutil.NewAuth(nil), Register(svc)))

	marketing := testutil.Token(t, testutil.Identity(access.RoleMarketing))
	fields := map[string]string{"title": "Campus front", "category": "campus"}

	status, _ := testutil.Do(t, app, testutil.MultipartRequest(t, http.MethodPost, "/api/v1/image/", fields, ""))
	assert.Equal(t, http.StatusUnauthorized, status)

	status, resp := testutil.Do(t, app, testutil.MultipartRequest(t, http.MethodPost, "/api/v1/image/", fields, marketing))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VAL_003", resp.ErrorCode())

	status, _ = testutil.Do(t, app, testutil.MultipartRequest(t, http.MethodPost, "/api/v1/image/", fields, marketing,
		testutil.File{Field: "image", Name: "brochure.pdf", Content: []byte("%PDF")}))
	assert.Equal(t, http.StatusUnsupportedMediaType, status)

	status, resp = testutil.Do(t, app, testutil.MultipartRequest(t, http.MethodPost, "/api/v1/image/", fields, marketing,
		testutil.File{Field: "image", Name: "front.jpg", Content: []byte("jpg")}))
	require.Equal(t, http.StatusCreated, status, string(resp.Error))
	var created models.Image
	testutil.DecodeData(t, resp, &created)
	assert.Contains(t, created.URL, store.BaseURL+"/images/")

	status, resp = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, "/api/v1/image/?category=campus", nil, ""))
	require.Equal(t, http.StatusOK, status)
	var page struct {
		Total int64 `json:"total"`
	}
	testutil.DecodeData(t, resp, &page)
	assert.EqualValues(t, 1, page.Total)

	url := "/api/v1/image/" + created.ID.Hex()
	status, resp = testutil.Do(t, app, testutil.MultipartRequest(t, http.MethodPut, url, map[string]string{"altText": "Main gate"}, marketing,
		testutil.File{Field: "image", Name: "front-new.webp", Content: []byte("webp")}))
	require.Equal(t, http.StatusOK, status, string(resp.Error))
	var updated models.Image
	testutil.DecodeData(t, resp, &updated)
	assert.NotEqual(t, created.URL, updated.URL)
	assert.Equal(t, "Campus front", updated.Title)
	assert.Equal(t, []string{created.URL}, store.Removed())

	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodDelete, url, nil, marketing))
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodDelete, url, nil, testutil.Token(t, testutil.Identity(access.RoleAdmin))))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, store.Len())
}
