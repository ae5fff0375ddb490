package router

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"edu_crm/internal/api/access"
	"edu_crm/internal/api/base/service/servicetest"
	"edu_crm/internal/api/report/models"
	reportsvc "edu_crm/internal/api/report/service"
	apirouter "edu_crm/internal/api/router"
	"edu_crm/internal/storage"
	"edu_crm/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRoutes(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := reportsvc.NewReportServiceWith(servicetest.NewMemoryRepo[models.Report](), storage.NewAttachments(store, 1))
	app := testutil.NewApp()
	require.NoError(t, apirouter.SetupRoutes(app, testutil.NewAuth(nil), Register(svc)))

	analystID := testutil.Identity(access.RoleAnalyst)
	analyst := testutil.Token(t, analystID)
	jan := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	feb := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	fields := map[string]string{
		"title": "January admissions", "category": "admissions",
		"periodStart": strconv.FormatInt(jan, 10), "periodEnd": strconv.FormatInt(feb, 10),
	}

	status, resp := testutil.Do(t, app, testutil.MultipartRequest(t, http.MethodPost, "/api/v1/reports/", fields, analyst))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VAL_003", resp.ErrorCode())

	status, _ = testutil.Do(t, app, testutil.MultipartRequest(t, http.MethodPost, "/api/v1/reports/", fields, testutil.Token(t, testutil.Identity(access.RoleSales)),
		testutil.File{Field: "file", Name: "jan.xlsx", Content: []byte("xlsx")}))
	assert.Equal(t, http.StatusForbidden, status)

	status, resp = testutil.Do(t, app, testutil.MultipartRequest(t, http.MethodPost, "/api/v1/reports/", fields, analyst,
		testutil.File{Field: "file", Name: "jan.xlsx", Content: []byte("xlsx")}))
	require.Equal(t, http.StatusCreated, status, string(resp.Error))
	var created models.Report
	testutil.DecodeData(t, resp, &created)
	assert.Contains(t, created.File, store.BaseURL+"/reports/")
	require.NotNil(t, created.UploadedBy)
	assert.Equal(t, analystID.ID, created.UploadedBy.ID)

	march := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	status, resp = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, "/api/v1/reports/?periodFrom="+strconv.FormatInt(march, 10), nil, analyst))
	require.Equal(t, http.StatusOK, status)
	var page struct {
		Total int64 `json:"total"`
	}
	testutil.DecodeData(t, resp, &page)
	assert.Zero(t, page.Total)

	url := "/api/v1/reports/" + created.ID.Hex()
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPut, url, map[string]int64{"periodEnd": jan - 1}, analyst))
	assert.Equal(t, http.StatusBadRequest, status)

	status, resp = testutil.Do(t, app, testutil.MultipartRequest(t, http.MethodPut, url, map[string]string{"description": "Revised"}, analyst,
		testutil.File{Field: "file", Name: "jan-v2.pdf", Content: []byte("%PDF")}))
	require.Equal(t, http.StatusOK, status, string(resp.Error))
	assert.Equal(t, []string{created.File}, store.Removed())

	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodDelete, url, nil, analyst))
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodDelete, url, nil, testutil.Token(t, testutil.Identity(access.RoleAdmin))))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, store.Len())
}
