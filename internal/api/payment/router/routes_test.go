package router

import (
	"net/http"
	"testing"

	"edu_crm/internal/api/access"
	"edu_crm/internal/api/base/service/servicetest"
	"edu_crm/internal/api/payment/models"
	paymentsvc "edu_crm/internal/api/payment/service"
	apirouter "edu_crm/internal/api/router"
	"edu_crm/internal/storage"
	"edu_crm/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRoutes(t *testing.T) {
	svc := paymentsvc.NewPaymentServiceWith(servicetest.NewMemoryRepo[models.PaymentDetail](), storage.NewAttachments(storage.NewMemoryStore(), 1))
	app := testutil.NewApp()
	require.NoError(t, apirouter.SetupRoutes(app, testutil.NewAuth(nil), Register(svc)))

	fields := map[string]string{"name": "Asha", "phone": "9876543210", "amount": "1250.75", "paymentMode": "upi"}
	shot := testutil.File{Field: "screenshot", Name: "paid.png", Content: []byte("png")}
	status, resp := testutil.Do(t, app, testutil.MultipartRequest(t, http.MethodPost, "/api/v1/payment-detail/", fields, "", shot))
	require.Equal(t, http.StatusCreated, status, string(resp.Error))
	var created models.PaymentDetail
	testutil.DecodeData(t, resp, &created)
	assert.Equal(t, "1250.75", created.Amount.String())

	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost, "/api/v1/payment-detail/", map[string]interface{}{"name": "Ravi", "phone": "9876543210", "amount": -5}, ""))
	assert.Equal(t, http.StatusBadRequest, status)

	analyst := testutil.Token(t, testutil.Identity(access.RoleAnalyst))
	status, resp = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, "/api/v1/payment-detail/summary", nil, analyst))
	require.Equal(t, http.StatusOK, status)
	var sum struct {
		Total string `json:"total"`
	}
	testutil.DecodeData(t, resp, &sum)
	assert.Equal(t, "1250.75", sum.Total)

	url := "/api/v1/payment-detail/" + created.ID.Hex()
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPatch, url+"/status", map[string]string{"status": "success"}, analyst))
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPatch, url+"/status", map[string]string{"status": "success"}, testutil.Token(t, testutil.Identity(access.RoleManager))))
	assert.Equal(t, http.StatusOK, status)
}
