package mail

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"edu_crm/internal/common"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingSender struct {
	name string
	sent []Message
	err  error
}

func (r *recordingSender) Name() string { return r.name }

func (r *recordingSender) Send(_ context.Context, msg Message) error {
	r.sent = append(r.sent, msg)
	return r.err
}

func TestServiceRoutesToProvider(t *testing.T) {
	smtp := &recordingSender{name: ProviderSMTP}
	api := &recordingSender{name: ProviderResend}
	svc := NewServiceWith(ProviderResend, "inbox@example.com", smtp, api)

	msg := Message{To: []string{"lead@example.com"}, Subject: "Hello", HTML: "<p>hi</p>"}
	require.NoError(t, svc.Send(context.Background(), "", msg))
	require.NoError(t, svc.Send(context.Background(), ProviderSMTP, msg))

	assert.Len(t, api.sent, 1)
	assert.Len(t, smtp.sent, 1)
	assert.Equal(t, "inbox@example.com", svc.AdminInbox())
	assert.ElementsMatch(t, []string{ProviderSMTP, ProviderResend}, svc.Providers())
}

func TestServiceValidation(t *testing.T) {
	svc := NewServiceWith("unknown", "", &recordingSender{name: ProviderSMTP})

	err := svc.Send(context.Background(), "carrier-pigeon", Message{To: []string{"a@b.co"}})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	err = svc.Send(context.Background(), "", Message{})
	assert.ErrorIs(t, err, common.ErrRequiredField)

	err = svc.Send(context.Background(), "", Message{To: []string{"a@b.co\r\nBcc: x@y.z"}})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestServiceWithoutSendersIsUnavailable(t *testing.T) {
	svc := NewServiceWith("", "")
	err := svc.Send(context.Background(), "", Message{To: []string{"a@b.co"}})
	assert.ErrorIs(t, err, common.ErrMailUnavailable)

	var appErr *common.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.StatusServiceUnavailable, appErr.StatusCode)
	assert.Equal(t, "SYS_002", appErr.Code.Code)
}

func TestServiceWrapsProviderFailure(t *testing.T) {
	svc := NewServiceWith(ProviderSMTP, "", &recordingSender{name: ProviderSMTP, err: errors.New("421 busy")})
	err := svc.Send(context.Background(), "", Message{To: []string{"a@b.co"}})
	assert.ErrorIs(t, err, common.ErrMailFailure)
}

func TestSMTPSenderFallsBack(t *testing.T) {
	s := NewSMTPSender("no-reply@example.com", "Desk",
		SMTPProvider{Host: "primary.example.com", Port: 587},
		SMTPProvider{Host: "backup.example.com", Port: 587},
	)
	var tried []string
	s.dial = func(p SMTPProvider, _ *gomail.Message) error {
		tried = append(tried, p.Host)
		if p.Host == "primary.example.com" {
			return errors.New("connection refused")
		}
		return nil
	}

	require.NoError(t, s.Send(context.Background(), Message{To: []string{"a@b.co"}, Subject: "x", HTML: "y"}))
	assert.Equal(t, []string{"primary.example.com", "backup.example.com"}, tried)
}

func TestSMTPSenderAllFail(t *testing.T) {
	s := NewSMTPSender("no-reply@example.com", "", SMTPProvider{Host: "a"}, SMTPProvider{Host: "b"})
	s.dial = func(SMTPProvider, *gomail.Message) error { return errors.New("down") }

	err := s.Send(context.Background(), Message{To: []string{"a@b.co"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all smtp providers failed")

	assert.Error(t, NewSMTPSender("x@y.z", "").Send(context.Background(), Message{To: []string{"a@b.co"}}))
}

func TestResendSender(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req resend.SendEmailRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Desk <no-reply@example.com>", req.From)
		assert.Equal(t, []string{"lead@example.com"}, req.To)
		assert.Equal(t, "Welcome", req.Subject)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "email-123"})
	}))
	defer server.Close()

	client := resend.NewClient("test-key")
	base, _ := url.Parse(server.URL)
	client.BaseURL = base

	sender := NewResendSenderWithClient(client, formatFrom("Desk", "no-reply@example.com"))
	require.NoError(t, sender.Send(context.Background(), Message{To: []string{"lead@example.com"}, Subject: "Welcome", HTML: "<p>hi</p>"}))
}

func TestResendSenderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"statusCode": 422, "name": "validation_error", "message": "bad from"})
	}))
	defer server.Close()

	client := resend.NewClient("test-key")
	base, _ := url.Parse(server.URL)
	client.BaseURL = base

	err := NewResendSenderWithClient(client, "x@y.z").Send(context.Background(), Message{To: []string{"a@b.co"}})
	assert.Error(t, err)
}

func TestRenderTemplates(t *testing.T) {
	html, err := Render("assignment.html", AssignmentData{AssigneeName: "Priya", AssignedBy: "Manager", EntityLabel: "lead", RecordName: "<Rahul>"})
	require.NoError(t, err)
	assert.Contains(t, html, "Priya")
	assert.Contains(t, html, "&lt;Rahul&gt;")

	html, err = Render("contact_reply.html", ContactData{Name: "Meera", ProductCompany: "Skill Academy"})
	require.NoError(t, err)
	assert.Contains(t, html, "Skill Academy")

	_, err = Render("missing.html", nil)
	assert.Error(t, err)
}

func TestFormatFrom(t *testing.T) {
	assert.Equal(t, "no-reply@example.com", formatFrom("", "no-reply@example.com"))
	assert.Equal(t, "Desk <no-reply@example.com>", formatFrom("Desk", "no-reply@example.com"))
	assert.Equal(t, "Admissions Desk <no-reply@example.com>", formatFrom("Admissions Desk", "no-reply@example.com"))
	assert.Equal(t, `"Desk, Pune" <no-reply@example.com>`, formatFrom("Desk, Pune", "no-reply@example.com"))
	assert.Equal(t, "=?utf-8?q?Caf=C3=A9?= <no-reply@example.com>", formatFrom("Café", "no-reply@example.com"))
}
