// Package testutil builds requests, files and apps for handler and service tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"edu_crm/internal/api/access"
	basehdl "edu_crm/internal/api/base/handler"
	"edu_crm/internal/api/middleware"
	"edu_crm/internal/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Secret signs every token issued by Tokens.
const Secret = "test-secret"

// Tokens is the token manager shared by tests.
var Tokens = auth.NewTokenManager(Secret, 1)

// File is one multipart file part.
type File struct {
	Field   string
	Name    string
	Content []byte
}

// Envelope mirrors the response body.
type Envelope struct {
	Success bool            `json:"success"`
	Status  string          `json:"status"`
	Code    json.RawMessage `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
	Stack   string          `json:"stack"`
}

// ErrorCode returns the string error code of an error envelope.
func (e Envelope) ErrorCode() string {
	var code string
	_ = json.Unmarshal(e.Code, &code)
	return code
}

// Identity returns a fresh identity with role.
func Identity(role string) *access.Identity {
	return &access.Identity{ID: primitive.NewObjectID(), Name: role + " member", Email: role + "@crm.test", Role: role}
}

// Token signs a bearer token for id.
func Token(t *testing.T, id *access.Identity) string {
	t.Helper()
	token, _, err := Tokens.GenerateToken(id)
	require.NoError(t, err)
	return token
}

// NewApp returns a Fiber app with the production error handler.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: basehdl.ErrorHandler})
}

// NewAuth returns auth decorators backed by Tokens and members.
func NewAuth(members middleware.MemberResolver) *middleware.Auth {
	return middleware.NewAuth(Tokens, members)
}

// FileHeader builds a real multipart.FileHeader the same way a Fiber handler receives one.
func FileHeader(t *testing.T, field, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	body, contentType := Multipart(t, nil, File{Field: field, Name: name, Content: content})
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File[field][0]
}

// Multipart encodes fields and files into a multipart body.
func Multipart(t *testing.T, fields map[string]string, files ...File) (io.Reader, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Name)
		require.NoError(t, err)
		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

// JSONRequest builds a request with a JSON body and an optional bearer token.
func JSONRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// RawRequest builds a request with a literal body of the given content type.
func RawRequest(t *testing.T, method, url, contentType, body, token string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// MultipartRequest builds a multipart request with an optional bearer token.
func MultipartRequest(t *testing.T, method, url string, fields map[string]string, token string, files ...File) *http.Request {
	t.Helper()
	body, contentType := Multipart(t, fields, files...)
	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// Do runs req against app and decodes the envelope.
func Do(t *testing.T, app *fiber.App, req *http.Request) (int, Envelope) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env Envelope
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

// DecodeData unmarshals the envelope data into out.
func DecodeData(t *testing.T, env Envelope, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out), string(env.Data))
}
