package storage

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"edu_crm/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart.FileHeader the way a Fiber handler receives one.
func fileHeader(t *testing.T, field, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, _ = part.Write(content)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File[field][0]
}

func TestUploadStoresUnderFolder(t *testing.T) {
	store := NewMemoryStore()
	a := NewAttachments(store, 1)

	url, err := a.Upload(context.Background(), fileHeader(t, "resume", "CV.PDF", []byte("%PDF-1.4")), "resumes", KindDocument)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, store.BaseURL+"/resumes/"))
	assert.True(t, strings.HasSuffix(url, ".pdf"))
	assert.Equal(t, 1, store.Len())
}

func TestUploadRejectsWrongKindAndSize(t *testing.T) {
	a := NewAttachments(NewMemoryStore(), 1)

	_, err := a.Upload(context.Background(), fileHeader(t, "photo", "cv.pdf", []byte("x")), "photos", KindImage)
	assert.ErrorIs(t, err, common.ErrFileType)

	a.MaxBytes = 2
	_, err = a.Upload(context.Background(), fileHeader(t, "photo", "me.png", []byte("1234")), "photos", KindImage)
	assert.ErrorIs(t, err, common.ErrFileTooLarge)

	_, err = a.Upload(context.Background(), nil, "photos", KindImage)
	assert.ErrorIs(t, err, common.ErrFileRequired)
}

func TestUploadStoreFailure(t *testing.T) {
	store := NewMemoryStore()
	store.FailPut = errors.New("bucket offline")
	a := NewAttachments(store, 1)

	_, err := a.Upload(context.Background(), fileHeader(t, "image", "a.jpg", []byte("x")), "images", KindImage)
	assert.ErrorIs(t, err, common.ErrStorage)
}

func TestDeleteIsBestEffort(t *testing.T) {
	store := NewMemoryStore()
	store.FailRm = errors.New("denied")
	a := NewAttachments(store, 1)

	assert.NotPanics(t, func() {
		a.Delete(context.Background(), "", store.BaseURL+"/resumes/a.pdf", store.BaseURL+"/photos/b.png")
	})
	assert.Equal(t, []string{store.BaseURL + "/resumes/a.pdf", store.BaseURL + "/photos/b.png"}, store.Removed())
}

func TestKeyFromURL(t *testing.T) {
	key, err := KeyFromURL("https://cdn.example.com/crm/", "https://cdn.example.com/crm/resumes/a%20b.pdf?x=1")
	require.NoError(t, err)
	assert.Equal(t, "resumes/a b.pdf", key)

	_, err = KeyFromURL("https://cdn.example.com/crm", "https://elsewhere.com/crm/resumes/a.pdf")
	assert.ErrorIs(t, err, ErrForeignURL)
}

func TestNewKey(t *testing.T) {
	key := NewKey("/logos/", "Brand.SVG")
	assert.True(t, strings.HasPrefix(key, "logos/"))
	assert.True(t, strings.HasSuffix(key, ".svg"))
}
