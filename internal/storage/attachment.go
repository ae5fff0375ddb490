package storage

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"edu_crm/internal/common"
	"edu_crm/internal/logger"
	"edu_crm/internal/metrics"

	"github.com/google/uuid"
)

// Kind restricts which file extensions an attachment accepts.
type Kind int

const (
	KindImage Kind = iota
	KindDocument
	KindImageOrDocument
)

var allowedExt = map[Kind]map[string]string{
	KindImage: {
		".jpg": "image/jpeg", ".jpeg": "image/jpeg", ".png": "image/png", ".webp": "image/webp", ".gif": "image/gif",
	},
	KindDocument: {
		".pdf": "application/pdf", ".doc": "application/msword",
		".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		".csv":  "text/csv",
	},
}

func init() {
	both := map[string]string{}
	for _, k := range []Kind{KindImage, KindDocument} {
		for ext, ct := range allowedExt[k] {
			both[ext] = ct
		}
	}
	allowedExt[KindImageOrDocument] = both
}

// Attachments uploads multipart files and deletes them best-effort.
type Attachments struct {
	Store    ObjectStore
	MaxBytes int64
}

func NewAttachments(store ObjectStore, maxMB int) *Attachments {
	if maxMB <= 0 {
		maxMB = 10
	}
	return &Attachments{Store: store, MaxBytes: int64(maxMB) << 20}
}

// NewKey returns "<folder>/<uuid><ext>".
func NewKey(folder, filename string) string {
	return strings.Trim(folder, "/") + "/" + uuid.NewString() + strings.ToLower(filepath.Ext(filename))
}

// Upload validates fh against kind and stores it under folder, returning the public URL.
func (a *Attachments) Upload(ctx context.Context, fh *multipart.FileHeader, folder string, kind Kind) (string, error) {
	if fh == nil {
		return "", common.ErrFileRequired
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	contentType, ok := allowedExt[kind][ext]
	if !ok {
		return "", common.WithDetails(common.ErrFileType, ext)
	}
	if a.MaxBytes > 0 && fh.Size > a.MaxBytes {
		return "", common.WithDetails(common.ErrFileTooLarge, fh.Size)
	}

	f, err := fh.Open()
	if err != nil {
		return "", common.WithDetails(common.ErrInvalidFormat, err.Error())
	}
	defer f.Close()

	url, err := a.Store.Put(ctx, NewKey(folder, fh.Filename), contentType, f, fh.Size)
	metrics.AttachmentOperations.WithLabelValues("put", metrics.Outcome(err)).Inc()
	if err != nil {
		logger.WithModule("storage").WithError(err).WithField("folder", folder).Error("attachment upload failed")
		return "", common.WithDetails(common.ErrStorage, err.Error())
	}
	return url, nil
}

// Delete removes each non-empty URL. Failures are logged and never returned.
func (a *Attachments) Delete(ctx context.Context, urls ...string) {
	for _, u := range urls {
		if u == "" {
			continue
		}
		rmCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		err := a.Store.Remove(rmCtx, u)
		cancel()
		metrics.AttachmentOperations.WithLabelValues("remove", metrics.Outcome(err)).Inc()
		if err != nil {
			logger.WithModule("storage").WithError(err).WithField("url", u).Warn("attachment delete failed, continuing")
		}
	}
}
