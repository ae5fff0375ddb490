package models

import (
	"mime/multipart"
	"strconv"
	"strings"
)

// PaginateResult is the page envelope returned by every list endpoint.
type PaginateResult[T any] struct {
	Page      int64 `json:"page"`
	Limit     int64 `json:"limit"`
	ItemCount int64 `json:"itemCount"`
	Items     []T   `json:"items"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"totalPage"`
}

// ListQuery carries the query-string filters shared by list endpoints.
type ListQuery struct {
	Page           int64
	Limit          int64
	Status         string
	ProductCompany string
	AssignedTo     string // team member id, or "unassigned"
	Search         string
	From           int64 // createdAt >= From (unix millis)
	To             int64 // createdAt <= To (unix millis)
	Extra          map[string]string
}

// Get returns an extra filter value.
func (q ListQuery) Get(key string) string {
	if q.Extra == nil {
		return ""
	}
	return strings.TrimSpace(q.Extra[key])
}

// Int returns an extra filter value as an integer, or 0 when absent or malformed.
func (q ListQuery) Int(key string) int64 {
	n, _ := strconv.ParseInt(q.Get(key), 10, 64)
	return n
}

// Files holds the uploaded multipart files of one request, keyed by form field.
type Files map[string]*multipart.FileHeader

// Get returns the file for field, or nil.
func (f Files) Get(field string) *multipart.FileHeader {
	if f == nil {
		return nil
	}
	return f[field]
}

// StatusInput is the body of PATCH /:id/status. Status is shorthand for {field: "status", value: Status}.
type StatusInput struct {
	Status string `json:"status" form:"status"`
	Field  string `json:"field" form:"field"`
	Value  string `json:"value" form:"value"`
}

// Resolve returns the target field and value.
func (s StatusInput) Resolve() (string, string) {
	if s.Status != "" {
		return "status", strings.TrimSpace(s.Status)
	}
	field := strings.TrimSpace(s.Field)
	if field == "" {
		field = "status"
	}
	return field, strings.TrimSpace(s.Value)
}

// AssignInput is the body of PATCH /:id/assign.
type AssignInput struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

// RemarkInput is the body of POST /:id/remarks.
type RemarkInput struct {
	Text string `json:"text" form:"text" validate:"required,min=1,max=2000"`
}
