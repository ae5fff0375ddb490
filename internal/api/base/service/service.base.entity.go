package basesvc

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	basemodels "edu_crm/internal/api/base/models"
	"edu_crm/internal/common"
	"edu_crm/internal/storage"
	"edu_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AttachmentField binds a multipart field to the document key holding its public URL.
type AttachmentField struct {
	Name     string // multipart field
	Key      string // bson key; defaults to Name
	Folder   string
	Kind     storage.Kind
	Required bool // required on create
}

func (f AttachmentField) key() string {
	if f.Key != "" {
		return f.Key
	}
	return f.Name
}

// EntityService adds paging, attachment handling and cascading deletes on top of a repository.
type EntityService[T any] struct {
	Repo         BaseServiceMongo[T]
	Attachments  *storage.Attachments
	Fields       []AttachmentField
	SearchFields []string
	Statuses     map[string][]string // status field -> allowed values
}

// NewestFirst is the default list order.
var NewestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

// ListFilter builds the filter for the shared list query parameters.
func (s *EntityService[T]) ListFilter(q basemodels.ListQuery) bson.M {
	filter := bson.M{}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.ProductCompany != "" {
		filter["productCompany"] = q.ProductCompany
	}
	if q.From > 0 || q.To > 0 {
		rng := bson.M{}
		if q.From > 0 {
			rng["$gte"] = q.From
		}
		if q.To > 0 {
			rng["$lte"] = q.To
		}
		filter["createdAt"] = rng
	}
	if q.Search != "" && len(s.SearchFields) > 0 {
		pattern := regexp.QuoteMeta(q.Search)
		or := make([]bson.M, 0, len(s.SearchFields))
		for _, f := range s.SearchFields {
			or = append(or, bson.M{f: bson.M{"$regex": pattern, "$options": "i"}})
		}
		filter["$or"] = or
	}
	return filter
}

// Page lists documents matching filter, newest first.
func (s *EntityService[T]) Page(ctx context.Context, filter bson.M, q basemodels.ListQuery) (*basemodels.PaginateResult[T], error) {
	return s.Repo.FindWithPagination(ctx, filter, q.Page, q.Limit, options.Find().SetSort(NewestFirst))
}

// FindByID returns the document with id that also matches scope. Out-of-scope documents are not found.
func (s *EntityService[T]) FindByID(ctx context.Context, id primitive.ObjectID, scope bson.M) (T, error) {
	return s.Repo.FindOne(ctx, scopedID(id, scope), nil)
}

func scopedID(id primitive.ObjectID, scope bson.M) bson.M {
	if len(scope) == 0 {
		return bson.M{"_id": id}
	}
	return bson.M{"$and": []bson.M{{"_id": id}, scope}}
}

// UploadAll stores every present attachment and returns the URLs keyed by document key.
// On creation a missing required file fails before anything is uploaded.
func (s *EntityService[T]) UploadAll(ctx context.Context, files basemodels.Files, creating bool) (map[string]string, error) {
	if creating {
		for _, f := range s.Fields {
			if f.Required && files.Get(f.Name) == nil {
				return nil, common.WithDetails(common.ErrFileRequired, f.Name)
			}
		}
	}
	urls := map[string]string{}
	for _, f := range s.Fields {
		fh := files.Get(f.Name)
		if fh == nil {
			continue
		}
		url, err := s.Attachments.Upload(ctx, fh, f.Folder, f.Kind)
		if err != nil {
			s.Discard(ctx, urls)
			return nil, err
		}
		urls[f.key()] = url
	}
	return urls, nil
}

// Discard deletes freshly uploaded objects after a failed write.
func (s *EntityService[T]) Discard(ctx context.Context, urls map[string]string) {
	if s.Attachments == nil || len(urls) == 0 {
		return
	}
	list := make([]string, 0, len(urls))
	for _, u := range urls {
		list = append(list, u)
	}
	s.Attachments.Delete(ctx, list...)
}

// CreateWithFiles uploads attachments, lets apply copy the URLs onto the model and inserts it.
// Uploads are discarded when the insert fails.
func (s *EntityService[T]) CreateWithFiles(ctx context.Context, model T, files basemodels.Files, apply func(*T, map[string]string)) (T, error) {
	var zero T
	urls, err := s.UploadAll(ctx, files, true)
	if err != nil {
		return zero, err
	}
	if apply != nil {
		apply(&model, urls)
	}
	created, err := s.Repo.InsertOne(ctx, model)
	if err != nil {
		s.Discard(ctx, urls)
		return zero, err
	}
	return created, nil
}

// UpdateWithFiles applies update to the in-scope document. New attachments are stored first,
// the document is updated, then the replaced objects are deleted best-effort.
func (s *EntityService[T]) UpdateWithFiles(ctx context.Context, id primitive.ObjectID, scope bson.M, update *UpdateData, files basemodels.Files) (T, error) {
	var zero T
	current, err := s.FindByID(ctx, id, scope)
	if err != nil {
		return zero, err
	}

	urls, err := s.UploadAll(ctx, files, false)
	if err != nil {
		return zero, err
	}
	if update == nil {
		update = &UpdateData{}
	}
	if update.Set == nil {
		update.Set = map[string]interface{}{}
	}
	for k, u := range urls {
		update.Set[k] = u
	}

	updated, err := s.Repo.UpdateOne(ctx, scopedID(id, scope), update)
	if err != nil {
		s.Discard(ctx, urls)
		return zero, err
	}

	if len(urls) > 0 {
		old := s.attachmentURLs(current)
		var replaced []string
		for k := range urls {
			if u := old[k]; u != "" && u != urls[k] {
				replaced = append(replaced, u)
			}
		}
		s.Attachments.Delete(ctx, replaced...)
	}
	return updated, nil
}

// DeleteWithFiles deletes the in-scope document, then its attachments best-effort.
func (s *EntityService[T]) DeleteWithFiles(ctx context.Context, id primitive.ObjectID, scope bson.M) (T, error) {
	var zero T
	current, err := s.FindByID(ctx, id, scope)
	if err != nil {
		return zero, err
	}
	if err := s.Repo.DeleteOne(ctx, scopedID(id, scope)); err != nil {
		return zero, err
	}
	if s.Attachments != nil {
		urls := s.attachmentURLs(current)
		list := make([]string, 0, len(urls))
		for _, u := range urls {
			list = append(list, u)
		}
		s.Attachments.Delete(ctx, list...)
	}
	return current, nil
}

// SetStatus sets one enumerated status field on the in-scope document. Unknown fields and values
// are rejected before anything is written.
func (s *EntityService[T]) SetStatus(ctx context.Context, id primitive.ObjectID, scope bson.M, field, value string, by *basemodels.ActorRef) (T, error) {
	var zero T
	allowed, ok := s.Statuses[field]
	if !ok {
		return zero, common.WithDetails(common.ErrInvalidInput, fmt.Sprintf("%s: not a status field", field))
	}
	valid := false
	for _, v := range allowed {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return zero, common.WithDetails(common.ErrInvalidStatus, fmt.Sprintf("%s must be one of %s", field, strings.Join(allowed, ", ")))
	}
	set := bson.M{field: value}
	if by != nil {
		set["updatedBy"] = by
	}
	return s.Repo.UpdateOne(ctx, scopedID(id, scope), set)
}

// attachmentURLs reads the attachment keys of doc.
func (s *EntityService[T]) attachmentURLs(doc T) map[string]string {
	out := map[string]string{}
	m, err := utility.ToMap(doc)
	if err != nil {
		return out
	}
	for _, f := range s.Fields {
		if u, ok := m[f.key()].(string); ok && u != "" {
			out[f.key()] = u
		}
	}
	return out
}
