// Package basesvc holds the generic Mongo repository shared by every entity service.
package basesvc

import (
	"context"
	"errors"
	"time"

	basemodels "edu_crm/internal/api/base/models"
	"edu_crm/internal/common"
	"edu_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpdateData is a partial update. Plain maps and structs passed to the Update* methods are wrapped in $set.
type UpdateData struct {
	Set      map[string]interface{} `bson:"$set,omitempty"`
	Unset    map[string]interface{} `bson:"$unset,omitempty"`
	Push     map[string]interface{} `bson:"$push,omitempty"`
	AddToSet map[string]interface{} `bson:"$addToSet,omitempty"`
	Pull     map[string]interface{} `bson:"$pull,omitempty"`
}

// ToUpdateData normalises data into an UpdateData. Maps carrying $-operators are split by operator.
func ToUpdateData(data interface{}) (*UpdateData, error) {
	switch u := data.(type) {
	case *UpdateData:
		return u, nil
	case UpdateData:
		return &u, nil
	case bson.M:
		return updateFromMap(u), nil
	case map[string]interface{}:
		return updateFromMap(u), nil
	case bson.D:
		m := make(map[string]interface{}, len(u))
		for _, e := range u {
			m[e.Key] = e.Value
		}
		return updateFromMap(m), nil
	}

	dataMap, err := utility.ToMap(data)
	if err != nil {
		return nil, err
	}
	return &UpdateData{Set: dataMap}, nil
}

func updateFromMap(m map[string]interface{}) *UpdateData {
	update := &UpdateData{}
	targets := map[string]*map[string]interface{}{
		"$set": &update.Set, "$unset": &update.Unset, "$push": &update.Push,
		"$addToSet": &update.AddToSet, "$pull": &update.Pull,
	}
	hasOperator := false
	for op, target := range targets {
		v, ok := m[op]
		if !ok {
			continue
		}
		hasOperator = true
		switch val := v.(type) {
		case bson.M:
			*target = val
		case map[string]interface{}:
			*target = val
		}
	}
	if !hasOperator {
		update.Set = m
	}
	return update
}

// BaseServiceMongo is the repository contract shared by every entity service.
type BaseServiceMongo[Model any] interface {
	InsertOne(ctx context.Context, data Model) (Model, error)
	InsertMany(ctx context.Context, data []Model) ([]Model, error)

	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (Model, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]Model, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (Model, error)
	FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[Model], error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)

	// UpdateOne applies update to the first match and returns the updated document (ErrNotFound when nothing matches).
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) (Model, error)
	UpdateMany(ctx context.Context, filter interface{}, update interface{}) (int64, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, update interface{}) (Model, error)

	DeleteOne(ctx context.Context, filter interface{}) error
	DeleteById(ctx context.Context, id primitive.ObjectID) error
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
}

// BaseServiceMongoImpl implements BaseServiceMongo on a *mongo.Collection.
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection
}

func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{collection: collection}
}

func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// PrepareInsert stamps createdAt/updatedAt and drops empty strings so sparse unique indexes skip them.
func PrepareInsert(data interface{}) (map[string]interface{}, error) {
	dataMap, err := utility.ToMap(data)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}
	for k, v := range dataMap {
		if s, ok := v.(string); ok && s == "" {
			delete(dataMap, k)
		}
	}
	if id, ok := dataMap["_id"].(primitive.ObjectID); !ok || id.IsZero() {
		dataMap["_id"] = primitive.NewObjectID()
	}
	now := time.Now().UnixMilli()
	if v, ok := dataMap["createdAt"].(int64); !ok || v == 0 {
		dataMap["createdAt"] = now
	}
	dataMap["updatedAt"] = now
	return dataMap, nil
}

func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T
	dataMap, err := PrepareInsert(data)
	if err != nil {
		return zero, err
	}

	result, err := s.collection.InsertOne(ctx, dataMap)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	var created T
	if err := s.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return created, nil
}

func (s *BaseServiceMongoImpl[T]) InsertMany(ctx context.Context, data []T) ([]T, error) {
	if len(data) == 0 {
		return []T{}, nil
	}
	docs := make([]interface{}, 0, len(data))
	for _, d := range data {
		m, err := PrepareInsert(d)
		if err != nil {
			return nil, err
		}
		docs = append(docs, m)
	}

	result, err := s.collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return s.Find(ctx, bson.M{"_id": bson.M{"$in": result.InsertedIDs}}, nil)
}

func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var zero T
	if filter == nil {
		filter = bson.M{}
	}
	if opts == nil {
		opts = options.FindOne()
	}

	var result T
	if err := s.collection.FindOne(ctx, filter, opts).Decode(&result); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return result, nil
}

// Find never returns a nil slice.
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	if opts == nil {
		opts = options.Find()
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

func (s *BaseServiceMongoImpl[T]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	if filter == nil {
		filter = bson.M{}
	}
	if opts == nil {
		opts = options.Find()
	}
	page, limit = NormalizePage(page, limit)
	opts.SetSkip((page - 1) * limit)
	opts.SetLimit(limit)

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	items, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return NewPaginateResult(items, page, limit, total), nil
}

func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}

func (s *BaseServiceMongoImpl[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (T, error) {
	var zero T
	updateData, err := PrepareUpdate(update)
	if err != nil {
		return zero, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated T
	if err := s.collection.FindOneAndUpdate(ctx, filter, updateData, opts).Decode(&updated); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return updated, nil
}

func (s *BaseServiceMongoImpl[T]) UpdateMany(ctx context.Context, filter interface{}, update interface{}) (int64, error) {
	updateData, err := PrepareUpdate(update)
	if err != nil {
		return 0, err
	}
	result, err := s.collection.UpdateMany(ctx, filter, updateData)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.ModifiedCount, nil
}

func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, update interface{}) (T, error) {
	return s.UpdateOne(ctx, bson.M{"_id": id}, update)
}

func (s *BaseServiceMongoImpl[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	result, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (s *BaseServiceMongoImpl[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"_id": id})
}

func (s *BaseServiceMongoImpl[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}

// PrepareUpdate normalises update and stamps updatedAt.
func PrepareUpdate(update interface{}) (*UpdateData, error) {
	updateData, err := ToUpdateData(update)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}
	if updateData.Set == nil {
		updateData.Set = map[string]interface{}{}
	}
	updateData.Set["updatedAt"] = time.Now().UnixMilli()
	return updateData, nil
}

// NormalizePage clamps page to >= 1 and limit to 1..100 (default 10).
func NormalizePage(page, limit int64) (int64, int64) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// NewPaginateResult builds the envelope; totalPage is 0 when total is 0.
func NewPaginateResult[T any](items []T, page, limit, total int64) *basemodels.PaginateResult[T] {
	if items == nil {
		items = []T{}
	}
	var totalPage int64
	if total > 0 {
		totalPage = (total + limit - 1) / limit
	}
	return &basemodels.PaginateResult[T]{
		Items:     items,
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Total:     total,
		TotalPage: totalPage,
	}
}

// IsNotFound reports whether err is the not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, common.ErrNotFound)
}
