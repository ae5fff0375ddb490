// Package servicetest holds an in-memory repository that evaluates the bson filters and updates the
// services issue. Only tests import it.
package servicetest

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	basemodels "edu_crm/internal/api/base/models"
	basesvc "edu_crm/internal/api/base/service"
	"edu_crm/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MemoryRepo is an in-process basesvc.BaseServiceMongo.
// It understands the subset of the query language the services issue.
type MemoryRepo[T any] struct {
	mu     sync.RWMutex
	docs   []bson.M
	unique []string
}

var _ basesvc.BaseServiceMongo[struct{}] = (*MemoryRepo[struct{}])(nil)

// NewMemoryRepo returns an empty repository. uniqueFields behave like unique sparse indexes.
func NewMemoryRepo[T any](uniqueFields ...string) *MemoryRepo[T] {
	return &MemoryRepo[T]{unique: uniqueFields}
}

// Len returns the number of stored documents.
func (r *MemoryRepo[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs)
}

func (r *MemoryRepo[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.prepare(data)
	if err != nil {
		return zero, err
	}
	r.docs = append(r.docs, doc)
	return decode[T](doc)
}

func (r *MemoryRepo[T]) InsertMany(ctx context.Context, data []T) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]T, 0, len(data))
	for _, d := range data {
		doc, err := r.prepare(d)
		if err != nil {
			return nil, err
		}
		r.docs = append(r.docs, doc)
		item, err := decode[T](doc)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *MemoryRepo[T]) prepare(data T) (bson.M, error) {
	m, err := basesvc.PrepareInsert(data)
	if err != nil {
		return nil, err
	}
	doc, err := toDoc(m)
	if err != nil {
		return nil, err
	}
	for _, field := range r.unique {
		vals := lookup(doc, field)
		if len(vals) == 0 || vals[0] == nil {
			continue
		}
		for _, existing := range r.docs {
			if matchValue(lookup(existing, field), vals[0]) {
				return nil, common.WithDetails(common.ErrDuplicate, field)
			}
		}
	}
	return doc, nil
}

func (r *MemoryRepo[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var zero T
	findOpts := options.Find().SetLimit(1)
	if opts != nil {
		if opts.Sort != nil {
			findOpts.SetSort(opts.Sort)
		}
		if opts.Skip != nil {
			findOpts.SetSkip(*opts.Skip)
		}
	}
	items, err := r.Find(ctx, filter, findOpts)
	if err != nil {
		return zero, err
	}
	if len(items) == 0 {
		return zero, common.ErrNotFound
	}
	return items[0], nil
}

func (r *MemoryRepo[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched, err := r.matching(filter)
	if err != nil {
		return nil, err
	}
	if opts != nil {
		if opts.Sort != nil {
			sortDocs(matched, opts.Sort)
		}
		if opts.Skip != nil {
			skip := int(*opts.Skip)
			if skip >= len(matched) {
				matched = nil
			} else {
				matched = matched[skip:]
			}
		}
		if opts.Limit != nil && *opts.Limit > 0 && int(*opts.Limit) < len(matched) {
			matched = matched[:*opts.Limit]
		}
	}

	out := make([]T, 0, len(matched))
	for _, doc := range matched {
		item, err := decode[T](doc)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *MemoryRepo[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return r.FindOne(ctx, bson.M{"_id": id}, nil)
}

func (r *MemoryRepo[T]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	if opts == nil {
		opts = options.Find()
	}
	page, limit = basesvc.NormalizePage(page, limit)
	total, err := r.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}
	opts.SetSkip((page - 1) * limit)
	opts.SetLimit(limit)
	items, err := r.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return basesvc.NewPaginateResult(items, page, limit, total), nil
}

func (r *MemoryRepo[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched, err := r.matching(filter)
	if err != nil {
		return 0, err
	}
	return int64(len(matched)), nil
}

func (r *MemoryRepo[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := r.CountDocuments(ctx, filter)
	return count > 0, err
}

func (r *MemoryRepo[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (T, error) {
	var zero T
	r.mu.Lock()
	defer r.mu.Unlock()

	matched, err := r.matching(filter)
	if err != nil {
		return zero, err
	}
	if len(matched) == 0 {
		return zero, common.ErrNotFound
	}
	if err := applyUpdate(matched[0], update); err != nil {
		return zero, err
	}
	return decode[T](matched[0])
}

func (r *MemoryRepo[T]) UpdateMany(ctx context.Context, filter interface{}, update interface{}) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched, err := r.matching(filter)
	if err != nil {
		return 0, err
	}
	for _, doc := range matched {
		if err := applyUpdate(doc, update); err != nil {
			return 0, err
		}
	}
	return int64(len(matched)), nil
}

func (r *MemoryRepo[T]) UpdateById(ctx context.Context, id primitive.ObjectID, update interface{}) (T, error) {
	return r.UpdateOne(ctx, bson.M{"_id": id}, update)
}

func (r *MemoryRepo[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := toDoc(filter)
	if err != nil {
		return err
	}
	for i, doc := range r.docs {
		if matchDoc(doc, f) {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *MemoryRepo[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return r.DeleteOne(ctx, bson.M{"_id": id})
}

func (r *MemoryRepo[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := toDoc(filter)
	if err != nil {
		return 0, err
	}
	kept := r.docs[:0]
	var deleted int64
	for _, doc := range r.docs {
		if matchDoc(doc, f) {
			deleted++
			continue
		}
		kept = append(kept, doc)
	}
	r.docs = kept
	return deleted, nil
}

// matching returns the live documents matching filter in insertion order. Callers hold the lock.
func (r *MemoryRepo[T]) matching(filter interface{}) ([]bson.M, error) {
	f, err := toDoc(filter)
	if err != nil {
		return nil, err
	}
	var out []bson.M
	for _, doc := range r.docs {
		if matchDoc(doc, f) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func decode[T any](doc bson.M) (T, error) {
	var out T
	raw, err := bson.Marshal(doc)
	if err != nil {
		return out, common.WithDetails(common.ErrQuery, err.Error())
	}
	if err := bson.Unmarshal(raw, &out); err != nil {
		return out, common.WithDetails(common.ErrQuery, err.Error())
	}
	return out, nil
}

// toDoc converts any filter/document value into its bson.M form with normalised nested values.
func toDoc(v interface{}) (bson.M, error) {
	if v == nil {
		return bson.M{}, nil
	}
	n, err := normalize(v)
	if err != nil {
		return nil, err
	}
	m, ok := n.(bson.M)
	if !ok {
		return nil, common.ErrInvalidFormat
	}
	return m, nil
}

// normalize round-trips v through bson so that Go pointers, ints and structs compare like stored values.
func normalize(v interface{}) (interface{}, error) {
	raw, err := bson.Marshal(bson.M{"v": v})
	if err != nil {
		return nil, common.WithDetails(common.ErrInvalidFormat, err.Error())
	}
	var wrapped bson.M
	if err := bson.Unmarshal(raw, &wrapped); err != nil {
		return nil, common.WithDetails(common.ErrInvalidFormat, err.Error())
	}
	return canonical(wrapped["v"]), nil
}

func canonical(v interface{}) interface{} {
	switch val := v.(type) {
	case bson.M:
		for k, e := range val {
			val[k] = canonical(e)
		}
		return val
	case map[string]interface{}:
		out := bson.M{}
		for k, e := range val {
			out[k] = canonical(e)
		}
		return out
	case bson.D:
		out := bson.M{}
		for _, e := range val {
			out[e.Key] = canonical(e.Value)
		}
		return out
	case bson.A:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = canonical(e)
		}
		return out
	case []interface{}:
		for i, e := range val {
			val[i] = canonical(e)
		}
		return val
	}
	return v
}

// lookup resolves a dotted path, fanning out over arrays.
func lookup(v interface{}, path string) []interface{} {
	parts := strings.Split(path, ".")
	current := []interface{}{v}
	for _, part := range parts {
		var next []interface{}
		for _, c := range current {
			switch node := c.(type) {
			case bson.M:
				if val, ok := node[part]; ok {
					next = append(next, val)
				}
			case []interface{}:
				for _, el := range node {
					if m, ok := el.(bson.M); ok {
						if val, ok := m[part]; ok {
							next = append(next, val)
						}
					}
				}
			}
		}
		current = next
	}
	return current
}

func matchDoc(doc bson.M, filter bson.M) bool {
	for key, cond := range filter {
		switch key {
		case "$or":
			if !anyClause(doc, cond) {
				return false
			}
		case "$and":
			for _, clause := range clauses(cond) {
				if !matchDoc(doc, clause) {
					return false
				}
			}
		case "$nor":
			if anyClause(doc, cond) {
				return false
			}
		default:
			if !matchField(lookup(doc, key), cond) {
				return false
			}
		}
	}
	return true
}

func clauses(cond interface{}) []bson.M {
	list, _ := cond.([]interface{})
	out := make([]bson.M, 0, len(list))
	for _, c := range list {
		if m, ok := c.(bson.M); ok {
			out = append(out, m)
		}
	}
	return out
}

func anyClause(doc bson.M, cond interface{}) bool {
	for _, clause := range clauses(cond) {
		if matchDoc(doc, clause) {
			return true
		}
	}
	return false
}

func isOperatorDoc(cond interface{}) (bson.M, bool) {
	m, ok := cond.(bson.M)
	if !ok || len(m) == 0 {
		return nil, false
	}
	for k := range m {
		if !strings.HasPrefix(k, "$") {
			return nil, false
		}
	}
	return m, true
}

func matchField(values []interface{}, cond interface{}) bool {
	ops, ok := isOperatorDoc(cond)
	if !ok {
		return matchValue(values, cond)
	}
	for op, arg := range ops {
		switch op {
		case "$eq":
			if !matchValue(values, arg) {
				return false
			}
		case "$ne":
			if matchValue(values, arg) {
				return false
			}
		case "$in":
			if !matchAny(values, arg) {
				return false
			}
		case "$nin":
			if matchAny(values, arg) {
				return false
			}
		case "$exists":
			want, _ := arg.(bool)
			if (len(values) > 0) != want {
				return false
			}
		case "$gt", "$gte", "$lt", "$lte":
			if !matchRange(values, op, arg) {
				return false
			}
		case "$regex":
			opts, _ := ops["$options"].(string)
			if !matchRegex(values, arg, opts) {
				return false
			}
		case "$options":
		case "$elemMatch":
			sub, _ := arg.(bson.M)
			if !matchElem(values, sub) {
				return false
			}
		case "$size":
			if !matchSize(values, arg) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// matchValue follows Mongo equality: null matches a missing field, arrays match on any element.
func matchValue(values []interface{}, want interface{}) bool {
	if len(values) == 0 {
		return want == nil
	}
	for _, v := range values {
		if equal(v, want) {
			return true
		}
		if arr, ok := v.([]interface{}); ok {
			for _, el := range arr {
				if equal(el, want) {
					return true
				}
			}
		}
	}
	return false
}

func matchAny(values []interface{}, arg interface{}) bool {
	list, _ := arg.([]interface{})
	for _, want := range list {
		if matchValue(values, want) {
			return true
		}
	}
	return false
}

func matchRange(values []interface{}, op string, arg interface{}) bool {
	for _, v := range values {
		cmp, ok := compare(v, arg)
		if !ok {
			continue
		}
		switch op {
		case "$gt":
			if cmp > 0 {
				return true
			}
		case "$gte":
			if cmp >= 0 {
				return true
			}
		case "$lt":
			if cmp < 0 {
				return true
			}
		case "$lte":
			if cmp <= 0 {
				return true
			}
		}
	}
	return false
}

func matchRegex(values []interface{}, arg interface{}, opts string) bool {
	pattern := ""
	switch p := arg.(type) {
	case string:
		pattern = p
	case primitive.Regex:
		pattern, opts = p.Pattern, p.Options
	default:
		return false
	}
	if strings.Contains(opts, "i") {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	for _, v := range values {
		if s, ok := v.(string); ok && re.MatchString(s) {
			return true
		}
	}
	return false
}

func matchElem(values []interface{}, sub bson.M) bool {
	for _, v := range values {
		arr, ok := v.([]interface{})
		if !ok {
			continue
		}
		for _, el := range arr {
			if m, ok := el.(bson.M); ok && matchDoc(m, sub) {
				return true
			}
		}
	}
	return false
}

func matchSize(values []interface{}, arg interface{}) bool {
	want, ok := toFloat(arg)
	if !ok {
		return false
	}
	for _, v := range values {
		if arr, ok := v.([]interface{}); ok && float64(len(arr)) == want {
			return true
		}
	}
	return false
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case primitive.DateTime:
		return float64(n), true
	}
	return 0, false
}

func equal(a, b interface{}) bool {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	return reflect.DeepEqual(a, b)
}

// compare orders two scalars; ok is false when they are not comparable.
func compare(a, b interface{}) (int, bool) {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		if !ok {
			return 0, false
		}
		switch {
		case fa < fb:
			return -1, true
		case fa > fb:
			return 1, true
		}
		return 0, true
	}
	switch va := a.(type) {
	case string:
		vb, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(va, vb), true
	case primitive.ObjectID:
		vb, ok := b.(primitive.ObjectID)
		if !ok {
			return 0, false
		}
		return strings.Compare(va.Hex(), vb.Hex()), true
	case bool:
		vb, ok := b.(bool)
		if !ok {
			return 0, false
		}
		switch {
		case va == vb:
			return 0, true
		case !va:
			return -1, true
		}
		return 1, true
	}
	return 0, false
}

func sortDocs(docs []bson.M, spec interface{}) {
	var keys bson.D
	switch s := spec.(type) {
	case bson.D:
		keys = s
	case bson.M:
		for k, v := range s {
			keys = append(keys, bson.E{Key: k, Value: v})
		}
	default:
		return
	}
	sort.SliceStable(docs, func(i, j int) bool {
		for _, k := range keys {
			dir := 1
			if f, ok := toFloat(k.Value); ok && f < 0 {
				dir = -1
			}
			ai, bi := first(lookup(docs[i], k.Key)), first(lookup(docs[j], k.Key))
			cmp := compareForSort(ai, bi)
			if cmp != 0 {
				return cmp*dir < 0
			}
		}
		return false
	})
}

func first(values []interface{}) interface{} {
	if len(values) == 0 {
		return nil
	}
	return values[0]
}

// compareForSort places missing and null values first.
func compareForSort(a, b interface{}) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if cmp, ok := compare(a, b); ok {
		return cmp
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func applyUpdate(doc bson.M, update interface{}) error {
	updateData, err := basesvc.PrepareUpdate(update)
	if err != nil {
		return err
	}

	for path, v := range updateData.Set {
		val, err := normalize(v)
		if err != nil {
			return err
		}
		setPath(doc, path, val)
	}
	for path := range updateData.Unset {
		unsetPath(doc, path)
	}
	for path, v := range updateData.Push {
		items, err := eachItems(v)
		if err != nil {
			return err
		}
		arr, _ := getPath(doc, path).([]interface{})
		setPath(doc, path, append(arr, items...))
	}
	for path, v := range updateData.AddToSet {
		items, err := eachItems(v)
		if err != nil {
			return err
		}
		arr, _ := getPath(doc, path).([]interface{})
		for _, item := range items {
			if !matchValue([]interface{}{arr}, item) {
				arr = append(arr, item)
			}
		}
		if arr == nil {
			arr = []interface{}{}
		}
		setPath(doc, path, arr)
	}
	for path, v := range updateData.Pull {
		cond, err := normalize(v)
		if err != nil {
			return err
		}
		arr, ok := getPath(doc, path).([]interface{})
		if !ok {
			continue
		}
		kept := make([]interface{}, 0, len(arr))
		for _, el := range arr {
			if pulled(el, cond) {
				continue
			}
			kept = append(kept, el)
		}
		setPath(doc, path, kept)
	}
	return nil
}

func pulled(el interface{}, cond interface{}) bool {
	if m, ok := cond.(bson.M); ok {
		if _, isOps := isOperatorDoc(m); isOps {
			return matchField([]interface{}{el}, m)
		}
		if doc, ok := el.(bson.M); ok {
			return matchDoc(doc, m)
		}
	}
	return equal(el, cond)
}

func eachItems(v interface{}) ([]interface{}, error) {
	val, err := normalize(v)
	if err != nil {
		return nil, err
	}
	if m, ok := val.(bson.M); ok {
		if each, ok := m["$each"].([]interface{}); ok {
			return each, nil
		}
	}
	return []interface{}{val}, nil
}

func getPath(doc bson.M, path string) interface{} {
	parts := strings.Split(path, ".")
	var current interface{} = doc
	for _, part := range parts {
		m, ok := current.(bson.M)
		if !ok {
			return nil
		}
		current = m[part]
	}
	return current
}

func setPath(doc bson.M, path string, val interface{}) {
	parts := strings.Split(path, ".")
	current := doc
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(bson.M)
		if !ok {
			next = bson.M{}
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = val
}

func unsetPath(doc bson.M, path string) {
	parts := strings.Split(path, ".")
	current := doc
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(bson.M)
		if !ok {
			return
		}
		current = next
	}
	delete(current, parts[len(parts)-1])
}
