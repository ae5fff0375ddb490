package database

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"edu_crm/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureCollections creates every missing collection in db.
func EnsureCollections(ctx context.Context, db *mongo.Database, names []string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, n := range existing {
		have[n] = true
	}

	for _, name := range names {
		if name == "" || have[name] {
			continue
		}
		logger.WithModule("database").Infof("Creating collection %s", name)
		if err := db.CreateCollection(ctx, name); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}
	}
	return nil
}

// IndexSpec is one index derived from `index:"..."` struct tags.
//
// Tag grammar (entries separated by ';', options by ','):
//
//	single           ascending single-field index (order:-1 for descending)
//	unique[,sparse]  unique index
//	text             text index
//	ttl:<seconds>    TTL index
//	compound:<name>  member of compound index <name>; names containing "_unique" are unique
type IndexSpec struct {
	Name   string
	Keys   bson.D
	Unique bool
	Sparse bool
	TTL    *int32
}

func (s IndexSpec) options() *options.IndexOptions {
	opts := options.Index().SetName(s.Name)
	if s.Unique {
		opts.SetUnique(true)
	}
	if s.Sparse {
		opts.SetSparse(true)
	}
	if s.TTL != nil {
		opts.SetExpireAfterSeconds(*s.TTL)
	}
	return opts
}

// IndexSpecs walks model (including `bson:",inline"` embedded structs) and returns its index specs
// sorted by name.
func IndexSpecs(model interface{}) ([]IndexSpec, error) {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var specs []IndexSpec
	compound := map[string]*IndexSpec{}
	if err := collectIndexSpecs(t, &specs, compound); err != nil {
		return nil, err
	}
	for _, c := range compound {
		specs = append(specs, *c)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })
	return specs, nil
}

func collectIndexSpecs(t reflect.Type, specs *[]IndexSpec, compound map[string]*IndexSpec) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		bsonTag := field.Tag.Get("bson")
		bsonName := strings.Split(bsonTag, ",")[0]

		if field.Anonymous && strings.Contains(bsonTag, "inline") {
			ft := field.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if err := collectIndexSpecs(ft, specs, compound); err != nil {
				return err
			}
			continue
		}

		tag, ok := field.Tag.Lookup("index")
		if !ok || bsonName == "" || bsonName == "-" {
			continue
		}

		for _, entry := range parseIndexTag(tag) {
			order := 1
			if entry["order"] == "-1" {
				order = -1
			}
			_, sparse := entry["sparse"]

			if _, ok := entry["text"]; ok {
				*specs = append(*specs, IndexSpec{Name: bsonName + "_text", Keys: bson.D{{Key: bsonName, Value: "text"}}})
			}
			if _, ok := entry["single"]; ok {
				*specs = append(*specs, IndexSpec{Name: bsonName + "_single", Keys: bson.D{{Key: bsonName, Value: order}}})
			}
			if _, ok := entry["unique"]; ok {
				*specs = append(*specs, IndexSpec{Name: bsonName + "_unique", Keys: bson.D{{Key: bsonName, Value: 1}}, Unique: true, Sparse: sparse})
			}
			if v, ok := entry["ttl"]; ok {
				ttl, err := strconv.Atoi(v)
				if err != nil {
					return fmt.Errorf("invalid ttl on %s: %w", bsonName, err)
				}
				secs := int32(ttl)
				*specs = append(*specs, IndexSpec{Name: bsonName + "_ttl", Keys: bson.D{{Key: bsonName, Value: 1}}, TTL: &secs})
			}
			if group, ok := entry["compound"]; ok && group != "" {
				c, exists := compound[group]
				if !exists {
					c = &IndexSpec{Name: group, Unique: strings.Contains(group, "_unique")}
					compound[group] = c
				}
				c.Keys = append(c.Keys, bson.E{Key: bsonName, Value: order})
				c.Sparse = c.Sparse || sparse
			}
		}
	}
	return nil
}

func parseIndexTag(tag string) []map[string]string {
	var result []map[string]string
	for _, part := range strings.Split(tag, ";") {
		entry := map[string]string{}
		for _, sub := range strings.Split(part, ",") {
			kv := strings.SplitN(strings.TrimSpace(sub), ":", 2)
			if kv[0] == "" {
				continue
			}
			if len(kv) == 2 {
				entry[kv[0]] = kv[1]
			} else {
				entry[kv[0]] = ""
			}
		}
		if len(entry) > 0 {
			result = append(result, entry)
		}
	}
	return result
}

// CreateIndexes creates the indexes declared on model, replacing same-named indexes whose definition changed.
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) error {
	specs, err := IndexSpecs(model)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		return nil
	}

	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("cannot list indexes of %s: %w", collection.Name(), err)
	}
	defer cursor.Close(ctx)

	existing := map[string]bson.M{}
	for cursor.Next(ctx) {
		var info bson.M
		if err := cursor.Decode(&info); err != nil {
			return fmt.Errorf("cannot decode index info: %w", err)
		}
		if name, ok := info["name"].(string); ok {
			existing[name] = info
		}
	}

	log := logger.WithModule("database").WithField("collection", collection.Name())
	for _, spec := range specs {
		if info, ok := existing[spec.Name]; ok {
			if sameIndex(info, spec) {
				continue
			}
			if _, err := collection.Indexes().DropOne(ctx, spec.Name); err != nil {
				return fmt.Errorf("cannot drop index %s: %w", spec.Name, err)
			}
			log.Infof("Dropped outdated index %s", spec.Name)
		}
		if _, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: spec.Keys, Options: spec.options()}); err != nil {
			return fmt.Errorf("cannot create index %s: %w", spec.Name, err)
		}
		log.Infof("Created index %s", spec.Name)
	}
	return nil
}

func sameIndex(existing bson.M, spec IndexSpec) bool {
	keys, ok := existing["key"].(bson.M)
	if !ok || len(keys) != len(spec.Keys) {
		return false
	}
	for _, k := range spec.Keys {
		ev, exists := keys[k.Key]
		if !exists {
			return false
		}
		if want, isInt := k.Value.(int); isInt {
			switch v := ev.(type) {
			case int32:
				if int(v) != want {
					return false
				}
			case int64:
				if int(v) != want {
					return false
				}
			case float64:
				if int(v) != want {
					return false
				}
			default:
				return false
			}
		} else if ev != k.Value {
			return false
		}
	}
	unique, _ := existing["unique"].(bool)
	return unique == spec.Unique
}
