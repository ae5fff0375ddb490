package database

import (
	"testing"
	"time"

	"edu_crm/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type indexedAssignment struct {
	AssignedTo string `bson:"assignedTo,omitempty" index:"single:1"`
}

type indexedLead struct {
	Email          string `bson:"email" index:"unique,sparse"`
	Status         string `bson:"status" index:"single:1;compound:status_company"`
	ProductCompany string `bson:"productCompany" index:"compound:status_company"`
	CreatedAt      int64  `bson:"createdAt" index:"single,order:-1"`
	ExpiresAt      int64  `bson:"expiresAt" index:"ttl:3600"`
	Notes          string `bson:"notes"`
	Ignored        string `bson:"-" index:"single"`

	indexedAssignment `bson:",inline"`
}

func TestIndexSpecs(t *testing.T) {
	specs, err := IndexSpecs(&indexedLead{})
	require.NoError(t, err)

	byName := map[string]IndexSpec{}
	for _, s := range specs {
		byName[s.Name] = s
	}
	assert.Len(t, specs, 6)

	assert.Equal(t, bson.D{{Key: "assignedTo", Value: 1}}, byName["assignedTo_single"].Keys)
	assert.True(t, byName["email_unique"].Unique)
	assert.True(t, byName["email_unique"].Sparse)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, byName["createdAt_single"].Keys)
	require.NotNil(t, byName["expiresAt_ttl"].TTL)
	assert.EqualValues(t, 3600, *byName["expiresAt_ttl"].TTL)
	assert.Equal(t, bson.D{{Key: "status", Value: 1}, {Key: "productCompany", Value: 1}}, byName["status_company"].Keys)
	assert.False(t, byName["status_company"].Unique)
	_, hasIgnored := byName["Ignored_single"]
	assert.False(t, hasIgnored)
}

func TestSameIndex(t *testing.T) {
	spec := IndexSpec{Name: "email_unique", Keys: bson.D{{Key: "email", Value: 1}}, Unique: true}
	assert.True(t, sameIndex(bson.M{"key": bson.M{"email": int32(1)}, "unique": true}, spec))
	assert.False(t, sameIndex(bson.M{"key": bson.M{"email": int32(1)}}, spec))
	assert.False(t, sameIndex(bson.M{"key": bson.M{"email": int32(-1)}, "unique": true}, spec))
}

func TestParseIndexTagBadTTL(t *testing.T) {
	type bad struct {
		At int64 `bson:"at" index:"ttl:soon"`
	}
	_, err := IndexSpecs(bad{})
	assert.Error(t, err)
}

func TestClientOptions(t *testing.T) {
	opts := ClientOptions(&config.Configuration{MongoDB_ConnectionURI: "mongodb://127.0.0.1:27017"})
	require.NotNil(t, opts.MaxPoolSize)
	assert.EqualValues(t, 50, *opts.MaxPoolSize)
	assert.Equal(t, 10*time.Second, *opts.ServerSelectionTimeout)
	assert.Equal(t, "edu_crm", *opts.AppName)

	opts = ClientOptions(&config.Configuration{MongoDB_ConnectionURI: "mongodb://127.0.0.1:27017", MongoDB_MaxPoolSize: 8, MongoDB_TimeoutSec: 4})
	assert.EqualValues(t, 8, *opts.MaxPoolSize)
	assert.Equal(t, 2*time.Second, *opts.ConnectTimeout)
}

func TestGetInstanceRequiresURI(t *testing.T) {
	_, err := GetInstance(&config.Configuration{})
	assert.Error(t, err)
	assert.NoError(t, CloseInstance(nil))
}
