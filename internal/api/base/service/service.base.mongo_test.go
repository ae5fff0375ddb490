package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestToUpdateDataSplitsOperators(t *testing.T) {
	u, err := ToUpdateData(bson.M{"title": "x"})
	require.NoError(t, err)
	assert.Equal(t, "x", u.Set["title"])

	u, err = ToUpdateData(bson.M{"$unset": bson.M{"assignedTo": ""}})
	require.NoError(t, err)
	assert.Nil(t, u.Set)
	assert.Contains(t, u.Unset, "assignedTo")
}

func TestNormalizePage(t *testing.T) {
	p, l := NormalizePage(0, 0)
	assert.EqualValues(t, 1, p)
	assert.EqualValues(t, 10, l)
	_, l = NormalizePage(3, 1000)
	assert.EqualValues(t, 100, l)

	res := NewPaginateResult[int](nil, 1, 10, 0)
	assert.NotNil(t, res.Items)
	assert.EqualValues(t, 0, res.TotalPage)
}

func TestPrepareInsertAndUpdateStampTimes(t *testing.T) {
	m, err := PrepareInsert(bson.M{"name": "Asha", "email": ""})
	require.NoError(t, err)
	assert.NotContains(t, m, "email")
	assert.NotZero(t, m["createdAt"])
	assert.Equal(t, m["createdAt"], m["updatedAt"])

	u, err := PrepareUpdate(bson.M{"$push": bson.M{"remarks": bson.M{"text": "called"}}})
	require.NoError(t, err)
	assert.NotZero(t, u.Set["updatedAt"])
	assert.Contains(t, u.Push, "remarks")

	_, err = PrepareUpdate(42)
	assert.Error(t, err)
}
