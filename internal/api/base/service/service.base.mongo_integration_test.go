package basesvc_test

import (
	"context"
	"testing"
	"time"

	"edu_crm/internal/api/access"
	basemodels "edu_crm/internal/api/base/models"
	basesvc "edu_crm/internal/api/base/service"
	"edu_crm/internal/common"
	"edu_crm/internal/database"
	"edu_crm/internal/database/databasetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type contact struct {
	ID      primitive.ObjectID  `bson:"_id,omitempty"`
	Name    string              `bson:"name"`
	Email   string              `bson:"email,omitempty" index:"unique,sparse"`
	Remarks []basemodels.Remark `bson:"remarks,omitempty"`

	basemodels.Assignment `bson:",inline"`

	CreatedAt int64 `bson:"createdAt" index:"single,order:-1"`
	UpdatedAt int64 `bson:"updatedAt"`
}

func newContactRepo(t *testing.T) *basesvc.BaseServiceMongoImpl[contact] {
	t.Helper()
	coll := databasetest.Mongo(t).Collection("contacts")
	require.NoError(t, database.CreateIndexes(context.Background(), coll, contact{}))
	return basesvc.NewBaseServiceMongo[contact](coll)
}

func TestMongoVisibilityFilterMatchesNullAssignee(t *testing.T) {
	ctx := context.Background()
	repo := newContactRepo(t)
	me := &access.Identity{ID: primitive.NewObjectID(), Role: access.RoleMarketing, Name: "Me"}
	other := primitive.NewObjectID()

	mine, err := repo.InsertOne(ctx, contact{Name: "mine", Assignment: access.NewAssignment(me.ID, me, time.Now())})
	require.NoError(t, err)
	_, err = repo.InsertOne(ctx, contact{Name: "theirs", Assignment: basemodels.Assignment{AssignedTo: &other}})
	require.NoError(t, err)
	open, err := repo.InsertOne(ctx, contact{Name: "open"})
	require.NoError(t, err)

	page, err := repo.FindWithPagination(ctx, access.FormPolicy.VisibilityFilter(me), 1, 10, options.Find().SetSort(basesvc.NewestFirst))
	require.NoError(t, err)
	var ids []primitive.ObjectID
	for _, c := range page.Items {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []primitive.ObjectID{mine.ID, open.ID}, ids)
	assert.EqualValues(t, 2, page.Total)

	n, err := repo.UpdateMany(ctx, bson.M{"assignedTo": me.ID}, &basesvc.UpdateData{
		Set:   map[string]interface{}{"assignedTo": nil},
		Unset: map[string]interface{}{"assignedBy": "", "assignedByName": "", "assignedAt": ""},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	count, err := repo.CountDocuments(ctx, bson.M{"assignedTo": nil})
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestMongoRemarkPushAndDuplicateKey(t *testing.T) {
	ctx := context.Background()
	repo := newContactRepo(t)

	c, err := repo.InsertOne(ctx, contact{Name: "Asha", Email: "asha@crm.test"})
	require.NoError(t, err)

	for _, text := range []string{"called", "sent brochure"} {
		c, err = repo.UpdateOne(ctx, bson.M{"_id": c.ID}, &basesvc.UpdateData{
			Push: map[string]interface{}{"remarks": basemodels.Remark{Text: text, AddedBy: basemodels.ActorRef{Name: "Ravi"}}},
		})
		require.NoError(t, err)
	}
	require.Len(t, c.Remarks, 2)
	assert.Equal(t, "sent brochure", c.Remarks[1].Text)
	assert.Equal(t, "Ravi", c.Remarks[0].AddedBy.Name)
	assert.GreaterOrEqual(t, c.UpdatedAt, c.CreatedAt)

	_, err = repo.InsertOne(ctx, contact{Name: "Asha again", Email: "asha@crm.test"})
	assert.ErrorIs(t, err, common.ErrDuplicate)

	_, err = repo.InsertOne(ctx, contact{Name: "No email"})
	require.NoError(t, err)
	_, err = repo.InsertOne(ctx, contact{Name: "Still no email"})
	assert.NoError(t, err)

	_, err = repo.UpdateOne(ctx, bson.M{"_id": primitive.NewObjectID()}, bson.M{"name": "x"})
	assert.ErrorIs(t, err, common.ErrNotFound)
}
