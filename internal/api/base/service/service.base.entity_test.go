package basesvc_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	basemodels "edu_crm/internal/api/base/models"
	basesvc "edu_crm/internal/api/base/service"
	"edu_crm/internal/api/base/service/servicetest"
	"edu_crm/internal/common"
	"edu_crm/internal/storage"
	"edu_crm/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type profile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Status    string             `bson:"status"`
	Photo     string             `bson:"photo,omitempty"`
	CreatedAt int64              `bson:"createdAt"`
}

func newProfileService(store *storage.MemoryStore) *basesvc.EntityService[profile] {
	return &basesvc.EntityService[profile]{
		Repo:         servicetest.NewMemoryRepo[profile](),
		Attachments:  storage.NewAttachments(store, 1),
		Fields:       []basesvc.AttachmentField{{Name: "photo", Folder: "photos", Kind: storage.KindImage}},
		SearchFields: []string{"name"},
	}
}

func applyPhoto(p *profile, urls map[string]string) { p.Photo = urls["photo"] }

func TestEntityCreateUploadsAndDeleteCascades(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := newProfileService(store)

	files := basemodels.Files{"photo": testutil.FileHeader(t, "photo", "me.png", []byte("png"))}
	created, err := svc.CreateWithFiles(ctx, profile{Name: "Asha"}, files, applyPhoto)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.Photo, store.BaseURL+"/photos/"))

	_, err = svc.DeleteWithFiles(ctx, created.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{created.Photo}, store.Removed())
	assert.Equal(t, 0, store.Len())
}

func TestEntityDeleteSurvivesStoreFailure(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := newProfileService(store)

	files := basemodels.Files{"photo": testutil.FileHeader(t, "photo", "me.png", []byte("png"))}
	created, err := svc.CreateWithFiles(ctx, profile{Name: "Asha"}, files, applyPhoto)
	require.NoError(t, err)

	store.FailRm = errors.New("bucket offline")
	_, err = svc.DeleteWithFiles(ctx, created.ID, nil)
	require.NoError(t, err)
	_, err = svc.Repo.FindOneById(ctx, created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestEntityRequiredAttachment(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newProfileService(store)
	svc.Fields[0].Required = true

	_, err := svc.CreateWithFiles(context.Background(), profile{Name: "x"}, nil, applyPhoto)
	assert.ErrorIs(t, err, common.ErrFileRequired)
	assert.Equal(t, 0, svc.Repo.(*servicetest.MemoryRepo[profile]).Len())
}

func TestEntityUpdateReplacesAttachment(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := newProfileService(store)

	created, err := svc.CreateWithFiles(ctx, profile{Name: "Asha"},
		basemodels.Files{"photo": testutil.FileHeader(t, "photo", "a.png", []byte("a"))}, applyPhoto)
	require.NoError(t, err)

	updated, err := svc.UpdateWithFiles(ctx, created.ID, nil, &basesvc.UpdateData{Set: bson.M{"name": "Asha K"}},
		basemodels.Files{"photo": testutil.FileHeader(t, "photo", "b.png", []byte("b"))})
	require.NoError(t, err)
	assert.Equal(t, "Asha K", updated.Name)
	assert.NotEqual(t, created.Photo, updated.Photo)
	assert.Equal(t, []string{created.Photo}, store.Removed())
	assert.Equal(t, 1, store.Len())
}

func TestEntityScopeHidesRecords(t *testing.T) {
	ctx := context.Background()
	svc := newProfileService(storage.NewMemoryStore())
	created, err := svc.Repo.InsertOne(ctx, profile{Name: "Asha", Status: "closed"})
	require.NoError(t, err)

	_, err = svc.FindByID(ctx, created.ID, bson.M{"status": "open"})
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = svc.UpdateWithFiles(ctx, created.ID, bson.M{"status": "open"}, &basesvc.UpdateData{Set: bson.M{"name": "x"}}, nil)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestEntityListFilter(t *testing.T) {
	ctx := context.Background()
	svc := newProfileService(storage.NewMemoryStore())
	for _, n := range []string{"Asha Rao", "Ravi (ops)", "Meena"} {
		_, err := svc.Repo.InsertOne(ctx, profile{Name: n, Status: "open"})
		require.NoError(t, err)
	}

	q := basemodels.ListQuery{Page: 1, Limit: 10, Search: "(ops", Status: "open"}
	page, err := svc.Page(ctx, svc.ListFilter(q), q)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Ravi (ops)", page.Items[0].Name)

	q = basemodels.ListQuery{Page: 1, Limit: 10, Search: "a"}
	page, err = svc.Page(ctx, svc.ListFilter(q), q)
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.Total)
}

func TestEntitySetStatus(t *testing.T) {
	ctx := context.Background()
	svc := newProfileService(storage.NewMemoryStore())
	svc.Statuses = map[string][]string{"status": {"open", "closed"}}
	created, err := svc.Repo.InsertOne(ctx, profile{Name: "Asha", Status: "open"})
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, created.ID, nil, "status", "archived", nil)
	assert.ErrorIs(t, err, common.ErrInvalidStatus)
	_, err = svc.SetStatus(ctx, created.ID, nil, "name", "x", nil)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	unchanged, err := svc.Repo.FindOneById(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "open", unchanged.Status)

	_, err = svc.SetStatus(ctx, created.ID, bson.M{"name": "someone else"}, "status", "closed", nil)
	assert.ErrorIs(t, err, common.ErrNotFound)

	updated, err := svc.SetStatus(ctx, created.ID, nil, "status", "closed", &basemodels.ActorRef{Name: "Manager"})
	require.NoError(t, err)
	assert.Equal(t, "closed", updated.Status)
}
