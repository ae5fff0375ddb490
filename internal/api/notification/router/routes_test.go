package router

import (
	"context"
	"net/http"
	"testing"

	"edu_crm/internal/api/access"
	"edu_crm/internal/api/base/service/servicetest"
	"edu_crm/internal/api/notification/models"
	notificationsvc "edu_crm/internal/api/notification/service"
	apirouter "edu_crm/internal/api/router"
	"edu_crm/internal/notification"
	"edu_crm/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type directory struct{ ids []primitive.ObjectID }

func (d directory) MemberIDs(context.Context, ...string) ([]primitive.ObjectID, error) {
	return d.ids, nil
}
func (directory) PushTokens(context.Context, []primitive.ObjectID) ([]string, error) { return nil, nil }
func (directory) PrunePushTokens(context.Context, []string) error                    { return nil }

func TestNotificationRoutes(t *testing.T) {
	me := testutil.Identity(access.RoleSales)
	other := testutil.Identity(access.RoleHR)
	svc := notificationsvc.NewNotificationServiceWith(servicetest.NewMemoryRepo[models.Notification](),
		directory{ids: []primitive.ObjectID{me.ID, other.ID}}, nil)
	app := testutil.NewApp()
	require.NoError(t, apirouter.SetupRoutes(app, testutil.NewAuth(nil), Register(svc)))

	created, err := svc.Notify(context.Background(), []primitive.ObjectID{me.ID, other.ID},
		notificationsvc.Draft{Title: "Welcome", Type: notification.TypeBroadcast})
	require.NoError(t, err)
	svc.Wait()
	var theirs primitive.ObjectID
	for _, n := range created {
		if n.Recipient == other.ID {
			theirs = n.ID
		}
	}
	token := testutil.Token(t, me)

	status, env := testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, "/api/v1/notifications/unread-count", nil, token))
	require.Equal(t, http.StatusOK, status)
	var count struct{ Count int64 }
	testutil.DecodeData(t, env, &count)
	assert.EqualValues(t, 1, count.Count)

	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPatch, "/api/v1/notifications/"+theirs.Hex()+"/read", nil, token))
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPatch, "/api/v1/notifications/read-all", nil, token))
	assert.Equal(t, http.StatusOK, status)

	status, env = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodGet, "/api/v1/notifications/?unread=true", nil, token))
	require.Equal(t, http.StatusOK, status)
	var page struct{ Items []models.Notification }
	testutil.DecodeData(t, env, &page)
	assert.Empty(t, page.Items)

	body := map[string]interface{}{"title": "Team meeting", "roles": []string{"sales"}}
	status, _ = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost, "/api/v1/notifications/broadcast", body, token))
	assert.Equal(t, http.StatusForbidden, status)

	admin := testutil.Token(t, testutil.Identity(access.RoleManager))
	status, env = testutil.Do(t, app, testutil.JSONRequest(t, http.MethodPost, "/api/v1/notifications/broadcast", body, admin))
	require.Equal(t, http.StatusCreated, status, string(env.Error))
	var sent struct{ Recipients int }
	testutil.DecodeData(t, env, &sent)
	assert.Equal(t, 2, sent.Recipients)
	svc.Wait()
}
