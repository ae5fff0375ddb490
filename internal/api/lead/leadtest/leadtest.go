// Package leadtest wires in-memory team, notification, mail and storage services for tests of
// assignable collections.
package leadtest

import (
	"context"
	"testing"

	"edu_crm/internal/api/access"
	"edu_crm/internal/api/base/service/servicetest"
	notificationmodels "edu_crm/internal/api/notification/models"
	notificationsvc "edu_crm/internal/api/notification/service"
	teamdto "edu_crm/internal/api/team/dto"
	teammodels "edu_crm/internal/api/team/models"
	teamsvc "edu_crm/internal/api/team/service"
	"edu_crm/internal/mail"
	"edu_crm/internal/notification"
	"edu_crm/internal/storage"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Env is the set of collaborators an assignable-record service needs.
type Env struct {
	Team          *teamsvc.TeamService
	Notifications *servicetest.MemoryRepo[notificationmodels.Notification]
	Notifier      *notificationsvc.NotificationService
	Pusher        *notification.MemoryPusher
	Outbox        *mail.MemorySender
	Mailer        *mail.Service
	Store         *storage.MemoryStore
	Attachments   *storage.Attachments
}

func New(t *testing.T) *Env {
	t.Helper()
	store := storage.NewMemoryStore()
	attachments := storage.NewAttachments(store, 1)
	team := teamsvc.NewTeamServiceWith(servicetest.NewMemoryRepo[teammodels.Team]("email"), attachments)
	notifications := servicetest.NewMemoryRepo[notificationmodels.Notification]()
	pusher := &notification.MemoryPusher{}
	outbox := mail.NewMemorySender("memory")
	return &Env{
		Team:          team,
		Notifications: notifications,
		Notifier:      notificationsvc.NewNotificationServiceWith(notifications, team, pusher),
		Pusher:        pusher,
		Outbox:        outbox,
		Mailer:        mail.NewServiceWith("memory", "office@crm.test", outbox),
		Store:         store,
		Attachments:   attachments,
	}
}

// Member creates an active team member with role and returns it with its identity.
func (e *Env) Member(t *testing.T, role string) (teammodels.Team, *access.Identity) {
	t.Helper()
	m, err := e.Team.Create(context.Background(), nil, &teamdto.TeamCreateInput{
		Name:     "Member " + role,
		Email:    role + "-" + primitive.NewObjectID().Hex()[16:] + "@crm.test",
		Role:     role,
		Password: "password123",
	}, nil)
	require.NoError(t, err)
	return m, teamsvc.IdentityOf(m)
}

// NotificationsFor returns the notifications stored for recipient.
func (e *Env) NotificationsFor(t *testing.T, recipient primitive.ObjectID) []notificationmodels.Notification {
	t.Helper()
	e.Notifier.Wait()
	list, err := e.Notifications.Find(context.Background(), bson.M{"recipient": recipient}, nil)
	require.NoError(t, err)
	return list
}
