// Package notificationsvc stores in-app notifications and pushes them to the recipients' devices.
package notificationsvc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"edu_crm/internal/api/access"
	basemodels "edu_crm/internal/api/base/models"
	basesvc "edu_crm/internal/api/base/service"
	"edu_crm/internal/api/notification/dto"
	"edu_crm/internal/api/notification/models"
	"edu_crm/internal/common"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"
	"edu_crm/internal/notification"
	"edu_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultPushTimeout bounds one background push.
const DefaultPushTimeout = 10 * time.Second

// Directory resolves recipients and their device tokens.
type Directory interface {
	MemberIDs(ctx context.Context, roles ...string) ([]primitive.ObjectID, error)
	PushTokens(ctx context.Context, ids []primitive.ObjectID) ([]string, error)
	PrunePushTokens(ctx context.Context, tokens []string) error
}

// Draft is the content of a notification before it is addressed.
type Draft struct {
	Title      string
	Body       string
	Type       string
	EntityType string
	EntityID   *primitive.ObjectID
}

// NotificationService persists notifications and dispatches pushes.
type NotificationService struct {
	repo        basesvc.BaseServiceMongo[models.Notification]
	directory   Directory
	pusher      notification.Pusher
	PushTimeout time.Duration

	inflight sync.WaitGroup
}

// NewNotificationService builds the service on the registered notifications collection.
func NewNotificationService(directory Directory, pusher notification.Pusher) (*NotificationService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Notifications)
	if !exist {
		return nil, fmt.Errorf("collection %s not registered: %w", global.MongoDB_ColNames.Notifications, common.ErrNotFound)
	}
	return NewNotificationServiceWith(basesvc.NewBaseServiceMongo[models.Notification](coll), directory, pusher), nil
}

// NewNotificationServiceWith builds the service on any repository.
func NewNotificationServiceWith(repo basesvc.BaseServiceMongo[models.Notification], directory Directory, pusher notification.Pusher) *NotificationService {
	if pusher == nil {
		pusher = notification.NopPusher{}
	}
	return &NotificationService{repo: repo, directory: directory, pusher: pusher, PushTimeout: DefaultPushTimeout}
}

// Notify stores one notification per distinct recipient, then pushes in the background.
// Push failures are logged and never returned.
func (s *NotificationService) Notify(ctx context.Context, recipients []primitive.ObjectID, d Draft) ([]models.Notification, error) {
	recipients = distinct(recipients)
	if len(recipients) == 0 {
		return nil, nil
	}
	docs := make([]models.Notification, 0, len(recipients))
	for _, r := range recipients {
		docs = append(docs, models.Notification{
			Recipient:  r,
			Title:      d.Title,
			Body:       d.Body,
			Type:       d.Type,
			EntityType: d.EntityType,
			EntityID:   d.EntityID,
		})
	}
	created, err := s.repo.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(created))
	for _, n := range created {
		ids = append(ids, n.ID)
	}
	s.dispatch(ids, recipients, d)
	return created, nil
}

// NotifyRoles notifies every active member holding one of roles.
func (s *NotificationService) NotifyRoles(ctx context.Context, roles []string, d Draft) ([]models.Notification, error) {
	ids, err := s.directory.MemberIDs(ctx, roles...)
	if err != nil {
		return nil, err
	}
	return s.Notify(ctx, ids, d)
}

// dispatch pushes on a detached goroutine with its own timeout.
func (s *NotificationService) dispatch(ids, recipients []primitive.ObjectID, d Draft) {
	data := map[string]string{"type": d.Type}
	if d.EntityType != "" {
		data["entityType"] = d.EntityType
	}
	if d.EntityID != nil {
		data["entityId"] = d.EntityID.Hex()
	}
	msg := notification.Message{Title: d.Title, Body: d.Body, Data: data}

	s.inflight.Add(1)
	go utility.GoProtect(func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.PushTimeout)
		defer cancel()
		log := logger.WithModule("notification").WithField("type", d.Type)

		tokens, err := s.directory.PushTokens(ctx, recipients)
		if err != nil {
			log.WithError(err).Warn("could not load push tokens")
			return
		}
		if len(tokens) == 0 {
			return
		}

		res, err := s.pusher.Push(ctx, tokens, msg)
		if err != nil {
			log.WithError(err).Warn("push delivery failed")
		}
		if len(res.Unregistered) > 0 {
			if err := s.directory.PrunePushTokens(ctx, res.Unregistered); err != nil {
				log.WithError(err).Warn("could not prune unregistered push tokens")
			} else {
				log.WithField("count", len(res.Unregistered)).Info("pruned unregistered push tokens")
			}
		}
		if _, err := s.repo.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": ids}},
			bson.M{"pushAttempted": true, "pushDelivered": res.Success > 0}); err != nil {
			log.WithError(err).Warn("could not record push outcome")
		}
	})
}

// Wait blocks until background pushes have finished.
func (s *NotificationService) Wait() {
	s.inflight.Wait()
}

// List returns the caller's notifications, newest first. ?unread=true restricts to unread ones.
func (s *NotificationService) List(ctx context.Context, actor *access.Identity, q basemodels.ListQuery) (*basemodels.PaginateResult[models.Notification], error) {
	filter := bson.M{"recipient": actor.ID}
	if q.Get("unread") == "true" {
		filter["isRead"] = false
	}
	if t := q.Get("type"); t != "" {
		filter["type"] = t
	}
	return s.repo.FindWithPagination(ctx, filter, q.Page, q.Limit, options.Find().SetSort(basesvc.NewestFirst))
}

// UnreadCount counts the caller's unread notifications.
func (s *NotificationService) UnreadCount(ctx context.Context, actor *access.Identity) (int64, error) {
	return s.repo.CountDocuments(ctx, bson.M{"recipient": actor.ID, "isRead": false})
}

// MarkRead marks one of the caller's notifications read. Other members' notifications are not found.
func (s *NotificationService) MarkRead(ctx context.Context, actor *access.Identity, id primitive.ObjectID) (models.Notification, error) {
	return s.repo.UpdateOne(ctx, bson.M{"_id": id, "recipient": actor.ID},
		bson.M{"isRead": true, "readAt": time.Now().UnixMilli()})
}

// MarkAllRead marks every unread notification of the caller read.
func (s *NotificationService) MarkAllRead(ctx context.Context, actor *access.Identity) (int64, error) {
	return s.repo.UpdateMany(ctx, bson.M{"recipient": actor.ID, "isRead": false},
		bson.M{"isRead": true, "readAt": time.Now().UnixMilli()})
}

// Delete removes one of the caller's notifications.
func (s *NotificationService) Delete(ctx context.Context, actor *access.Identity, id primitive.ObjectID) error {
	return s.repo.DeleteOne(ctx, bson.M{"_id": id, "recipient": actor.ID})
}

// Broadcast notifies the members holding input.Roles plus the listed recipients.
func (s *NotificationService) Broadcast(ctx context.Context, actor *access.Identity, input *dto.BroadcastInput) (int, error) {
	var recipients []primitive.ObjectID
	for _, raw := range input.Recipients {
		id, err := utility.ParseObjectID(raw)
		if err != nil {
			return 0, err
		}
		recipients = append(recipients, id)
	}
	if len(input.Roles) > 0 || len(recipients) == 0 {
		ids, err := s.directory.MemberIDs(ctx, input.Roles...)
		if err != nil {
			return 0, err
		}
		recipients = append(recipients, ids...)
	}
	created, err := s.Notify(ctx, recipients, Draft{Title: input.Title, Body: input.Body, Type: notification.TypeBroadcast})
	if err != nil {
		return 0, err
	}
	logger.Audit("notification.broadcast", actor.ID.Hex()).WithField("recipients", len(created)).Info("broadcast sent")
	return len(created), nil
}

// Cleanup removes read notifications older than retention.
func (s *NotificationService) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention).UnixMilli()
	return s.repo.DeleteMany(ctx, bson.M{"isRead": true, "createdAt": bson.M{"$lt": cutoff}})
}

func distinct(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]bool, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if id.IsZero() || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
