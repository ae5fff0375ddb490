// Package formsvc manages leads.
package formsvc

import (
	"context"
	"fmt"
	"strings"

	"edu_crm/internal/api/access"
	basemodels "edu_crm/internal/api/base/models"
	basesvc "edu_crm/internal/api/base/service"
	"edu_crm/internal/api/form/dto"
	"edu_crm/internal/api/form/models"
	leadsvc "edu_crm/internal/api/lead/service"
	notificationsvc "edu_crm/internal/api/notification/service"
	teamsvc "edu_crm/internal/api/team/service"
	"edu_crm/internal/common"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"
	"edu_crm/internal/mail"
	"edu_crm/internal/notification"
	"edu_crm/internal/storage"
	"edu_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FormService handles leads.
type FormService struct {
	*leadsvc.Service[models.Form]
}

// NewFormService builds the service on the registered forms collection.
func NewFormService(team *teamsvc.TeamService, notifier *notificationsvc.NotificationService, mailer *mail.Service, attachments *storage.Attachments) (*FormService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Forms)
	if !exist {
		return nil, fmt.Errorf("collection %s not registered: %w", global.MongoDB_ColNames.Forms, common.ErrNotFound)
	}
	return NewFormServiceWith(basesvc.NewBaseServiceMongo[models.Form](coll), team, notifier, mailer, attachments), nil
}

// NewFormServiceWith builds the service on any repository.
func NewFormServiceWith(repo basesvc.BaseServiceMongo[models.Form], team *teamsvc.TeamService, notifier *notificationsvc.NotificationService, mailer *mail.Service, attachments *storage.Attachments) *FormService {
	return &FormService{Service: &leadsvc.Service[models.Form]{
		EntityService: basesvc.EntityService[models.Form]{
			Repo:         repo,
			Attachments:  attachments,
			Fields:       []basesvc.AttachmentField{{Name: "resume", Folder: "resumes", Kind: storage.KindDocument}},
			SearchFields: []string{"name", "email", "phone", "course", "city"},
			Statuses:     models.Statuses,
		},
		Entity:           notification.EntityForm,
		Label:            "lead",
		Policy:           access.FormPolicy,
		Team:             team,
		Notifier:         notifier,
		Mailer:           mailer,
		NotifyUnassigned: true,
	}}
}

// Create stores a lead. Anonymous submissions always start unread and unassigned.
func (s *FormService) Create(ctx context.Context, actor *access.Identity, input *dto.FormCreateInput, files basemodels.Files) (models.Form, error) {
	form := models.Form{
		Name:           strings.TrimSpace(input.Name),
		Email:          utility.NormalizeEmail(input.Email),
		Phone:          strings.TrimSpace(input.Phone),
		Course:         strings.TrimSpace(input.Course),
		Message:        strings.TrimSpace(input.Message),
		Source:         strings.TrimSpace(input.Source),
		City:           strings.TrimSpace(input.City),
		ProductCompany: strings.TrimSpace(input.ProductCompany),
		Status:         input.Status,
		NextFollowUpAt: input.NextFollowUpAt,
	}
	if actor == nil || form.Status == "" {
		form.Status = models.StatusUnread
	}
	if form.Source == "" {
		form.Source = "website"
	}
	s.Stamp(actor, &form.Assignment, &form.Tracking)

	return s.CreateRecord(ctx, actor, form, files, func(f *models.Form, urls map[string]string) {
		f.Resume = urls["resume"]
	})
}

func (s *FormService) List(ctx context.Context, actor *access.Identity, q basemodels.ListQuery) (*basemodels.PaginateResult[models.Form], error) {
	extra := bson.M{}
	if source := q.Get("source"); source != "" {
		extra["source"] = source
	}
	return s.ListRecords(ctx, actor, q, extra)
}

// Get returns a visible lead. The first view by a non-admin marks an unread lead as read.
func (s *FormService) Get(ctx context.Context, actor *access.Identity, id primitive.ObjectID) (models.Form, error) {
	form, err := s.Service.Get(ctx, actor, id)
	if err != nil {
		return form, err
	}
	if actor == nil || actor.IsAdmin() || form.Status != models.StatusUnread {
		return form, nil
	}
	updated, err := s.Repo.UpdateOne(ctx, bson.M{"_id": id, "status": models.StatusUnread}, bson.M{
		"status":    models.StatusRead,
		"updatedBy": actor.Actor(),
	})
	if err != nil {
		logger.WithModule(s.Entity).WithError(err).WithField("id", id.Hex()).Warn("could not mark lead as read")
		return form, nil
	}
	return updated, nil
}

func (s *FormService) Update(ctx context.Context, actor *access.Identity, id primitive.ObjectID, input *dto.FormUpdateInput, files basemodels.Files) (models.Form, error) {
	set := bson.M{
		"name":           strings.TrimSpace(input.Name),
		"email":          utility.NormalizeEmail(input.Email),
		"phone":          strings.TrimSpace(input.Phone),
		"course":         strings.TrimSpace(input.Course),
		"message":        strings.TrimSpace(input.Message),
		"source":         strings.TrimSpace(input.Source),
		"city":           strings.TrimSpace(input.City),
		"productCompany": strings.TrimSpace(input.ProductCompany),
		"status":         input.Status,
	}
	if input.NextFollowUpAt > 0 {
		set["nextFollowUpAt"] = input.NextFollowUpAt
	}
	return s.UpdateRecord(ctx, actor, id, set, files)
}
