// Package enrollmentsvc manages course enrollments.
package enrollmentsvc

import (
	"context"
	"fmt"
	"strings"

	"edu_crm/internal/api/access"
	basemodels "edu_crm/internal/api/base/models"
	basesvc "edu_crm/internal/api/base/service"
	"edu_crm/internal/api/enrollment/dto"
	"edu_crm/internal/api/enrollment/models"
	leadsvc "edu_crm/internal/api/lead/service"
	notificationsvc "edu_crm/internal/api/notification/service"
	teamsvc "edu_crm/internal/api/team/service"
	"edu_crm/internal/common"
	"edu_crm/internal/global"
	"edu_crm/internal/mail"
	"edu_crm/internal/notification"
	"edu_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EnrollmentService handles enrollments.
type EnrollmentService struct {
	*leadsvc.Service[models.Enrollment]
}

// NewEnrollmentService builds the service on the registered enrollments collection.
func NewEnrollmentService(team *teamsvc.TeamService, notifier *notificationsvc.NotificationService, mailer *mail.Service) (*EnrollmentService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Enrollments)
	if !exist {
		return nil, fmt.Errorf("collection %s not registered: %w", global.MongoDB_ColNames.Enrollments, common.ErrNotFound)
	}
	return NewEnrollmentServiceWith(basesvc.NewBaseServiceMongo[models.Enrollment](coll), team, notifier, mailer), nil
}

// NewEnrollmentServiceWith builds the service on any repository.
func NewEnrollmentServiceWith(repo basesvc.BaseServiceMongo[models.Enrollment], team *teamsvc.TeamService, notifier *notificationsvc.NotificationService, mailer *mail.Service) *EnrollmentService {
	return &EnrollmentService{Service: &leadsvc.Service[models.Enrollment]{
		EntityService: basesvc.EntityService[models.Enrollment]{
			Repo:         repo,
			SearchFields: []string{"name", "email", "phone", "course"},
			Statuses:     models.Statuses,
		},
		Entity:   notification.EntityEnrollment,
		Label:    "enrollment",
		Policy:   access.ApplicationPolicy,
		Team:     team,
		Notifier: notifier,
		Mailer:   mailer,
	}}
}

// Create stores an enrollment with every status field at its initial value.
func (s *EnrollmentService) Create(ctx context.Context, actor *access.Identity, input *dto.EnrollmentCreateInput, files basemodels.Files) (models.Enrollment, error) {
	e := models.Enrollment{
		Name:                  strings.TrimSpace(input.Name),
		Email:                 utility.NormalizeEmail(input.Email),
		Phone:                 strings.TrimSpace(input.Phone),
		Course:                strings.TrimSpace(input.Course),
		ProductCompany:        strings.TrimSpace(input.ProductCompany),
		Qualification:         strings.TrimSpace(input.Qualification),
		NextFollowUpAt:        input.NextFollowUpAt,
		Status:                models.StatusNew,
		CallStatus:            models.StatusPending,
		InterviewStatus:       models.StatusPending,
		AptitudeStatus:        models.StatusPending,
		HRStatus:              models.StatusPending,
		FeesStatus:            models.StatusPending,
		AdmissionLetterStatus: models.StatusPending,
	}
	if input.Education != nil {
		e.Education = models.Education{
			Tenth:          deref(input.Education.Tenth),
			Twelfth:        deref(input.Education.Twelfth),
			Graduation:     deref(input.Education.Graduation),
			PostGraduation: deref(input.Education.PostGraduation),
		}
	}
	s.Stamp(actor, &e.Assignment, &e.Tracking)
	return s.CreateRecord(ctx, actor, e, files, nil)
}

func (s *EnrollmentService) List(ctx context.Context, actor *access.Identity, q basemodels.ListQuery) (*basemodels.PaginateResult[models.Enrollment], error) {
	extra := bson.M{}
	if course := q.Get("course"); course != "" {
		extra["course"] = course
	}
	for field := range models.Statuses {
		if field == "status" {
			continue
		}
		if v := q.Get(field); v != "" {
			extra[field] = v
		}
	}
	return s.ListRecords(ctx, actor, q, extra)
}

func (s *EnrollmentService) Update(ctx context.Context, actor *access.Identity, id primitive.ObjectID, input *dto.EnrollmentUpdateInput, files basemodels.Files) (models.Enrollment, error) {
	set := bson.M{
		"name":           strings.TrimSpace(input.Name),
		"email":          utility.NormalizeEmail(input.Email),
		"phone":          strings.TrimSpace(input.Phone),
		"course":         strings.TrimSpace(input.Course),
		"productCompany": strings.TrimSpace(input.ProductCompany),
		"qualification":  strings.TrimSpace(input.Qualification),
	}
	if input.NextFollowUpAt > 0 {
		set["nextFollowUpAt"] = input.NextFollowUpAt
	}
	if ed := input.Education; ed != nil {
		for key, v := range map[string]*bool{
			"education.tenth":          ed.Tenth,
			"education.twelfth":        ed.Twelfth,
			"education.graduation":     ed.Graduation,
			"education.postGraduation": ed.PostGraduation,
		} {
			if v != nil {
				set[key] = *v
			}
		}
	}
	return s.UpdateRecord(ctx, actor, id, set, files)
}

func deref(b *bool) bool {
	return b != nil && *b
}
