// Package internsvc manages internship applications.
package internsvc

import (
	"context"
	"fmt"
	"strings"

	"edu_crm/internal/api/access"
	basemodels "edu_crm/internal/api/base/models"
	basesvc "edu_crm/internal/api/base/service"
	"edu_crm/internal/api/intern/dto"
	"edu_crm/internal/api/intern/models"
	leadsvc "edu_crm/internal/api/lead/service"
	notificationsvc "edu_crm/internal/api/notification/service"
	teamsvc "edu_crm/internal/api/team/service"
	"edu_crm/internal/common"
	"edu_crm/internal/global"
	"edu_crm/internal/mail"
	"edu_crm/internal/notification"
	"edu_crm/internal/storage"
	"edu_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InternService handles internship applications.
type InternService struct {
	*leadsvc.Service[models.InternAppliedData]
}

// NewInternService builds the service on the registered intern_applied_data collection.
func NewInternService(team *teamsvc.TeamService, notifier *notificationsvc.NotificationService, mailer *mail.Service, attachments *storage.Attachments) (*InternService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.InternAppliedData)
	if !exist {
		return nil, fmt.Errorf("collection %s not registered: %w", global.MongoDB_ColNames.InternAppliedData, common.ErrNotFound)
	}
	return NewInternServiceWith(basesvc.NewBaseServiceMongo[models.InternAppliedData](coll), team, notifier, mailer, attachments), nil
}

// NewInternServiceWith builds the service on any repository.
func NewInternServiceWith(repo basesvc.BaseServiceMongo[models.InternAppliedData], team *teamsvc.TeamService, notifier *notificationsvc.NotificationService, mailer *mail.Service, attachments *storage.Attachments) *InternService {
	return &InternService{Service: &leadsvc.Service[models.InternAppliedData]{
		EntityService: basesvc.EntityService[models.InternAppliedData]{
			Repo:        repo,
			Attachments: attachments,
			Fields: []basesvc.AttachmentField{
				{Name: "resume", Folder: "resumes", Kind: storage.KindDocument},
				{Name: "photo", Folder: "photos", Kind: storage.KindImage},
			},
			SearchFields: []string{"name", "email", "phone", "college", "domain"},
			Statuses:     models.Statuses,
		},
		Entity:   notification.EntityIntern,
		Label:    "internship application",
		Policy:   access.ApplicationPolicy,
		Team:     team,
		Notifier: notifier,
		Mailer:   mailer,
	}}
}

func (s *InternService) Create(ctx context.Context, actor *access.Identity, input *dto.InternCreateInput, files basemodels.Files) (models.InternAppliedData, error) {
	app := models.InternAppliedData{
		Name:           strings.TrimSpace(input.Name),
		Email:          utility.NormalizeEmail(input.Email),
		Phone:          strings.TrimSpace(input.Phone),
		Gender:         input.Gender,
		DateOfBirth:    input.DateOfBirth,
		Address:        strings.TrimSpace(input.Address),
		City:           strings.TrimSpace(input.City),
		State:          strings.TrimSpace(input.State),
		College:        strings.TrimSpace(input.College),
		Degree:         strings.TrimSpace(input.Degree),
		Branch:         strings.TrimSpace(input.Branch),
		YearOfPassing:  input.YearOfPassing,
		CGPA:           input.CGPA,
		Skills:         cleanSkills(input.Skills),
		Domain:         strings.TrimSpace(input.Domain),
		Duration:       strings.TrimSpace(input.Duration),
		PreferredMode:  input.PreferredMode,
		LinkedIn:       input.LinkedIn,
		GitHub:         input.GitHub,
		Portfolio:      input.Portfolio,
		ProductCompany: strings.TrimSpace(input.ProductCompany),
		Status:         models.StatusApplied,
	}
	s.Stamp(actor, &app.Assignment, &app.Tracking)
	return s.CreateRecord(ctx, actor, app, files, func(a *models.InternAppliedData, urls map[string]string) {
		a.Resume = urls["resume"]
		a.Photo = urls["photo"]
	})
}

func (s *InternService) List(ctx context.Context, actor *access.Identity, q basemodels.ListQuery) (*basemodels.PaginateResult[models.InternAppliedData], error) {
	extra := bson.M{}
	for _, key := range []string{"domain", "preferredMode", "college"} {
		if v := q.Get(key); v != "" {
			extra[key] = v
		}
	}
	return s.ListRecords(ctx, actor, q, extra)
}

func (s *InternService) Update(ctx context.Context, actor *access.Identity, id primitive.ObjectID, input *dto.InternUpdateInput, files basemodels.Files) (models.InternAppliedData, error) {
	set := bson.M{
		"name":           strings.TrimSpace(input.Name),
		"email":          utility.NormalizeEmail(input.Email),
		"phone":          strings.TrimSpace(input.Phone),
		"gender":         input.Gender,
		"dateOfBirth":    input.DateOfBirth,
		"address":        strings.TrimSpace(input.Address),
		"city":           strings.TrimSpace(input.City),
		"state":          strings.TrimSpace(input.State),
		"college":        strings.TrimSpace(input.College),
		"degree":         strings.TrimSpace(input.Degree),
		"branch":         strings.TrimSpace(input.Branch),
		"domain":         strings.TrimSpace(input.Domain),
		"duration":       strings.TrimSpace(input.Duration),
		"preferredMode":  input.PreferredMode,
		"linkedIn":       input.LinkedIn,
		"gitHub":         input.GitHub,
		"portfolio":      input.Portfolio,
		"productCompany": strings.TrimSpace(input.ProductCompany),
	}
	if input.YearOfPassing > 0 {
		set["yearOfPassing"] = input.YearOfPassing
	}
	if input.CGPA > 0 {
		set["cgpa"] = input.CGPA
	}
	if skills := cleanSkills(input.Skills); len(skills) > 0 {
		set["skills"] = skills
	}
	return s.UpdateRecord(ctx, actor, id, set, files)
}

// cleanSkills trims entries and drops blanks and case-insensitive duplicates.
func cleanSkills(skills []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range skills {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
