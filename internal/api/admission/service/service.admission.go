// Package admissionsvc manages admission applications.
package admissionsvc

import (
	"context"
	"fmt"
	"strings"

	"edu_crm/internal/api/access"
	"edu_crm/internal/api/admission/dto"
	"edu_crm/internal/api/admission/models"
	basemodels "edu_crm/internal/api/base/models"
	basesvc "edu_crm/internal/api/base/service"
	"edu_crm/internal/common"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"
	"edu_crm/internal/storage"
	"edu_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdmissionService struct {
	basesvc.EntityService[models.AdmissionForm]
}

// NewAdmissionService builds the service on the registered admission_forms collection.
func NewAdmissionService(attachments *storage.Attachments) (*AdmissionService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AdmissionForms)
	if !exist {
		return nil, fmt.Errorf("collection %s not registered: %w", global.MongoDB_ColNames.AdmissionForms, common.ErrNotFound)
	}
	return NewAdmissionServiceWith(basesvc.NewBaseServiceMongo[models.AdmissionForm](coll), attachments), nil
}

func NewAdmissionServiceWith(repo basesvc.BaseServiceMongo[models.AdmissionForm], attachments *storage.Attachments) *AdmissionService {
	return &AdmissionService{EntityService: basesvc.EntityService[models.AdmissionForm]{
		Repo:         repo,
		Attachments:  attachments,
		Fields:       []basesvc.AttachmentField{{Name: "photo", Folder: "admissions", Kind: storage.KindImage}},
		SearchFields: []string{"studentName", "email", "phone", "course"},
		Statuses:     models.Statuses,
	}}
}

func (s *AdmissionService) Create(ctx context.Context, actor *access.Identity, input *dto.AdmissionCreateInput, files basemodels.Files) (models.AdmissionForm, error) {
	form := models.AdmissionForm{
		StudentName:           strings.TrimSpace(input.StudentName),
		FatherName:            strings.TrimSpace(input.FatherName),
		MotherName:            strings.TrimSpace(input.MotherName),
		DateOfBirth:           input.DateOfBirth,
		Gender:                input.Gender,
		Email:                 utility.NormalizeEmail(input.Email),
		Phone:                 strings.TrimSpace(input.Phone),
		Address:               strings.TrimSpace(input.Address),
		Course:                strings.TrimSpace(input.Course),
		ProductCompany:        strings.TrimSpace(input.ProductCompany),
		PreviousQualification: strings.TrimSpace(input.PreviousQualification),
		Percentage:            input.Percentage,
		Status:                models.StatusSubmitted,
		Tracking:              basemodels.Tracking{CreatedBy: actor.Actor()},
	}
	return s.CreateWithFiles(ctx, form, files, func(f *models.AdmissionForm, urls map[string]string) {
		f.Photo = urls["photo"]
	})
}

func (s *AdmissionService) List(ctx context.Context, actor *access.Identity, q basemodels.ListQuery) (*basemodels.PaginateResult[models.AdmissionForm], error) {
	filter := s.ListFilter(q)
	if course := q.Get("course"); course != "" {
		filter["course"] = course
	}
	return s.Page(ctx, filter, q)
}

func (s *AdmissionService) Get(ctx context.Context, actor *access.Identity, id primitive.ObjectID) (models.AdmissionForm, error) {
	return s.FindByID(ctx, id, nil)
}

func (s *AdmissionService) Update(ctx context.Context, actor *access.Identity, id primitive.ObjectID, input *dto.AdmissionUpdateInput, files basemodels.Files) (models.AdmissionForm, error) {
	set := utility.CompactSet(bson.M{
		"studentName":           strings.TrimSpace(input.StudentName),
		"fatherName":            strings.TrimSpace(input.FatherName),
		"motherName":            strings.TrimSpace(input.MotherName),
		"dateOfBirth":           input.DateOfBirth,
		"gender":                input.Gender,
		"email":                 utility.NormalizeEmail(input.Email),
		"phone":                 strings.TrimSpace(input.Phone),
		"address":               strings.TrimSpace(input.Address),
		"course":                strings.TrimSpace(input.Course),
		"productCompany":        strings.TrimSpace(input.ProductCompany),
		"previousQualification": strings.TrimSpace(input.PreviousQualification),
	})
	if input.Percentage > 0 {
		set["percentage"] = input.Percentage
	}
	return s.UpdateWithFiles(ctx, id, nil, &basesvc.UpdateData{Set: access.StampUpdate(set, actor)}, files)
}

func (s *AdmissionService) UpdateStatus(ctx context.Context, actor *access.Identity, id primitive.ObjectID, field, value string) (models.AdmissionForm, error) {
	updated, err := s.SetStatus(ctx, id, nil, field, value, actor.Actor())
	if err != nil {
		return updated, err
	}
	logger.Audit("admission.status", actor.IDHex()).WithFields(map[string]interface{}{
		"id": id.Hex(), "status": value,
	}).Info("admission status changed")
	return updated, nil
}

func (s *AdmissionService) Delete(ctx context.Context, actor *access.Identity, id primitive.ObjectID) error {
	if _, err := s.DeleteWithFiles(ctx, id, nil); err != nil {
		return err
	}
	logger.Audit("admission.delete", actor.IDHex()).WithField("id", id.Hex()).Info("admission form deleted")
	return nil
}
