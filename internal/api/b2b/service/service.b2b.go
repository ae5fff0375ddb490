// Package b2bsvc manages partnership enquiries.
package b2bsvc

import (
	"context"
	"fmt"
	"strings"

	"edu_crm/internal/api/access"
	"edu_crm/internal/api/b2b/dto"
	"edu_crm/internal/api/b2b/models"
	basemodels "edu_crm/internal/api/base/models"
	basesvc "edu_crm/internal/api/base/service"
	"edu_crm/internal/common"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"
	"edu_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type B2BService struct {
	basesvc.EntityService[models.B2B]
}

// NewB2BService builds the service on the registered b2b collection.
func NewB2BService() (*B2BService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.B2B)
	if !exist {
		return nil, fmt.Errorf("collection %s not registered: %w", global.MongoDB_ColNames.B2B, common.ErrNotFound)
	}
	return NewB2BServiceWith(basesvc.NewBaseServiceMongo[models.B2B](coll)), nil
}

func NewB2BServiceWith(repo basesvc.BaseServiceMongo[models.B2B]) *B2BService {
	return &B2BService{EntityService: basesvc.EntityService[models.B2B]{
		Repo:         repo,
		SearchFields: []string{"companyName", "contactPerson", "email", "phone"},
		Statuses:     models.Statuses,
	}}
}

func (s *B2BService) Create(ctx context.Context, actor *access.Identity, input *dto.B2BCreateInput, _ basemodels.Files) (models.B2B, error) {
	return s.Repo.InsertOne(ctx, models.B2B{
		CompanyName:    strings.TrimSpace(input.CompanyName),
		ContactPerson:  strings.TrimSpace(input.ContactPerson),
		Email:          utility.NormalizeEmail(input.Email),
		Phone:          strings.TrimSpace(input.Phone),
		Designation:    strings.TrimSpace(input.Designation),
		Requirement:    strings.TrimSpace(input.Requirement),
		Message:        strings.TrimSpace(input.Message),
		ProductCompany: strings.TrimSpace(input.ProductCompany),
		Status:         models.StatusNew,
		Tracking:       basemodels.Tracking{CreatedBy: actor.Actor()},
	})
}

func (s *B2BService) List(ctx context.Context, actor *access.Identity, q basemodels.ListQuery) (*basemodels.PaginateResult[models.B2B], error) {
	return s.Page(ctx, s.ListFilter(q), q)
}

func (s *B2BService) Get(ctx context.Context, actor *access.Identity, id primitive.ObjectID) (models.B2B, error) {
	return s.FindByID(ctx, id, nil)
}

func (s *B2BService) Update(ctx context.Context, actor *access.Identity, id primitive.ObjectID, input *dto.B2BUpdateInput, _ basemodels.Files) (models.B2B, error) {
	set := utility.CompactSet(bson.M{
		"companyName":    strings.TrimSpace(input.CompanyName),
		"contactPerson":  strings.TrimSpace(input.ContactPerson),
		"email":          utility.NormalizeEmail(input.Email),
		"phone":          strings.TrimSpace(input.Phone),
		"designation":    strings.TrimSpace(input.Designation),
		"requirement":    strings.TrimSpace(input.Requirement),
		"message":        strings.TrimSpace(input.Message),
		"productCompany": strings.TrimSpace(input.ProductCompany),
	})
	return s.Repo.UpdateById(ctx, id, access.StampUpdate(set, actor))
}

func (s *B2BService) UpdateStatus(ctx context.Context, actor *access.Identity, id primitive.ObjectID, field, value string) (models.B2B, error) {
	return s.SetStatus(ctx, id, nil, field, value, actor.Actor())
}

func (s *B2BService) Delete(ctx context.Context, actor *access.Identity, id primitive.ObjectID) error {
	if err := s.Repo.DeleteById(ctx, id); err != nil {
		return err
	}
	logger.Audit("b2b.delete", actor.IDHex()).WithField("id", id.Hex()).Info("b2b enquiry deleted")
	return nil
}
