// Package companysvc manages product companies.
package companysvc

import (
	"context"
	"fmt"
	"strings"

	"edu_crm/internal/api/access"
	basemodels "edu_crm/internal/api/base/models"
	basesvc "edu_crm/internal/api/base/service"
	"edu_crm/internal/api/company/dto"
	"edu_crm/internal/api/company/models"
	"edu_crm/internal/common"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"
	"edu_crm/internal/storage"
	"edu_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CompanyService struct {
	basesvc.EntityService[models.Company]
}

func NewCompanyService(attachments *storage.Attachments) (*CompanyService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Companies)
	if !exist {
		return nil, fmt.Errorf("collection %s not registered: %w", global.MongoDB_ColNames.Companies, common.ErrNotFound)
	}
	return NewCompanyServiceWith(basesvc.NewBaseServiceMongo[models.Company](coll), attachments), nil
}

func NewCompanyServiceWith(repo basesvc.BaseServiceMongo[models.Company], attachments *storage.Attachments) *CompanyService {
	return &CompanyService{EntityService: basesvc.EntityService[models.Company]{
		Repo:         repo,
		Attachments:  attachments,
		Fields:       []basesvc.AttachmentField{{Name: "logo", Folder: "logos", Kind: storage.KindImage}},
		SearchFields: []string{"name", "slug"},
	}}
}

// claimSlug normalizes slug and fails with ErrDuplicate when another company holds it.
func (s *CompanyService) claimSlug(ctx context.Context, slug string, self primitive.ObjectID) (string, error) {
	slug = utility.Slug(slug)
	if slug == "" {
		return "", common.WithDetails(common.ErrRequiredField, "slug")
	}
	filter := bson.M{"slug": slug}
	if !self.IsZero() {
		filter["_id"] = bson.M{"$ne": self}
	}
	taken, err := s.Repo.DocumentExists(ctx, filter)
	if err != nil {
		return "", err
	}
	if taken {
		return "", common.WithDetails(common.ErrDuplicate, "slug")
	}
	return slug, nil
}

func (s *CompanyService) Create(ctx context.Context, actor *access.Identity, input *dto.CompanyCreateInput, files basemodels.Files) (models.Company, error) {
	raw := input.Slug
	if strings.TrimSpace(raw) == "" {
		raw = input.Name
	}
	slug, err := s.claimSlug(ctx, raw, primitive.NilObjectID)
	if err != nil {
		return models.Company{}, err
	}
	company := models.Company{
		Name:        strings.TrimSpace(input.Name),
		Slug:        slug,
		Website:     strings.TrimSpace(input.Website),
		Description: strings.TrimSpace(input.Description),
		IsActive:    input.IsActive == nil || *input.IsActive,
		Tracking:    basemodels.Tracking{CreatedBy: actor.Actor()},
	}
	return s.CreateWithFiles(ctx, company, files, func(m *models.Company, urls map[string]string) {
		m.Logo = urls["logo"]
	})
}

// List is public; anonymous callers see active companies only.
func (s *CompanyService) List(ctx context.Context, actor *access.Identity, q basemodels.ListQuery) (*basemodels.PaginateResult[models.Company], error) {
	filter := s.ListFilter(q)
	if actor == nil {
		filter["isActive"] = true
	}
	return s.Page(ctx, filter, q)
}

func (s *CompanyService) Get(ctx context.Context, _ *access.Identity, id primitive.ObjectID) (models.Company, error) {
	return s.FindByID(ctx, id, nil)
}

// GetBySlug returns the company with slug. Anonymous callers cannot see inactive companies.
func (s *CompanyService) GetBySlug(ctx context.Context, actor *access.Identity, slug string) (models.Company, error) {
	filter := bson.M{"slug": utility.Slug(slug)}
	if actor == nil {
		filter["isActive"] = true
	}
	return s.Repo.FindOne(ctx, filter, nil)
}

func (s *CompanyService) Update(ctx context.Context, actor *access.Identity, id primitive.ObjectID, input *dto.CompanyUpdateInput, files basemodels.Files) (models.Company, error) {
	set := utility.CompactSet(bson.M{
		"name":        strings.TrimSpace(input.Name),
		"website":     strings.TrimSpace(input.Website),
		"description": strings.TrimSpace(input.Description),
	})
	if strings.TrimSpace(input.Slug) != "" {
		slug, err := s.claimSlug(ctx, input.Slug, id)
		if err != nil {
			return models.Company{}, err
		}
		set["slug"] = slug
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}
	return s.UpdateWithFiles(ctx, id, nil, &basesvc.UpdateData{Set: access.StampUpdate(set, actor)}, files)
}

func (s *CompanyService) Delete(ctx context.Context, actor *access.Identity, id primitive.ObjectID) error {
	if _, err := s.DeleteWithFiles(ctx, id, nil); err != nil {
		return err
	}
	logger.Audit("company.delete", actor.IDHex()).WithField("id", id.Hex()).Info("company deleted")
	return nil
}
