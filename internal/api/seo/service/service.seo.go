// Package seosvc manages page SEO metadata.
package seosvc

import (
	"context"
	"fmt"
	"strings"

	"edu_crm/internal/api/access"
	basemodels "edu_crm/internal/api/base/models"
	basesvc "edu_crm/internal/api/base/service"
	"edu_crm/internal/api/seo/dto"
	"edu_crm/internal/api/seo/models"
	"edu_crm/internal/common"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"
	"edu_crm/internal/sanitize"
	"edu_crm/internal/storage"
	"edu_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SeoService struct {
	basesvc.EntityService[models.Seo]
}

func NewSeoService(attachments *storage.Attachments) (*SeoService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Seo)
	if !exist {
		return nil, fmt.Errorf("collection %s not registered: %w", global.MongoDB_ColNames.Seo, common.ErrNotFound)
	}
	return NewSeoServiceWith(basesvc.NewBaseServiceMongo[models.Seo](coll), attachments), nil
}

func NewSeoServiceWith(repo basesvc.BaseServiceMongo[models.Seo], attachments *storage.Attachments) *SeoService {
	return &SeoService{EntityService: basesvc.EntityService[models.Seo]{
		Repo:         repo,
		Attachments:  attachments,
		Fields:       []basesvc.AttachmentField{{Name: "ogImage", Folder: "seo", Kind: storage.KindImage}},
		SearchFields: []string{"page", "metaTitle"},
	}}
}

// NormalizePage trims a page path and gives it a single leading slash.
func NormalizePage(page string) string {
	page = strings.Trim(strings.TrimSpace(page), "/")
	return "/" + strings.ToLower(page)
}

func (s *SeoService) ensureFree(ctx context.Context, page, company string, self primitive.ObjectID) error {
	filter := bson.M{"page": page, "productCompany": company}
	if company == "" {
		// empty strings are not stored
		filter["productCompany"] = nil
	}
	if !self.IsZero() {
		filter["_id"] = bson.M{"$ne": self}
	}
	taken, err := s.Repo.DocumentExists(ctx, filter)
	if err != nil {
		return err
	}
	if taken {
		return common.WithDetails(common.ErrDuplicate, "page")
	}
	return nil
}

func (s *SeoService) Create(ctx context.Context, actor *access.Identity, input *dto.SeoCreateInput, files basemodels.Files) (models.Seo, error) {
	entry := models.Seo{
		Page:            NormalizePage(input.Page),
		ProductCompany:  strings.TrimSpace(input.ProductCompany),
		MetaTitle:       sanitize.Text(input.MetaTitle),
		MetaDescription: sanitize.Text(input.MetaDescription),
		Keywords:        sanitize.TextSlice(input.Keywords),
		CanonicalURL:    strings.TrimSpace(input.CanonicalURL),
		Tracking:        basemodels.Tracking{CreatedBy: actor.Actor()},
	}
	if err := s.ensureFree(ctx, entry.Page, entry.ProductCompany, primitive.NilObjectID); err != nil {
		return models.Seo{}, err
	}
	return s.CreateWithFiles(ctx, entry, files, func(m *models.Seo, urls map[string]string) {
		m.OgImage = urls["ogImage"]
	})
}

// List is public and filters by ?page and ?productCompany.
func (s *SeoService) List(ctx context.Context, _ *access.Identity, q basemodels.ListQuery) (*basemodels.PaginateResult[models.Seo], error) {
	filter := s.ListFilter(q)
	if p := q.Get("page"); p != "" {
		filter["page"] = NormalizePage(p)
	}
	return s.Page(ctx, filter, q)
}

func (s *SeoService) Get(ctx context.Context, _ *access.Identity, id primitive.ObjectID) (models.Seo, error) {
	return s.FindByID(ctx, id, nil)
}

func (s *SeoService) Update(ctx context.Context, actor *access.Identity, id primitive.ObjectID, input *dto.SeoUpdateInput, files basemodels.Files) (models.Seo, error) {
	current, err := s.FindByID(ctx, id, nil)
	if err != nil {
		return current, err
	}
	set := utility.CompactSet(bson.M{
		"metaTitle":       sanitize.Text(input.MetaTitle),
		"metaDescription": sanitize.Text(input.MetaDescription),
		"canonicalUrl":    strings.TrimSpace(input.CanonicalURL),
	})
	if input.Keywords != nil {
		set["keywords"] = sanitize.TextSlice(input.Keywords)
	}
	page, company := current.Page, current.ProductCompany
	if strings.TrimSpace(input.Page) != "" {
		page = NormalizePage(input.Page)
		set["page"] = page
	}
	if c := strings.TrimSpace(input.ProductCompany); c != "" {
		company = c
		set["productCompany"] = c
	}
	if page != current.Page || company != current.ProductCompany {
		if err := s.ensureFree(ctx, page, company, id); err != nil {
			return models.Seo{}, err
		}
	}
	return s.UpdateWithFiles(ctx, id, nil, &basesvc.UpdateData{Set: access.StampUpdate(set, actor)}, files)
}

func (s *SeoService) Delete(ctx context.Context, actor *access.Identity, id primitive.ObjectID) error {
	if _, err := s.DeleteWithFiles(ctx, id, nil); err != nil {
		return err
	}
	logger.Audit("seo.delete", actor.IDHex()).WithField("id", id.Hex()).Info("seo entry deleted")
	return nil
}
