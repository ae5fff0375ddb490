// Package socialmediasvc manages social media profile links.
package socialmediasvc

import (
	"context"
	"fmt"
	"strings"

	"edu_crm/internal/api/access"
	basemodels "edu_crm/internal/api/base/models"
	basesvc "edu_crm/internal/api/base/service"
	"edu_crm/internal/api/socialmedia/dto"
	"edu_crm/internal/api/socialmedia/models"
	"edu_crm/internal/common"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"
	"edu_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SocialMediaService struct {
	basesvc.EntityService[models.SocialMedia]
}

func NewSocialMediaService() (*SocialMediaService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.SocialMedia)
	if !exist {
		return nil, fmt.Errorf("collection %s not registered: %w", global.MongoDB_ColNames.SocialMedia, common.ErrNotFound)
	}
	return NewSocialMediaServiceWith(basesvc.NewBaseServiceMongo[models.SocialMedia](coll)), nil
}

func NewSocialMediaServiceWith(repo basesvc.BaseServiceMongo[models.SocialMedia]) *SocialMediaService {
	return &SocialMediaService{EntityService: basesvc.EntityService[models.SocialMedia]{
		Repo:         repo,
		SearchFields: []string{"handle", "url"},
	}}
}

// Create stores a link. Links are active unless isActive is false.
func (s *SocialMediaService) Create(ctx context.Context, actor *access.Identity, input *dto.SocialMediaCreateInput, _ basemodels.Files) (models.SocialMedia, error) {
	active := input.IsActive == nil || *input.IsActive
	return s.Repo.InsertOne(ctx, models.SocialMedia{
		Platform:       input.Platform,
		URL:            strings.TrimSpace(input.URL),
		Handle:         strings.TrimSpace(input.Handle),
		ProductCompany: strings.TrimSpace(input.ProductCompany),
		IsActive:       active,
		Tracking:       basemodels.Tracking{CreatedBy: actor.Actor()},
	})
}

// List is public. Anonymous callers only see active links; ?platform and ?active filter further.
func (s *SocialMediaService) List(ctx context.Context, actor *access.Identity, q basemodels.ListQuery) (*basemodels.PaginateResult[models.SocialMedia], error) {
	filter := s.ListFilter(q)
	if p := q.Get("platform"); p != "" {
		filter["platform"] = p
	}
	switch {
	case actor == nil:
		filter["isActive"] = true
	case q.Get("active") == "true":
		filter["isActive"] = true
	case q.Get("active") == "false":
		filter["isActive"] = false
	}
	return s.Page(ctx, filter, q)
}

func (s *SocialMediaService) Get(ctx context.Context, _ *access.Identity, id primitive.ObjectID) (models.SocialMedia, error) {
	return s.FindByID(ctx, id, nil)
}

func (s *SocialMediaService) Update(ctx context.Context, actor *access.Identity, id primitive.ObjectID, input *dto.SocialMediaUpdateInput, _ basemodels.Files) (models.SocialMedia, error) {
	set := utility.CompactSet(bson.M{
		"platform":       input.Platform,
		"url":            strings.TrimSpace(input.URL),
		"handle":         strings.TrimSpace(input.Handle),
		"productCompany": strings.TrimSpace(input.ProductCompany),
	})
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}
	return s.Repo.UpdateById(ctx, id, access.StampUpdate(set, actor))
}

func (s *SocialMediaService) Delete(ctx context.Context, actor *access.Identity, id primitive.ObjectID) error {
	if err := s.Repo.DeleteById(ctx, id); err != nil {
		return err
	}
	logger.Audit("social_media.delete", actor.IDHex()).WithField("id", id.Hex()).Info("social media link deleted")
	return nil
}
