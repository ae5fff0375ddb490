// Package imagesvc manages the image gallery.
package imagesvc

import (
	"context"
	"fmt"
	"strings"

	"edu_crm/internal/api/access"
	basemodels "edu_crm/internal/api/base/models"
	basesvc "edu_crm/internal/api/base/service"
	"edu_crm/internal/api/image/dto"
	"edu_crm/internal/api/image/models"
	"edu_crm/internal/common"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"
	"edu_crm/internal/storage"
	"edu_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImageService struct {
	basesvc.EntityService[models.Image]
}

func NewImageService(attachments *storage.Attachments) (*ImageService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Images)
	if !exist {
		return nil, fmt.Errorf("collection %s not registered: %w", global.MongoDB_ColNames.Images, common.ErrNotFound)
	}
	return NewImageServiceWith(basesvc.NewBaseServiceMongo[models.Image](coll), attachments), nil
}

func NewImageServiceWith(repo basesvc.BaseServiceMongo[models.Image], attachments *storage.Attachments) *ImageService {
	return &ImageService{EntityService: basesvc.EntityService[models.Image]{
		Repo:         repo,
		Attachments:  attachments,
		Fields:       []basesvc.AttachmentField{{Name: "image", Key: "url", Folder: "images", Kind: storage.KindImage, Required: true}},
		SearchFields: []string{"title", "altText", "category"},
	}}
}

func (s *ImageService) Create(ctx context.Context, actor *access.Identity, input *dto.ImageCreateInput, files basemodels.Files) (models.Image, error) {
	img := models.Image{
		Title:          strings.TrimSpace(input.Title),
		Category:       strings.TrimSpace(input.Category),
		ProductCompany: strings.TrimSpace(input.ProductCompany),
		AltText:        strings.TrimSpace(input.AltText),
		Tracking:       basemodels.Tracking{CreatedBy: actor.Actor()},
	}
	return s.CreateWithFiles(ctx, img, files, func(m *models.Image, urls map[string]string) {
		m.URL = urls["url"]
	})
}

// List supports ?category in addition to the shared filters.
func (s *ImageService) List(ctx context.Context, _ *access.Identity, q basemodels.ListQuery) (*basemodels.PaginateResult[models.Image], error) {
	filter := s.ListFilter(q)
	if c := q.Get("category"); c != "" {
		filter["category"] = c
	}
	return s.Page(ctx, filter, q)
}

func (s *ImageService) Get(ctx context.Context, _ *access.Identity, id primitive.ObjectID) (models.Image, error) {
	return s.FindByID(ctx, id, nil)
}

// Update changes the metadata and, when a new image is uploaded, replaces the stored object.
func (s *ImageService) Update(ctx context.Context, actor *access.Identity, id primitive.ObjectID, input *dto.ImageUpdateInput, files basemodels.Files) (models.Image, error) {
	set := utility.CompactSet(bson.M{
		"title":          strings.TrimSpace(input.Title),
		"category":       strings.TrimSpace(input.Category),
		"productCompany": strings.TrimSpace(input.ProductCompany),
		"altText":        strings.TrimSpace(input.AltText),
	})
	return s.UpdateWithFiles(ctx, id, nil, &basesvc.UpdateData{Set: access.StampUpdate(set, actor)}, files)
}

func (s *ImageService) Delete(ctx context.Context, actor *access.Identity, id primitive.ObjectID) error {
	if _, err := s.DeleteWithFiles(ctx, id, nil); err != nil {
		return err
	}
	logger.Audit("image.delete", actor.IDHex()).WithField("id", id.Hex()).Info("image deleted")
	return nil
}
