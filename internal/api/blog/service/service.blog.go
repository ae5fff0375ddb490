// Package blogsvc manages blog posts.
package blogsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"edu_crm/internal/api/access"
	basemodels "edu_crm/internal/api/base/models"
	basesvc "edu_crm/internal/api/base/service"
	"edu_crm/internal/api/blog/dto"
	"edu_crm/internal/api/blog/models"
	"edu_crm/internal/common"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"
	"edu_crm/internal/sanitize"
	"edu_crm/internal/storage"
	"edu_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BlogService struct {
	basesvc.EntityService[models.Blog]
}

func NewBlogService(attachments *storage.Attachments) (*BlogService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Blogs)
	if !exist {
		return nil, fmt.Errorf("collection %s not registered: %w", global.MongoDB_ColNames.Blogs, common.ErrNotFound)
	}
	return NewBlogServiceWith(basesvc.NewBaseServiceMongo[models.Blog](coll), attachments), nil
}

func NewBlogServiceWith(repo basesvc.BaseServiceMongo[models.Blog], attachments *storage.Attachments) *BlogService {
	return &BlogService{EntityService: basesvc.EntityService[models.Blog]{
		Repo:         repo,
		Attachments:  attachments,
		Fields:       []basesvc.AttachmentField{{Name: "coverImage", Folder: "blogs", Kind: storage.KindImage}},
		SearchFields: []string{"title", "excerpt", "tags"},
	}}
}

// canSeeDrafts reports whether the caller may read unpublished posts.
func canSeeDrafts(actor *access.Identity) bool {
	return actor != nil && actor.HasRole(access.Content...)
}

func (s *BlogService) claimSlug(ctx context.Context, raw string, self primitive.ObjectID) (string, error) {
	slug := utility.Slug(raw)
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

func (s *BlogService) Create(ctx context.Context, actor *access.Identity, input *dto.BlogCreateInput, files basemodels.Files) (models.Blog, error) {
	content := sanitize.HTML(input.Content)
	if strings.TrimSpace(content) == "" {
		return models.Blog{}, common.WithDetails(common.ErrRequiredField, "content")
	}
	raw := input.Slug
	if strings.TrimSpace(raw) == "" {
		raw = input.Title
	}
	slug, err := s.claimSlug(ctx, raw, primitive.NilObjectID)
	if err != nil {
		return models.Blog{}, err
	}
	post := models.Blog{
		Title:           sanitize.Text(input.Title),
		Slug:            slug,
		Content:         content,
		Excerpt:         sanitize.Text(input.Excerpt),
		Author:          sanitize.Text(input.Author),
		Tags:            sanitize.TextSlice(input.Tags),
		Category:        sanitize.Text(input.Category),
		ProductCompany:  strings.TrimSpace(input.ProductCompany),
		Status:          models.StatusDraft,
		MetaTitle:       sanitize.Text(input.MetaTitle),
		MetaDescription: sanitize.Text(input.MetaDescription),
		Tracking:        basemodels.Tracking{CreatedBy: actor.Actor()},
	}
	if post.Author == "" && actor != nil {
		post.Author = actor.Name
	}
	if input.Status == models.StatusPublished {
		post.Status = models.StatusPublished
		post.PublishedAt = time.Now().UnixMilli()
	}
	return s.CreateWithFiles(ctx, post, files, func(m *models.Blog, urls map[string]string) {
		m.CoverImage = urls["coverImage"]
	})
}

// List returns published posts, or every post with ?status for content staff. ?tag and ?category filter.
func (s *BlogService) List(ctx context.Context, actor *access.Identity, q basemodels.ListQuery) (*basemodels.PaginateResult[models.Blog], error) {
	filter := s.ListFilter(q)
	if !canSeeDrafts(actor) {
		filter["status"] = models.StatusPublished
	}
	if tag := q.Get("tag"); tag != "" {
		filter["tags"] = tag
	}
	if c := q.Get("category"); c != "" {
		filter["category"] = c
	}
	return s.Page(ctx, filter, q)
}

func (s *BlogService) Get(ctx context.Context, actor *access.Identity, id primitive.ObjectID) (models.Blog, error) {
	var scope bson.M
	if !canSeeDrafts(actor) {
		scope = bson.M{"status": models.StatusPublished}
	}
	return s.FindByID(ctx, id, scope)
}

// GetBySlug returns a published post.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (models.Blog, error) {
	return s.Repo.FindOne(ctx, bson.M{"slug": utility.Slug(slug), "status": models.StatusPublished}, nil)
}

func (s *BlogService) Update(ctx context.Context, actor *access.Identity, id primitive.ObjectID, input *dto.BlogUpdateInput, files basemodels.Files) (models.Blog, error) {
	set := utility.CompactSet(bson.M{
		"title":           sanitize.Text(input.Title),
		"excerpt":         sanitize.Text(input.Excerpt),
		"author":          sanitize.Text(input.Author),
		"category":        sanitize.Text(input.Category),
		"productCompany":  strings.TrimSpace(input.ProductCompany),
		"metaTitle":       sanitize.Text(input.MetaTitle),
		"metaDescription": sanitize.Text(input.MetaDescription),
	})
	if strings.TrimSpace(input.Content) != "" {
		content := sanitize.HTML(input.Content)
		if strings.TrimSpace(content) == "" {
			return models.Blog{}, common.WithDetails(common.ErrRequiredField, "content")
		}
		set["content"] = content
	}
	if input.Tags != nil {
		set["tags"] = sanitize.TextSlice(input.Tags)
	}
	if strings.TrimSpace(input.Slug) != "" {
		slug, err := s.claimSlug(ctx, input.Slug, id)
		if err != nil {
			return models.Blog{}, err
		}
		set["slug"] = slug
	}
	return s.UpdateWithFiles(ctx, id, nil, &basesvc.UpdateData{Set: access.StampUpdate(set, actor)}, files)
}

// Publish publishes or unpublishes a post. The first publication time is kept across republishing.
func (s *BlogService) Publish(ctx context.Context, actor *access.Identity, id primitive.ObjectID, publish bool) (models.Blog, error) {
	current, err := s.FindByID(ctx, id, nil)
	if err != nil {
		return current, err
	}
	set := bson.M{"status": models.StatusDraft}
	if publish {
		set["status"] = models.StatusPublished
		if current.PublishedAt == 0 {
			set["publishedAt"] = time.Now().UnixMilli()
		}
	}
	updated, err := s.Repo.UpdateById(ctx, id, access.StampUpdate(set, actor))
	if err != nil {
		return updated, err
	}
	logger.Audit("blog.publish", actor.IDHex()).WithFields(map[string]interface{}{
		"id": id.Hex(), "status": updated.Status,
	}).Info("blog status changed")
	return updated, nil
}

func (s *BlogService) Delete(ctx context.Context, actor *access.Identity, id primitive.ObjectID) error {
	if _, err := s.DeleteWithFiles(ctx, id, nil); err != nil {
		return err
	}
	logger.Audit("blog.delete", actor.IDHex()).WithField("id", id.Hex()).Info("blog deleted")
	return nil
}
