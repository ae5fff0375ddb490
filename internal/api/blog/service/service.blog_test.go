package blogsvc

import (
	"context"
	"testing"

	"edu_crm/internal/api/access"
	basemodels "edu_crm/internal/api/base/models"
	"edu_crm/internal/api/base/service/servicetest"
	"edu_crm/internal/api/blog/dto"
	"edu_crm/internal/api/blog/models"
	"edu_crm/internal/common"
	"edu_crm/internal/storage"
	"edu_crm/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *BlogService {
	return NewBlogServiceWith(servicetest.NewMemoryRepo[models.Blog]("slug"), storage.NewAttachments(storage.NewMemoryStore(), 1))
}

func post(title string) *dto.BlogCreateInput {
	return &dto.BlogCreateInput{Title: title, Content: "<p>Hello <b>world</b></p>", Tags: []string{"careers", " <i>ai</i> ", ""}}
}

func TestCreateSanitizesContent(t *testing.T) {
	svc := newService()
	writer := testutil.Identity(access.RoleMarketing)
	in := post("Why Learn Go in 2025")
	in.Content = `<p onclick="steal()">Go is <a href="javascript:alert(1)">fast</a></p><script>alert(1)</script>`

	b, err := svc.Create(context.Background(), writer, in, nil)
	require.NoError(t, err)
	assert.Equal(t, "why-learn-go-in-2025", b.Slug)
	assert.Equal(t, models.StatusDraft, b.Status)
	assert.Zero(t, b.PublishedAt)
	assert.NotContains(t, b.Content, "script")
	assert.NotContains(t, b.Content, "onclick")
	assert.NotContains(t, b.Content, "javascript:")
	assert.Contains(t, b.Content, "Go is")
	assert.Equal(t, []string{"careers", "ai"}, b.Tags)
	assert.Equal(t, writer.Name, b.Author)

	in = post("Empty")
	in.Content = "<script>only()</script>"
	_, err = svc.Create(context.Background(), writer, in, nil)
	assert.ErrorIs(t, err, common.ErrRequiredField)

	_, err = svc.Create(context.Background(), writer, post("Why learn Go in 2025!"), nil)
	assert.ErrorIs(t, err, common.ErrDuplicate)
}

func TestDraftsHiddenFromPublic(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	writer := testutil.Identity(access.RoleDeveloper)
	draft, err := svc.Create(ctx, writer, post("Draft post"), nil)
	require.NoError(t, err)
	live := post("Live post")
	live.Status = models.StatusPublished
	published, err := svc.Create(ctx, writer, live, nil)
	require.NoError(t, err)
	assert.NotZero(t, published.PublishedAt)

	q := basemodels.ListQuery{Page: 1, Limit: 10}
	public, err := svc.List(ctx, nil, q)
	require.NoError(t, err)
	assert.EqualValues(t, 1, public.Total)
	sales, err := svc.List(ctx, testutil.Identity(access.RoleSales), q)
	require.NoError(t, err)
	assert.EqualValues(t, 1, sales.Total)
	staff, err := svc.List(ctx, writer, q)
	require.NoError(t, err)
	assert.EqualValues(t, 2, staff.Total)

	_, err = svc.Get(ctx, nil, draft.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = svc.GetBySlug(ctx, "draft-post")
	assert.ErrorIs(t, err, common.ErrNotFound)

	first, err := svc.Publish(ctx, writer, draft.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, first.Status)
	bySlug, err := svc.GetBySlug(ctx, "draft-post")
	require.NoError(t, err)
	assert.Equal(t, draft.ID, bySlug.ID)

	_, err = svc.Publish(ctx, writer, draft.ID, false)
	require.NoError(t, err)
	again, err := svc.Publish(ctx, writer, draft.ID, true)
	require.NoError(t, err)
	assert.Equal(t, first.PublishedAt, again.PublishedAt)
}

func TestUpdateSlugAndTags(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	writer := testutil.Identity(access.RoleMarketing)
	a, err := svc.Create(ctx, writer, post("First"), nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, writer, post("Second"), nil)
	require.NoError(t, err)

	_, err = svc.Update(ctx, writer, a.ID, &dto.BlogUpdateInput{Slug: "second"}, nil)
	assert.ErrorIs(t, err, common.ErrDuplicate)

	updated, err := svc.Update(ctx, writer, a.ID, &dto.BlogUpdateInput{Slug: "First Steps", Tags: []string{}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "first-steps", updated.Slug)
	assert.Empty(t, updated.Tags)
	assert.Equal(t, "First", updated.Title)
}
