package seosvc

import (
	"context"
	"testing"

	"edu_crm/internal/api/access"
	basemodels "edu_crm/internal/api/base/models"
	"edu_crm/internal/api/base/service/servicetest"
	"edu_crm/internal/api/seo/dto"
	"edu_crm/internal/api/seo/models"
	"edu_crm/internal/common"
	"edu_crm/internal/storage"
	"edu_crm/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePage(t *testing.T) {
	assert.Equal(t, "/", NormalizePage(""))
	assert.Equal(t, "/courses/data-science", NormalizePage(" Courses/Data-Science/ "))
}

func TestPageUniquePerCompany(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := NewSeoServiceWith(servicetest.NewMemoryRepo[models.Seo](), storage.NewAttachments(store, 1))
	dev := testutil.Identity(access.RoleDeveloper)
	og := basemodels.Files{"ogImage": testutil.FileHeader(t, "ogImage", "og.png", []byte("png"))}

	home, err := svc.Create(ctx, dev, &dto.SeoCreateInput{Page: "/", ProductCompany: "academy", MetaTitle: "Academy", Keywords: []string{"courses", "<b>jobs</b>"}}, og)
	require.NoError(t, err)
	assert.Equal(t, []string{"courses", "jobs"}, home.Keywords)
	assert.Contains(t, home.OgImage, store.BaseURL+"/seo/")

	_, err = svc.Create(ctx, dev, &dto.SeoCreateInput{Page: "", ProductCompany: "academy", MetaTitle: "Again"}, nil)
	assert.ErrorIs(t, err, common.ErrDuplicate)

	other, err := svc.Create(ctx, dev, &dto.SeoCreateInput{Page: "/", ProductCompany: "labs", MetaTitle: "Labs"}, nil)
	require.NoError(t, err)

	_, err = svc.Update(ctx, dev, other.ID, &dto.SeoUpdateInput{ProductCompany: "academy"}, nil)
	assert.ErrorIs(t, err, common.ErrDuplicate)

	updated, err := svc.Update(ctx, dev, home.ID, &dto.SeoUpdateInput{MetaTitle: "Academy Home"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Academy Home", updated.MetaTitle)

	page, err := svc.List(ctx, nil, basemodels.ListQuery{Page: 1, Limit: 10, ProductCompany: "labs", Extra: map[string]string{"page": "/"}})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, other.ID, page.Items[0].ID)
}
