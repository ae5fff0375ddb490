package internsvc

import (
	"context"
	"testing"

	"edu_crm/internal/api/access"
	basemodels "edu_crm/internal/api/base/models"
	"edu_crm/internal/api/base/service/servicetest"
	"edu_crm/internal/api/intern/dto"
	"edu_crm/internal/api/intern/models"
	"edu_crm/internal/api/lead/leadtest"
	"edu_crm/internal/common"
	"edu_crm/internal/notification"
	"edu_crm/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*InternService, *servicetest.MemoryRepo[models.InternAppliedData], *leadtest.Env) {
	t.Helper()
	env := leadtest.New(t)
	repo := servicetest.NewMemoryRepo[models.InternAppliedData]()
	return NewInternServiceWith(repo, env.Team, env.Notifier, env.Mailer, env.Attachments), repo, env
}

func application() *dto.InternCreateInput {
	return &dto.InternCreateInput{
		Name: "Asha", Email: "asha@mail.test", Phone: "9876543210",
		Skills: []string{" Go ", "go", "", "SQL"}, Domain: "Backend", PreferredMode: "remote",
	}
}

func TestCreateWithAttachments(t *testing.T) {
	svc, _, env := newService(t)
	files := basemodels.Files{
		"resume": testutil.FileHeader(t, "resume", "cv.pdf", []byte("%PDF")),
		"photo":  testutil.FileHeader(t, "photo", "me.jpg", []byte("jpg")),
	}

	a, err := svc.Create(context.Background(), nil, application(), files)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApplied, a.Status)
	assert.Equal(t, []string{"Go", "SQL"}, a.Skills)
	assert.Contains(t, a.Resume, "/resumes/")
	assert.Contains(t, a.Photo, "/photos/")
	assert.Nil(t, a.AssignedTo)
	assert.Equal(t, 2, env.Store.Len())
}

func TestPhotoMustBeAnImage(t *testing.T) {
	svc, repo, env := newService(t)
	files := basemodels.Files{
		"resume": testutil.FileHeader(t, "resume", "cv.pdf", []byte("%PDF")),
		"photo":  testutil.FileHeader(t, "photo", "me.pdf", []byte("%PDF")),
	}
	_, err := svc.Create(context.Background(), nil, application(), files)
	require.Error(t, err)
	assert.Equal(t, 0, repo.Len())
	assert.Equal(t, 0, env.Store.Len())
}

func TestHRCreatesAndSeesOwnApplications(t *testing.T) {
	ctx := context.Background()
	svc, _, env := newService(t)
	hrMember, hr := env.Member(t, access.RoleHR)
	_, other := env.Member(t, access.RoleHR)

	own, err := svc.Create(ctx, hr, application(), nil)
	require.NoError(t, err)
	require.NotNil(t, own.AssignedTo)
	assert.Equal(t, hrMember.ID, *own.AssignedTo)

	_, err = svc.Get(ctx, other, own.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = svc.AddRemark(ctx, other, own.ID, "not mine")
	assert.ErrorIs(t, err, common.ErrNotFound)

	page, err := svc.List(ctx, hr, basemodels.ListQuery{Page: 1, Limit: 10, Extra: map[string]string{"domain": "Backend"}})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestUpdateKeepsUnsetFieldsAndReplacesPhoto(t *testing.T) {
	ctx := context.Background()
	svc, _, env := newService(t)
	_, admin := env.Member(t, access.RoleAdmin)
	photo := basemodels.Files{"photo": testutil.FileHeader(t, "photo", "me.jpg", []byte("jpg"))}
	a, err := svc.Create(ctx, nil, application(), photo)
	require.NoError(t, err)

	next := basemodels.Files{"photo": testutil.FileHeader(t, "photo", "me2.png", []byte("png"))}
	updated, err := svc.Update(ctx, admin, a.ID, &dto.InternUpdateInput{CGPA: 8.4, Skills: []string{"Kubernetes"}}, next)
	require.NoError(t, err)
	assert.Equal(t, 8.4, updated.CGPA)
	assert.Equal(t, []string{"Kubernetes"}, updated.Skills)
	assert.Equal(t, "Backend", updated.Domain)
	assert.Equal(t, []string{a.Photo}, env.Store.Removed())
}

func TestAssignAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, repo, env := newService(t)
	_, telecaller := env.Member(t, access.RoleTelecaller)
	_, admin := env.Member(t, access.RoleAdmin)
	hr, _ := env.Member(t, access.RoleHR)
	files := basemodels.Files{"resume": testutil.FileHeader(t, "resume", "cv.pdf", []byte("%PDF"))}
	a, err := svc.Create(ctx, nil, application(), files)
	require.NoError(t, err)

	_, err = svc.Assign(ctx, telecaller, a.ID, hr.Email)
	require.NoError(t, err)
	list := env.NotificationsFor(t, hr.ID)
	require.Len(t, list, 1)
	assert.Equal(t, notification.TypeApplicationAssigned, list[0].Type)
	svc.Wait()

	require.NoError(t, svc.Delete(ctx, admin, a.ID))
	assert.Equal(t, 0, repo.Len())
	assert.Equal(t, []string{a.Resume}, env.Store.Removed())
}
