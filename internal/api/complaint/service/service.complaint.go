// Package complaintsvc manages complaints.
package complaintsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"edu_crm/internal/api/access"
	basemodels "edu_crm/internal/api/base/models"
	basesvc "edu_crm/internal/api/base/service"
	"edu_crm/internal/api/complaint/dto"
	"edu_crm/internal/api/complaint/models"
	"edu_crm/internal/common"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"
	"edu_crm/internal/storage"
	"edu_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ComplaintService struct {
	basesvc.EntityService[models.Complaint]
}

// NewComplaintService builds the service on the registered complaints collection.
func NewComplaintService(attachments *storage.Attachments) (*ComplaintService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Complaints)
	if !exist {
		return nil, fmt.Errorf("collection %s not registered: %w", global.MongoDB_ColNames.Complaints, common.ErrNotFound)
	}
	return NewComplaintServiceWith(basesvc.NewBaseServiceMongo[models.Complaint](coll), attachments), nil
}

func NewComplaintServiceWith(repo basesvc.BaseServiceMongo[models.Complaint], attachments *storage.Attachments) *ComplaintService {
	return &ComplaintService{EntityService: basesvc.EntityService[models.Complaint]{
		Repo:         repo,
		Attachments:  attachments,
		Fields:       []basesvc.AttachmentField{{Name: "attachment", Folder: "complaints", Kind: storage.KindImageOrDocument}},
		SearchFields: []string{"name", "email", "phone", "subject"},
		Statuses:     models.Statuses,
	}}
}

func (s *ComplaintService) Create(ctx context.Context, actor *access.Identity, input *dto.ComplaintCreateInput, files basemodels.Files) (models.Complaint, error) {
	c := models.Complaint{
		Name:           strings.TrimSpace(input.Name),
		Email:          utility.NormalizeEmail(input.Email),
		Phone:          strings.TrimSpace(input.Phone),
		Subject:        strings.TrimSpace(input.Subject),
		Description:    strings.TrimSpace(input.Description),
		ProductCompany: strings.TrimSpace(input.ProductCompany),
		Priority:       input.Priority,
		Status:         models.StatusOpen,
		Tracking:       basemodels.Tracking{CreatedBy: actor.Actor()},
	}
	if c.Priority == "" {
		c.Priority = models.PriorityMedium
	}
	created, err := s.CreateWithFiles(ctx, c, files, func(m *models.Complaint, urls map[string]string) {
		m.Attachment = urls["attachment"]
	})
	if err != nil {
		return created, err
	}
	logger.WithModule("complaint").WithFields(map[string]interface{}{
		"id": created.ID.Hex(), "priority": created.Priority,
	}).Info("complaint received")
	return created, nil
}

func (s *ComplaintService) List(ctx context.Context, actor *access.Identity, q basemodels.ListQuery) (*basemodels.PaginateResult[models.Complaint], error) {
	filter := s.ListFilter(q)
	if p := q.Get("priority"); p != "" {
		filter["priority"] = p
	}
	return s.Page(ctx, filter, q)
}

func (s *ComplaintService) Get(ctx context.Context, actor *access.Identity, id primitive.ObjectID) (models.Complaint, error) {
	return s.FindByID(ctx, id, nil)
}

func (s *ComplaintService) Update(ctx context.Context, actor *access.Identity, id primitive.ObjectID, input *dto.ComplaintUpdateInput, files basemodels.Files) (models.Complaint, error) {
	set := utility.CompactSet(bson.M{
		"name":           strings.TrimSpace(input.Name),
		"email":          utility.NormalizeEmail(input.Email),
		"phone":          strings.TrimSpace(input.Phone),
		"subject":        strings.TrimSpace(input.Subject),
		"description":    strings.TrimSpace(input.Description),
		"productCompany": strings.TrimSpace(input.ProductCompany),
		"priority":       input.Priority,
	})
	return s.UpdateWithFiles(ctx, id, nil, &basesvc.UpdateData{Set: access.StampUpdate(set, actor)}, files)
}

// UpdateStatus changes status or priority. Resolving or closing stamps resolvedAt.
func (s *ComplaintService) UpdateStatus(ctx context.Context, actor *access.Identity, id primitive.ObjectID, field, value string) (models.Complaint, error) {
	updated, err := s.SetStatus(ctx, id, nil, field, value, actor.Actor())
	if err != nil {
		return updated, err
	}
	if field == "status" && (value == models.StatusResolved || value == models.StatusClosed) && updated.ResolvedAt == 0 {
		return s.Repo.UpdateById(ctx, id, bson.M{"resolvedAt": time.Now().UnixMilli()})
	}
	return updated, nil
}

func (s *ComplaintService) AddRemark(ctx context.Context, actor *access.Identity, id primitive.ObjectID, text string) (models.Complaint, error) {
	remark := basemodels.Remark{Text: strings.TrimSpace(text), AddedAt: time.Now().UnixMilli()}
	if ref := actor.Actor(); ref != nil {
		remark.AddedBy = *ref
	}
	return s.Repo.UpdateById(ctx, id, &basesvc.UpdateData{Push: map[string]interface{}{"remarks": remark}})
}

func (s *ComplaintService) Delete(ctx context.Context, actor *access.Identity, id primitive.ObjectID) error {
	if _, err := s.DeleteWithFiles(ctx, id, nil); err != nil {
		return err
	}
	logger.Audit("complaint.delete", actor.IDHex()).WithField("id", id.Hex()).Info("complaint deleted")
	return nil
}
