// Package reportsvc stores report files and their metadata.
package reportsvc

import (
	"context"
	"fmt"
	"strings"

	"edu_crm/internal/api/access"
	basemodels "edu_crm/internal/api/base/models"
	basesvc "edu_crm/internal/api/base/service"
	"edu_crm/internal/api/report/dto"
	"edu_crm/internal/api/report/models"
	"edu_crm/internal/common"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"
	"edu_crm/internal/storage"
	"edu_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReportService struct {
	basesvc.EntityService[models.Report]
}

func NewReportService(attachments *storage.Attachments) (*ReportService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Reports)
	if !exist {
		return nil, fmt.Errorf("collection %s not registered: %w", global.MongoDB_ColNames.Reports, common.ErrNotFound)
	}
	return NewReportServiceWith(basesvc.NewBaseServiceMongo[models.Report](coll), attachments), nil
}

func NewReportServiceWith(repo basesvc.BaseServiceMongo[models.Report], attachments *storage.Attachments) *ReportService {
	return &ReportService{EntityService: basesvc.EntityService[models.Report]{
		Repo:         repo,
		Attachments:  attachments,
		Fields:       []basesvc.AttachmentField{{Name: "file", Folder: "reports", Kind: storage.KindDocument, Required: true}},
		SearchFields: []string{"title", "description", "category"},
	}}
}

func checkPeriod(start, end int64) error {
	if start > 0 && end > 0 && end < start {
		return common.WithDetails(common.ErrInvalidInput, "periodEnd: before periodStart")
	}
	return nil
}

func (s *ReportService) Create(ctx context.Context, actor *access.Identity, input *dto.ReportCreateInput, files basemodels.Files) (models.Report, error) {
	if err := checkPeriod(input.PeriodStart, input.PeriodEnd); err != nil {
		return models.Report{}, err
	}
	report := models.Report{
		Title:          strings.TrimSpace(input.Title),
		Description:    strings.TrimSpace(input.Description),
		Category:       strings.TrimSpace(input.Category),
		ProductCompany: strings.TrimSpace(input.ProductCompany),
		PeriodStart:    input.PeriodStart,
		PeriodEnd:      input.PeriodEnd,
		UploadedBy:     actor.Actor(),
	}
	created, err := s.CreateWithFiles(ctx, report, files, func(m *models.Report, urls map[string]string) {
		m.File = urls["file"]
	})
	if err != nil {
		return created, err
	}
	logger.Audit("report.upload", actor.IDHex()).WithField("id", created.ID.Hex()).Info("report uploaded")
	return created, nil
}

// List filters by ?category and by reports whose period overlaps [from, to] given as ?periodFrom ?periodTo.
func (s *ReportService) List(ctx context.Context, _ *access.Identity, q basemodels.ListQuery) (*basemodels.PaginateResult[models.Report], error) {
	filter := s.ListFilter(q)
	if c := q.Get("category"); c != "" {
		filter["category"] = c
	}
	if from := q.Int("periodFrom"); from > 0 {
		filter["periodEnd"] = bson.M{"$gte": from}
	}
	if to := q.Int("periodTo"); to > 0 {
		filter["periodStart"] = bson.M{"$lte": to}
	}
	return s.Page(ctx, filter, q)
}

func (s *ReportService) Get(ctx context.Context, _ *access.Identity, id primitive.ObjectID) (models.Report, error) {
	return s.FindByID(ctx, id, nil)
}

// Update changes the metadata and, when a new file is uploaded, replaces the stored file.
func (s *ReportService) Update(ctx context.Context, actor *access.Identity, id primitive.ObjectID, input *dto.ReportUpdateInput, files basemodels.Files) (models.Report, error) {
	current, err := s.FindByID(ctx, id, nil)
	if err != nil {
		return current, err
	}
	start, end := current.PeriodStart, current.PeriodEnd
	set := utility.CompactSet(bson.M{
		"title":          strings.TrimSpace(input.Title),
		"description":    strings.TrimSpace(input.Description),
		"category":       strings.TrimSpace(input.Category),
		"productCompany": strings.TrimSpace(input.ProductCompany),
	})
	if input.PeriodStart > 0 {
		start = input.PeriodStart
		set["periodStart"] = start
	}
	if input.PeriodEnd > 0 {
		end = input.PeriodEnd
		set["periodEnd"] = end
	}
	if err := checkPeriod(start, end); err != nil {
		return models.Report{}, err
	}
	return s.UpdateWithFiles(ctx, id, nil, &basesvc.UpdateData{Set: access.StampUpdate(set, actor)}, files)
}

func (s *ReportService) Delete(ctx context.Context, actor *access.Identity, id primitive.ObjectID) error {
	if _, err := s.DeleteWithFiles(ctx, id, nil); err != nil {
		return err
	}
	logger.Audit("report.delete", actor.IDHex()).WithField("id", id.Hex()).Info("report deleted")
	return nil
}
