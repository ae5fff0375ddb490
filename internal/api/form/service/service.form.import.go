package formsvc

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"edu_crm/internal/api/access"
	"edu_crm/internal/api/form/dto"
	"edu_crm/internal/api/form/models"
	"edu_crm/internal/common"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"
	"edu_crm/internal/utility"

	"github.com/xuri/excelize/v2"
)

// importColumns are the recognised header cells, compared case-insensitively.
var importColumns = []string{"name", "email", "phone", "course", "source", "city", "productcompany"}

// Import reads leads from the first sheet of an xlsx workbook. The first row is the header.
// Rows without a valid name and phone are skipped and reported. Imported leads are unread and unassigned.
func (s *FormService) Import(ctx context.Context, actor *access.Identity, r io.Reader) (*dto.ImportResult, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, common.WithDetails(common.ErrInvalidFormat, "xlsx: "+err.Error())
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, common.WithDetails(common.ErrInvalidFormat, "xlsx: no sheets")
	}
	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, common.WithDetails(common.ErrInvalidFormat, "xlsx: "+err.Error())
	}
	if len(rows) == 0 {
		return nil, common.WithDetails(common.ErrInvalidFormat, "xlsx: missing header row")
	}

	columns := headerIndex(rows[0])
	if _, ok := columns["name"]; !ok {
		return nil, common.WithDetails(common.ErrRequiredField, "name column")
	}
	if _, ok := columns["phone"]; !ok {
		return nil, common.WithDetails(common.ErrRequiredField, "phone column")
	}

	if global.Validate == nil {
		global.InitValidator()
	}
	result := &dto.ImportResult{Skipped: []dto.SkippedRow{}}
	var leads []models.Form
	now := time.Now().UnixMilli()
	for i, row := range rows[1:] {
		line := i + 2
		cell := func(col string) string {
			idx, ok := columns[col]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}
		if isBlank(row) {
			continue
		}
		input := dto.FormCreateInput{
			Name:           cell("name"),
			Email:          cell("email"),
			Phone:          strings.ReplaceAll(cell("phone"), " ", ""),
			Course:         cell("course"),
			Source:         cell("source"),
			City:           cell("city"),
			ProductCompany: cell("productcompany"),
		}
		if err := global.Validate.Struct(input); err != nil {
			result.Skipped = append(result.Skipped, dto.SkippedRow{Row: line, Reason: rowReason(input, err)})
			continue
		}
		lead := models.Form{
			Name:           input.Name,
			Email:          utility.NormalizeEmail(input.Email),
			Phone:          input.Phone,
			Course:         input.Course,
			Source:         input.Source,
			City:           input.City,
			ProductCompany: input.ProductCompany,
			Status:         models.StatusUnread,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if lead.Source == "" {
			lead.Source = "import"
		}
		if actor != nil {
			lead.CreatedBy = actor.Actor()
		}
		leads = append(leads, lead)
	}

	if len(leads) > 0 {
		inserted, err := s.Repo.InsertMany(ctx, leads)
		if err != nil {
			return nil, err
		}
		result.Imported = len(inserted)
	}
	logger.Audit("form.import", actor.IDHex()).WithFields(map[string]interface{}{
		"imported": result.Imported, "skipped": len(result.Skipped),
	}).Info("leads imported")
	return result, nil
}

func headerIndex(header []string) map[string]int {
	out := map[string]int{}
	for i, h := range header {
		key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(h), " ", ""))
		for _, col := range importColumns {
			if key == col {
				if _, seen := out[col]; !seen {
					out[col] = i
				}
			}
		}
	}
	return out
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func rowReason(input dto.FormCreateInput, err error) string {
	switch {
	case input.Name == "":
		return "missing name"
	case input.Phone == "":
		return "missing phone"
	}
	return fmt.Sprintf("invalid row: %v", err)
}
