// Package paymentsvc manages payment confirmations.
package paymentsvc

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"edu_crm/internal/api/access"
	basemodels "edu_crm/internal/api/base/models"
	basesvc "edu_crm/internal/api/base/service"
	"edu_crm/internal/api/payment/dto"
	"edu_crm/internal/api/payment/models"
	"edu_crm/internal/common"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"
	"edu_crm/internal/storage"
	"edu_crm/internal/utility"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentService struct {
	basesvc.EntityService[models.PaymentDetail]
}

// NewPaymentService builds the service on the registered payment_details collection.
func NewPaymentService(attachments *storage.Attachments) (*PaymentService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PaymentDetails)
	if !exist {
		return nil, fmt.Errorf("collection %s not registered: %w", global.MongoDB_ColNames.PaymentDetails, common.ErrNotFound)
	}
	return NewPaymentServiceWith(basesvc.NewBaseServiceMongo[models.PaymentDetail](coll), attachments), nil
}

func NewPaymentServiceWith(repo basesvc.BaseServiceMongo[models.PaymentDetail], attachments *storage.Attachments) *PaymentService {
	return &PaymentService{EntityService: basesvc.EntityService[models.PaymentDetail]{
		Repo:         repo,
		Attachments:  attachments,
		Fields:       []basesvc.AttachmentField{{Name: "screenshot", Folder: "payments", Kind: storage.KindImageOrDocument}},
		SearchFields: []string{"name", "email", "phone", "transactionId"},
		Statuses:     models.Statuses,
	}}
}

// ToDecimal128 validates a payment amount and converts it for storage.
func ToDecimal128(amount decimal.Decimal) (primitive.Decimal128, error) {
	if !amount.IsPositive() {
		return primitive.Decimal128{}, common.WithDetails(common.ErrInvalidInput, "amount: must be greater than 0")
	}
	if !amount.Equal(amount.Round(2)) {
		return primitive.Decimal128{}, common.WithDetails(common.ErrInvalidInput, "amount: at most 2 decimal places")
	}
	d, err := primitive.ParseDecimal128(amount.StringFixed(2))
	if err != nil {
		return primitive.Decimal128{}, common.WithDetails(common.ErrInvalidInput, "amount")
	}
	return d, nil
}

// FromDecimal128 converts a stored amount back to a decimal.
func FromDecimal128(d primitive.Decimal128) decimal.Decimal {
	v, err := decimal.NewFromString(d.String())
	if err != nil {
		return decimal.Zero
	}
	return v
}

func (s *PaymentService) Create(ctx context.Context, actor *access.Identity, input *dto.PaymentCreateInput, files basemodels.Files) (models.PaymentDetail, error) {
	amount, err := ToDecimal128(input.Amount)
	if err != nil {
		return models.PaymentDetail{}, err
	}
	p := models.PaymentDetail{
		Name:           strings.TrimSpace(input.Name),
		Email:          utility.NormalizeEmail(input.Email),
		Phone:          strings.TrimSpace(input.Phone),
		Course:         strings.TrimSpace(input.Course),
		ProductCompany: strings.TrimSpace(input.ProductCompany),
		Amount:         amount,
		Currency:       strings.ToUpper(strings.TrimSpace(input.Currency)),
		TransactionID:  strings.TrimSpace(input.TransactionID),
		PaymentMode:    input.PaymentMode,
		Status:         models.StatusPending,
		Tracking:       basemodels.Tracking{CreatedBy: actor.Actor()},
	}
	if p.Currency == "" {
		p.Currency = models.DefaultCurrency
	}
	created, err := s.CreateWithFiles(ctx, p, files, func(m *models.PaymentDetail, urls map[string]string) {
		m.Screenshot = urls["screenshot"]
	})
	if err != nil {
		return created, err
	}
	logger.WithModule("payment").WithFields(map[string]interface{}{
		"id": created.ID.Hex(), "amount": created.Amount.String(), "currency": created.Currency,
	}).Info("payment detail received")
	return created, nil
}

func (s *PaymentService) filter(q basemodels.ListQuery) bson.M {
	filter := s.ListFilter(q)
	for _, key := range []string{"paymentMode", "currency"} {
		if v := q.Get(key); v != "" {
			filter[key] = v
		}
	}
	return filter
}

func (s *PaymentService) List(ctx context.Context, actor *access.Identity, q basemodels.ListQuery) (*basemodels.PaginateResult[models.PaymentDetail], error) {
	return s.Page(ctx, s.filter(q), q)
}

func (s *PaymentService) Get(ctx context.Context, actor *access.Identity, id primitive.ObjectID) (models.PaymentDetail, error) {
	return s.FindByID(ctx, id, nil)
}

// Update is not offered: payment details are corrected through their status only.
func (s *PaymentService) Update(ctx context.Context, actor *access.Identity, id primitive.ObjectID, input *dto.PaymentCreateInput, files basemodels.Files) (models.PaymentDetail, error) {
	return models.PaymentDetail{}, common.ErrInvalidOperation
}

// UpdateStatus changes the payment status. The first move to success stamps paidAt.
func (s *PaymentService) UpdateStatus(ctx context.Context, actor *access.Identity, id primitive.ObjectID, field, value string) (models.PaymentDetail, error) {
	updated, err := s.SetStatus(ctx, id, nil, field, value, actor.Actor())
	if err != nil {
		return updated, err
	}
	logger.Audit("payment.status", actor.IDHex()).WithFields(map[string]interface{}{
		"id": id.Hex(), "status": value, "amount": updated.Amount.String(),
	}).Info("payment status changed")
	if value == models.StatusSuccess && updated.PaidAt == 0 {
		return s.Repo.UpdateById(ctx, id, bson.M{"paidAt": time.Now().UnixMilli()})
	}
	return updated, nil
}

func (s *PaymentService) Delete(ctx context.Context, actor *access.Identity, id primitive.ObjectID) error {
	if _, err := s.DeleteWithFiles(ctx, id, nil); err != nil {
		return err
	}
	logger.Audit("payment.delete", actor.IDHex()).WithField("id", id.Hex()).Info("payment detail deleted")
	return nil
}

// Summary totals the matching payments per status in one currency (INR unless ?currency is given).
func (s *PaymentService) Summary(ctx context.Context, q basemodels.ListQuery) (*dto.PaymentSummary, error) {
	currency := strings.ToUpper(q.Get("currency"))
	if currency == "" {
		currency = models.DefaultCurrency
	}
	filter := s.filter(q)
	filter["currency"] = currency
	payments, err := s.Repo.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	totals := map[string]*dto.StatusTotal{}
	sum := decimal.Zero
	for _, p := range payments {
		amount := FromDecimal128(p.Amount)
		t, ok := totals[p.Status]
		if !ok {
			t = &dto.StatusTotal{Status: p.Status, Amount: decimal.Zero}
			totals[p.Status] = t
		}
		t.Count++
		t.Amount = t.Amount.Add(amount)
		sum = sum.Add(amount)
	}

	out := &dto.PaymentSummary{Currency: currency, Total: sum, ByStatus: make([]dto.StatusTotal, 0, len(totals))}
	for _, t := range totals {
		out.ByStatus = append(out.ByStatus, *t)
	}
	sort.Slice(out.ByStatus, func(i, j int) bool { return out.ByStatus[i].Status < out.ByStatus[j].Status })
	return out, nil
}
