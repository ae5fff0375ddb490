// Package bootstrap assembles collections, services and routes for the server and the CLI.
package bootstrap

import (
	"context"
	"fmt"

	admissionmodels "edu_crm/internal/api/admission/models"
	b2bmodels "edu_crm/internal/api/b2b/models"
	blogmodels "edu_crm/internal/api/blog/models"
	companymodels "edu_crm/internal/api/company/models"
	complaintmodels "edu_crm/internal/api/complaint/models"
	enrollmentmodels "edu_crm/internal/api/enrollment/models"
	formmodels "edu_crm/internal/api/form/models"
	imagemodels "edu_crm/internal/api/image/models"
	internmodels "edu_crm/internal/api/intern/models"
	notificationmodels "edu_crm/internal/api/notification/models"
	paymentmodels "edu_crm/internal/api/payment/models"
	reportmodels "edu_crm/internal/api/report/models"
	seomodels "edu_crm/internal/api/seo/models"
	socialmediamodels "edu_crm/internal/api/socialmedia/models"
	teammodels "edu_crm/internal/api/team/models"
	"edu_crm/internal/database"
	"edu_crm/internal/global"
	"edu_crm/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
)

// Collection pairs a collection name with the model whose index tags describe it.
type Collection struct {
	Name  string
	Model interface{}
}

// InitColNames sets the collection name of every entity.
func InitColNames() {
	global.MongoDB_ColNames = global.MongoDB_CollectionNames{
		Teams:             "teams",
		Forms:             "forms",
		Enrollments:       "enrollments",
		InternAppliedData: "intern_applied_data",
		AdmissionForms:    "admission_forms",
		Complaints:        "complaints",
		PaymentDetails:    "payment_details",
		B2B:               "b2b",
		Images:            "images",
		SocialMedia:       "social_media",
		Companies:         "companies",
		Blogs:             "blogs",
		Seo:               "seo",
		Reports:           "reports",
		Notifications:     "notifications",
	}
}

// Collections lists every collection with its model. InitColNames must run first.
func Collections() []Collection {
	n := global.MongoDB_ColNames
	return []Collection{
		{n.Teams, teammodels.Team{}},
		{n.Forms, formmodels.Form{}},
		{n.Enrollments, enrollmentmodels.Enrollment{}},
		{n.InternAppliedData, internmodels.InternAppliedData{}},
		{n.AdmissionForms, admissionmodels.AdmissionForm{}},
		{n.Complaints, complaintmodels.Complaint{}},
		{n.PaymentDetails, paymentmodels.PaymentDetail{}},
		{n.B2B, b2bmodels.B2B{}},
		{n.Images, imagemodels.Image{}},
		{n.SocialMedia, socialmediamodels.SocialMedia{}},
		{n.Companies, companymodels.Company{}},
		{n.Blogs, blogmodels.Blog{}},
		{n.Seo, seomodels.Seo{}},
		{n.Reports, reportmodels.Report{}},
		{n.Notifications, notificationmodels.Notification{}},
	}
}

// RegisterCollections adds every collection of db to the global registry.
func RegisterCollections(db *mongo.Database) error {
	log := logger.WithModule("registry")
	for _, c := range Collections() {
		isNew, err := global.RegistryCollections.Register(c.Name, db.Collection(c.Name))
		if err != nil {
			return fmt.Errorf("register collection %s: %w", c.Name, err)
		}
		if !isNew {
			log.WithField("collection", c.Name).Warn("collection already registered")
		}
	}
	log.WithField("count", len(Collections())).Info("collections registered")
	return nil
}

// EnsureSchema creates missing collections and the indexes declared on each model.
func EnsureSchema(ctx context.Context, db *mongo.Database) error {
	cols := Collections()
	names := make([]string, 0, len(cols))
	for _, c := range cols {
		names = append(names, c.Name)
	}
	if err := database.EnsureCollections(ctx, db, names); err != nil {
		return err
	}
	for _, c := range cols {
		if err := database.CreateIndexes(ctx, db.Collection(c.Name), c.Model); err != nil {
			return fmt.Errorf("indexes for %s: %w", c.Name, err)
		}
	}
	logger.WithModule("database").WithField("collections", len(cols)).Info("schema ensured")
	return nil
}
