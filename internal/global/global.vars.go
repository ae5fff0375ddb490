package global

import (
	"edu_crm/config"
	"edu_crm/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionNames holds the collection name of every entity.
type MongoDB_CollectionNames struct {
	Teams             string
	Forms             string
	Enrollments       string
	InternAppliedData string
	AdmissionForms    string
	Complaints        string
	PaymentDetails    string
	B2B               string
	Images            string
	SocialMedia       string
	Companies         string
	Blogs             string
	Seo               string
	Reports           string
	Notifications     string
}

var Validate *validator.Validate
var MongoDB_Session *mongo.Client
var MongoDB_ServerConfig *config.Configuration
var MongoDB_ColNames MongoDB_CollectionNames

var RegistryCollections = registry.NewRegistry[*mongo.Collection]()
