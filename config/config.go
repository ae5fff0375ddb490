package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration holds the static settings needed to run the service.
type Configuration struct {
	Address     string `env:"ADDRESS" envDefault:":8080"`      // listen address
	Environment string `env:"GO_ENV" envDefault:"development"` // development | staging | production
	JwtSecret   string `env:"JWT_SECRET,required"`             // HS256 signing secret
	JwtTTLHours int    `env:"JWT_TTL_HOURS" envDefault:"24"`   // token lifetime
	BodyLimitMB int    `env:"BODY_LIMIT_MB" envDefault:"20"`   // max request body
	UploadMaxMB int    `env:"UPLOAD_MAX_MB" envDefault:"10"`   // max single attachment
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"edu_crm"`
	MongoDB_MaxPoolSize   uint64 `env:"MONGODB_MAX_POOL_SIZE" envDefault:"50"`
	MongoDB_TimeoutSec    int    `env:"MONGODB_TIMEOUT_SECONDS" envDefault:"10"`

	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"` // comma separated, * = all
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"` // 0 disables the limiter
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`

	// Object storage (S3 compatible)
	StorageEndpoint      string `env:"STORAGE_ENDPOINT"`
	StorageAccessKey     string `env:"STORAGE_ACCESS_KEY"`
	StorageSecretKey     string `env:"STORAGE_SECRET_KEY"`
	StorageBucket        string `env:"STORAGE_BUCKET" envDefault:"edu-crm"`
	StorageRegion        string `env:"STORAGE_REGION"`
	StorageUseSSL        bool   `env:"STORAGE_USE_SSL" envDefault:"true"`
	StoragePublicBaseURL string `env:"STORAGE_PUBLIC_BASE_URL"` // e.g. a CDN in front of the bucket

	// Mail
	MailProvider       string `env:"MAIL_PROVIDER" envDefault:"smtp"` // resend | smtp
	MailFrom           string `env:"MAIL_FROM" envDefault:"no-reply@example.com"`
	MailFromName       string `env:"MAIL_FROM_NAME" envDefault:"Admissions Desk"`
	MailAdminInbox     string `env:"MAIL_ADMIN_INBOX"`
	ResendAPIKey       string `env:"RESEND_API_KEY"`
	SMTPHost           string `env:"SMTP_HOST"`
	SMTPPort           int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername       string `env:"SMTP_USERNAME"`
	SMTPPassword       string `env:"SMTP_PASSWORD"`
	SMTPFallbackHost   string `env:"SMTP_FALLBACK_HOST"`
	SMTPFallbackPort   int    `env:"SMTP_FALLBACK_PORT" envDefault:"587"`
	SMTPFallbackUser   string `env:"SMTP_FALLBACK_USERNAME"`
	SMTPFallbackPasswd string `env:"SMTP_FALLBACK_PASSWORD"`

	// Firebase Cloud Messaging
	FirebaseProjectID       string `env:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsPath string `env:"FIREBASE_CREDENTIALS_PATH"`

	// Seeded administrator
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	AdminName     string `env:"ADMIN_NAME" envDefault:"Administrator"`

	// Scheduled jobs
	CronEnabled               bool   `env:"CRON_ENABLED" envDefault:"true"`
	CronFollowUpSpec          string `env:"CRON_FOLLOWUP_SPEC" envDefault:"0 9 * * *"`
	CronCleanupSpec           string `env:"CRON_CLEANUP_SPEC" envDefault:"0 3 * * 0"`
	NotificationRetentionDays int    `env:"NOTIFICATION_RETENTION_DAYS" envDefault:"90"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	// TLS
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"`
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`
}

// IsProduction reports whether the service runs with GO_ENV=production.
func (c *Configuration) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// CORSOrigins splits CORS_ORIGINS into a trimmed list.
func (c *Configuration) CORSOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORS_Origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// getEnvPath returns config/env/<GO_ENV>.env, searching upward from the working directory.
func getEnvPath() string {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// logger is not initialised yet
		fmt.Printf("cannot read working directory: %v\n", err)
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig loads the env file (when present) and parses the process environment.
// Returns nil when a required variable is missing.
func NewConfig(files ...string) *Configuration {
	if len(files) == 0 {
		if envPath := getEnvPath(); envPath != "" {
			files = append(files, envPath)
		}
	}

	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			fmt.Printf("cannot load env file %s: %v\n", f, err)
			return nil
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("config parse error: %+v\n", err)
		return nil
	}

	return &cfg
}
