package bootstrap

import (
	"context"
	"fmt"

	"edu_crm/config"
	admissionrouter "edu_crm/internal/api/admission/router"
	admissionsvc "edu_crm/internal/api/admission/service"
	authrouter "edu_crm/internal/api/auth/router"
	authsvc "edu_crm/internal/api/auth/service"
	b2brouter "edu_crm/internal/api/b2b/router"
	b2bsvc "edu_crm/internal/api/b2b/service"
	blogrouter "edu_crm/internal/api/blog/router"
	blogsvc "edu_crm/internal/api/blog/service"
	companyrouter "edu_crm/internal/api/company/router"
	companysvc "edu_crm/internal/api/company/service"
	complaintrouter "edu_crm/internal/api/complaint/router"
	complaintsvc "edu_crm/internal/api/complaint/service"
	enrollmentrouter "edu_crm/internal/api/enrollment/router"
	enrollmentsvc "edu_crm/internal/api/enrollment/service"
	formrouter "edu_crm/internal/api/form/router"
	formsvc "edu_crm/internal/api/form/service"
	imagerouter "edu_crm/internal/api/image/router"
	imagesvc "edu_crm/internal/api/image/service"
	internrouter "edu_crm/internal/api/intern/router"
	internsvc "edu_crm/internal/api/intern/service"
	mailrouter "edu_crm/internal/api/mail/router"
	mailsvc "edu_crm/internal/api/mail/service"
	"edu_crm/internal/api/middleware"
	notificationrouter "edu_crm/internal/api/notification/router"
	notificationsvc "edu_crm/internal/api/notification/service"
	paymentrouter "edu_crm/internal/api/payment/router"
	paymentsvc "edu_crm/internal/api/payment/service"
	reportrouter "edu_crm/internal/api/report/router"
	reportsvc "edu_crm/internal/api/report/service"
	apirouter "edu_crm/internal/api/router"
	seorouter "edu_crm/internal/api/seo/router"
	seosvc "edu_crm/internal/api/seo/service"
	socialmediarouter "edu_crm/internal/api/socialmedia/router"
	socialmediasvc "edu_crm/internal/api/socialmedia/service"
	teamrouter "edu_crm/internal/api/team/router"
	teamsvc "edu_crm/internal/api/team/service"
	"edu_crm/internal/auth"
	"edu_crm/internal/logger"
	"edu_crm/internal/mail"
	"edu_crm/internal/notification"
	"edu_crm/internal/storage"
	"edu_crm/internal/utility"
	"edu_crm/internal/worker"
)

// Services is the wired service graph. Collections must be registered before NewServices.
type Services struct {
	Tokens      *auth.TokenManager
	Attachments *storage.Attachments
	Mailer      *mail.Service

	Team         *teamsvc.TeamService
	Auth         *authsvc.AuthService
	Notification *notificationsvc.NotificationService
	Form         *formsvc.FormService
	Enrollment   *enrollmentsvc.EnrollmentService
	Intern       *internsvc.InternService
	Admission    *admissionsvc.AdmissionService
	Complaint    *complaintsvc.ComplaintService
	Payment      *paymentsvc.PaymentService
	B2B          *b2bsvc.B2BService
	Image        *imagesvc.ImageService
	SocialMedia  *socialmediasvc.SocialMediaService
	Company      *companysvc.CompanyService
	Blog         *blogsvc.BlogService
	Seo          *seosvc.SeoService
	Report       *reportsvc.ReportService
	Mail         *mailsvc.MailService
}

// NewServices connects the external collaborators named by cfg and builds every service.
func NewServices(ctx context.Context, cfg *config.Configuration) (*Services, error) {
	store, err := newObjectStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewServicesWith(cfg, store, newMailer(cfg), newPusher(ctx, cfg))
}

// NewServicesWith builds every service on explicit collaborators.
func NewServicesWith(cfg *config.Configuration, store storage.ObjectStore, mailer *mail.Service, pusher notification.Pusher) (*Services, error) {
	s := &Services{
		Tokens:      auth.NewTokenManager(cfg.JwtSecret, cfg.JwtTTLHours),
		Attachments: storage.NewAttachments(store, cfg.UploadMaxMB),
		Mailer:      mailer,
	}

	var err error
	if s.Team, err = teamsvc.NewTeamService(s.Attachments); err != nil {
		return nil, err
	}
	s.Auth = authsvc.NewAuthService(s.Team, s.Tokens)
	if s.Notification, err = notificationsvc.NewNotificationService(s.Team, pusher); err != nil {
		return nil, err
	}

	if s.Form, err = formsvc.NewFormService(s.Team, s.Notification, mailer, s.Attachments); err != nil {
		return nil, err
	}
	if s.Enrollment, err = enrollmentsvc.NewEnrollmentService(s.Team, s.Notification, mailer); err != nil {
		return nil, err
	}
	if s.Intern, err = internsvc.NewInternService(s.Team, s.Notification, mailer, s.Attachments); err != nil {
		return nil, err
	}
	s.Form.LinkBase = cfg.FrontendURL
	s.Enrollment.LinkBase = cfg.FrontendURL
	s.Intern.LinkBase = cfg.FrontendURL
	s.Team.AddSources(s.Form, s.Enrollment, s.Intern)

	if s.Admission, err = admissionsvc.NewAdmissionService(s.Attachments); err != nil {
		return nil, err
	}
	if s.Complaint, err = complaintsvc.NewComplaintService(s.Attachments); err != nil {
		return nil, err
	}
	if s.Payment, err = paymentsvc.NewPaymentService(s.Attachments); err != nil {
		return nil, err
	}
	if s.B2B, err = b2bsvc.NewB2BService(); err != nil {
		return nil, err
	}
	if s.Image, err = imagesvc.NewImageService(s.Attachments); err != nil {
		return nil, err
	}
	if s.SocialMedia, err = socialmediasvc.NewSocialMediaService(); err != nil {
		return nil, err
	}
	if s.Company, err = companysvc.NewCompanyService(s.Attachments); err != nil {
		return nil, err
	}
	if s.Blog, err = blogsvc.NewBlogService(s.Attachments); err != nil {
		return nil, err
	}
	if s.Seo, err = seosvc.NewSeoService(s.Attachments); err != nil {
		return nil, err
	}
	if s.Report, err = reportsvc.NewReportService(s.Attachments); err != nil {
		return nil, err
	}
	s.Mail = mailsvc.NewMailService(mailer)
	return s, nil
}

// AuthMiddleware returns the route guards backed by the token manager and the team directory.
func (s *Services) AuthMiddleware() *middleware.Auth {
	return middleware.NewAuth(s.Tokens, s.Team)
}

// Routes returns the registration of every domain router.
func (s *Services) Routes() []apirouter.RegisterFunc {
	return []apirouter.RegisterFunc{
		authrouter.Register(s.Auth),
		teamrouter.Register(s.Team),
		notificationrouter.Register(s.Notification),
		formrouter.Register(s.Form),
		enrollmentrouter.Register(s.Enrollment),
		internrouter.Register(s.Intern),
		admissionrouter.Register(s.Admission),
		complaintrouter.Register(s.Complaint),
		paymentrouter.Register(s.Payment),
		b2brouter.Register(s.B2B),
		imagerouter.Register(s.Image),
		socialmediarouter.Register(s.SocialMedia),
		companyrouter.Register(s.Company),
		blogrouter.Register(s.Blog),
		seorouter.Register(s.Seo),
		reportrouter.Register(s.Report),
		mailrouter.Register(s.Mail),
	}
}

// Jobs returns the scheduled jobs configured by cfg.
func (s *Services) Jobs(cfg *config.Configuration) []worker.Job {
	return []worker.Job{
		worker.FollowUpJob(cfg.CronFollowUpSpec, nil, s.Form, s.Enrollment),
		worker.NotificationCleanupJob(cfg.CronCleanupSpec, s.Notification, cfg.NotificationRetentionDays),
	}
}

// Wait blocks until background pushes and emails have finished.
func (s *Services) Wait() {
	s.Notification.Wait()
	s.Form.Wait()
	s.Enrollment.Wait()
	s.Intern.Wait()
}

func newObjectStore(ctx context.Context, cfg *config.Configuration) (storage.ObjectStore, error) {
	if cfg.StorageEndpoint == "" && !cfg.IsProduction() {
		logger.WithModule("storage").Warn("STORAGE_ENDPOINT not set, uploads are kept in memory")
		return storage.NewMemoryStore(), nil
	}
	store, err := storage.NewMinioStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("object storage: %w", err)
	}
	return store, nil
}

// newMailer returns the configured mail service. Without providers every send fails and is logged.
func newMailer(cfg *config.Configuration) *mail.Service {
	mailer, err := mail.NewService(cfg)
	if err != nil {
		logger.WithModule("mail").WithError(err).Warn("mail disabled")
		return mail.NewServiceWith(cfg.MailProvider, cfg.MailAdminInbox)
	}
	return mailer
}

// newPusher returns an FCM pusher, or a no-op pusher when Firebase is not configured.
func newPusher(ctx context.Context, cfg *config.Configuration) notification.Pusher {
	log := logger.WithModule("firebase")
	if cfg.FirebaseCredentialsPath == "" {
		log.Warn("Firebase is not configured, push notifications are disabled")
		return notification.NopPusher{}
	}
	client, err := utility.InitFirebaseMessaging(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath)
	if err != nil {
		log.WithError(err).Error("Failed to initialize Firebase, push notifications are disabled")
		return notification.NopPusher{}
	}
	log.Info("Firebase messaging initialized")
	return notification.NewFCMPusher(client)
}
