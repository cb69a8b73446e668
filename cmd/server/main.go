package main

import (
	"fmt"
	"log"

	_ "aqari/docs"
	"aqari/internal/config"
	"aqari/internal/email/noop"
	"aqari/internal/email/ses"
	"aqari/internal/handler"
	"aqari/internal/port"
	"aqari/internal/repository/postgres"
	"aqari/internal/router"
	"aqari/internal/service"
	s3storage "aqari/internal/storage/s3"
)

// @title Aqari Property Management API
// @version 1.0
// @description Multi-tenant property operations backend: cheque register, compliance, inspections, checkouts, and tenant settings.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	tenantRepo := postgres.NewTenantRepo(db)
	userRepo := postgres.NewUserRepo(db)
	propertyRepo := postgres.NewPropertyRepo(db)
	pdcRepo := postgres.NewPdcRepo(db)
	complianceRepo := postgres.NewComplianceRepo(db)
	inspectionRepo := postgres.NewInspectionRepo(db)
	violationRepo := postgres.NewViolationRepo(db)
	checkoutRepo := postgres.NewCheckoutRepo(db)
	vendorRepo := postgres.NewVendorRepo(db)
	assetRepo := postgres.NewAssetRepo(db)
	announcementRepo := postgres.NewAnnouncementRepo(db)
	profileRepo := postgres.NewCompanyProfileRepo(db)
	bankAccountRepo := postgres.NewBankAccountRepo(db)
	attachmentRepo := postgres.NewAttachmentRepo(db)
	reportRepo := postgres.NewReportRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email delivery
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, tenantRepo, cfg.JWT)
	tenantSvc := service.NewTenantService(tenantRepo)
	userSvc := service.NewUserService(userRepo)
	propertySvc := service.NewPropertyService(propertyRepo)
	pdcSvc := service.NewPdcService(pdcRepo, userRepo, emailSender, cfg.Pdc.DueSoonDays)
	complianceSvc := service.NewComplianceService(complianceRepo)
	inspectionSvc := service.NewInspectionService(inspectionRepo)
	violationSvc := service.NewViolationService(violationRepo)
	checkoutSvc := service.NewCheckoutService(checkoutRepo)
	vendorSvc := service.NewVendorService(vendorRepo)
	assetSvc := service.NewAssetService(assetRepo)
	announcementSvc := service.NewAnnouncementService(announcementRepo, userRepo, emailSender)
	settingsSvc := service.NewSettingsService(profileRepo, bankAccountRepo)
	attachmentSvc := service.NewAttachmentService(attachmentRepo, s3Client, &cfg.S3)
	reportSvc := service.NewReportService(reportRepo, pdcRepo, cfg.Pdc.DueSoonDays)

	// Setup router
	r := router.Setup(authSvc, router.Handlers{
		Auth:         handler.NewAuthHandler(authSvc),
		Health:       handler.NewHealthHandler(db),
		Tenant:       handler.NewTenantHandler(tenantSvc),
		User:         handler.NewUserHandler(userSvc),
		Property:     handler.NewPropertyHandler(propertySvc),
		Pdc:          handler.NewPdcHandler(pdcSvc),
		Compliance:   handler.NewComplianceHandler(complianceSvc),
		Inspection:   handler.NewInspectionHandler(inspectionSvc),
		Violation:    handler.NewViolationHandler(violationSvc),
		Checkout:     handler.NewCheckoutHandler(checkoutSvc),
		Vendor:       handler.NewVendorHandler(vendorSvc),
		Asset:        handler.NewAssetHandler(assetSvc),
		Announcement: handler.NewAnnouncementHandler(announcementSvc),
		Settings:     handler.NewSettingsHandler(settingsSvc),
		Attachment:   handler.NewAttachmentHandler(attachmentSvc),
		Report:       handler.NewReportHandler(reportSvc),
	})

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
