package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"aqari/internal/domain"
	"aqari/internal/handler"
	"aqari/internal/middleware"
	"aqari/internal/service"
)

// Handlers collects every HTTP handler wired into the engine.
type Handlers struct {
	Auth         *handler.AuthHandler
	Health       *handler.HealthHandler
	Tenant       *handler.TenantHandler
	User         *handler.UserHandler
	Property     *handler.PropertyHandler
	Pdc          *handler.PdcHandler
	Compliance   *handler.ComplianceHandler
	Inspection   *handler.InspectionHandler
	Violation    *handler.ViolationHandler
	Checkout     *handler.CheckoutHandler
	Vendor       *handler.VendorHandler
	Asset        *handler.AssetHandler
	Announcement *handler.AnnouncementHandler
	Settings     *handler.SettingsHandler
	Attachment   *handler.AttachmentHandler
	Report       *handler.ReportHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))
	protected.Use(middleware.TenantGuard())

	protected.GET("/auth/me", h.Auth.Me)

	// Properties, with nested listings for records tied to a property
	properties := protected.Group("/properties")
	properties.POST("", h.Property.Create)
	properties.GET("", h.Property.List)
	properties.GET("/:id", h.Property.GetByID)
	properties.PUT("/:id", h.Property.Update)
	properties.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Property.Delete)
	properties.GET("/:id/compliance", h.Compliance.ListForProperty)
	properties.GET("/:id/inspections", h.Inspection.ListByProperty)
	properties.GET("/:id/violations", h.Violation.ListByProperty)
	properties.GET("/:id/assets", h.Asset.ListByProperty)

	// Post-dated cheque register
	cheques := protected.Group("/cheques")
	cheques.POST("", h.Pdc.Create)
	cheques.GET("", h.Pdc.List)
	cheques.POST("/reminders", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), h.Pdc.SendReminders)
	cheques.GET("/:id", h.Pdc.GetByID)
	cheques.PUT("/:id", h.Pdc.Update)
	cheques.POST("/:id/transition", h.Pdc.Transition)
	cheques.GET("/:id/next-statuses", h.Pdc.NextStatuses)
	cheques.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Pdc.Delete)

	// Compliance requirements
	compliance := protected.Group("/compliance")
	compliance.POST("", h.Compliance.Create)
	compliance.GET("", h.Compliance.List)
	compliance.GET("/:id", h.Compliance.GetByID)
	compliance.PUT("/:id", h.Compliance.Update)
	compliance.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Compliance.Delete)

	// Inspections
	inspections := protected.Group("/inspections")
	inspections.POST("", h.Inspection.Create)
	inspections.GET("", h.Inspection.List)
	inspections.GET("/:id", h.Inspection.GetByID)
	inspections.PUT("/:id", h.Inspection.Update)
	inspections.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Inspection.Delete)

	// Violations
	violations := protected.Group("/violations")
	violations.POST("", h.Violation.Create)
	violations.GET("", h.Violation.List)
	violations.GET("/:id", h.Violation.GetByID)
	violations.PUT("/:id", h.Violation.Update)
	violations.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Violation.Delete)

	// Checkout cases
	checkouts := protected.Group("/checkouts")
	checkouts.POST("", h.Checkout.Create)
	checkouts.GET("", h.Checkout.List)
	checkouts.GET("/:id", h.Checkout.GetByID)
	checkouts.PUT("/:id", h.Checkout.Update)
	checkouts.POST("/:id/refund", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), h.Checkout.IssueRefund)
	checkouts.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Checkout.Delete)

	// Vendor directory
	vendors := protected.Group("/vendors")
	vendors.POST("", h.Vendor.Create)
	vendors.GET("", h.Vendor.List)
	vendors.GET("/:id", h.Vendor.GetByID)
	vendors.PUT("/:id", h.Vendor.Update)
	vendors.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Vendor.Delete)

	// Asset registry
	assets := protected.Group("/assets")
	assets.POST("", h.Asset.Create)
	assets.GET("", h.Asset.List)
	assets.GET("/:id", h.Asset.GetByID)
	assets.PUT("/:id", h.Asset.Update)
	assets.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Asset.Delete)

	// Announcements
	announcements := protected.Group("/announcements")
	announcements.POST("", h.Announcement.Create)
	announcements.GET("", h.Announcement.List)
	announcements.GET("/:id", h.Announcement.GetByID)
	announcements.PUT("/:id", h.Announcement.Update)
	announcements.POST("/:id/publish", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), h.Announcement.Publish)
	announcements.POST("/:id/archive", h.Announcement.Archive)
	announcements.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Announcement.Delete)

	// Tenant settings
	settings := protected.Group("/settings")
	settings.GET("/company", h.Settings.GetCompanyProfile)
	settings.PUT("/company", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), h.Settings.SaveCompanyProfile)
	settings.POST("/bank-accounts", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), h.Settings.CreateBankAccount)
	settings.GET("/bank-accounts", h.Settings.ListBankAccounts)
	settings.GET("/bank-accounts/:id", h.Settings.GetBankAccount)
	settings.PUT("/bank-accounts/:id", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), h.Settings.UpdateBankAccount)
	settings.POST("/bank-accounts/:id/default", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), h.Settings.SetDefaultBankAccount)
	settings.DELETE("/bank-accounts/:id", middleware.RequireRole(domain.RoleAdmin), h.Settings.DeleteBankAccount)

	// Attachments
	attachments := protected.Group("/attachments")
	attachments.POST("", h.Attachment.Upload)
	attachments.GET("", h.Attachment.ListByOwner)
	attachments.GET("/:id", h.Attachment.GetByID)
	attachments.GET("/:id/download", h.Attachment.Download)
	attachments.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Attachment.Delete)

	// Reports and exports
	reports := protected.Group("/reports")
	reports.GET("/kpis", h.Report.Kpis)
	reports.GET("/pdc-aging", h.Report.PdcAging)
	reports.GET("/compliance", h.Report.ComplianceOverview)
	reports.GET("/violations", h.Report.ViolationSummary)
	reports.GET("/cheques.csv", h.Report.ExportChequesCSV)
	reports.GET("/compliance.csv", h.Report.ExportComplianceCSV)
	reports.GET("/violations.csv", h.Report.ExportViolationsCSV)
	reports.GET("/cheques.xlsx", h.Report.ExportChequesXLSX)
	reports.GET("/portfolio.xlsx", h.Report.ExportPortfolioXLSX)

	// User management (tenant-scoped)
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), h.User.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), h.User.List)
	users.GET("/:id", h.User.GetByID)
	users.PUT("/:id", h.User.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Delete)

	// Admin routes - tenant management
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.POST("/tenants", h.Tenant.Create)
	admin.GET("/tenants", h.Tenant.List)
	admin.GET("/tenants/:id", h.Tenant.GetByID)
	admin.PUT("/tenants/:id", h.Tenant.Update)
	admin.DELETE("/tenants/:id", h.Tenant.Delete)

	return r
}
