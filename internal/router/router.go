package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "designdesk/docs"
	"designdesk/internal/domain"
	"designdesk/internal/handler"
	"designdesk/internal/middleware"
	"designdesk/internal/service"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Lead     *handler.LeadHandler
	Client   *handler.ClientHandler
	Project  *handler.ProjectHandler
	Invoice  *handler.InvoiceHandler
	EInvoice *handler.EInvoiceHandler
	GST      *handler.GSTHandler
	Stats    *handler.StatsHandler
	Report   *handler.ReportHandler
	Health   *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, corsOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health check and API docs
	r.GET("/health", h.Health.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Protected routes require a valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// User administration
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), h.User.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), h.User.List)
	users.GET("/:id", h.User.Get)
	users.PATCH("/:id/active", middleware.RequireRole(domain.RoleAdmin), h.User.SetActive)
	users.PATCH("/:id/role", middleware.RequireRole(domain.RoleAdmin), h.User.SetRole)

	// Lead pipeline
	leads := protected.Group("/leads")
	leads.POST("", h.Lead.Capture)
	leads.GET("", h.Lead.List)
	leads.GET("/:id", h.Lead.Get)
	leads.PUT("/:id", h.Lead.Update)
	leads.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Lead.Delete)

	// Clients
	clients := protected.Group("/clients")
	clients.POST("", h.Client.Create)
	clients.GET("", h.Client.List)
	clients.GET("/:id", h.Client.Get)
	clients.PUT("/:id", h.Client.Update)
	clients.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Client.Delete)

	// Projects
	projects := protected.Group("/projects")
	projects.POST("", h.Project.Create)
	projects.GET("", h.Project.List)
	projects.GET("/:id", h.Project.Get)
	projects.PUT("/:id", h.Project.Update)
	projects.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Project.Delete)

	// Invoices. Billing actions are limited to admin and accounts.
	billing := middleware.RequireRole(domain.RoleAdmin, domain.RoleAccounts)
	invoices := protected.Group("/invoices")
	invoices.POST("", billing, h.Invoice.Create)
	invoices.GET("", h.Invoice.List)
	invoices.GET("/:id", h.Invoice.Get)
	invoices.PUT("/:id/items", billing, h.Invoice.UpdateItems)
	invoices.POST("/:id/issue", billing, h.Invoice.Issue)
	invoices.POST("/:id/mark-paid", billing, h.Invoice.MarkPaid)
	invoices.POST("/:id/send", billing, h.Invoice.Send)

	// IRN lifecycle
	invoices.POST("/:id/einvoice/generate", billing, h.EInvoice.Generate)
	invoices.POST("/:id/einvoice/cancel", billing, h.EInvoice.Cancel)
	invoices.GET("/:id/einvoice/audit", h.EInvoice.Audit)

	// GST utilities
	gst := protected.Group("/gst")
	gst.POST("/calculate", h.GST.Calculate)
	gst.POST("/reverse", h.GST.Reverse)
	gst.GET("/validate/:kind", h.GST.Validate)

	// Reports
	reports := protected.Group("/reports")
	reports.GET("/invoice-register", billing, h.Report.InvoiceRegister)

	// Dashboard
	stats := protected.Group("/stats")
	stats.GET("/dashboard", h.Stats.Dashboard)

	return r
}
