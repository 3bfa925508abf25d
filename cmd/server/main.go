package main

import (
	"context"
	"fmt"
	"log"

	"designdesk/internal/config"
	"designdesk/internal/einvoice"
	"designdesk/internal/einvoice/nic"
	"designdesk/internal/email/noop"
	"designdesk/internal/email/ses"
	"designdesk/internal/gst"
	"designdesk/internal/handler"
	"designdesk/internal/port"
	"designdesk/internal/repository/postgres"
	"designdesk/internal/router"
	"designdesk/internal/service"
	s3storage "designdesk/internal/storage/s3"
)

// @title           DesignDesk API
// @version         1.0
// @description     Business management API for an interior design firm with GST compliant invoicing.
// @BasePath        /api/v1
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

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	leadRepo := postgres.NewLeadRepo(db)
	clientRepo := postgres.NewClientRepo(db)
	projectRepo := postgres.NewProjectRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	auditRepo := postgres.NewIRNAuditRepo(db)
	hsnRepo := postgres.NewHSNRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// GST core
	states := gst.NewStateRegistry()
	validator := gst.NewValidator(states)
	calculator := gst.NewCalculator(states)

	// The HSN master is optional; rate checks are skipped until it is seeded.
	var hsnLookup *gst.HSNLookup
	if entries, err := hsnRepo.ListAll(context.Background()); err != nil {
		log.Printf("HSN master unavailable, skipping rate checks: %v", err)
	} else if len(entries) > 0 {
		hsnLookup = gst.NewHSNLookup(entries)
		log.Printf("Loaded %d HSN master entries", len(entries))
	}

	// Email
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	seller := cfg.Company.Profile()

	// E-invoice lifecycle
	builder := einvoice.NewBuilder(validator)
	authority := nic.NewClient(&cfg.EInvoice)
	controller := einvoice.NewController(invoiceRepo, clientRepo, auditRepo, authority,
		builder, seller, cfg.EInvoice.CancelWindow(), cfg.EInvoice.Timeout())
	if cfg.EInvoice.ArchiveEnabled {
		storage, err := s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		controller.SetArchive(storage, cfg.S3.Bucket)
	}

	// Services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	leadSvc := service.NewLeadService(leadRepo)
	clientSvc := service.NewClientService(clientRepo, validator)
	projectSvc := service.NewProjectService(projectRepo, clientRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, clientRepo, calculator, validator, hsnLookup, emailSender, seller)
	statsSvc := service.NewStatsService(statsRepo)
	reportSvc := service.NewReportService(invoiceRepo, clientRepo)

	// Router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, router.Handlers{
		Auth:     handler.NewAuthHandler(authSvc),
		User:     handler.NewUserHandler(userSvc),
		Lead:     handler.NewLeadHandler(leadSvc),
		Client:   handler.NewClientHandler(clientSvc),
		Project:  handler.NewProjectHandler(projectSvc),
		Invoice:  handler.NewInvoiceHandler(invoiceSvc),
		EInvoice: handler.NewEInvoiceHandler(controller, auditRepo),
		GST:      handler.NewGSTHandler(calculator, validator),
		Stats:    handler.NewStatsHandler(statsSvc),
		Report:   handler.NewReportHandler(reportSvc),
		Health:   handler.NewHealthHandler(db),
	})

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
