package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"designdesk/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	JWT      JWTConfig
	S3       S3Config
	Log      LogConfig
	CORS     CORSConfig
	Email    EmailConfig
	EInvoice EInvoiceConfig
	Company  CompanyConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for the e-invoice archive.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	PortalURL   string `mapstructure:"portal_url"`
}

// EInvoiceConfig holds e-invoicing authority (IRP) settings.
type EInvoiceConfig struct {
	BaseURL         string `mapstructure:"base_url"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	TimeoutSecs     int    `mapstructure:"timeout_secs"`
	CancelWindowHrs int    `mapstructure:"cancel_window_hrs"`
	ArchiveEnabled  bool   `mapstructure:"archive_enabled"`
	SandboxMode     bool   `mapstructure:"sandbox_mode"`
}

// CancelWindow returns the cancellation window as a duration.
func (e *EInvoiceConfig) CancelWindow() time.Duration {
	return time.Duration(e.CancelWindowHrs) * time.Hour
}

// Timeout returns the authority call timeout as a duration.
func (e *EInvoiceConfig) Timeout() time.Duration {
	return time.Duration(e.TimeoutSecs) * time.Second
}

// CompanyConfig holds the firm's own GST registration identity.
type CompanyConfig struct {
	LegalName string `mapstructure:"legal_name"`
	TradeName string `mapstructure:"trade_name"`
	GSTIN     string `mapstructure:"gstin"`
	Address1  string `mapstructure:"address1"`
	Address2  string `mapstructure:"address2"`
	City      string `mapstructure:"city"`
	StateCode string `mapstructure:"state_code"`
	PinCode   string `mapstructure:"pin_code"`
}

// Profile converts the config section into the domain seller profile.
func (c *CompanyConfig) Profile() *domain.CompanyProfile {
	return &domain.CompanyProfile{
		LegalName: c.LegalName,
		TradeName: c.TradeName,
		GSTIN:     c.GSTIN,
		Address1:  c.Address1,
		Address2:  c.Address2,
		City:      c.City,
		StateCode: c.StateCode,
		PinCode:   c.PinCode,
	}
}

// Load reads configuration from environment variables with the DESIGNDESK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DESIGNDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "designdesk")
	v.SetDefault("db.password", "designdesk_secret")
	v.SetDefault("db.name", "designdesk_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "designdesk")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "designdesk-einvoices")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "billing@designdesk.local")
	v.SetDefault("email.from_name", "DesignDesk Billing")
	v.SetDefault("email.portal_url", "http://localhost:3000")

	// E-invoice defaults (NIC sandbox)
	v.SetDefault("einvoice.base_url", "https://einv-apisandbox.nic.in")
	v.SetDefault("einvoice.timeout_secs", 30)
	v.SetDefault("einvoice.cancel_window_hrs", 24)
	v.SetDefault("einvoice.archive_enabled", false)
	v.SetDefault("einvoice.sandbox_mode", true)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// CORS origins arrive as a comma-separated string from the environment.
	if len(cfg.CORS.AllowedOrigins) == 1 && strings.Contains(cfg.CORS.AllowedOrigins[0], ",") {
		cfg.CORS.AllowedOrigins = strings.Split(cfg.CORS.AllowedOrigins[0], ",")
	}

	if cfg.Company.GSTIN == "" && cfg.Server.Environment == "production" {
		return nil, fmt.Errorf("company.gstin is required in production")
	}

	return &cfg, nil
}
