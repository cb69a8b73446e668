package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	Email  EmailConfig
	Pdc    PdcConfig
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

// S3Config holds AWS S3 settings for attachment storage.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
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
	FrontendURL string `mapstructure:"frontend_url"`
}

// PdcConfig holds post-dated cheque reminder settings.
type PdcConfig struct {
	DueSoonDays int `mapstructure:"due_soon_days"`
}

// Load reads configuration from environment variables with the AQARI_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("AQARI")
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
	v.SetDefault("db.user", "aqari")
	v.SetDefault("db.password", "aqari_secret")
	v.SetDefault("db.name", "aqari_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "aqari")

	// S3 defaults
	v.SetDefault("s3.region", "me-central-1")
	v.SetDefault("s3.bucket", "aqari-attachments")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 25)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "me-central-1")
	v.SetDefault("email.from_address", "noreply@aqari.ae")
	v.SetDefault("email.from_name", "Aqari")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// PDC defaults
	v.SetDefault("pdc.due_soon_days", 7)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":           "AQARI_SERVER_PORT",
		"server.read_timeout":   "AQARI_SERVER_READ_TIMEOUT",
		"server.write_timeout":  "AQARI_SERVER_WRITE_TIMEOUT",
		"server.environment":    "AQARI_SERVER_ENVIRONMENT",
		"db.host":               "AQARI_DB_HOST",
		"db.port":               "AQARI_DB_PORT",
		"db.user":               "AQARI_DB_USER",
		"db.password":           "AQARI_DB_PASSWORD",
		"db.name":               "AQARI_DB_NAME",
		"db.sslmode":            "AQARI_DB_SSLMODE",
		"db.max_open":           "AQARI_DB_MAX_OPEN",
		"db.max_idle":           "AQARI_DB_MAX_IDLE",
		"jwt.secret":            "AQARI_JWT_SECRET",
		"jwt.access_expiry":     "AQARI_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":    "AQARI_JWT_REFRESH_EXPIRY",
		"jwt.issuer":            "AQARI_JWT_ISSUER",
		"s3.region":             "AQARI_S3_REGION",
		"s3.bucket":             "AQARI_S3_BUCKET",
		"s3.endpoint":           "AQARI_S3_ENDPOINT",
		"s3.access_key":         "AQARI_S3_ACCESS_KEY",
		"s3.secret_key":         "AQARI_S3_SECRET_KEY",
		"s3.max_file_size_mb":   "AQARI_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":     "AQARI_S3_PRESIGN_EXPIRY",
		"log.level":             "AQARI_LOG_LEVEL",
		"log.format":            "AQARI_LOG_FORMAT",
		"cors.allowed_origins":  "AQARI_CORS_ALLOWED_ORIGINS",
		"email.provider":        "AQARI_EMAIL_PROVIDER",
		"email.region":          "AQARI_EMAIL_REGION",
		"email.from_address":    "AQARI_EMAIL_FROM_ADDRESS",
		"email.from_name":       "AQARI_EMAIL_FROM_NAME",
		"email.frontend_url":    "AQARI_EMAIL_FRONTEND_URL",
		"pdc.due_soon_days":     "AQARI_PDC_DUE_SOON_DAYS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if AQARI_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("AQARI_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}
	cfg.Pdc = PdcConfig{
		DueSoonDays: v.GetInt("pdc.due_soon_days"),
	}

	return cfg, nil
}
