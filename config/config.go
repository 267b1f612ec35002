package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// CredentialSource says where the Google service-account key comes from.
type CredentialSource string

const (
	CredentialSourceInline CredentialSource = "inline"
	CredentialSourceBase64 CredentialSource = "base64"
	CredentialSourceFile   CredentialSource = "file"
	CredentialSourceNone   CredentialSource = "none"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	CalendarID    string
	SpreadsheetID string
	SheetName     string

	// Timezone is the studio's IANA zone, used for whole-day event
	// resolution and audit labels. Empty means the process-local zone.
	Timezone string

	// Google service-account key. Exactly one source applies, chosen by
	// CredentialSource: inline JSON wins over base64 wins over a file path.
	CredentialSource CredentialSource
	CredentialJSON   string
	CredentialFile   string

	// Optional. Empty disables the extension audit repository.
	DBUrl string

	CORSAllowedOrigins []string

	EmailProvider      string
	EmailFromAddress   string
	EmailFromName      string
	EmailReceiptTo     string
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string

	RequestTimeout time.Duration
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		Port:               os.Getenv("PORT"),
		CalendarID:         os.Getenv("CALENDAR_ID"),
		SpreadsheetID:      os.Getenv("SPREADSHEET_ID"),
		SheetName:          os.Getenv("SHEET_NAME"),
		Timezone:           os.Getenv("TIMEZONE"),
		DBUrl:              os.Getenv("DATABASE_URL"),
		EmailProvider:      os.Getenv("EMAIL_PROVIDER"),
		EmailFromAddress:   os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:      os.Getenv("EMAIL_FROM_NAME"),
		EmailReceiptTo:     os.Getenv("EMAIL_RECEIPT_TO"),
		SESRegion:          os.Getenv("SES_REGION"),
		SESAccessKeyID:     os.Getenv("SES_ACCESS_KEY_ID"),
		SESSecretAccessKey: os.Getenv("SES_SECRET_ACCESS_KEY"),
		RequestTimeout:     15 * time.Second,
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.SheetName == "" {
		cfg.SheetName = "Session_Extensions"
	}
	if cfg.EmailProvider == "" {
		cfg.EmailProvider = "noop"
	}

	switch {
	case os.Getenv("GOOGLE_CREDENTIALS") != "":
		cfg.CredentialSource = CredentialSourceInline
		cfg.CredentialJSON = os.Getenv("GOOGLE_CREDENTIALS")
	case os.Getenv("GOOGLE_CREDENTIALS_BASE64") != "":
		cfg.CredentialSource = CredentialSourceBase64
		cfg.CredentialJSON = os.Getenv("GOOGLE_CREDENTIALS_BASE64")
	case os.Getenv("GOOGLE_CREDENTIALS_FILE") != "":
		cfg.CredentialSource = CredentialSourceFile
		cfg.CredentialFile = os.Getenv("GOOGLE_CREDENTIALS_FILE")
	default:
		cfg.CredentialSource = CredentialSourceNone
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}
