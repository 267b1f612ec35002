package google

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"studiosessions/config"
)

// OAuth scopes for the two Google APIs this service talks to.
const (
	scopeCalendar     = "https://www.googleapis.com/auth/calendar"
	scopeSpreadsheets = "https://www.googleapis.com/auth/spreadsheets"
)

// NewHTTPClient builds an authorized HTTP client from the configured
// service-account key, whichever source the config selected: inline JSON,
// base64-encoded JSON, or a file path.
func NewHTTPClient(ctx context.Context, cfg *config.Config) (*http.Client, error) {
	keyJSON, err := credentialJSON(cfg)
	if err != nil {
		return nil, err
	}
	creds, err := google.CredentialsFromJSON(ctx, keyJSON, scopeCalendar, scopeSpreadsheets)
	if err != nil {
		return nil, fmt.Errorf("parse google credentials: %w", err)
	}
	return oauth2.NewClient(ctx, creds.TokenSource), nil
}

func credentialJSON(cfg *config.Config) ([]byte, error) {
	switch cfg.CredentialSource {
	case config.CredentialSourceInline:
		return []byte(cfg.CredentialJSON), nil
	case config.CredentialSourceBase64:
		decoded, err := base64.StdEncoding.DecodeString(cfg.CredentialJSON)
		if err != nil {
			return nil, fmt.Errorf("decode base64 credentials: %w", err)
		}
		return decoded, nil
	case config.CredentialSourceFile:
		data, err := os.ReadFile(cfg.CredentialFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("no google credentials configured")
	}
}
