package preferences

import (
	"fmt"
	"net/url"
	"time"
)

// DefaultBackendURL points at a locally running backend.
const DefaultBackendURL = "http://127.0.0.1:8000"

// Settings defines editable user preferences.
type Settings struct {
	BackendURL   string
	CheckOnStart bool
	PollEnabled  bool
	PollInterval time.Duration
}

// DefaultSettings returns default settings for Canvas Smith.
func DefaultSettings() Settings {
	return Settings{
		BackendURL:   DefaultBackendURL,
		CheckOnStart: true,
		PollEnabled:  false,
		PollInterval: 30 * time.Second,
	}
}

// ValidateBackendURL checks that a base address is an absolute http(s) URL.
func ValidateBackendURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse backend url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("backend url must use http or https, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("backend url is missing a host")
	}
	return nil
}
