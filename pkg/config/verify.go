package config

import (
	"fmt"
	"net/url"

	"github.com/invopop/jsonschema"
)

// Verify checks the fields the service can't run without
func Verify(cfg *Config) error {
	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	// check server config
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}

	required := []struct{ name, value string }{
		{"comments.search_url", cfg.Comments.SearchURL},
		{"comments.site_url", cfg.Comments.SiteURL},
		{"videos.search_url", cfg.Videos.SearchURL},
		{"videos.watch_url", cfg.Videos.WatchURL},
		{"videos.home_url", cfg.Videos.HomeURL},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is required", r.name)
		}
	}

	// optional remote documents must be absolute urls when set
	optional := []struct{ name, value string }{
		{"comments.filter_url", cfg.Comments.FilterURL},
		{"videos.filter_url", cfg.Videos.FilterURL},
		{"study.config_url", cfg.Study.ConfigURL},
		{"server.base_url", cfg.Server.BaseURL},
	}
	for _, o := range optional {
		if o.value == "" {
			continue
		}
		u, err := url.Parse(o.value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute url, got %q", o.name, o.value)
		}
	}

	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
