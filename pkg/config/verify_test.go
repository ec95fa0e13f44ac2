package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr string
	}{
		{name: "defaults are valid", modify: func(*Config) {}},
		{name: "missing listen", modify: func(c *Config) { c.Server.Listen = "" }, wantErr: "server.listen is required"},
		{name: "missing timeout", modify: func(c *Config) { c.Server.Timeout = 0 }, wantErr: "server.timeout is required"},
		{name: "missing comments search url", modify: func(c *Config) { c.Comments.SearchURL = "" }, wantErr: "comments.search_url is required"},
		{name: "missing watch url", modify: func(c *Config) { c.Videos.WatchURL = "" }, wantErr: "videos.watch_url is required"},
		{name: "relative study url", modify: func(c *Config) { c.Study.ConfigURL = "study.json" }, wantErr: "study.config_url must be an absolute url"},
		{name: "absolute study url", modify: func(c *Config) { c.Study.ConfigURL = "https://cfg.example.com/study.json" }},
		{name: "bad base url", modify: func(c *Config) { c.Server.BaseURL = "feeds.example.com" }, wantErr: "server.base_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := Verify(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(data), "min_duration")
	assert.Contains(t, string(data), "blocked_authors")
	assert.Contains(t, string(data), "config_url")
}
