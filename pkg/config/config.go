package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata" // default timezone must resolve in minimal containers

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=2m,description=HTTP server timeout covering the full retry loop"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"description=Public base URL used for feed self links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Fetch FetchConfig `yaml:"fetch" json:"fetch" jsonschema:"description=Upstream fetch and retry settings"`

	Cache struct {
		DefaultTTL time.Duration `yaml:"default_ttl" json:"default_ttl" jsonschema:"default=1h,description=TTL used when the requested one is invalid or too small"`
		MinTTL     time.Duration `yaml:"min_ttl" json:"min_ttl" jsonschema:"default=1m,description=Smallest accepted requested TTL"`
	} `yaml:"cache" json:"cache" jsonschema:"description=Result cache settings"`

	Comments CommentsConfig `yaml:"comments" json:"comments" jsonschema:"description=Comment site source"`
	Videos   VideosConfig   `yaml:"videos" json:"videos" jsonschema:"description=Video search source"`
	Study    StudyConfig    `yaml:"study" json:"study" jsonschema:"description=Study mode settings"`
}

// FetchConfig holds upstream fetch settings
type FetchConfig struct {
	Timeout           time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Single HTTP request timeout"`
	UserAgent         string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent for upstream requests"`
	TransportAttempts int           `yaml:"transport_attempts" json:"transport_attempts" jsonschema:"default=2,minimum=1,description=Attempts per request on HTTP 503"`
	TransportDelay    time.Duration `yaml:"transport_delay" json:"transport_delay" jsonschema:"default=1s,description=Delay between transport attempts"`
	Attempts          int           `yaml:"attempts" json:"attempts" jsonschema:"default=15,minimum=1,description=Fetch attempts while the result listing is empty"`
	Delay             time.Duration `yaml:"delay" json:"delay" jsonschema:"default=1s,description=Delay between fetch attempts"`
}

// CommentsConfig holds comment site settings
type CommentsConfig struct {
	SearchURL      string   `yaml:"search_url" json:"search_url" jsonschema:"description=Search URL template where %s is replaced by the escaped keyword"`
	SiteURL        string   `yaml:"site_url" json:"site_url" jsonschema:"description=Base URL for relative links and images"`
	FilterURL      string   `yaml:"filter_url" json:"filter_url" jsonschema:"description=Remote blocklist document (empty disables it)"`
	BlockedAuthors []string `yaml:"blocked_authors" json:"blocked_authors" jsonschema:"description=Static author blocklist (substring match)"`
	Timezone       string   `yaml:"timezone" json:"timezone" jsonschema:"default=Asia/Tokyo,description=Time zone of absolute dates on the site"`
}

// VideosConfig holds video search settings
type VideosConfig struct {
	SearchURL   string        `yaml:"search_url" json:"search_url" jsonschema:"description=Search URL template where %s is replaced by the escaped keyword"`
	WatchURL    string        `yaml:"watch_url" json:"watch_url" jsonschema:"description=Video page URL taking the video id as v parameter"`
	HomeURL     string        `yaml:"home_url" json:"home_url" jsonschema:"description=Canonical link of video feeds"`
	FilterURL   string        `yaml:"filter_url" json:"filter_url" jsonschema:"description=Remote blocklist and keyword alias document"`
	Marker      string        `yaml:"marker" json:"marker" jsonschema:"default=ytInitialData,description=Variable name of the embedded JSON"`
	MinDuration time.Duration `yaml:"min_duration" json:"min_duration" jsonschema:"default=3m,description=Videos not longer than this are dropped (negative disables)"`
	FreshWindow time.Duration `yaml:"fresh_window" json:"fresh_window" jsonschema:"default=48h,description=Videos published earlier are dropped"`
	LiveMarker  string        `yaml:"live_marker" json:"live_marker" jsonschema:"default=ライブ,description=Published text marker of live broadcasts exempt from freshness"`
}

// StudyConfig holds study mode settings
type StudyConfig struct {
	ConfigURL string        `yaml:"config_url" json:"config_url" jsonschema:"description=Remote vocabulary and blocklist document"`
	UsedTTL   time.Duration `yaml:"used_ttl" json:"used_ttl" jsonschema:"default=720h,description=How long selected words stay used"`
	ResetTTL  time.Duration `yaml:"reset_ttl" json:"reset_ttl" jsonschema:"default=168h,description=Lifetime of the reset marker after exhaustion"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	if err := Verify(&cfg); err != nil {
		return nil, fmt.Errorf("verify config: %w", err)
	}

	return &cfg, nil
}

// Default returns configuration with all defaults set, used when no config file is given
func Default() *Config {
	var cfg Config
	setDefaults(&cfg)
	return &cfg
}

func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 2 * time.Minute
	}

	// fetch
	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 30 * time.Second
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	}
	if cfg.Fetch.TransportAttempts == 0 {
		cfg.Fetch.TransportAttempts = 2
	}
	if cfg.Fetch.TransportDelay == 0 {
		cfg.Fetch.TransportDelay = time.Second
	}
	if cfg.Fetch.Attempts == 0 {
		cfg.Fetch.Attempts = 15
	}
	if cfg.Fetch.Delay == 0 {
		cfg.Fetch.Delay = time.Second
	}

	// cache
	if cfg.Cache.DefaultTTL == 0 {
		cfg.Cache.DefaultTTL = time.Hour
	}
	if cfg.Cache.MinTTL == 0 {
		cfg.Cache.MinTTL = time.Minute
	}

	// comments
	if cfg.Comments.SearchURL == "" {
		cfg.Comments.SearchURL = "https://comment2434.com/comment/?keyword=%s&type=0&mode=0&sort_mode=0"
	}
	if cfg.Comments.SiteURL == "" {
		cfg.Comments.SiteURL = "https://comment2434.com"
	}
	if cfg.Comments.Timezone == "" {
		cfg.Comments.Timezone = "Asia/Tokyo"
	}

	// videos
	if cfg.Videos.SearchURL == "" {
		cfg.Videos.SearchURL = "https://www.youtube.com/results?search_query=%s&sp=CAI%3D"
	}
	if cfg.Videos.WatchURL == "" {
		cfg.Videos.WatchURL = "https://www.youtube.com/watch"
	}
	if cfg.Videos.HomeURL == "" {
		cfg.Videos.HomeURL = "https://www.youtube.com/"
	}
	if cfg.Videos.Marker == "" {
		cfg.Videos.Marker = "ytInitialData"
	}
	if cfg.Videos.MinDuration == 0 {
		cfg.Videos.MinDuration = 3 * time.Minute
	}
	if cfg.Videos.FreshWindow == 0 {
		cfg.Videos.FreshWindow = 48 * time.Hour
	}
	if cfg.Videos.LiveMarker == "" {
		cfg.Videos.LiveMarker = "ライブ"
	}

	// study
	if cfg.Study.UsedTTL == 0 {
		cfg.Study.UsedTTL = 30 * 24 * time.Hour
	}
	if cfg.Study.ResetTTL == 0 {
		cfg.Study.ResetTTL = 7 * 24 * time.Hour
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Fetch.TransportAttempts < 1 || cfg.Fetch.Attempts < 1 {
		return fmt.Errorf("fetch attempts must be at least 1")
	}
	if cfg.Fetch.Delay < 0 || cfg.Fetch.TransportDelay < 0 {
		return fmt.Errorf("fetch delays must be non-negative")
	}
	if cfg.Cache.MinTTL < time.Second {
		return fmt.Errorf("cache min_ttl must be at least 1 second")
	}
	if cfg.Cache.DefaultTTL < cfg.Cache.MinTTL {
		return fmt.Errorf("cache default_ttl %v is below min_ttl %v", cfg.Cache.DefaultTTL, cfg.Cache.MinTTL)
	}
	if cfg.Videos.FreshWindow < 0 {
		return fmt.Errorf("videos fresh_window must be non-negative")
	}
	if _, err := cfg.Location(); err != nil {
		return err
	}
	return nil
}

// Location returns the comment site time zone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Comments.Timezone)
	if err != nil {
		return nil, fmt.Errorf("comments timezone %q: %w", c.Comments.Timezone, err)
	}
	return loc, nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// TTLBounds returns the default and minimal accepted cache ttl
func (c *Config) TTLBounds() (defaultTTL, minTTL time.Duration) {
	return c.Cache.DefaultTTL, c.Cache.MinTTL
}

// GetBaseURL returns the public base url, empty means derive it from the request
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}
