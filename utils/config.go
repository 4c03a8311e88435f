package utils

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"venograph/annotate"
)

// Config is the top-level application configuration shared by the annotation
// service and the relay. Every variant-specific choice (label sets, fonts,
// the relay secret) lives here rather than in code.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Relay    RelayConfig    `yaml:"relay"`
	Annotate AnnotateConfig `yaml:"annotate"`
	Render   RenderConfig   `yaml:"render"`
}

// ServerConfig holds settings for the annotation service.
type ServerConfig struct {
	Port string `yaml:"port"`
}

// RelayConfig holds the relay listen port, the shared secret, the endpoint
// the annotation service forwards saves to, and an optional sqlite file for
// relay-side persistence (empty means echo-only).
type RelayConfig struct {
	Port     string `yaml:"port"`
	APIKey   string `yaml:"api_key"`
	Endpoint string `yaml:"endpoint"`
	Sqlite   string `yaml:"sqlite"`
}

// AnnotateConfig parameterizes the annotation workflow.
type AnnotateConfig struct {
	Tolerance          float64           `yaml:"tolerance"`
	DisplayWidth       int               `yaml:"display_width"`
	SessionTTLMinutes  int               `yaml:"session_ttl_minutes"`
	Locations          []string          `yaml:"locations"`
	SideRequired       []string          `yaml:"side_required"`
	SentinelValues     map[string]string `yaml:"sentinel_values"`
	ExcludeFromSummary []string          `yaml:"exclude_from_summary"`
}

// RenderConfig holds export styling knobs.
type RenderConfig struct {
	FontCandidates []string `yaml:"font_candidates"`
	FontSize       float64  `yaml:"font_size"`
	MarkerRadius   float64  `yaml:"marker_radius"`
}

// DefaultConfig returns the built-in configuration: the Stenosis-variant
// vocabulary, 5 pixel tolerance, 600 pixel display width.
func DefaultConfig() *Config {
	vocab := annotate.DefaultVocabulary()
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Relay: RelayConfig{
			Port:     "8000",
			Endpoint: "http://127.0.0.1:8000",
		},
		Annotate: AnnotateConfig{
			Tolerance:          5,
			DisplayWidth:       600,
			SessionTTLMinutes:  60,
			Locations:          vocab.Locations,
			SideRequired:       vocab.SideRequired,
			SentinelValues:     vocab.SentinelValues,
			ExcludeFromSummary: vocab.ExcludeFromSummary,
		},
		Render: RenderConfig{
			FontCandidates: []string{"arialbd.ttf", "arial.ttf", "DejaVuSans-Bold.ttf"},
			FontSize:       40,
			MarkerRadius:   6,
		},
	}
}

// NewConfig builds the configuration from defaults, overridden by the YAML
// file at path when one is given.
func NewConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("cannot parse config file %s: %w", path, err)
		}
	}

	if config.Server.Port == "" {
		return nil, fmt.Errorf("server port must not be empty")
	}
	if config.Annotate.Tolerance <= 0 {
		return nil, fmt.Errorf("tolerance must be positive")
	}
	if config.Annotate.DisplayWidth <= 0 {
		return nil, fmt.Errorf("display width must be positive")
	}
	return config, nil
}

// Vocabulary assembles the controlled vocabulary from the configuration.
func (c *Config) Vocabulary() annotate.Vocabulary {
	return annotate.Vocabulary{
		Locations:          c.Annotate.Locations,
		SideRequired:       c.Annotate.SideRequired,
		SentinelValues:     c.Annotate.SentinelValues,
		ExcludeFromSummary: c.Annotate.ExcludeFromSummary,
	}
}

// ParseFlags Parse the command line flags for the config path and debug mode
func ParseFlags() (string, bool, error) {
	var configPath string
	var debugMode bool

	flag.StringVar(&configPath, "config", "", "path to the YAML config file")
	flag.BoolVar(&debugMode, "debug", false, "enable debug mode")
	flag.Parse()

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return "", false, fmt.Errorf("config file %s not found: %w", configPath, err)
		}
	}
	return configPath, debugMode, nil
}
