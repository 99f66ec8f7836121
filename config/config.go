package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config struct to hold the configuration settings
type Config struct {
	MCP           MCPConfig           `yaml:"mcp"`
	Images        ImagesConfig        `yaml:"images"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// MCPConfig holds the MCP endpoint configuration.
type MCPConfig struct {
	Address string `yaml:"address" validate:"required"`
	Path    string `yaml:"path" validate:"required,startswith=/"`
}

// ImagesConfig holds the artifact storage and image server configuration.
type ImagesConfig struct {
	Address string `yaml:"address" validate:"required"`
	BaseURL string `yaml:"base_url" validate:"required,url"`
	Dir     string `yaml:"dir" validate:"required"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	MetricsAddress string `yaml:"metrics_address"`
	LogLevel       string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// LoadConfig loads the configuration from a YAML file. Missing file
// falls back to environment variables; env vars always win over file
// values. Unset fields get the local-development defaults.
func LoadConfig(filename string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(filename)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if v := os.Getenv("MCP_ADDRESS"); v != "" {
		cfg.MCP.Address = v
	}
	if v := os.Getenv("MCP_PATH"); v != "" {
		cfg.MCP.Path = v
	}
	if v := os.Getenv("IMAGES_ADDRESS"); v != "" {
		cfg.Images.Address = v
	}
	if v := os.Getenv("IMAGES_BASE_URL"); v != "" {
		cfg.Images.BaseURL = v
	}
	if v := os.Getenv("IMAGES_DIR"); v != "" {
		cfg.Images.Dir = v
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Observability.MetricsAddress = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}

	applyDefaults(&cfg)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.MCP.Address == "" {
		cfg.MCP.Address = "127.0.0.1:8080"
	}
	if cfg.MCP.Path == "" {
		cfg.MCP.Path = "/mcp"
	}
	if cfg.Images.Address == "" {
		cfg.Images.Address = "127.0.0.1:8081"
	}
	if cfg.Images.BaseURL == "" {
		cfg.Images.BaseURL = "http://" + cfg.Images.Address
	}
	if cfg.Images.Dir == "" {
		cfg.Images.Dir = "./images"
	}
	if cfg.Observability.LogLevel == "" {
		cfg.Observability.LogLevel = "info"
	}
}
