package config

import (
	"fmt"
	"log"
	"os"

	"admin-api/internal/utils"

	"github.com/joho/godotenv"
	"github.com/kerimovok/go-pkg-utils/config"
	"gopkg.in/yaml.v3"
)

// DatabaseConfig holds the SQLite database settings
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// UploadsConfig holds upload validation and storage settings
type UploadsConfig struct {
	Dir                  string   `yaml:"dir"`
	MaxFileSize          string   `yaml:"max_file_size"`
	AllowedExtensions    []string `yaml:"allowed_extensions"`
	BlockedExtensions    []string `yaml:"blocked_extensions"`
	AllowedMimeTypes     []string `yaml:"allowed_mime_types"`
	StrictMimeValidation bool     `yaml:"strict_mime_validation"`

	// MaxFileSizeBytes is MaxFileSize parsed to bytes at load time
	MaxFileSizeBytes int64 `yaml:"-"`
}

// AppConfig holds the complete application configuration
type AppConfig struct {
	Database DatabaseConfig `yaml:"database"`
	Uploads  UploadsConfig  `yaml:"uploads"`
}

// MainConfig holds the root configuration
type MainConfig struct {
	App AppConfig `yaml:"app"`
}

var (
	Config MainConfig
)

// LoadConfig loads the configuration from the specified path
func LoadConfig() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if config.GetEnv("GO_ENV") != "production" {
			log.Println("Warning: Failed to load .env file")
		}
	}

	// Read config file
	data, err := os.ReadFile("config/app.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var cfg MainConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.App.Database.Path == "" {
		return fmt.Errorf("app.database.path is required")
	}

	// Parse the human-readable upload size limit
	maxSize, err := utils.ParseSizeString(cfg.App.Uploads.MaxFileSize)
	if err != nil {
		return fmt.Errorf("invalid app.uploads.max_file_size: %w", err)
	}
	cfg.App.Uploads.MaxFileSizeBytes = maxSize

	// Store config globally
	Config = cfg

	log.Println("Configuration loaded successfully from config/app.yaml")
	return nil
}

// GetConfig returns the current configuration
func GetConfig() MainConfig {
	return Config
}
