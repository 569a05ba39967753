package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// CORSSettings configures cross-origin access for the editor frontend
type CORSSettings struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173,http://localhost:3000"`
}

// RestConfig is the configuration of the REST API process
type RestConfig struct {
	Port     string           `yaml:"port" env:"PORT" env-default:"8000" validate:"required,numeric"`
	GinMode  string           `yaml:"gin_mode" env:"GIN_MODE" env-default:"release" validate:"oneof=debug release test"`
	Database DatabaseSettings `yaml:"database"`
	Logger   LoggerSettings   `yaml:"logger"`
	CORS     CORSSettings     `yaml:"cors"`
}

// Validate checks the nested settings
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig loads a .env file when present, reads the YAML file at
// configPath and overlays environment variables. A missing file is not an
// error; the configuration is then read from the environment alone.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	_ = godotenv.Load()

	var cfg RestConfig

	if _, statErr := os.Stat(configPath); statErr == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	} else if errors.Is(statErr, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read config from environment: %w", err)
		}
	} else {
		return nil, fmt.Errorf("failed to stat config file %s: %w", configPath, statErr)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
