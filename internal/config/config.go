package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	DB      DatabaseConfig
	App     AppConfig
	Token   TokenConfig
	Catalog CatalogConfig
	Logger  LoggerConfig
}

// DatabaseConfig holds configuration for the database
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds configuration for the HTTP server
type AppConfig struct {
	HTTPPort               string
	AllowedOrigins         []string
	ShutdownTimeoutSeconds int
}

// TokenConfig holds configuration for session token signing
type TokenConfig struct {
	Secret   string
	TTLHours int
}

// CatalogConfig holds configuration for catalog search behavior
type CatalogConfig struct {
	// FacetsFromFullSet switches the brand/category facets from the
	// legacy page-scoped derivation to the whole filtered set.
	FacetsFromFullSet bool
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level          string
	Format         string
	OutputPath     string
	ServiceName    string
	ServiceVersion string
}

// TTL returns the configured token lifetime.
func (c *TokenConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// DSN returns the PostgreSQL Data Source Name
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Token.Secret == "" {
		return fmt.Errorf("ACCESS_TOKEN_SECRET must be set")
	}
	if c.Token.TTLHours <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_TTL_HOURS must be positive, got %d", c.Token.TTLHours)
	}
	return nil
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (*Config, error) {
	setDefaults()

	viper.AddConfigPath(path)
	viper.SetConfigName("app") // Look for app.env
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is okay if we have env vars
	}

	var config Config

	config.DB.Host = viper.GetString("DB_HOST")
	config.DB.Port = viper.GetString("DB_PORT")
	config.DB.User = viper.GetString("DB_USER")
	config.DB.Password = viper.GetString("DB_PASSWORD")
	config.DB.Name = viper.GetString("DB_NAME")
	config.DB.SSLMode = viper.GetString("DB_SSLMODE")

	config.App.HTTPPort = viper.GetString("HTTP_PORT")
	config.App.AllowedOrigins = splitOrigins(viper.GetString("ALLOWED_ORIGINS"))
	config.App.ShutdownTimeoutSeconds = viper.GetInt("SHUTDOWN_TIMEOUT_SECONDS")

	config.Token.Secret = viper.GetString("ACCESS_TOKEN_SECRET")
	config.Token.TTLHours = viper.GetInt("ACCESS_TOKEN_TTL_HOURS")

	config.Catalog.FacetsFromFullSet = viper.GetBool("FACETS_FROM_FULL_SET")

	config.Logger.Level = viper.GetString("LOG_LEVEL")
	config.Logger.Format = viper.GetString("LOG_FORMAT")
	config.Logger.OutputPath = viper.GetString("LOG_OUTPUT_PATH")
	config.Logger.ServiceName = viper.GetString("SERVICE_NAME")
	config.Logger.ServiceVersion = viper.GetString("SERVICE_VERSION")

	return &config, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func setDefaults() {
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "glamour_lush")
	viper.SetDefault("DB_SSLMODE", "disable")

	viper.SetDefault("HTTP_PORT", "4000")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)

	// 10 days, matching the original token policy
	viper.SetDefault("ACCESS_TOKEN_TTL_HOURS", 240)

	viper.SetDefault("FACETS_FROM_FULL_SET", false)

	env := viper.GetString("APP_ENV")
	if env == "production" {
		viper.SetDefault("LOG_LEVEL", "info")
		viper.SetDefault("LOG_FORMAT", "json")
	} else {
		viper.SetDefault("LOG_LEVEL", "debug")
		viper.SetDefault("LOG_FORMAT", "console")
	}
	viper.SetDefault("LOG_OUTPUT_PATH", "stdout")
	viper.SetDefault("SERVICE_NAME", "glamour-lush-server")
	viper.SetDefault("SERVICE_VERSION", "1.0.0")
}
