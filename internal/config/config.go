// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server Configuration
	GinMode       string        `mapstructure:"GIN_MODE"`
	ServerHost    string        `mapstructure:"SERVER_HOST"`
	ServerPort    string        `mapstructure:"BFF_CREATE_ACCOUNT_PORT"`
	ServerTimeout time.Duration `mapstructure:"-"` // SERVER_TIMEOUT_SECONDS
	FrontendURL   string        `mapstructure:"FRONTEND_URL"`

	// Account Provisioning Service
	LoginBaseURL        string        `mapstructure:"MS_LOGIN_BASE_URL"`
	ProvisioningTimeout time.Duration `mapstructure:"-"` // PROVISIONING_TIMEOUT_SECONDS

	// Vault (validated only, consumed by the infrastructure libraries)
	VaultURL      string `mapstructure:"VAULT_URL"`
	VaultRoleName string `mapstructure:"VAULT_ROLE_NAME"`
	VaultToken    string `mapstructure:"VAULT_TOKEN"`
	VaultEnv      string `mapstructure:"VAULT_ENV"`

	// Directory database (infrastructure schema)
	InfraDBUser       string        `mapstructure:"LIB_INFRASTRUCTURE_POSTGRES_USER"`
	InfraDBPassword   string        `mapstructure:"LIB_INFRASTRUCTURE_POSTGRES_PASSWORD"`
	InfraDBPort       string        `mapstructure:"LIB_INFRASTRUCTURE_POSTGRES_PORT"`
	InfraDBHost       string        `mapstructure:"LIB_INFRASTRUCTURE_POSTGRES_HOST"`
	InfraDBSSL        string        `mapstructure:"LIB_INFRASTRUCTURE_POSTGRES_SSL"`
	InfraDBName       string        `mapstructure:"LIB_INFRASTRUCTURE_POSTGRES_DB"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBConnMaxLifetime time.Duration `mapstructure:"-"` // DB_CONN_MAX_LIFETIME_MINUTES
	DirectoryTimeout  time.Duration `mapstructure:"-"` // DIRECTORY_TIMEOUT_SECONDS

	// Sales database (validated only)
	SalesDBUser     string `mapstructure:"LIB_SALES_POSTGRES_USER"`
	SalesDBPassword string `mapstructure:"LIB_SALES_POSTGRES_PASSWORD"`
	SalesDBPort     string `mapstructure:"LIB_SALES_POSTGRES_PORT"`
	SalesDBHost     string `mapstructure:"LIB_SALES_POSTGRES_HOST"`
	SalesDBSSL      string `mapstructure:"LIB_SALES_POSTGRES_SSL"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`
}

// requiredVariables must be present and non-blank, otherwise Load fails.
var requiredVariables = []string{
	"MS_LOGIN_BASE_URL",
	"BFF_CREATE_ACCOUNT_PORT",
	"FRONTEND_URL",
	"VAULT_URL",
	"VAULT_ROLE_NAME",
	"VAULT_TOKEN",
	"VAULT_ENV",
	"LIB_INFRASTRUCTURE_POSTGRES_USER",
	"LIB_INFRASTRUCTURE_POSTGRES_PASSWORD",
	"LIB_INFRASTRUCTURE_POSTGRES_PORT",
	"LIB_INFRASTRUCTURE_POSTGRES_HOST",
	"LIB_INFRASTRUCTURE_POSTGRES_SSL",
	"LIB_SALES_POSTGRES_USER",
	"LIB_SALES_POSTGRES_PASSWORD",
	"LIB_SALES_POSTGRES_PORT",
	"LIB_SALES_POSTGRES_HOST",
	"LIB_SALES_POSTGRES_SSL",
}

// Load attempts to load configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	// Set default values
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_TIMEOUT_SECONDS", 30)
	v.SetDefault("PROVISIONING_TIMEOUT_SECONDS", 10)
	v.SetDefault("DIRECTORY_TIMEOUT_SECONDS", 5)

	v.SetDefault("LIB_INFRASTRUCTURE_POSTGRES_DB", "infrastructure")
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_CONN_MAX_LIFETIME_MINUTES", 30)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("METRICS_ENABLED", true)

	// Required variables have no default; binding them makes AutomaticEnv visible to Unmarshal.
	for _, name := range requiredVariables {
		if err := v.BindEnv(name); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", name, err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Durations are configured as plain numbers, not Go duration strings
	cfg.ServerTimeout = time.Duration(v.GetInt("SERVER_TIMEOUT_SECONDS")) * time.Second
	cfg.ProvisioningTimeout = time.Duration(v.GetInt("PROVISIONING_TIMEOUT_SECONDS")) * time.Second
	cfg.DirectoryTimeout = time.Duration(v.GetInt("DIRECTORY_TIMEOUT_SECONDS")) * time.Second
	cfg.DBConnMaxLifetime = time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME_MINUTES")) * time.Minute

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every required variable that is unset or blank in a single error.
func (c *Config) Validate() error {
	values := map[string]string{
		"MS_LOGIN_BASE_URL":                    c.LoginBaseURL,
		"BFF_CREATE_ACCOUNT_PORT":              c.ServerPort,
		"FRONTEND_URL":                         c.FrontendURL,
		"VAULT_URL":                            c.VaultURL,
		"VAULT_ROLE_NAME":                      c.VaultRoleName,
		"VAULT_TOKEN":                          c.VaultToken,
		"VAULT_ENV":                            c.VaultEnv,
		"LIB_INFRASTRUCTURE_POSTGRES_USER":     c.InfraDBUser,
		"LIB_INFRASTRUCTURE_POSTGRES_PASSWORD": c.InfraDBPassword,
		"LIB_INFRASTRUCTURE_POSTGRES_PORT":     c.InfraDBPort,
		"LIB_INFRASTRUCTURE_POSTGRES_HOST":     c.InfraDBHost,
		"LIB_INFRASTRUCTURE_POSTGRES_SSL":      c.InfraDBSSL,
		"LIB_SALES_POSTGRES_USER":              c.SalesDBUser,
		"LIB_SALES_POSTGRES_PASSWORD":          c.SalesDBPassword,
		"LIB_SALES_POSTGRES_PORT":              c.SalesDBPort,
		"LIB_SALES_POSTGRES_HOST":              c.SalesDBHost,
		"LIB_SALES_POSTGRES_SSL":               c.SalesDBSSL,
	}

	var missing []string
	for _, name := range requiredVariables {
		if strings.TrimSpace(values[name]) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("FATAL: the variables %s are null or undefined", strings.Join(missing, ", "))
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("FATAL: GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	return nil
}

// InfrastructureDSN builds the GORM DSN for the directory database.
func (c *Config) InfrastructureDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.InfraDBHost, c.InfraDBPort, c.InfraDBUser, c.InfraDBPassword, c.InfraDBName, sslMode(c.InfraDBSSL))
}

func sslMode(flag string) string {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "true", "require", "1":
		return "require"
	default:
		return "disable"
	}
}
