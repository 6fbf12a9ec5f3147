package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultJWTSecret = "supersecret"
)

type Config struct {
	App struct {
		Env  string `env:"APP_ENV" envDefault:"development"`
		Port string `env:"PORT"    envDefault:"8088"`
	}
	DB struct {
		Driver   string `env:"DB_DRIVER"   envDefault:"sqlite"`
		Path     string `env:"DB_PATH"     envDefault:"./data/pickup.db"`
		Host     string `env:"DB_HOST"     envDefault:"localhost"`
		Port     string `env:"DB_PORT"     envDefault:"5432"`
		User     string `env:"DB_USER"     envDefault:"postgres"`
		Password string `env:"DB_PASSWORD" envDefault:"password"`
		Name     string `env:"DB_NAME"     envDefault:"pickup_db"`
		SSLMode  string `env:"DB_SSLMODE"  envDefault:"disable"`
	}
	JWT struct {
		AccessTokenSecret        string `env:"JWT_ACCESS_TOKEN_SECRET"         envDefault:"supersecret"`
		AccessTokenExpiryMinutes int    `env:"JWT_ACCESS_TOKEN_EXPIRY_MINUTES" envDefault:"43200"`
	}
	Auth struct {
		Enabled bool `env:"AUTH_ENABLED" envDefault:"false"`
	}
	// Teams is the closed set of sides a player can be assigned to.
	Teams []string `env:"TEAM_NAMES" envDefault:"Team A,Team B" envSeparator:","`

	envFileLoaded bool
}

// Global DB instance, accessible after Initialize.
var DB *gorm.DB

var appConfig *Config
var once sync.Once

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	// A missing .env is fine; production sets the variables directly.
	cfg.envFileLoaded = godotenv.Load() == nil

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	for i := range cfg.Teams {
		cfg.Teams[i] = strings.TrimSpace(cfg.Teams[i])
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	appConfig = cfg
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("invalid DB_DRIVER %q: expected %q or %q", c.DB.Driver, DriverSQLite, DriverPostgres)
	}
	if c.JWT.AccessTokenExpiryMinutes <= 0 {
		return errors.New("JWT_ACCESS_TOKEN_EXPIRY_MINUTES must be positive")
	}
	if len(c.Teams) == 0 {
		return errors.New("TEAM_NAMES must list at least one team")
	}
	return nil
}

// Warnings lists configuration choices that are acceptable in development but
// risky elsewhere. Callers log them once the logger exists.
func (c *Config) Warnings() []string {
	var warnings []string
	if !c.envFileLoaded {
		warnings = append(warnings, "No .env file found, relying on system environment variables.")
	}
	if c.JWT.AccessTokenSecret == defaultJWTSecret {
		warnings = append(warnings, "Using default JWT secret. Set JWT_ACCESS_TOKEN_SECRET for production.")
	}
	if c.DB.Driver == DriverPostgres && c.DB.Password == "password" && c.IsProduction() {
		warnings = append(warnings, "Using default DB password in production. Set DB_PASSWORD.")
	}
	return warnings
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// TokenTTL is the lifetime of issued device tokens.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.AccessTokenExpiryMinutes) * time.Minute
}

// ConnectDB opens the configured database and sets the global DB variable.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	var dialector gorm.Dialector
	switch cfg.DB.Driver {
	case DriverPostgres:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.DB.Host,
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Name,
			cfg.DB.Port,
			cfg.DB.SSLMode,
		)
		dialector = postgres.Open(dsn)
	default:
		if dir := filepath.Dir(cfg.DB.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.DB.Path)
	}

	gormDB, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.DB.Driver == DriverSQLite {
		// sqlite allows a single writer; one connection avoids "database is locked".
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	DB = gormDB
	return gormDB, nil
}

// Initialize loads the configuration and connects to the database once.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}

		if _, err = ConnectDB(*loadedCfg); err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
// It panics if Initialize or LoadConfig has not run.
func GetConfig() *Config {
	if appConfig == nil {
		panic("configuration not loaded: call config.Initialize() first")
	}
	return appConfig
}
