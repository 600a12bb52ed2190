package config

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var (
	cfg     *APIConfig
	loadErr error
	once    sync.Once

	validate = validator.New()
)

// APIConfig represents the root element.
type APIConfig struct {
	XMLName        xml.Name             `xml:"API"`
	RequestDump    bool                 `xml:"REQUEST_DUMP,attr"`
	Context        ContextConfig        `xml:"CONTEXT"`
	Authentication AuthenticationConfig `xml:"AUTHENTICATION"`
	DB             DBConfig             `xml:"DB"`
	Logging        LoggingConfig        `xml:"LOGGING"`
	Recommendation RecommendationConfig `xml:"RECOMMENDATION"`
	RateLimit      RateLimitConfig      `xml:"RATE_LIMIT"`

	location *time.Location
}

// ContextConfig holds basic server settings.
type ContextConfig struct {
	Port            int    `xml:"PORT" validate:"required,min=1,max=65535"`
	Host            string `xml:"HOST"`
	TimeZone        string `xml:"TIME_ZONE"`
	ShutdownTimeout int    `xml:"SHUTDOWN_TIMEOUT" validate:"min=0"`
}

// AuthenticationConfig holds authentication settings.
type AuthenticationConfig struct {
	EnableTokenAuth bool   `xml:"ENABLE_TOKEN_AUTH"`
	SessionTimeout  int    `xml:"SESSION_TIMEOUT" validate:"min=0"`
	TokenSecret     string `xml:"TOKEN_SECRET" validate:"required_if=EnableTokenAuth true"`
	TokenExpiry     int    `xml:"TOKEN_EXPIRY" validate:"min=0"`
}

// DBConfig holds database connection settings.
type DBConfig struct {
	Initialize bool         `xml:"INITIALIZE"`
	Driver     string       `xml:"DRIVER" validate:"required,oneof=postgres sqlite"`
	Host       string       `xml:"HOST" validate:"required_if=Driver postgres"`
	Port       int          `xml:"PORT"`
	SSLMode    string       `xml:"SSL_MODE"`
	Names      DBNames      `xml:"NAMES"`
	Username   string       `xml:"USERNAME"`
	Password   DBPassword   `xml:"PASSWORD"`
	Path       string       `xml:"PATH" validate:"required_if=Driver sqlite"`
	Pool       DBPoolConfig `xml:"POOL"`
}

// DBNames holds the names defined in the DB section.
type DBNames struct {
	Cinema string `xml:"CINEMA,attr"`
}

// DBPassword holds password details.
type DBPassword struct {
	Type  string `xml:"TYPE,attr"`
	Value string `xml:",chardata"`
}

// DBPoolConfig holds database connection pooling settings.
type DBPoolConfig struct {
	MaxOpenConns    int `xml:"MAX_OPEN_CONNS" validate:"min=0"`
	MaxIdleConns    int `xml:"MAX_IDLE_CONNS" validate:"min=0"`
	ConnMaxLifetime int `xml:"CONN_MAX_LIFETIME" validate:"min=0"`
}

// LoggingConfig controls the zap logger and its rotating file.
type LoggingConfig struct {
	Level      string `xml:"LEVEL" validate:"omitempty,oneof=debug info warn error"`
	Dir        string `xml:"DIR"`
	MaxSizeMB  int    `xml:"MAX_SIZE_MB" validate:"min=0"`
	MaxBackups int    `xml:"MAX_BACKUPS" validate:"min=0"`
	MaxAgeDays int    `xml:"MAX_AGE_DAYS" validate:"min=0"`
	Console    bool   `xml:"CONSOLE,attr"`
}

// RecommendationConfig bounds the recommendation list.
type RecommendationConfig struct {
	Limit int `xml:"LIMIT" validate:"min=0"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled bool    `xml:"ENABLED,attr"`
	RPS     float64 `xml:"RPS" validate:"min=0"`
	Burst   int     `xml:"BURST" validate:"min=0"`
}

// SessionTTL is the idle lifetime of an assessment session.
func (c *APIConfig) SessionTTL() time.Duration {
	return time.Duration(c.Authentication.SessionTimeout) * time.Minute
}

// TokenTTL is the lifetime of issued guest tokens.
func (c *APIConfig) TokenTTL() time.Duration {
	if c.Authentication.TokenExpiry <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.Authentication.TokenExpiry) * time.Minute
}

// ShutdownTimeout bounds graceful shutdown.
func (c *APIConfig) ShutdownTimeout() time.Duration {
	if c.Context.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Context.ShutdownTimeout) * time.Second
}

// Location is the zone named by TIME_ZONE, UTC when unset. Calendar dates
// supplied by clients are read in it.
func (c *APIConfig) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// Addr is the listen address.
func (c *APIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Context.Host, c.Context.Port)
}

// Parse decodes XML configuration, applies environment overrides and
// validates the result.
func Parse(data []byte) (*APIConfig, error) {
	var newCfg APIConfig
	if err := xml.Unmarshal(data, &newCfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyEnv(&newCfg)
	if err := validate.Struct(&newCfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	loc, err := time.LoadLocation(newCfg.Context.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("validate config: time zone: %w", err)
	}
	newCfg.location = loc
	return &newCfg, nil
}

// applyEnv lets secrets and deployment specifics come from the environment.
func applyEnv(c *APIConfig) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.DB.Password.Value = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.DB.Host = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Authentication.TokenSecret = v
	}
	if v := os.Getenv("APP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Context.Port = port
		}
	}
}

// LoadConfig loads and parses the XML configuration from the given file.
// A .env file next to the working directory is read first, if present.
func LoadConfig(xmlPath string) (*APIConfig, error) {
	once.Do(func() {
		_ = godotenv.Load()

		f, err := os.Open(xmlPath)
		if err != nil {
			loadErr = fmt.Errorf("open config: %w", err)
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			loadErr = fmt.Errorf("read config: %w", err)
			return
		}

		cfg, loadErr = Parse(data)
	})

	if cfg == nil {
		if loadErr == nil {
			loadErr = os.ErrInvalid
		}
		return nil, loadErr
	}
	return cfg, nil
}
