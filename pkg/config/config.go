package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// placeholderAPIKey is the value shipped in the sample .env; it means "not configured"
const placeholderAPIKey = "your-api-key"

// Config holds application configuration
type Config struct {
	Server   ServerConfig   `envconfig:"SERVER"`
	Database DatabaseConfig `envconfig:"DB"`
	Redis    RedisConfig    `envconfig:"REDIS"`
	Storage  StorageConfig  `envconfig:"STORAGE"`
	AI       AIConfig       `envconfig:"AI"`
	Mail     MailConfig     `envconfig:"MAIL"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"5000"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"meeting_notes"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
	// ConnectTimeout bounds the startup connection attempts
	ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"30s"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string        `envconfig:"REDIS_PORT" default:"6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"10m"`
}

// StorageConfig holds object storage configuration for the sent-email archive
type StorageConfig struct {
	Enabled         bool   `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"meeting-notes"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// AIConfig holds the model completion service configuration
type AIConfig struct {
	APIKey      string        `envconfig:"AI_API_KEY"`
	BaseURL     string        `envconfig:"AI_API_URL" default:"https://api.openai.com"`
	Model       string        `envconfig:"AI_MODEL" default:"gpt-3.5-turbo"`
	MaxTokens   int           `envconfig:"AI_MAX_TOKENS" default:"1000"`
	Temperature float64       `envconfig:"AI_TEMPERATURE" default:"0.5"`
	Timeout     time.Duration `envconfig:"AI_TIMEOUT" default:"30s"`
}

// MailConfig holds outbound email configuration
type MailConfig struct {
	// Service is a well-known provider name (gmail, outlook, yahoo) used when Host is empty
	Service  string `envconfig:"EMAIL_SERVICE"`
	User     string `envconfig:"EMAIL_USER"`
	Password string `envconfig:"EMAIL_PASS"`
	From     string `envconfig:"EMAIL_FROM"`
	Host     string `envconfig:"SMTP_HOST"`
	Port     int    `envconfig:"SMTP_PORT"`
	StartTLS bool   `envconfig:"SMTP_STARTTLS" default:"false"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	config.Mail.resolveService()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Mail.Host != "" && c.Mail.Sender() == "" {
		return fmt.Errorf("EMAIL_FROM or EMAIL_USER is required when SMTP is configured")
	}
	if c.Storage.Enabled && c.Storage.BucketName == "" {
		return fmt.Errorf("STORAGE_BUCKET is required when storage is enabled")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Enabled reports whether a real model API key is configured
func (a AIConfig) Enabled() bool {
	return a.APIKey != "" && a.APIKey != placeholderAPIKey
}

// Sender returns the envelope sender address
func (m MailConfig) Sender() string {
	if m.From != "" {
		return m.From
	}
	return m.User
}

// Configured reports whether an SMTP server is known
func (m MailConfig) Configured() bool {
	return m.Host != ""
}

type smtpPreset struct {
	host     string
	port     int
	startTLS bool
}

// Well-known providers accepted by EMAIL_SERVICE
var smtpPresets = map[string]smtpPreset{
	"gmail":     {host: "smtp.gmail.com", port: 465},
	"outlook":   {host: "smtp.office365.com", port: 587, startTLS: true},
	"hotmail":   {host: "smtp.office365.com", port: 587, startTLS: true},
	"office365": {host: "smtp.office365.com", port: 587, startTLS: true},
	"yahoo":     {host: "smtp.mail.yahoo.com", port: 465},
}

// resolveService fills Host/Port from EMAIL_SERVICE when SMTP_HOST is not set
func (m *MailConfig) resolveService() {
	if m.Host == "" && m.Service != "" {
		if p, ok := smtpPresets[strings.ToLower(m.Service)]; ok {
			m.Host = p.host
			if m.Port == 0 {
				m.Port = p.port
				m.StartTLS = p.startTLS
			}
		}
	}
	if m.Host != "" && m.Port == 0 {
		if m.StartTLS {
			m.Port = 587
		} else {
			m.Port = 465
		}
	}
}
