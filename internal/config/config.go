// Package config holds the service configuration and its defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Database drivers.
const (
	DriverPostgres  = "postgres"
	DriverFirestore = "firestore"
	DriverMemory    = "memory"
)

// AI providers.
const (
	ProviderOpenAI = "openai"
	ProviderVertex = "vertex"
)

// Archive drivers.
const (
	StorageNone = "none"
	StorageS3   = "s3"
	StorageGCS  = "gcs"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	AI       AIConfig       `yaml:"ai"`
	Export   ExportConfig   `yaml:"export"`
	Storage  StorageConfig  `yaml:"storage"`
}

// Validate validates every section.
func (c *Config) Validate() error {
	for _, v := range []validation.Validatable{&c.App, &c.Database, &c.Auth, &c.AI, &c.Export, &c.Storage} {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type AppConfig struct {
	LogLevel    slog.Level `yaml:"log_level"`
	HTTP        HTTPConfig `yaml:"http"`
	CORSOrigins string     `yaml:"cors_origins"`
	// BodyLimitMB caps request bodies; documents carry base64 photos.
	BodyLimitMB int `yaml:"body_limit_mb"`
}

func (c *AppConfig) Validate() error {
	if err := c.HTTP.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.BodyLimitMB, validation.Min(1)),
	)
}

type HTTPConfig struct {
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Address returns the listen address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"max_conns"`
	// AutoMigrate applies pending migrations before serving.
	AutoMigrate      bool   `yaml:"auto_migrate"`
	FirestoreProject string `yaml:"firestore_project"`
}

func (c *DatabaseConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Driver, validation.Required, validation.In(DriverPostgres, DriverFirestore, DriverMemory)),
		validation.Field(&c.DSN, validation.When(c.Driver == DriverPostgres, validation.Required)),
		validation.Field(&c.FirestoreProject, validation.When(c.Driver == DriverFirestore, validation.Required)),
		validation.Field(&c.MaxConns, validation.Min(int32(0))),
	)
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

func (c *AuthConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.JWTSecret, validation.Required),
		validation.Field(&c.TokenTTL, validation.Required, validation.Min(time.Minute)),
	)
}

type AIConfig struct {
	Provider    string        `yaml:"provider"`
	BaseURL     string        `yaml:"base_url"`
	APIKey      string        `yaml:"api_key"`
	Model       string        `yaml:"model"`
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout"`

	VertexProject  string `yaml:"vertex_project"`
	VertexLocation string `yaml:"vertex_location"`
}

// Configured reports whether the selected provider has credentials.
func (c *AIConfig) Configured() bool {
	if c.Provider == ProviderVertex {
		return c.VertexProject != ""
	}
	return c.APIKey != ""
}

func (c *AIConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Provider, validation.Required, validation.In(ProviderOpenAI, ProviderVertex)),
		validation.Field(&c.BaseURL, validation.When(c.Provider == ProviderOpenAI, validation.Required)),
		validation.Field(&c.Model, validation.Required),
		validation.Field(&c.Temperature, validation.Min(0.0), validation.Max(2.0)),
		validation.Field(&c.MaxTokens, validation.Required, validation.Min(1)),
		validation.Field(&c.VertexLocation, validation.When(c.Provider == ProviderVertex, validation.Required)),
	)
}

type ExportConfig struct {
	ChromePath  string        `yaml:"chrome_path"`
	PageWidthPx int           `yaml:"page_width_px"`
	Scale       float64       `yaml:"scale"`
	GraceDelay  time.Duration `yaml:"grace_delay"`
	// TemplateDir overrides the embedded templates and is watched for changes.
	TemplateDir string `yaml:"template_dir"`
}

func (c *ExportConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.PageWidthPx, validation.Required, validation.Min(100)),
		validation.Field(&c.Scale, validation.Required, validation.Min(1.0), validation.Max(4.0)),
		validation.Field(&c.GraceDelay, validation.Min(time.Duration(0))),
	)
}

type StorageConfig struct {
	Driver    string `yaml:"driver"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Prefix    string `yaml:"prefix"`
}

func (c *StorageConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Driver, validation.Required, validation.In(StorageNone, StorageS3, StorageGCS)),
		validation.Field(&c.Bucket, validation.When(c.Driver != StorageNone, validation.Required)),
		validation.Field(&c.Region, validation.When(c.Driver == StorageS3, validation.Required)),
	); err != nil {
		return err
	}
	if (c.AccessKey == "") != (c.SecretKey == "") {
		return errors.New("storage: access_key and secret_key must be set together")
	}
	return nil
}

// NewDefaultConfig returns a configuration that runs locally against the
// in-memory driver.
func NewDefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			LogLevel:    slog.LevelInfo,
			HTTP:        HTTPConfig{Port: 5000, ShutdownTimeout: 10 * time.Second},
			CORSOrigins: "*",
			BodyLimitMB: 50,
		},
		Database: DatabaseConfig{
			Driver:   DriverMemory,
			MaxConns: 10,
		},
		Auth: AuthConfig{
			TokenTTL: 7 * 24 * time.Hour,
		},
		AI: AIConfig{
			Provider:       ProviderOpenAI,
			BaseURL:        "https://api.groq.com/openai/v1",
			Model:          "llama-3.1-8b-instant",
			Temperature:    0.7,
			MaxTokens:      1024,
			Timeout:        60 * time.Second,
			VertexLocation: "us-central1",
		},
		Export: ExportConfig{
			PageWidthPx: 794,
			Scale:       2.5,
			GraceDelay:  time.Second,
		},
		Storage: StorageConfig{
			Driver: StorageNone,
			Prefix: "exports",
		},
	}
}
