// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment (.env aware) and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/filehost/internal/dbx"
	"github.com/dmitrijs2005/filehost/internal/logging"
)

// Config holds runtime settings for the filehost server.
//
// Fields:
//   - HTTPAddr: bind address for the HTTP API.
//   - DatabaseDriver / DatabaseDSN: "postgres" (pgx DSN) or "sqlite" (file path).
//   - SecretKey: HMAC secret for signing JWTs (HS256). Required.
//   - TokenTTL: bearer token lifetime.
//   - UploadURLTTL: lifetime of presigned upload URLs.
//   - RequestTimeout: upper bound for a single HTTP request.
//   - S3AccessKeyID / S3SecretAccessKey: static credentials for the bucket;
//     empty means the default AWS credential chain.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings.
//   - S3KeyPrefix: namespace prepended to every object key.
type Config struct {
	HTTPAddr          string        `env:"HTTP_ADDR"`
	DatabaseDriver    string        `env:"DATABASE_DRIVER"`
	DatabaseDSN       string        `env:"DATABASE_DSN"`
	SecretKey         string        `env:"JWT_SECRET"`
	TokenTTL          time.Duration `env:"TOKEN_TTL"`
	UploadURLTTL      time.Duration `env:"UPLOAD_URL_TTL"`
	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT"`
	LogLevel          string        `env:"LOG_LEVEL"`
	S3AccessKeyID     string        `env:"AWS_ACCESS_KEY_ID"`
	S3SecretAccessKey string        `env:"AWS_SECRET_ACCESS_KEY"`
	S3Bucket          string        `env:"AWS_S3_BUCKET_NAME"`
	S3Region          string        `env:"AWS_S3_REGION"`
	S3BaseEndpoint    string        `env:"AWS_S3_ENDPOINT"`
	S3KeyPrefix       string        `env:"AWS_S3_KEY_PREFIX"`
}

// LoadDefaults populates Config with development defaults. SecretKey is
// left empty so that a missing secret is caught by Validate.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":3000"
	c.DatabaseDriver = dbx.DriverSQLite
	c.DatabaseDSN = "db_data/app.db"
	c.TokenTTL = 24 * time.Hour
	c.UploadURLTTL = time.Hour
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
	c.S3Region = "us-east-1"
	c.S3KeyPrefix = "uploads/user-uploads/"
}

// Validate reports the first setting that prevents the server from starting.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("JWT secret is required")
	}
	switch c.DatabaseDriver {
	case dbx.DriverPostgres, dbx.DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.DatabaseDriver)
	}
	if c.DatabaseDSN == "" {
		return errors.New("database DSN is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("token TTL must be positive")
	}
	if c.UploadURLTTL <= 0 {
		return errors.New("upload URL TTL must be positive")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment (including an optional .env
// file) and finally command-line flags. The result is validated.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
