package config

import (
	"fmt"

	"github.com/dmitrijs2005/filehost/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a, --addr             HTTP bind address (e.g. ":3000")
//	    --db-driver        "postgres" or "sqlite"
//	-d, --db-dsn           database DSN or SQLite file path
//	-s, --secret           JWT HMAC secret key
//	-t, --token-ttl        bearer token lifetime (e.g. "24h")
//	    --upload-ttl       presigned upload URL lifetime
//	    --request-timeout  per-request deadline
//	-l, --log-level        debug|info|warn|error
//	-u, --s3-access-key    S3 access key id
//	-p, --s3-secret-key    S3 secret access key
//	-b, --s3-bucket        S3 bucket name
//	-g, --s3-region        S3 region
//	-e, --s3-endpoint      S3 base endpoint (MinIO etc.)
//	    --s3-prefix        object key prefix
//
// Unknown flags (such as -c/--config) are ignored here.
func parseFlags(config *Config, args []string) error {
	fs := flagx.NewFlagSet("server")

	fs.StringVarP(&config.HTTPAddr, "addr", "a", config.HTTPAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "db-driver", config.DatabaseDriver, "database driver (postgres|sqlite)")
	fs.StringVarP(&config.DatabaseDSN, "db-dsn", "d", config.DatabaseDSN, "database DSN")
	fs.StringVarP(&config.SecretKey, "secret", "s", config.SecretKey, "JWT secret key")
	fs.DurationVarP(&config.TokenTTL, "token-ttl", "t", config.TokenTTL, "token lifetime")
	fs.DurationVar(&config.UploadURLTTL, "upload-ttl", config.UploadURLTTL, "presigned upload URL lifetime")
	fs.DurationVar(&config.RequestTimeout, "request-timeout", config.RequestTimeout, "request timeout")
	fs.StringVarP(&config.LogLevel, "log-level", "l", config.LogLevel, "log level")
	fs.StringVarP(&config.S3AccessKeyID, "s3-access-key", "u", config.S3AccessKeyID, "S3 access key id")
	fs.StringVarP(&config.S3SecretAccessKey, "s3-secret-key", "p", config.S3SecretAccessKey, "S3 secret access key")
	fs.StringVarP(&config.S3Bucket, "s3-bucket", "b", config.S3Bucket, "S3 bucket")
	fs.StringVarP(&config.S3Region, "s3-region", "g", config.S3Region, "S3 region")
	fs.StringVarP(&config.S3BaseEndpoint, "s3-endpoint", "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3KeyPrefix, "s3-prefix", config.S3KeyPrefix, "S3 object key prefix")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
