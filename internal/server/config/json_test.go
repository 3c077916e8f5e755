package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeTempJSON(t, dir, "full.json", map[string]any{
		"http_addr":            "www.example:9000",
		"database_driver":      "postgres",
		"database_dsn":         "postgres://u:p@db/filehost",
		"secret_key":           "my_secret_key",
		"token_ttl":            "12h",
		"upload_url_ttl":       "30m",
		"request_timeout":      int64(5 * time.Second),
		"log_level":            "debug",
		"s3_access_key_id":     "user",
		"s3_secret_access_key": "password",
		"s3_bucket":            "bucket",
		"s3_region":            "region",
		"s3_base_endpoint":     "http://minio:9000",
		"s3_key_prefix":        "p/",
	})

	t.Run("loads from json", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, parseJSON(cfg, []string{"-c", path}))

		assert.Equal(t, "www.example:9000", cfg.HTTPAddr)
		assert.Equal(t, "postgres", cfg.DatabaseDriver)
		assert.Equal(t, "postgres://u:p@db/filehost", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
		assert.Equal(t, 30*time.Minute, cfg.UploadURLTTL)
		assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "user", cfg.S3AccessKeyID)
		assert.Equal(t, "password", cfg.S3SecretAccessKey)
		assert.Equal(t, "bucket", cfg.S3Bucket)
		assert.Equal(t, "region", cfg.S3Region)
		assert.Equal(t, "http://minio:9000", cfg.S3BaseEndpoint)
		assert.Equal(t, "p/", cfg.S3KeyPrefix)
	})

	t.Run("no config flag leaves values untouched", func(t *testing.T) {
		cfg := &Config{HTTPAddr: "defaults:1234", TokenTTL: time.Minute}
		require.NoError(t, parseJSON(cfg, []string{"-a", ":1"}))

		assert.Equal(t, "defaults:1234", cfg.HTTPAddr)
		assert.Equal(t, time.Minute, cfg.TokenTTL)
	})

	t.Run("partial file only overrides present keys", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"s3_bucket": "only"})

		cfg := &Config{S3Bucket: "old", S3Region: "keep"}
		require.NoError(t, parseJSON(cfg, []string{"--config", partial}))

		assert.Equal(t, "only", cfg.S3Bucket)
		assert.Equal(t, "keep", cfg.S3Region)
	})

	t.Run("missing file", func(t *testing.T) {
		err := parseJSON(&Config{}, []string{"-c", filepath.Join(dir, "nope.json")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("bad duration", func(t *testing.T) {
		bad := writeTempJSON(t, dir, "bad.json", map[string]any{"token_ttl": "soon"})
		err := parseJSON(&Config{}, []string{"-c", bad})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config file")
	})
}
