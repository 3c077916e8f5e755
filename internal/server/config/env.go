package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/filehost/internal/flagx"
)

// parseEnv overlays environment variables onto config. Values from the
// dotenv file (--env-file, default ".env") are used only when the process
// environment does not define the same key. A missing dotenv file is not an
// error.
func parseEnv(config *Config, args []string) error {
	environ := map[string]string{}

	if path := flagx.EnvFile(args); path != "" {
		values, err := godotenv.Read(path)
		switch {
		case err == nil:
			for k, v := range values {
				environ[k] = v
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("read env file: %w", err)
		}
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			environ[k] = v
		}
	}

	if err := env.ParseWithOptions(config, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
