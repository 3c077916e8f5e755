package config

import (
	"fmt"

	"github.com/dmitrijs2005/filehost/internal/flagx"
)

func parseFlags(cfg *Config, args []string) error {
	fs := flagx.NewFlagSet("client")

	fs.StringVarP(&cfg.ServerURL, "server", "a", cfg.ServerURL, "filehost server base URL")
	fs.DurationVarP(&cfg.RequestTimeout, "timeout", "t", cfg.RequestTimeout, "per-request timeout")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
