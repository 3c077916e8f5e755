// Package config loads runtime configuration for the filehost CLI.
//
// Sources & precedence (later wins)
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or --config.
//  3. Environment variables prefixed with FILEHOST_, including those from an
//     optional dotenv file (--env-file, default ".env").
//  4. Command-line flags.
//
// Supported flags
//
//	-a, --server   base URL of the filehost server
//	-t, --timeout  per-request timeout, e.g. "30s"
//
// # JSON schema
//
//	{
//	  "server_url": "http://localhost:3000",
//	  "request_timeout": "30s"
//	}
package config
