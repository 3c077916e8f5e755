// Command migrate applies the embedded schema migrations to the configured
// database and exits. It reads the same configuration as the server.
package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/filehost/internal/server"
	"github.com/dmitrijs2005/filehost/internal/server/config"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	db, _, err := server.OpenDatabase(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
	defer db.Close()

	log.Printf("migrations applied (%s)", cfg.DatabaseDriver)
}
