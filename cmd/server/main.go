package main

import (
	"log"

	"hrdash/internal/app/server"
	"hrdash/internal/platform/config"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	app := server.New(cfg)
	if err := app.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
