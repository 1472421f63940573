package main

import (
	"context"
	"log"

	"madr/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
func main() {
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("madr api bootstrap failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("madr api shutdown: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("madr api stopped: %v", err)
	}
}
