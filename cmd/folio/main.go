package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/folio-dev/folio/internal/app"
)

func main() {
	// Best effort: a missing .env just means config comes from the environment.
	_ = godotenv.Load()

	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ folio failed to start: %v", err)
	}
}
