package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"modern-hotel/cli"
	"modern-hotel/config"
	"modern-hotel/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	store, err := config.NewStoreFromEnv()
	if err != nil {
		log.Fatalf("❌ Storage init failed: %v", err)
	}

	svc, err := services.NewReservationService(store)
	if err != nil {
		log.Fatalf("❌ Failed to load hotel state: %v", err)
	}

	cli.NewMenu(svc, os.Stdin, os.Stdout).Run()
}
