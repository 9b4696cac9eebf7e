package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Godhold/Waste-Management-App/internal/adapters/repositories"
	"github.com/Godhold/Waste-Management-App/internal/config"
	"github.com/Godhold/Waste-Management-App/internal/platform/db"
)

// dbtool initializes the database schema and optionally loads demo seed data.
// Schema setup is kept out of server startup so deploys stay explicit.
func main() {
	seed := flag.Bool("seed", false, "load demo seed data after initializing the schema")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pool, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	if err := repositories.InitSchema(pool); err != nil {
		log.Fatal(err)
	}
	log.Println("Schema initialized")

	if *seed {
		if err := repositories.SeedFromJSON(pool, cfg.SeedPath); err != nil {
			log.Fatal(err)
		}
		log.Printf("Seed data loaded path=%s", cfg.SeedPath)
	}
}
