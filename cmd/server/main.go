package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Godhold/Waste-Management-App/internal/adapters/cache"
	"github.com/Godhold/Waste-Management-App/internal/adapters/repositories"
	"github.com/Godhold/Waste-Management-App/internal/adapters/storage"
	"github.com/Godhold/Waste-Management-App/internal/api"
	"github.com/Godhold/Waste-Management-App/internal/config"
	"github.com/Godhold/Waste-Management-App/internal/domain"
	"github.com/Godhold/Waste-Management-App/internal/platform/db"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, disk storage) behind ports
// and starts the HTTP server.
func main() {
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

	store, err := storage.NewDiskPhotoStore(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	router := api.NewRouter(api.Deps{
		DB:          pool,
		Drivers:     repositories.NewPostgresDriverRepository(pool),
		Collections: repositories.NewPostgresCollectionRepository(pool),
		Photos:      repositories.NewPostgresPhotoRepository(pool),
		Routes:      repositories.NewPostgresRouteRepository(pool),
		Cache:       cache.NewRedisTrackingCache(redisClient, cfg.TrackingTTL),
		Store:       store,
		Depot:       domain.Coordinate{Lat: cfg.DepotLat, Lng: cfg.DepotLng},
	})

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
