package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpapi "github.com/tripwise/ai-trip-planner/internal/http"
	"github.com/tripwise/ai-trip-planner/internal/recommend"
	"github.com/tripwise/ai-trip-planner/internal/storage"
	"github.com/tripwise/ai-trip-planner/internal/trip"
	"github.com/tripwise/ai-trip-planner/internal/weather"
)

type Config struct {
	Address     string
	DBPath      string
	CatalogPath string
	WeightsPath string
	WeatherSeed int64
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := loadConfig()

	store, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	if err := seedIfEmpty(store, cfg.CatalogPath); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	weights, err := recommend.LoadWeightsFromFile(cfg.WeightsPath)
	if err != nil {
		log.Printf("use default weights (reason: %v)", err)
		weights = recommend.DefaultWeights()
	}

	engine := recommend.NewEngine(weights)
	wx := weather.NewSimulated(cfg.WeatherSeed)
	svc := trip.NewService(store, wx, engine)
	server := httpapi.NewServer(svc)

	srv := &http.Server{
		Addr:    cfg.Address,
		Handler: server.Routes(),
	}

	go func() {
		log.Printf("API listening on %s", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("server stopped")
}

func seedIfEmpty(store *storage.SQLiteStore, catalogPath string) error {
	n, err := store.CountDestinations()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	catalog, err := storage.LoadCatalogFromFile(catalogPath)
	if err != nil {
		return err
	}
	log.Printf("seeding catalog: %d destinations", len(catalog.Destinations))
	return store.Seed(catalog)
}

func loadConfig() Config {
	seed := time.Now().UnixNano()
	if v := os.Getenv("WEATHER_SEED"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			seed = parsed
		}
	}

	return Config{
		Address:     getEnv("API_ADDRESS", ":8080"),
		DBPath:      getEnv("DB_PATH", "travel_planner.db"),
		CatalogPath: getEnv("CATALOG_PATH", "data/travel_data.json"),
		WeightsPath: getEnv("WEIGHTS_PATH", "configs/weights.json"),
		WeatherSeed: seed,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
