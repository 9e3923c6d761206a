package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"pickup-coordination-service/internal/adapters/cache"
	"pickup-coordination-service/internal/adapters/flightdata"
	"pickup-coordination-service/internal/adapters/repositories"
	"pickup-coordination-service/internal/api"
	"pickup-coordination-service/internal/config"
	"pickup-coordination-service/internal/platform/db"
	"pickup-coordination-service/internal/ports"
	"pickup-coordination-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, the flight-data vendor)
// behind ports, starts the reconciliation ticker and the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}
	port := config.Get("PORT", "8080")

	dbConn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer dbConn.Close()

	if err := repositories.InitSchema(dbConn); err != nil {
		log.Fatal(err)
	}

	// An absent vendor credential disables lookups rather than failing
	// startup; every resolution is then unavailable and reconciliation
	// falls back to the past-ETA heuristic.
	var provider ports.FlightDataProvider
	providerCfg := config.ProviderFromEnv()
	if strings.TrimSpace(providerCfg.APIKey) == "" {
		log.Println("FLIGHT_API_KEY not set; flight status lookups disabled")
	} else {
		p, err := flightdata.NewAviationstackProvider(providerCfg)
		if err != nil {
			log.Fatal(err)
		}
		provider = p
	}

	// Redis is optional: without it every resolution goes to the vendor.
	var statusCache ports.StatusCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		defer client.Close()
		statusCache = cache.NewRedisStatusCache(client, config.GetDuration("STATUS_CACHE_TTL", 5*time.Minute))
	}

	guests := repositories.NewPostgresGuestRepository(dbConn)
	cars := repositories.NewPostgresCarRepository(dbConn)
	resolver := services.NewStatusResolver(provider, statusCache)

	reconciler := services.NewReconciler(guests, resolver)
	reconciler.Interval = config.GetDuration("RECONCILE_INTERVAL", 10*time.Minute)
	reconciler.CallTimeout = providerCfg.Timeout
	reconciler.Workers = config.GetInt("RECONCILE_WORKERS", 4)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go reconciler.Run(ctx)

	router := api.NewRouter(guests, cars, reconciler)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
