package main

import (
	"fmt"
	"log"
	"os"

	"github.com/nutriscore/backend/config"
	httpDelivery "github.com/nutriscore/backend/internal/delivery/http"
	"github.com/nutriscore/backend/internal/domain"
	"github.com/nutriscore/backend/internal/infrastructure/cache"
	"github.com/nutriscore/backend/internal/infrastructure/curated"
	"github.com/nutriscore/backend/internal/infrastructure/off"
	"github.com/nutriscore/backend/internal/infrastructure/usda"
	"github.com/nutriscore/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting NutriScore Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Infrastructure: the fallback chain is the slice order, authoritative
	// first, curated dictionary last.
	usdaClient := usda.NewClient(cfg.Sources.USDAAPIKey, cfg.Sources.USDABaseURL)
	offClient := off.NewClient(cfg.Sources.OFFBaseURL)
	curatedSource := curated.NewSource()

	sources := []domain.FoodSource{usdaClient, offClient, curatedSource}

	recordCache := cache.NewMemoryCache()
	log.Printf("Record cache TTL: %s", cfg.Cache.TTL)

	resolver := usecase.NewResolver(sources, offClient, recordCache, usecase.ResolverConfig{
		CacheTTL:      cfg.Cache.TTL,
		SourceTimeout: cfg.Sources.Timeout,
	})
	engine := usecase.NewEngine(resolver)

	handler := httpDelivery.NewHandler(engine)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
