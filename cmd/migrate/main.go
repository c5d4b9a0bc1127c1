package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	catalogRepository "bistro/internal/catalog/repository"
	catalogService "bistro/internal/catalog/service"
	catalogValidator "bistro/internal/catalog/validator"
	mongoMigration "bistro/internal/migrations/mongo"
	"bistro/pkg/config"
	"bistro/pkg/model"
)

const JobName = "mongo-migration"

func main() {
	seedFile := flag.String("seed", "", "path to a JSON array of products to upsert into the menu")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Mongo migration job")
	if err := mongoMigration.RunMigration(ctx, cfg.Client.Mongo, cfg.MongoDatabaseName, cfg.Log); err != nil {
		cfg.Log.Fatal("Migration failed", "error", err)
	}

	if *seedFile != "" {
		cfg.SetRedis()
		seedMenu(ctx, cfg, *seedFile)
	}

	cfg.Log.Info("Migration completed successfully")
}

func seedMenu(ctx context.Context, cfg *config.Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		cfg.Log.Fatal("Failed to read seed file", "path", path, "error", err)
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		cfg.Log.Fatal("Failed to decode seed file", "path", path, "error", err)
	}

	svc := catalogService.NewCatalogService(
		catalogRepository.NewMongoProductRepository(cfg),
		catalogRepository.NewRedisProductCache(cfg.Client.Redis, cfg.CatalogCacheTTL),
		catalogValidator.NewProductValidator(cfg.Log),
		cfg,
	)
	if err := svc.Seed(ctx, products); err != nil {
		cfg.Log.Fatal("Failed to seed menu", "path", path, "error", err)
	}
}
