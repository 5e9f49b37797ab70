package main

import (
	"context"
	"log"

	"storefront-be/internal/bootstrap"
	"storefront-be/internal/config"
	"storefront-be/internal/model"
	"storefront-be/internal/repository/unitofwork"
	"storefront-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.ParseLogLevel(cfg.Database.LogLevel))
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	defer container.Logger.Sync()

	ctx := context.Background()

	color.Cyan("Seeding storefront catalog...\n")

	uow := container.UOWFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		log.Fatalf("Error: Failed to begin transaction: %v", err)
	}

	created, err := seed(ctx, uow)
	if err != nil {
		_ = uow.Rollback()
		color.Red("Seeding failed: %v", err)
		return
	}
	if err := uow.Commit(); err != nil {
		color.Red("Commit failed: %v", err)
		return
	}
	color.Green("Created %d rows", created)

	container.CatalogService.InvalidateCache()

	brands, err := container.CatalogService.GetBrands(ctx)
	if err != nil {
		color.Red("Failed to read brands: %v", err)
		return
	}
	types, err := container.CatalogService.GetTypes(ctx)
	if err != nil {
		color.Red("Failed to read types: %v", err)
		return
	}

	color.Yellow("\nBrands (%d)", len(brands))
	for _, b := range brands {
		color.White("  - %s", b)
	}
	color.Yellow("\nTypes (%d)", len(types))
	for _, t := range types {
		color.White("  - %s", t)
	}
}

// seed inserts products and delivery methods that are not there yet. It
// returns the number of rows created.
func seed(ctx context.Context, uow unitofwork.UnitOfWork) (int, error) {
	created := 0

	products := uow.ProductRepository()
	existing, err := products.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	names := make(map[string]bool, len(existing))
	for _, p := range existing {
		names[p.Name] = true
	}
	for i := range seedProducts {
		p := seedProducts[i]
		if names[p.Name] {
			log.Printf("Product '%s' already exists, skipping...", p.Name)
			continue
		}
		if err := products.Add(ctx, &p); err != nil {
			return created, err
		}
		created++
	}

	methods := uow.DeliveryMethodRepository()
	existingMethods, err := methods.ListAll(ctx)
	if err != nil {
		return created, err
	}
	shortNames := make(map[string]bool, len(existingMethods))
	for _, m := range existingMethods {
		shortNames[m.ShortName] = true
	}
	for i := range seedDeliveryMethods {
		m := seedDeliveryMethods[i]
		if shortNames[m.ShortName] {
			continue
		}
		if err := methods.Add(ctx, &m); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

var seedDeliveryMethods = []model.DeliveryMethod{
	{ShortName: "UPS1", DeliveryTime: "1-2 Days", Description: "Fastest delivery time", Price: 10},
	{ShortName: "UPS2", DeliveryTime: "2-5 Days", Description: "Get it within 5 days", Price: 5},
	{ShortName: "UPS3", DeliveryTime: "5-10 Days", Description: "Slower but cheap", Price: 2},
	{ShortName: "FREE", DeliveryTime: "1-2 Weeks", Description: "Free! You get what you pay for", Price: 0},
}
