package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"mixbook/internal/config"
	"mixbook/internal/db"
	apperrors "mixbook/internal/errors"
	"mixbook/internal/model"
	"mixbook/internal/repository"
	"mixbook/internal/service"
)

// SeedIngredientData is one entry in the seed file.
type SeedIngredientData struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

func main() {
	path := flag.String("file", "seed/ingredients.json", "path to the ingredient seed file")
	flag.Parse()

	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.Ingredient{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ingredients, err := loadSeedFile(*path)
	if err != nil {
		log.Fatalf("Failed to load seed file: %v", err)
	}
	log.Printf("Loaded %d ingredients from %s", len(ingredients), *path)

	ingredientService := service.NewIngredientService(repository.NewIngredientRepository(gormDB))

	created, skipped, err := seedIngredients(context.Background(), ingredientService, ingredients)
	if err != nil {
		log.Fatalf("Failed to seed ingredients: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New ingredients created: %d", created)
	log.Printf("  - Already on the shelf: %d", skipped)
}

// loadSeedFile reads and decodes the seed file.
func loadSeedFile(path string) ([]SeedIngredientData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var ingredients []SeedIngredientData
	if err := json.Unmarshal(data, &ingredients); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return ingredients, nil
}

// seedIngredients inserts each entry, skipping names already on the shelf.
func seedIngredients(ctx context.Context, svc service.IngredientService, ingredients []SeedIngredientData) (created, skipped int, err error) {
	for _, item := range ingredients {
		if item.Name == "" {
			skipped++
			continue
		}
		if _, err := svc.Create(ctx, item.Name, item.Image); err != nil {
			if errors.Is(err, apperrors.ErrAlreadyExists) {
				skipped++
				continue
			}
			return created, skipped, fmt.Errorf("seed ingredient %q: %w", item.Name, err)
		}
		created++
	}
	return created, skipped, nil
}
