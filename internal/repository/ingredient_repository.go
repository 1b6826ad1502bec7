package repository

import (
	"context"

	"gorm.io/gorm"

	"mixbook/internal/model"
)

// IngredientRepository defines ingredient persistence operations.
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *model.Ingredient) error
	FindByName(ctx context.Context, name string) (*model.Ingredient, error)
	List(ctx context.Context) ([]model.Ingredient, error)
	Search(ctx context.Context, query string) ([]model.Ingredient, error)
}

type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository.
func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *model.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

// FindByName looks up an ingredient by its stored (already normalized) name.
func (r *ingredientRepository) FindByName(ctx context.Context, name string) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	if err := r.db.WithContext(ctx).Where("ingredientName = ?", name).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// List re-queries the full shelf on every call, store-default order.
func (r *ingredientRepository) List(ctx context.Context) ([]model.Ingredient, error) {
	var ingredients []model.Ingredient
	if err := r.db.WithContext(ctx).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// Search returns ingredients whose name contains query, case-insensitively.
func (r *ingredientRepository) Search(ctx context.Context, query string) ([]model.Ingredient, error) {
	var ingredients []model.Ingredient
	if err := r.db.WithContext(ctx).
		Where("ingredientName LIKE ?", "%"+query+"%").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}
