package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "mixbook/internal/errors"
	"mixbook/internal/model"
	"mixbook/internal/repository"
)

// IngredientService handles the ingredient shelf. Ingredients are created and
// listed only; there is no edit or delete flow.
type IngredientService interface {
	Create(ctx context.Context, name, imageURL string) (*model.Ingredient, error)
	List(ctx context.Context) ([]model.Ingredient, error)
	Search(ctx context.Context, query string) ([]model.Ingredient, error)
}

type ingredientService struct {
	ingredientRepo repository.IngredientRepository
	now            func() time.Time
}

// NewIngredientService creates a new ingredient service.
func NewIngredientService(ingredientRepo repository.IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepo: ingredientRepo, now: time.Now}
}

// Create title-cases the name and inserts, failing when an ingredient with
// that normalized name is already on the shelf.
func (s *ingredientService) Create(ctx context.Context, name, imageURL string) (*model.Ingredient, error) {
	normalized := titleCase(name)

	existing, err := s.ingredientRepo.FindByName(ctx, normalized)
	if err == nil && existing != nil {
		return nil, apperrors.ErrAlreadyExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("%w: check ingredient: %v", apperrors.ErrStoreUnavailable, err)
	}

	ingredient := &model.Ingredient{
		IngredientName:  normalized,
		IngredientImage: imageURL,
		ModifiedDate:    s.now(),
	}

	if err := s.ingredientRepo.Create(ctx, ingredient); err != nil {
		return nil, fmt.Errorf("%w: create ingredient: %v", apperrors.ErrStoreUnavailable, err)
	}

	return ingredient, nil
}

func (s *ingredientService) List(ctx context.Context) ([]model.Ingredient, error) {
	ingredients, err := s.ingredientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list ingredients: %v", apperrors.ErrStoreUnavailable, err)
	}
	return ingredients, nil
}

// Search matches on the normalized form so "lime" finds "Lime".
func (s *ingredientService) Search(ctx context.Context, query string) ([]model.Ingredient, error) {
	ingredients, err := s.ingredientRepo.Search(ctx, titleCase(query))
	if err != nil {
		return nil, fmt.Errorf("%w: search ingredients: %v", apperrors.ErrStoreUnavailable, err)
	}
	return ingredients, nil
}
