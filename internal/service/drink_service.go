package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "mixbook/internal/errors"
	"mixbook/internal/model"
	"mixbook/internal/repository"
)

// randomAttempts bounds the count-then-offset retry loop in GetRandom. The
// two store calls are not atomic, so a concurrent delete can push the chosen
// offset past the end; retrying a couple of times is enough in practice.
const randomAttempts = 3

// DrinkInput is the validated form payload for creating or updating a drink.
type DrinkInput struct {
	Name         string
	ImageURL     string
	Ingredients  []string
	Instructions string
}

// DrinkService handles drink recipes, including the ownership rules on
// mutation.
type DrinkService interface {
	Create(ctx context.Context, in DrinkInput, owner string) (*model.Drink, error)
	CreateOrGet(ctx context.Context, in DrinkInput, owner string) (*model.Drink, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Drink, error)
	GetRandom(ctx context.Context) (*model.Drink, error)
	List(ctx context.Context) ([]model.Drink, error)
	ListLatest(ctx context.Context) ([]model.Drink, error)
	ListByOwner(ctx context.Context, owner string) ([]model.Drink, error)
	CountByOwner(ctx context.Context, owner string) (int64, error)
	Update(ctx context.Context, id uuid.UUID, in DrinkInput, actingUsername string) (*model.Drink, error)
	Delete(ctx context.Context, id uuid.UUID, actingUsername string) error
}

type drinkService struct {
	drinkRepo repository.DrinkRepository
	now       func() time.Time
}

// NewDrinkService creates a new drink service.
func NewDrinkService(drinkRepo repository.DrinkRepository) DrinkService {
	return &drinkService{drinkRepo: drinkRepo, now: time.Now}
}

// Create always inserts, duplicates and all. The owner comes from the session
// identity, never from the payload.
func (s *drinkService) Create(ctx context.Context, in DrinkInput, owner string) (*model.Drink, error) {
	if owner == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	drink := &model.Drink{
		DrinkName:      titleCase(in.Name),
		DrinkImage:     in.ImageURL,
		IngredientList: in.Ingredients,
		Instructions:   in.Instructions,
		ModifiedDate:   s.now(),
		CreatedBy:      owner,
	}

	if err := s.drinkRepo.Create(ctx, drink); err != nil {
		return nil, fmt.Errorf("%w: create drink: %v", apperrors.ErrStoreUnavailable, err)
	}
	return drink, nil
}

// CreateOrGet is the soft-dedup insert: when a drink with the same normalized
// name exists, the existing record is returned untouched and nothing is
// written. First writer wins; no error is surfaced.
func (s *drinkService) CreateOrGet(ctx context.Context, in DrinkInput, owner string) (*model.Drink, error) {
	if owner == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	existing, err := s.drinkRepo.FindByName(ctx, titleCase(in.Name))
	if err == nil && existing != nil {
		return existing, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: check drink name: %v", apperrors.ErrStoreUnavailable, err)
	}

	return s.Create(ctx, in, owner)
}

func (s *drinkService) Get(ctx context.Context, id uuid.UUID) (*model.Drink, error) {
	drink, err := s.drinkRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: find drink: %v", apperrors.ErrStoreUnavailable, err)
	}
	return drink, nil
}

// GetRandom selects uniformly among all drinks. Count and selection are two
// store calls, so an offset can land past the end when the collection shrinks
// in between; those misses retry, and only a confirmed-empty collection
// (or a collection churning through every attempt) reports empty.
func (s *drinkService) GetRandom(ctx context.Context) (*model.Drink, error) {
	for attempt := 0; attempt < randomAttempts; attempt++ {
		count, err := s.drinkRepo.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: count drinks: %v", apperrors.ErrStoreUnavailable, err)
		}
		if count == 0 {
			return nil, apperrors.ErrEmptyCollection
		}

		drink, err := s.drinkRepo.FindAtOffset(ctx, rand.Intn(int(count)))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: select drink: %v", apperrors.ErrStoreUnavailable, err)
		}
		return drink, nil
	}
	return nil, apperrors.ErrEmptyCollection
}

func (s *drinkService) List(ctx context.Context) ([]model.Drink, error) {
	drinks, err := s.drinkRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list drinks: %v", apperrors.ErrStoreUnavailable, err)
	}
	return drinks, nil
}

func (s *drinkService) ListLatest(ctx context.Context) ([]model.Drink, error) {
	drinks, err := s.drinkRepo.ListLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list drinks: %v", apperrors.ErrStoreUnavailable, err)
	}
	return drinks, nil
}

func (s *drinkService) ListByOwner(ctx context.Context, owner string) ([]model.Drink, error) {
	drinks, err := s.drinkRepo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%w: list drinks by owner: %v", apperrors.ErrStoreUnavailable, err)
	}
	return drinks, nil
}

func (s *drinkService) CountByOwner(ctx context.Context, owner string) (int64, error) {
	count, err := s.drinkRepo.CountByOwner(ctx, owner)
	if err != nil {
		return 0, fmt.Errorf("%w: count drinks by owner: %v", apperrors.ErrStoreUnavailable, err)
	}
	return count, nil
}

// Update replaces the supplied fields and refreshes the modification time.
// Only the creator may update; CreatedBy itself never changes. Missing ids
// never turn into inserts.
func (s *drinkService) Update(ctx context.Context, id uuid.UUID, in DrinkInput, actingUsername string) (*model.Drink, error) {
	if actingUsername == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	drink, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if drink.CreatedBy != actingUsername {
		return nil, apperrors.ErrForbidden
	}

	drink.DrinkName = titleCase(in.Name)
	drink.DrinkImage = in.ImageURL
	drink.IngredientList = in.Ingredients
	drink.Instructions = in.Instructions
	drink.ModifiedDate = s.now()

	if err := s.drinkRepo.Update(ctx, drink); err != nil {
		return nil, fmt.Errorf("%w: update drink: %v", apperrors.ErrStoreUnavailable, err)
	}
	return drink, nil
}

// Delete removes a drink. Unauthenticated callers fail before the lookup;
// a missing drink reports not-found regardless of identity; a non-owner is
// refused. The delete itself is unconditional once authorized.
func (s *drinkService) Delete(ctx context.Context, id uuid.UUID, actingUsername string) error {
	if actingUsername == "" {
		return apperrors.ErrUnauthenticated
	}

	drink, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if drink.CreatedBy != actingUsername {
		return apperrors.ErrForbidden
	}

	if err := s.drinkRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: delete drink: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}
