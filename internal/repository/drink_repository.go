package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mixbook/internal/model"
)

// DrinkRepository defines drink persistence operations.
type DrinkRepository interface {
	Create(ctx context.Context, drink *model.Drink) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Drink, error)
	FindByName(ctx context.Context, name string) (*model.Drink, error)
	FindAtOffset(ctx context.Context, offset int) (*model.Drink, error)
	List(ctx context.Context) ([]model.Drink, error)
	ListLatest(ctx context.Context) ([]model.Drink, error)
	ListByOwner(ctx context.Context, owner string) ([]model.Drink, error)
	CountByOwner(ctx context.Context, owner string) (int64, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, drink *model.Drink) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type drinkRepository struct {
	db *gorm.DB
}

// NewDrinkRepository creates a new drink repository.
func NewDrinkRepository(db *gorm.DB) DrinkRepository {
	return &drinkRepository{db: db}
}

func (r *drinkRepository) Create(ctx context.Context, drink *model.Drink) error {
	return r.db.WithContext(ctx).Create(drink).Error
}

func (r *drinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Drink, error) {
	var drink model.Drink
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&drink).Error; err != nil {
		return nil, err
	}
	return &drink, nil
}

// FindByName returns the first drink with the given (normalized) name. Names
// are not unique, so which duplicate wins is store order.
func (r *drinkRepository) FindByName(ctx context.Context, name string) (*model.Drink, error) {
	var drink model.Drink
	if err := r.db.WithContext(ctx).Where("drinkName = ?", name).First(&drink).Error; err != nil {
		return nil, err
	}
	return &drink, nil
}

// FindAtOffset returns the drink at a stable offset into the collection.
// Offsets past the end come back as gorm.ErrRecordNotFound; with concurrent
// deletes that is an expected outcome, not a failure.
func (r *drinkRepository) FindAtOffset(ctx context.Context, offset int) (*model.Drink, error) {
	var drink model.Drink
	if err := r.db.WithContext(ctx).Order("id").Offset(offset).First(&drink).Error; err != nil {
		return nil, err
	}
	return &drink, nil
}

func (r *drinkRepository) List(ctx context.Context) ([]model.Drink, error) {
	var drinks []model.Drink
	if err := r.db.WithContext(ctx).Find(&drinks).Error; err != nil {
		return nil, err
	}
	return drinks, nil
}

// ListLatest orders by modification time, newest first, for the home page.
func (r *drinkRepository) ListLatest(ctx context.Context) ([]model.Drink, error) {
	var drinks []model.Drink
	if err := r.db.WithContext(ctx).Order("modifiedDate DESC").Find(&drinks).Error; err != nil {
		return nil, err
	}
	return drinks, nil
}

func (r *drinkRepository) ListByOwner(ctx context.Context, owner string) ([]model.Drink, error) {
	var drinks []model.Drink
	if err := r.db.WithContext(ctx).Where("createdBy = ?", owner).Find(&drinks).Error; err != nil {
		return nil, err
	}
	return drinks, nil
}

func (r *drinkRepository) CountByOwner(ctx context.Context, owner string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Drink{}).Where("createdBy = ?", owner).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *drinkRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Drink{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *drinkRepository) Update(ctx context.Context, drink *model.Drink) error {
	return r.db.WithContext(ctx).Save(drink).Error
}

func (r *drinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Drink{}).Error
}
