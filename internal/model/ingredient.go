package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is a shelf entry drinks reference by name. Ingredients are
// immutable once created; there is no edit or delete flow.
//
// Column names keep the historical document field names. The collection was
// historically misspelled "ingedients"; the rename to "ingredients" is applied
// everywhere here.
type Ingredient struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	IngredientName  string    `json:"ingredientName" gorm:"column:ingredientName;size:255;uniqueIndex;not null"`
	IngredientImage string    `json:"ingredientImage" gorm:"column:ingredientImage;size:1024"`
	ModifiedDate    time.Time `json:"modifiedDate" gorm:"column:modifiedDate;not null"`
}

// TableName overrides the GORM default pluralization.
func (Ingredient) TableName() string { return "ingredients" }

// BeforeCreate sets UUID before creating the record.
func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
