package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Drink is a recipe owned by the user who created it.
//
// IngredientList holds ingredient names in selection order; duplicates are
// allowed and names are weak references (a dangling name renders fine, it just
// has no shelf entry behind it). CreatedBy is set once from the session
// identity at creation and never changes afterwards.
type Drink struct {
	ID             uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	DrinkName      string    `json:"drinkName" gorm:"column:drinkName;size:255;not null;index"`
	DrinkImage     string    `json:"drinkImage" gorm:"column:drinkImage;size:1024"`
	IngredientList []string  `json:"ingredientList" gorm:"column:ingredientList;serializer:json;type:json"`
	Instructions   string    `json:"instructions" gorm:"column:instructions;type:text"`
	ModifiedDate   time.Time `json:"modifiedDate" gorm:"column:modifiedDate;not null;index"`
	CreatedBy      string    `json:"createdBy" gorm:"column:createdBy;size:64;not null;index"`
}

// BeforeCreate sets UUID before creating the record.
func (d *Drink) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
