package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account. Users are created once and never
// edited or removed; the username is the identity every drink refers back to.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Username     string    `json:"username" gorm:"column:username;type:varchar(64) COLLATE utf8mb4_bin;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"column:email;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"column:passwordHash;size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
