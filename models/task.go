package models

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"size:255;not null"`
	Description *string   `gorm:"size:1000"`
	Completed   bool      `gorm:"not null;default:false"`
	Priority    string    `gorm:"size:10;not null;default:'MEDIUM'"`
	DueDate     *time.Time
	CompletedAt *time.Time
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	TaskTags    []TaskTag `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}
