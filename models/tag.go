package models

import (
	"time"

	"github.com/google/uuid"
)

type Tag struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:50;not null"`
	Color     *string   `gorm:"size:7"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TaskTag is the task-tag join row. The composite primary key makes
// duplicate assignments impossible at the storage level.
type TaskTag struct {
	TaskID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Tag    Tag       `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}
