package domain

import (
	"time"

	"github.com/google/uuid"
)

type Tag struct {
	ID        uuid.UUID
	Name      TagName
	Color     HexColor
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TagInfo is the tag summary attached to task reads.
type TagInfo struct {
	ID    uuid.UUID
	Name  string
	Color string
}

func NewTag(name TagName, color HexColor, userID uuid.UUID) Tag {
	return Tag{
		ID:     uuid.New(),
		Name:   name,
		Color:  color,
		UserID: userID,
	}
}

func TagFromPrimitives(id uuid.UUID, name, color string, userID uuid.UUID, createdAt, updatedAt time.Time) Tag {
	return Tag{
		ID:        id,
		Name:      TagName(name),
		Color:     HexColor(color),
		UserID:    userID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func (t *Tag) UpdateName(name TagName) {
	t.Name = name
}

func (t *Tag) UpdateColor(color HexColor) {
	t.Color = color
}
