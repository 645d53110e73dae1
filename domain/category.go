package domain

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID        uuid.UUID
	Name      CategoryName
	Color     HexColor
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCategory(name CategoryName, color HexColor, userID uuid.UUID) Category {
	return Category{
		ID:     uuid.New(),
		Name:   name,
		Color:  color,
		UserID: userID,
	}
}

func CategoryFromPrimitives(id uuid.UUID, name, color string, userID uuid.UUID, createdAt, updatedAt time.Time) Category {
	return Category{
		ID:        id,
		Name:      CategoryName(name),
		Color:     HexColor(color),
		UserID:    userID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func (c *Category) UpdateName(name CategoryName) {
	c.Name = name
}

func (c *Category) UpdateColor(color HexColor) {
	c.Color = color
}
