package category

import (
	"fmt"
	"time"

	"nagarsetu/internal/shared/biztime"
)

const (
	DefaultIcon  = "folder"
	DefaultColor = "#3B82F6"
)

// Category groups issues by civic service area (roads, water, waste, ...).
type Category struct {
	id          uint
	name        string
	description string
	icon        string
	color       string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCategory(name, description, icon, color string) (*Category, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}

	if icon == "" {
		icon = DefaultIcon
	}
	if color == "" {
		color = DefaultColor
	}

	now := biztime.NowUTC()
	return &Category{
		name:        name,
		description: description,
		icon:        icon,
		color:       color,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCategory(id uint, name, description, icon, color string, createdAt, updatedAt time.Time) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Category{
		id:          id,
		name:        name,
		description: description,
		icon:        icon,
		color:       color,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Description() string {
	return c.description
}

func (c *Category) Icon() string {
	return c.icon
}

func (c *Category) Color() string {
	return c.color
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Category) Update(name, description, icon, color string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}

	c.name = name
	c.description = description
	if icon != "" {
		c.icon = icon
	}
	if color != "" {
		c.color = color
	}
	c.updatedAt = biztime.NowUTC()
	return nil
}
