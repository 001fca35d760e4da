package domain

import (
	"time"

	"github.com/gosimple/slug"
)

// Category описывает категорию товаров каталога
type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// NewCategory создает категорию, порождая slug из имени, если он не задан.
func NewCategory(name, slugValue, description string) *Category {
	if slugValue == "" {
		slugValue = slug.Make(name)
	}

	return &Category{
		Name:        name,
		Slug:        slugValue,
		Description: description,
	}
}
