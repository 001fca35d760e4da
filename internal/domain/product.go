package domain

import (
	"time"

	"github.com/gosimple/slug"
)

// Product описывает товар каталога
type Product struct {
	ID               int64
	CategoryID       int64
	Name             string
	Slug             string
	SKU              string
	Price            int64 // Цена хранится в копейках
	Stock            int32 // Остаток на складе, не может быть отрицательным
	ShortDescription string
	Description      string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// NewProduct создает товар, порождая slug из имени, если он не задан.
func NewProduct(name, slugValue, sku string, price int64, stock int32, categoryID int64, shortDescription, description string) *Product {
	if slugValue == "" {
		slugValue = slug.Make(name)
	}

	return &Product{
		CategoryID:       categoryID,
		Name:             name,
		Slug:             slugValue,
		SKU:              sku,
		Price:            price,
		Stock:            stock,
		ShortDescription: shortDescription,
		Description:      description,
		IsActive:         true,
	}
}
