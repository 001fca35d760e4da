package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_Totals(t *testing.T) {
	cart := Cart{
		1: NewCartLine("Tea", 1000, 3),
		2: NewCartLine("Coffee", 500, 1),
	}

	total, count := cart.Totals()
	assert.Equal(t, int64(3500), total)
	assert.Equal(t, int32(4), count)
}

func TestCart_IsEmpty(t *testing.T) {
	assert.True(t, Cart{}.IsEmpty())
	assert.True(t, Cart{1: NewCartLine("Tea", 1000, 0)}.IsEmpty())
	assert.False(t, Cart{1: NewCartLine("Tea", 1000, 1)}.IsEmpty())
}

func TestNewProduct_DerivesSlug(t *testing.T) {
	product := NewProduct("Green Tea 250g", "", "SKU-1", 1000, 5, 1, "", "")
	assert.Equal(t, "green-tea-250g", product.Slug)
	assert.True(t, product.IsActive)

	explicit := NewProduct("Green Tea", "custom-slug", "SKU-2", 1000, 5, 1, "", "")
	assert.Equal(t, "custom-slug", explicit.Slug)
}

func TestNewCategory_DerivesSlug(t *testing.T) {
	category := NewCategory("Home & Kitchen", "", "")
	assert.Equal(t, "home-kitchen", category.Slug)
}

func TestNewOrder_Defaults(t *testing.T) {
	order := NewOrder(nil, "a@b.c", "A", "addr", "city", "st", "00000", "India", 3500)
	assert.False(t, order.Paid)
	assert.Equal(t, PaymentMethodCOD, order.PaymentMethod)
	assert.Equal(t, PaymentReferenceCOD, order.PaymentReference)
	assert.Nil(t, order.UserID)
}

func TestOrderItem_LineTotal(t *testing.T) {
	item := NewOrderItem(1, 2, "Tea", 3, 1000)
	assert.Equal(t, int64(3000), item.LineTotal())
}
