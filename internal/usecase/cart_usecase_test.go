package usecase

import (
	"context"
	"testing"

	"github.com/rexonmold/shop-backend/internal/domain"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionID = "session-1"

func testProduct(id int64, name string, price int64, stock int32) *domain.Product {
	product := domain.NewProduct(name, "", name+"-sku", price, stock, 1, "", "")
	product.ID = id

	return product
}

func TestCartUseCase_AddToCart_NewLine(t *testing.T) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo(testProduct(1, "Tea", 1000, 5))
	uc := NewCartUC(cartRepo, productRepo, nopLogger{})

	res, err := uc.AddToCart(context.Background(), testSessionID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Tea", res.ProductName)
	assert.Equal(t, int32(1), res.Qty)

	cart := cartRepo.carts[testSessionID]
	require.Len(t, cart, 1)
	assert.Equal(t, domain.CartLine{Name: "Tea", Price: 1000, Qty: 1}, cart[1])
}

func TestCartUseCase_AddToCart_IncrementsExistingLine(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartRepo.carts[testSessionID] = domain.Cart{1: domain.NewCartLine("Tea", 1000, 2)}
	productRepo := newFakeProductRepo(testProduct(1, "Tea", 1000, 5))
	uc := NewCartUC(cartRepo, productRepo, nopLogger{})

	res, err := uc.AddToCart(context.Background(), testSessionID, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(3), res.Qty)
}

func TestCartUseCase_AddToCart_OutOfStock(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartRepo.carts[testSessionID] = domain.Cart{1: domain.NewCartLine("Tea", 1000, 2)}
	productRepo := newFakeProductRepo(testProduct(1, "Tea", 1000, 2))
	uc := NewCartUC(cartRepo, productRepo, nopLogger{})

	_, err := uc.AddToCart(context.Background(), testSessionID, 1)
	require.ErrorIs(t, err, e.ErrOutOfStock)

	// Количество не изменилось и сохранения не было
	assert.Equal(t, int32(2), cartRepo.carts[testSessionID][1].Qty)
	assert.Zero(t, cartRepo.saves)
}

func TestCartUseCase_AddToCart_ZeroStock(t *testing.T) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo(testProduct(1, "Tea", 1000, 0))
	uc := NewCartUC(cartRepo, productRepo, nopLogger{})

	_, err := uc.AddToCart(context.Background(), testSessionID, 1)
	require.ErrorIs(t, err, e.ErrOutOfStock)
}

func TestCartUseCase_AddToCart_InactiveProduct(t *testing.T) {
	product := testProduct(1, "Tea", 1000, 5)
	product.IsActive = false

	uc := NewCartUC(newFakeCartRepo(), newFakeProductRepo(product), nopLogger{})

	_, err := uc.AddToCart(context.Background(), testSessionID, 1)
	require.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCartUseCase_UpdateCart_SetsQuantity(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartRepo.carts[testSessionID] = domain.Cart{1: domain.NewCartLine("Tea", 1000, 1)}
	uc := NewCartUC(cartRepo, newFakeProductRepo(), nopLogger{})

	require.NoError(t, uc.UpdateCart(context.Background(), testSessionID, 1, 7))
	assert.Equal(t, int32(7), cartRepo.carts[testSessionID][1].Qty)
}

func TestCartUseCase_UpdateCart_ZeroRemovesLine(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartRepo.carts[testSessionID] = domain.Cart{1: domain.NewCartLine("Tea", 1000, 3)}
	uc := NewCartUC(cartRepo, newFakeProductRepo(), nopLogger{})

	require.NoError(t, uc.UpdateCart(context.Background(), testSessionID, 1, 0))
	assert.Empty(t, cartRepo.carts[testSessionID])
}

func TestCartUseCase_UpdateCart_UnknownLineIsNoop(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartRepo.carts[testSessionID] = domain.Cart{1: domain.NewCartLine("Tea", 1000, 3)}
	uc := NewCartUC(cartRepo, newFakeProductRepo(), nopLogger{})

	require.NoError(t, uc.UpdateCart(context.Background(), testSessionID, 99, 5))
	assert.Zero(t, cartRepo.saves)
	assert.Equal(t, int32(3), cartRepo.carts[testSessionID][1].Qty)
}

func TestCartUseCase_RemoveFromCart(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartRepo.carts[testSessionID] = domain.Cart{
		1: domain.NewCartLine("Tea", 1000, 3),
		2: domain.NewCartLine("Coffee", 500, 1),
	}
	uc := NewCartUC(cartRepo, newFakeProductRepo(), nopLogger{})

	require.NoError(t, uc.RemoveFromCart(context.Background(), testSessionID, 1))

	cart := cartRepo.carts[testSessionID]
	require.Len(t, cart, 1)
	assert.Contains(t, cart, int64(2))
}

func TestCartUseCase_ViewCart_Totals(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartRepo.carts[testSessionID] = domain.Cart{
		1: domain.NewCartLine("Tea", 1000, 3),
		2: domain.NewCartLine("Coffee", 500, 1),
	}
	productRepo := newFakeProductRepo(
		testProduct(1, "Tea", 1000, 10),
		testProduct(2, "Coffee", 500, 10),
	)
	uc := NewCartUC(cartRepo, productRepo, nopLogger{})

	res, err := uc.ViewCart(context.Background(), testSessionID)
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, int64(3500), res.Total)
	assert.Equal(t, int32(4), res.Count)
	assert.Equal(t, int64(3000), res.Items[0].LineTotal)
	assert.Equal(t, int64(500), res.Items[1].LineTotal)
}

func TestCartUseCase_ViewCart_SkipsVanishedProducts(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartRepo.carts[testSessionID] = domain.Cart{
		1: domain.NewCartLine("Tea", 1000, 2),
		9: domain.NewCartLine("Ghost", 300, 1),
	}
	productRepo := newFakeProductRepo(testProduct(1, "Tea", 1000, 10))
	uc := NewCartUC(cartRepo, productRepo, nopLogger{})

	res, err := uc.ViewCart(context.Background(), testSessionID)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, int64(1), res.Items[0].ProductID)
}

func TestCartUseCase_ViewCart_UsesCartPriceSnapshot(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartRepo.carts[testSessionID] = domain.Cart{1: domain.NewCartLine("Tea", 1000, 2)}
	// Живая цена выросла после добавления в корзину
	productRepo := newFakeProductRepo(testProduct(1, "Tea", 1500, 10))
	uc := NewCartUC(cartRepo, productRepo, nopLogger{})

	res, err := uc.ViewCart(context.Background(), testSessionID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), res.Items[0].Price)
	assert.Equal(t, int64(2000), res.Total)
}
