package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rexonmold/shop-backend/internal/domain"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutUC(cartRepo *fakeCartRepo, productRepo *fakeProductRepo, orderRepo *fakeOrderRepo,
	profileRepo *fakeProfileRepo, userRepo *fakeUserRepo, outboxRepo *fakeOutboxRepo) *CheckoutUseCase {
	return NewCheckoutUC(cartRepo, productRepo, orderRepo, profileRepo, userRepo, outboxRepo, nil, nopLogger{})
}

func TestCheckoutUseCase_Prefill_EmptyCart(t *testing.T) {
	uc := newCheckoutUC(newFakeCartRepo(), newFakeProductRepo(), newFakeOrderRepo(),
		newFakeProfileRepo(), newFakeUserRepo(), &fakeOutboxRepo{})

	_, err := uc.Prefill(context.Background(), testSessionID, nil)
	require.ErrorIs(t, err, e.ErrCartEmpty)
}

func TestCheckoutUseCase_Prefill_Anonymous(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartRepo.carts[testSessionID] = domain.Cart{1: domain.NewCartLine("Tea", 1000, 2)}
	uc := newCheckoutUC(cartRepo, newFakeProductRepo(), newFakeOrderRepo(),
		newFakeProfileRepo(), newFakeUserRepo(), &fakeOutboxRepo{})

	res, err := uc.Prefill(context.Background(), testSessionID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), res.Total)
	assert.Equal(t, int32(2), res.Count)
	assert.Equal(t, CheckoutForm{Country: domain.DefaultCountry}, res.Form)
}

func TestCheckoutUseCase_Prefill_WithUserAndProfile(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartRepo.carts[testSessionID] = domain.Cart{1: domain.NewCartLine("Tea", 1000, 1)}

	user := &domain.User{ID: 42, Email: "alice@example.com", FullName: "Alice"}
	profile := &domain.CustomerProfile{
		UserID:       42,
		AddressLine1: "12 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		PostalCode:   "560001",
		Country:      "India",
	}

	uc := newCheckoutUC(cartRepo, newFakeProductRepo(), newFakeOrderRepo(),
		newFakeProfileRepo(profile), newFakeUserRepo(user), &fakeOutboxRepo{})

	userID := int64(42)
	res, err := uc.Prefill(context.Background(), testSessionID, &userID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", res.Form.Email)
	assert.Equal(t, "Alice", res.Form.FullName)
	assert.Equal(t, "12 MG Road", res.Form.Address)
	assert.Equal(t, "Bengaluru", res.Form.City)
	assert.Equal(t, "560001", res.Form.PostalCode)
}

func TestCheckoutUseCase_Prefill_MissingProfileIsNotAnError(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartRepo.carts[testSessionID] = domain.Cart{1: domain.NewCartLine("Tea", 1000, 1)}

	user := &domain.User{ID: 42, Email: "alice@example.com", FullName: "Alice"}
	uc := newCheckoutUC(cartRepo, newFakeProductRepo(), newFakeOrderRepo(),
		newFakeProfileRepo(), newFakeUserRepo(user), &fakeOutboxRepo{})

	userID := int64(42)
	res, err := uc.Prefill(context.Background(), testSessionID, &userID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", res.Form.Email)
	assert.Equal(t, domain.DefaultCountry, res.Form.Country)
	assert.Empty(t, res.Form.Address)
}

func TestCheckoutUseCase_PlaceOrder_EmptyCart(t *testing.T) {
	uc := newCheckoutUC(newFakeCartRepo(), newFakeProductRepo(), newFakeOrderRepo(),
		newFakeProfileRepo(), newFakeUserRepo(), &fakeOutboxRepo{})

	_, err := uc.PlaceOrder(context.Background(), &PlaceOrderReq{SessionID: testSessionID})
	require.ErrorIs(t, err, e.ErrCartEmpty)
}

func testCheckoutForm() CheckoutForm {
	return CheckoutForm{
		Email:      "bob@example.com",
		FullName:   "Bob",
		Address:    "12 MG Road",
		City:       "Bengaluru",
		State:      "Karnataka",
		PostalCode: "560001",
		Country:    "India",
	}
}

func TestCheckoutUseCase_PlaceOrder(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartRepo.carts[testSessionID] = domain.Cart{
		1: domain.NewCartLine("Tea", 1000, 3),
		2: domain.NewCartLine("Coffee", 500, 1),
	}
	productRepo := newFakeProductRepo(
		testProduct(1, "Tea", 1000, 10),
		testProduct(2, "Coffee", 500, 5),
	)
	orderRepo := newFakeOrderRepo()
	outboxRepo := &fakeOutboxRepo{}
	db := &fakeDB{}

	uc := NewCheckoutUC(cartRepo, productRepo, orderRepo,
		newFakeProfileRepo(), newFakeUserRepo(), outboxRepo, db, nopLogger{})

	res, err := uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		SessionID: testSessionID,
		Form:      testCheckoutForm(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3500), res.Total)

	order := orderRepo.orders[res.OrderID]
	require.NotNil(t, order)
	assert.Equal(t, int64(3500), order.Total)
	assert.False(t, order.Paid)
	assert.Nil(t, order.UserID)
	require.Len(t, orderRepo.items, 2)

	// Событие о заказе уходит в outbox в той же транзакции
	require.Len(t, outboxRepo.events, 1)
	assert.Equal(t, res.OrderID, outboxRepo.events[0].OrderID)

	// Корзина очищена, транзакция закоммичена
	assert.Equal(t, []string{testSessionID}, cartRepo.deleted)
	assert.Equal(t, 1, db.tx.commits)
	assert.Equal(t, 0, db.tx.rollbacks)
}

func TestCheckoutUseCase_PlaceOrder_TotalIsCartTotalAtSubmit(t *testing.T) {
	// Урезание позиции до остатка не пересчитывает итог заказа
	cartRepo := newFakeCartRepo()
	cartRepo.carts[testSessionID] = domain.Cart{1: domain.NewCartLine("Tea", 1000, 5)}
	productRepo := newFakeProductRepo(testProduct(1, "Tea", 1000, 2))
	orderRepo := newFakeOrderRepo()
	db := &fakeDB{}

	uc := NewCheckoutUC(cartRepo, productRepo, orderRepo,
		newFakeProfileRepo(), newFakeUserRepo(), &fakeOutboxRepo{}, db, nopLogger{})

	res, err := uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		SessionID: testSessionID,
		Form:      testCheckoutForm(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), res.Total)

	require.Len(t, orderRepo.items, 1)
	assert.Equal(t, int32(2), orderRepo.items[0].Quantity)
	assert.Equal(t, []string{testSessionID}, cartRepo.deleted)
}

func TestCheckoutUseCase_PlaceOrder_SavesProfileAddress(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartRepo.carts[testSessionID] = domain.Cart{1: domain.NewCartLine("Tea", 1000, 1)}
	productRepo := newFakeProductRepo(testProduct(1, "Tea", 1000, 10))
	profileRepo := newFakeProfileRepo()
	db := &fakeDB{}

	uc := NewCheckoutUC(cartRepo, productRepo, newFakeOrderRepo(),
		profileRepo, newFakeUserRepo(), &fakeOutboxRepo{}, db, nopLogger{})

	userID := int64(42)
	res, err := uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		SessionID: testSessionID,
		UserID:    &userID,
		Form:      testCheckoutForm(),
	})
	require.NoError(t, err)
	assert.NotZero(t, res.OrderID)

	profile, err := profileRepo.GetByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "12 MG Road", profile.AddressLine1)
	assert.Equal(t, "Bengaluru", profile.City)
	assert.Equal(t, "560001", profile.PostalCode)
}

func TestCheckoutUseCase_PlaceOrder_RollsBackOnOutboxError(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartRepo.carts[testSessionID] = domain.Cart{1: domain.NewCartLine("Tea", 1000, 1)}
	productRepo := newFakeProductRepo(testProduct(1, "Tea", 1000, 10))
	db := &fakeDB{}

	uc := NewCheckoutUC(cartRepo, productRepo, newFakeOrderRepo(),
		newFakeProfileRepo(), newFakeUserRepo(),
		&fakeOutboxRepo{createErr: fmt.Errorf("insert failed")}, db, nopLogger{})

	_, err := uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		SessionID: testSessionID,
		Form:      testCheckoutForm(),
	})
	require.Error(t, err)

	assert.Equal(t, 0, db.tx.commits)
	assert.Equal(t, 1, db.tx.rollbacks)
	assert.Empty(t, cartRepo.deleted)
}

func TestCheckoutUseCase_CreateOrderItems_TwoLines(t *testing.T) {
	productRepo := newFakeProductRepo(
		testProduct(1, "Tea", 1000, 10),
		testProduct(2, "Coffee", 500, 5),
	)
	orderRepo := newFakeOrderRepo()
	uc := newCheckoutUC(newFakeCartRepo(), productRepo, orderRepo,
		newFakeProfileRepo(), newFakeUserRepo(), &fakeOutboxRepo{})

	cart := domain.Cart{
		1: domain.NewCartLine("Tea", 1000, 3),
		2: domain.NewCartLine("Coffee", 500, 1),
	}

	items, err := uc.createOrderItems(context.Background(), 7, cart)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, int64(7), items[0].OrderID)
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, "Tea", items[0].Name)
	assert.Equal(t, int32(3), items[0].Quantity)
	assert.Equal(t, int64(1000), items[0].Price)
	assert.Equal(t, int64(3000), items[0].LineTotal())

	assert.Equal(t, int64(2), items[1].ProductID)
	assert.Equal(t, int32(1), items[1].Quantity)

	assert.Equal(t, int32(3), productRepo.decrements[1])
	assert.Equal(t, int32(1), productRepo.decrements[2])
}

func TestCheckoutUseCase_CreateOrderItems_ClampsToStock(t *testing.T) {
	productRepo := newFakeProductRepo(testProduct(1, "Tea", 1000, 2))
	uc := newCheckoutUC(newFakeCartRepo(), productRepo, newFakeOrderRepo(),
		newFakeProfileRepo(), newFakeUserRepo(), &fakeOutboxRepo{})

	cart := domain.Cart{1: domain.NewCartLine("Tea", 1000, 5)}

	items, err := uc.createOrderItems(context.Background(), 1, cart)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int32(2), items[0].Quantity)
	assert.Equal(t, int32(2), productRepo.decrements[1])
	assert.Equal(t, int32(0), productRepo.products[1].Stock)
}

func TestCheckoutUseCase_CreateOrderItems_SkipsVanishedAndZeroStock(t *testing.T) {
	productRepo := newFakeProductRepo(
		testProduct(1, "Tea", 1000, 3),
		testProduct(2, "Coffee", 500, 0),
	)
	uc := newCheckoutUC(newFakeCartRepo(), productRepo, newFakeOrderRepo(),
		newFakeProfileRepo(), newFakeUserRepo(), &fakeOutboxRepo{})

	cart := domain.Cart{
		1: domain.NewCartLine("Tea", 1000, 1),
		2: domain.NewCartLine("Coffee", 500, 2),
		9: domain.NewCartLine("Ghost", 300, 1),
	}

	items, err := uc.createOrderItems(context.Background(), 1, cart)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.NotContains(t, productRepo.decrements, int64(2))
	assert.NotContains(t, productRepo.decrements, int64(9))
}

func TestCheckoutUseCase_CreateOrderItems_SnapshotsLivePrice(t *testing.T) {
	// Цена товара изменилась между добавлением в корзину и оформлением
	productRepo := newFakeProductRepo(testProduct(1, "Tea", 1200, 10))
	uc := newCheckoutUC(newFakeCartRepo(), productRepo, newFakeOrderRepo(),
		newFakeProfileRepo(), newFakeUserRepo(), &fakeOutboxRepo{})

	cart := domain.Cart{1: domain.NewCartLine("Tea", 1000, 1)}

	items, err := uc.createOrderItems(context.Background(), 1, cart)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), items[0].Price)
}

func TestCheckoutUseCase_GetOrder(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	order, err := orderRepo.Create(context.Background(), domain.NewOrder(
		nil, "bob@example.com", "Bob", "addr", "city", "st", "00000", "India", 3500,
	))
	require.NoError(t, err)

	_, err = orderRepo.AddItem(context.Background(), domain.NewOrderItem(order.ID, 1, "Tea", 3, 1000))
	require.NoError(t, err)

	uc := newCheckoutUC(newFakeCartRepo(), newFakeProductRepo(), orderRepo,
		newFakeProfileRepo(), newFakeUserRepo(), &fakeOutboxRepo{})

	res, err := uc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3500), res.Order.Total)
	assert.False(t, res.Order.Paid)
	assert.Equal(t, domain.PaymentMethodCOD, res.Order.PaymentMethod)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Tea", res.Items[0].Name)
}

func TestCheckoutUseCase_GetOrder_NotFound(t *testing.T) {
	uc := newCheckoutUC(newFakeCartRepo(), newFakeProductRepo(), newFakeOrderRepo(),
		newFakeProfileRepo(), newFakeUserRepo(), &fakeOutboxRepo{})

	_, err := uc.GetOrder(context.Background(), 999)
	require.ErrorIs(t, err, e.ErrOrderNotFound)
}

func TestNewOrderPlacedEvent(t *testing.T) {
	order := domain.NewOrder(nil, "bob@example.com", "Bob", "addr", "city", "st", "00000", "India", 3500)
	order.ID = 7

	items := []*domain.OrderItem{
		domain.NewOrderItem(7, 1, "Tea", 3, 1000),
		domain.NewOrderItem(7, 2, "Coffee", 1, 500),
	}

	event, err := NewOrderPlacedEvent(order, items)
	require.NoError(t, err)
	assert.Equal(t, int64(7), event.OrderID)
	assert.Equal(t, Pending, event.Status)
	assert.NotEmpty(t, event.EventID)

	var payload OrderPlacedPayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, int64(7), payload.OrderID)
	assert.Equal(t, int64(3500), payload.Total)
	require.Len(t, payload.Items, 2)
	assert.Equal(t, int64(1), payload.Items[0].ProductID)
	assert.Equal(t, int32(3), payload.Items[0].Quantity)
}
