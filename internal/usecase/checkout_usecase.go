package usecase

import (
	"context"
	"errors"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/rexonmold/shop-backend/internal/domain"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/rexonmold/shop-backend/pkg/logger"
)

// CheckoutUseCase превращает корзину сессии в заказ со строками,
// списывая остатки в одной транзакции.
type CheckoutUseCase struct {
	cartRepo    CartRepository
	productRepo ProductRepository
	orderRepo   OrderRepository
	profileRepo ProfileRepository
	userRepo    UserRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewCheckoutUC(
	cartRepo CartRepository,
	productRepo ProductRepository,
	orderRepo OrderRepository,
	profileRepo ProfileRepository,
	userRepo UserRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// Prefill возвращает итоги корзины и предзаполнение формы данными
// пользователя и его профиля. Пустая корзина — e.ErrCartEmpty.
func (c *CheckoutUseCase) Prefill(ctx context.Context, sessionID string, userID *int64) (*CheckoutPrefillRes, error) {
	const op = "CheckoutUseCase.Prefill"

	cart, err := c.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	total, count := cart.Totals()
	if count == 0 {
		return nil, e.Wrap(op, e.ErrCartEmpty)
	}

	form := CheckoutForm{Country: domain.DefaultCountry}
	if userID != nil {
		user, err := c.userRepo.GetByID(ctx, *userID)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		form.Email = user.Email
		form.FullName = user.FullName

		profile, err := c.profileRepo.GetByUserID(ctx, *userID)
		if err == nil {
			form.Address = profile.AddressLine1
			form.City = profile.City
			form.State = profile.State
			form.PostalCode = profile.PostalCode
			form.Country = profile.Country
		} else if !errors.Is(err, e.ErrProfileNotFound) {
			return nil, e.Wrap(op, err)
		}
	}

	return &CheckoutPrefillRes{
		Form:  form,
		Total: total,
		Count: count,
	}, nil
}

// PlaceOrder оформляет заказ из корзины сессии.
//
// Итог заказа фиксируется по сумме корзины на момент отправки формы, а не
// пересчитывается по строкам. Для каждой позиции товар перечитывается под
// блокировкой строки: исчезнувшие товары молча пропускаются, количество
// урезается до живого остатка (позиция с нулевым остатком пропускается),
// цена строки — снимок живой цены товара. Остаток списывается на урезанное
// количество и не может стать отрицательным. Корзина очищается безусловно,
// даже если часть позиций была пропущена или урезана.
func (c *CheckoutUseCase) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*PlaceOrderRes, error) {
	const op = "CheckoutUseCase.PlaceOrder"

	cart, err := c.cartRepo.Get(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	total, count := cart.Totals()
	if count == 0 {
		return nil, e.Wrap(op, e.ErrCartEmpty)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	form := req.Form
	order, err := c.orderRepo.Create(ctx, domain.NewOrder(
		req.UserID,
		form.Email,
		form.FullName,
		form.Address,
		form.City,
		form.State,
		form.PostalCode,
		form.Country,
		total,
	))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	items, err := c.createOrderItems(ctx, order.ID, cart)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.UserID != nil {
		if err = c.saveProfileAddress(ctx, *req.UserID, form); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	event, err := NewOrderPlacedEvent(order, items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if _, err = c.outboxRepo.Create(ctx, event); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Очистка корзины безусловна; ошибка хранилища сессий заказ не отменяет
	if err := c.cartRepo.Delete(context.WithoutCancel(ctx), req.SessionID); err != nil {
		c.logger.Warnf("failed to clear cart after checkout: %v", e.Wrap(op, err))
	}

	return NewPlaceOrderRes(order.ID, order.Total), nil
}

// GetOrder возвращает заказ со строками для страницы подтверждения.
func (c *CheckoutUseCase) GetOrder(ctx context.Context, orderID int64) (*OrderRes, error) {
	const op = "CheckoutUseCase.GetOrder"

	order, err := c.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	items, err := c.orderRepo.ListItems(ctx, orderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &OrderRes{
		Order: order,
		Items: items,
	}, nil
}

// createOrderItems создает строки заказа по позициям корзины и списывает остатки.
func (c *CheckoutUseCase) createOrderItems(ctx context.Context, orderID int64, cart domain.Cart) ([]*domain.OrderItem, error) {
	items := make([]*domain.OrderItem, 0, len(cart))
	for _, productID := range sortedProductIDs(cart) {
		line := cart[productID]

		product, err := c.productRepo.GetForUpdate(ctx, productID)
		if err != nil {
			if errors.Is(err, e.ErrProductNotFound) {
				continue
			}
			return nil, err
		}

		qty := line.Qty
		if product.Stock < qty {
			qty = product.Stock
		}
		if qty == 0 {
			continue
		}

		item, err := c.orderRepo.AddItem(ctx, domain.NewOrderItem(orderID, product.ID, product.Name, qty, product.Price))
		if err != nil {
			return nil, err
		}

		if err := c.productRepo.DecrementStock(ctx, product.ID, qty); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// saveProfileAddress сохраняет адрес доставки в профиль покупателя (создается по требованию).
func (c *CheckoutUseCase) saveProfileAddress(ctx context.Context, userID int64, form CheckoutForm) error {
	profile := domain.NewCustomerProfile(userID)
	profile.AddressLine1 = form.Address
	profile.City = form.City
	profile.State = form.State
	profile.PostalCode = form.PostalCode
	profile.Country = form.Country

	_, err := c.profileRepo.Upsert(ctx, profile)
	return err
}
