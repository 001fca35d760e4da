package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/rexonmold/shop-backend/internal/domain"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/rexonmold/shop-backend/pkg/logger"
)

// CartUseCase реализует операции над сессионной корзиной.
type CartUseCase struct {
	cartRepo    CartRepository
	productRepo ProductRepository
	logger      logger.Logger
}

func NewCartUC(cartRepo CartRepository, productRepo ProductRepository, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// AddToCart добавляет одну единицу активного товара в корзину.
// Если в корзине уже лежит весь доступный остаток, возвращает e.ErrOutOfStock
// и не изменяет количество.
func (c *CartUseCase) AddToCart(ctx context.Context, sessionID string, productID int64) (*AddToCartRes, error) {
	const op = "CartUseCase.AddToCart"

	product, err := c.productRepo.GetActiveByID(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart, err := c.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	line, ok := cart[product.ID]
	if !ok {
		line = domain.NewCartLine(product.Name, product.Price, 0)
	}

	if product.Stock <= line.Qty {
		return nil, e.Wrap(op, e.ErrOutOfStock)
	}

	line.Qty++
	cart[product.ID] = line

	if err := c.cartRepo.Save(ctx, sessionID, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewAddToCartRes(product.Name, line.Qty), nil
}

// UpdateCart выставляет абсолютное количество позиции из формы.
// Количество <= 0 удаляет позицию; остаток на складе здесь не проверяется.
// Неизвестная позиция — no-op.
func (c *CartUseCase) UpdateCart(ctx context.Context, sessionID string, productID int64, qty int32) error {
	const op = "CartUseCase.UpdateCart"

	cart, err := c.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return e.Wrap(op, err)
	}

	line, ok := cart[productID]
	if !ok {
		return nil
	}

	if qty <= 0 {
		delete(cart, productID)
	} else {
		line.Qty = qty
		cart[productID] = line
	}

	if err := c.cartRepo.Save(ctx, sessionID, cart); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// RemoveFromCart безусловно удаляет позицию из корзины.
func (c *CartUseCase) RemoveFromCart(ctx context.Context, sessionID string, productID int64) error {
	const op = "CartUseCase.RemoveFromCart"

	cart, err := c.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return e.Wrap(op, err)
	}

	delete(cart, productID)

	if err := c.cartRepo.Save(ctx, sessionID, cart); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// ViewCart сверяет корзину с живыми товарами и возвращает позиции с итогами.
// Позиции исчезнувших товаров молча пропускаются; итоги считаются по снимку
// цены в корзине, не по живой цене.
func (c *CartUseCase) ViewCart(ctx context.Context, sessionID string) (*CartViewRes, error) {
	const op = "CartUseCase.ViewCart"

	cart, err := c.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	items := make([]CartItemView, 0, len(cart))
	for _, productID := range sortedProductIDs(cart) {
		line := cart[productID]

		product, err := c.productRepo.GetByID(ctx, productID)
		if err != nil {
			if errors.Is(err, e.ErrProductNotFound) {
				continue
			}
			return nil, e.Wrap(op, err)
		}

		items = append(items, CartItemView{
			ProductID: product.ID,
			Name:      line.Name,
			Slug:      product.Slug,
			Price:     line.Price,
			Qty:       line.Qty,
			LineTotal: line.Price * int64(line.Qty),
		})
	}

	total, count := cart.Totals()

	return &CartViewRes{
		Items: items,
		Total: total,
		Count: count,
	}, nil
}

// sortedProductIDs возвращает идентификаторы позиций корзины в стабильном порядке.
func sortedProductIDs(cart domain.Cart) []int64 {
	ids := make([]int64, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
