package converter

import (
	"strconv"

	"github.com/rexonmold/shop-backend/internal/domain"
)

// CartConverter преобразует корзину между domain и JSON-моделью Redis.
// Написан руками: goverter не выражает преобразование ключей карты.
type CartConverter interface {
	ToRedisModel(cart domain.Cart) CartRedisModel
	ToEntity(model CartRedisModel) (domain.Cart, error)
}

type CartConverterImpl struct{}

func NewCartConverterImpl() *CartConverterImpl {
	return &CartConverterImpl{}
}

func (c *CartConverterImpl) ToRedisModel(cart domain.Cart) CartRedisModel {
	model := make(CartRedisModel, len(cart))
	for id, line := range cart {
		model[strconv.FormatInt(id, 10)] = CartLineRedisModel{
			Name:  line.Name,
			Price: line.Price,
			Qty:   line.Qty,
		}
	}

	return model
}

func (c *CartConverterImpl) ToEntity(model CartRedisModel) (domain.Cart, error) {
	cart := make(domain.Cart, len(model))
	for key, line := range model {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, err
		}

		cart[id] = domain.CartLine{
			Name:  line.Name,
			Price: line.Price,
			Qty:   line.Qty,
		}
	}

	return cart, nil
}
