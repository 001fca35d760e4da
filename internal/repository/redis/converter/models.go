package converter

// CartLineRedisModel — позиция корзины в JSON-снимке сессии.
type CartLineRedisModel struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Qty   int32  `json:"qty"`
}

// CartRedisModel — корзина сессии, ключ — ID товара в десятичной записи.
type CartRedisModel map[string]CartLineRedisModel
