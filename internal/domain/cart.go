package domain

// CartLine — одна позиция корзины: снимок имени и цены товара на момент добавления.
type CartLine struct {
	Name  string
	Price int64 // Цена хранится в копейках
	Qty   int32
}

// Cart — корзина покупателя, отображение product_id -> позиция.
// Живет в сессионном хранилище, не в базе данных.
type Cart map[int64]CartLine

// Totals возвращает сумму корзины в копейках и общее количество единиц.
// Считается по требованию, не кэшируется.
func (c Cart) Totals() (total int64, count int32) {
	for _, line := range c {
		total += line.Price * int64(line.Qty)
		count += line.Qty
	}

	return total, count
}

// IsEmpty сообщает, пуста ли корзина (нет позиций либо все с нулевым количеством).
func (c Cart) IsEmpty() bool {
	_, count := c.Totals()
	return count == 0
}

func NewCartLine(name string, price int64, qty int32) CartLine {
	return CartLine{
		Name:  name,
		Price: price,
		Qty:   qty,
	}
}
