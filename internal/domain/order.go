package domain

import "time"

const (
	// PaymentMethodCOD — единственный поддерживаемый способ оплаты.
	PaymentMethodCOD = "Cash on Delivery"
	// PaymentReferenceCOD — референс платежа при оплате наличными.
	PaymentReferenceCOD = "COD"
)

// Order описывает оформленный заказ.
// Контактные поля после создания не изменяются.
type Order struct {
	ID               int64
	UserID           *int64 // nil для анонимного покупателя
	Email            string
	FullName         string
	Address          string
	City             string
	State            string
	PostalCode       string
	Country          string
	Total            int64 // Сумма заказа в копейках на момент оформления
	Paid             bool
	PaymentReference string
	PaymentMethod    string
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// OrderItem — строка заказа со снимком цены товара на момент оформления.
// Последующие изменения цены товара заказ не затрагивают.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Name      string
	Quantity  int32
	Price     int64 // Цена за единицу в копейках, точечная копия
	CreatedAt time.Time
}

// LineTotal возвращает стоимость строки заказа в копейках.
func (i *OrderItem) LineTotal() int64 {
	return int64(i.Quantity) * i.Price
}

// NewOrder создает неоплаченный заказ с оплатой наличными при получении.
func NewOrder(userID *int64, email, fullName, address, city, state, postalCode, country string, total int64) *Order {
	return &Order{
		UserID:           userID,
		Email:            email,
		FullName:         fullName,
		Address:          address,
		City:             city,
		State:            state,
		PostalCode:       postalCode,
		Country:          country,
		Total:            total,
		Paid:             false,
		PaymentReference: PaymentReferenceCOD,
		PaymentMethod:    PaymentMethodCOD,
	}
}

func NewOrderItem(orderID, productID int64, name string, quantity int32, price int64) *OrderItem {
	return &OrderItem{
		OrderID:   orderID,
		ProductID: productID,
		Name:      name,
		Quantity:  quantity,
		Price:     price,
	}
}
