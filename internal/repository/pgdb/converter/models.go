package converter

import (
	"time"

	"github.com/rexonmold/shop-backend/internal/usecase"
)

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Slug        string     `db:"slug"`
	Description string     `db:"description"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID               int64      `db:"id"`
	CategoryID       int64      `db:"category_id"`
	Name             string     `db:"name"`
	Slug             string     `db:"slug"`
	SKU              string     `db:"sku"`
	Price            int64      `db:"price"`
	Stock            int32      `db:"stock"`
	ShortDescription string     `db:"short_description"`
	Description      string     `db:"description"`
	IsActive         bool       `db:"is_active"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID               int64      `db:"id"`
	UserID           *int64     `db:"user_id"`
	Email            string     `db:"email"`
	FullName         string     `db:"full_name"`
	Address          string     `db:"address"`
	City             string     `db:"city"`
	State            string     `db:"state"`
	PostalCode       string     `db:"postal_code"`
	Country          string     `db:"country"`
	Total            int64      `db:"total"`
	Paid             bool       `db:"paid"`
	PaymentReference string     `db:"payment_reference"`
	PaymentMethod    string     `db:"payment_method"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64                   `db:"id"`
	EventID     string                  `db:"event_id"`
	EventType   usecase.OutboxEventType `db:"event_type"`
	OrderID     int64                   `db:"order_id"`
	Payload     []byte                  `db:"payload"`
	Status      usecase.OutboxStatus    `db:"status"`
	CreatedAt   time.Time               `db:"created_at"`
	ProcessedAt *time.Time              `db:"processed_at"`
}
