package usecase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rexonmold/shop-backend/internal/domain"
)

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	OrderPlaced OutboxEventType = "order.placed"
)

// OutboxEvent — запись транзакционного outbox для публикации в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// OrderPlacedPayload — тело события о новом заказе.
type OrderPlacedPayload struct {
	EventID   string                   `json:"event_id"`
	OrderID   int64                    `json:"order_id"`
	Total     int64                    `json:"total"`
	Paid      bool                     `json:"paid"`
	Items     []OrderPlacedPayloadItem `json:"items"`
	CreatedAt int64                    `json:"created_at"`
}

type OrderPlacedPayloadItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
	Price     int64 `json:"price"`
}

// NewOrderPlacedEvent собирает событие outbox по оформленному заказу.
func NewOrderPlacedEvent(order *domain.Order, items []*domain.OrderItem) (*OutboxEvent, error) {
	eventID := uuid.NewString()

	payloadItems := make([]OrderPlacedPayloadItem, 0, len(items))
	for _, item := range items {
		payloadItems = append(payloadItems, OrderPlacedPayloadItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	payload, err := json.Marshal(OrderPlacedPayload{
		EventID:   eventID,
		OrderID:   order.ID,
		Total:     order.Total,
		Paid:      order.Paid,
		Items:     payloadItems,
		CreatedAt: time.Now().UTC().UnixNano(),
	})
	if err != nil {
		return nil, err
	}

	return &OutboxEvent{
		EventID:   eventID,
		EventType: OrderPlaced,
		OrderID:   order.ID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}, nil
}
