package usecase

import (
	"context"

	"github.com/rexonmold/shop-backend/internal/domain"
)

type ProductRepository interface {
	// ListActive возвращает активные товары, отфильтрованные по slug категории
	// и подстроке имени, в алфавитном порядке.
	ListActive(ctx context.Context, filter *ProductFilter) ([]*domain.Product, error)
	GetActiveBySlug(ctx context.Context, slug string) (*domain.Product, error)
	GetActiveByID(ctx context.Context, id int64) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	// GetForUpdate читает товар с блокировкой строки; требует транзакцию в контексте.
	GetForUpdate(ctx context.Context, id int64) (*domain.Product, error)
	// DecrementStock уменьшает остаток, не опуская его ниже нуля; требует транзакцию в контексте.
	DecrementStock(ctx context.Context, id int64, qty int32) error
	// Upsert идемпотентно создает или обновляет товар по уникальному SKU; требует транзакцию в контексте.
	Upsert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// InsertImages привязывает ключи объектов S3 к товару; требует транзакцию в контексте.
	InsertImages(ctx context.Context, productID int64, keys []string) error
	ListImages(ctx context.Context, productID int64) ([]string, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]*domain.Category, error)
	// Create идемпотентно создает категорию по имени; требует транзакцию в контексте.
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
}

type OrderRepository interface {
	// Create сохраняет заказ; требует транзакцию в контексте.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// AddItem сохраняет строку заказа; требует транзакцию в контексте.
	AddItem(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListItems(ctx context.Context, orderID int64) ([]*domain.OrderItem, error)
}

type ReviewRepository interface {
	// Create сохраняет отзыв; нарушение уникальности (товар, пользователь)
	// возвращается как e.ErrAlreadyReviewed.
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	// ListByProduct возвращает отзывы товара с именами авторов, новые первыми.
	ListByProduct(ctx context.Context, productID int64) ([]ReviewInfo, error)
}

type UserRepository interface {
	// Create сохраняет пользователя; дубликат username/email возвращается
	// как e.ErrUserAlreadyExists. Требует транзакцию в контексте.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.CustomerProfile, error)
	// Upsert создает или обновляет профиль пользователя; требует транзакцию в контексте.
	Upsert(ctx context.Context, profile *domain.CustomerProfile) (*domain.CustomerProfile, error)
}

// CartRepository — сессионное хранилище корзин, ключ — токен сессии.
type CartRepository interface {
	Get(ctx context.Context, sessionID string) (domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// ImageRepository — объектное хранилище изображений товаров.
type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type OutboxRepository interface {
	// Create сохраняет событие и будит обработчика через NOTIFY; требует транзакцию в контексте.
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}
