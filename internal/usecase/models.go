package usecase

import (
	"time"

	"github.com/rexonmold/shop-backend/internal/domain"
)

// CATALOG USECASE

// ListProductsReq — параметры фильтрации каталога.
type ListProductsReq struct {
	CategorySlug string // пустая строка — без фильтра по категории
	Query        string // подстрока имени без учета регистра
}

// ListProductsRes — страница каталога: товары и полный список категорий для навигации.
type ListProductsRes struct {
	Products   []*domain.Product
	Categories []*domain.Category
	ActiveSlug string
	Query      string
}

// ProductDetailRes — карточка товара с отзывами.
type ProductDetailRes struct {
	Product *domain.Product
	Images  []string
	Reviews []ReviewInfo
}

// ReviewInfo — отзыв с именем автора для отображения.
type ReviewInfo struct {
	ID        int64
	Rating    int32
	Comment   string
	Username  string
	CreatedAt time.Time
}

// CART USECASE

// AddToCartRes — результат добавления в корзину.
type AddToCartRes struct {
	ProductName string
	Qty         int32
}

// CartItemView — позиция корзины, сверенная с живым товаром.
type CartItemView struct {
	ProductID int64
	Name      string
	Slug      string
	Price     int64
	Qty       int32
	LineTotal int64
}

// CartViewRes — содержимое корзины с итогами, посчитанными по требованию.
type CartViewRes struct {
	Items []CartItemView
	Total int64
	Count int32
}

// CHECKOUT USECASE

// CheckoutForm — контактные и адресные поля формы оформления заказа.
type CheckoutForm struct {
	Email      string
	FullName   string
	Address    string
	City       string
	State      string
	PostalCode string
	Country    string
}

// PlaceOrderReq — запрос на оформление заказа из корзины сессии.
type PlaceOrderReq struct {
	SessionID string
	UserID    *int64 // nil для анонимного покупателя
	Form      CheckoutForm
}

type PlaceOrderRes struct {
	OrderID int64
	Total   int64
}

// CheckoutPrefillRes — предзаполнение формы оформления данными пользователя и профиля.
type CheckoutPrefillRes struct {
	Form  CheckoutForm
	Total int64
	Count int32
}

// OrderRes — заказ со строками для страницы подтверждения.
type OrderRes struct {
	Order *domain.Order
	Items []*domain.OrderItem
}

// REVIEW USECASE

type SubmitReviewReq struct {
	ProductSlug string
	UserID      int64
	Rating      int32
	Comment     string
}

// AUTH USECASE

type SignupReq struct {
	Username string
	Email    string
	FullName string
	Password string
}

type LoginReq struct {
	Username string
	Password string
}

// AuthRes — результат входа: пользователь и токен сессии.
type AuthRes struct {
	User  *domain.User
	Token string
}

// UserInfo — публичные данные пользователя.
type UserInfo struct {
	ID       int64
	Username string
	Email    string
	FullName string
	IsStaff  bool
}

// ADMIN USECASE

type CreateCategoryReq struct {
	Name        string
	Description string
}

// CategoryInfo — DTO категории для внешнего использования.
type CategoryInfo struct {
	ID   int64
	Name string
	Slug string
}

// AddNewProductReq — запрос на добавление нового товара.
type AddNewProductReq struct {
	Name             string
	CategoryName     string
	SKU              string
	Price            int64
	Stock            int32
	ShortDescription string
	Description      string
	Images           []ProductImage
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// ProductInfo — DTO товара для внешнего использования.
type ProductInfo struct {
	ID    int64
	Name  string
	Slug  string
	SKU   string
	Price int64
	Stock int32
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

// UploadImagesReq — запрос на загрузку изображений товара.
type UploadImagesReq struct {
	Name   string
	Images []ProductImage
}

// UploadImagesRes — результат загрузки изображений (ключи в MinIO).
type UploadImagesRes struct {
	ImagesKeys []string
}

// MAPPERS

func NewListProductsReq(categorySlug, query string) *ListProductsReq {
	return &ListProductsReq{
		CategorySlug: categorySlug,
		Query:        query,
	}
}

func NewAddToCartRes(productName string, qty int32) *AddToCartRes {
	return &AddToCartRes{
		ProductName: productName,
		Qty:         qty,
	}
}

func NewPlaceOrderRes(orderID, total int64) *PlaceOrderRes {
	return &PlaceOrderRes{
		OrderID: orderID,
		Total:   total,
	}
}

func NewReviewInfo(id int64, rating int32, comment, username string, createdAt time.Time) ReviewInfo {
	return ReviewInfo{
		ID:        id,
		Rating:    rating,
		Comment:   comment,
		Username:  username,
		CreatedAt: createdAt,
	}
}

func NewCategoryInfo(category *domain.Category) *CategoryInfo {
	return &CategoryInfo{
		ID:   category.ID,
		Name: category.Name,
		Slug: category.Slug,
	}
}

func NewProductInfo(product *domain.Product) *ProductInfo {
	return &ProductInfo{
		ID:    product.ID,
		Name:  product.Name,
		Slug:  product.Slug,
		SKU:   product.SKU,
		Price: product.Price,
		Stock: product.Stock,
	}
}

func NewUserInfo(user *domain.User) *UserInfo {
	return &UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		IsStaff:  user.IsStaff,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImagesReq(name string, images []ProductImage) *UploadImagesReq {
	return &UploadImagesReq{
		Name:   name,
		Images: images,
	}
}

func NewUploadImagesRes(imagesKeys []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: imagesKeys,
	}
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}

// ProductFilter — фильтр выборки активных товаров.
type ProductFilter struct {
	CategorySlug string
	NameQuery    string
}
