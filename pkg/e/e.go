package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Конфигурация
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrOrderNotFound   = fmt.Errorf("order not found")
	ErrUserNotFound    = fmt.Errorf("user not found")
	ErrProfileNotFound = fmt.Errorf("customer profile not found")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidQuantity      = fmt.Errorf("invalid quantity")
	ErrInvalidRating        = fmt.Errorf("rating must be between 1 and 5")
	ErrCommentRequired      = fmt.Errorf("comment is required")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrSkuRequired          = fmt.Errorf("sku is required")
	ErrTooManyImages        = fmt.Errorf("too many images")
	ErrNoImages             = fmt.Errorf("no images provided")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// Корзина и оформление заказа
	ErrCartEmpty  = fmt.Errorf("cart is empty")
	ErrOutOfStock = fmt.Errorf("no more stock available for this item")

	// Отзывы
	ErrAlreadyReviewed = fmt.Errorf("product already reviewed by this user")

	// Аутентификация
	ErrLoginRequired      = fmt.Errorf("login required")
	ErrInvalidCredentials = fmt.Errorf("invalid username or password")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrForbidden          = fmt.Errorf("forbidden")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
