package usecase

import "context"

type CatalogUC interface {
	ListProducts(ctx context.Context, req *ListProductsReq) (*ListProductsRes, error)
	GetProductDetail(ctx context.Context, slug string) (*ProductDetailRes, error)
}

type CartUC interface {
	AddToCart(ctx context.Context, sessionID string, productID int64) (*AddToCartRes, error)
	UpdateCart(ctx context.Context, sessionID string, productID int64, qty int32) error
	RemoveFromCart(ctx context.Context, sessionID string, productID int64) error
	ViewCart(ctx context.Context, sessionID string) (*CartViewRes, error)
}

type CheckoutUC interface {
	Prefill(ctx context.Context, sessionID string, userID *int64) (*CheckoutPrefillRes, error)
	PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*PlaceOrderRes, error)
	GetOrder(ctx context.Context, orderID int64) (*OrderRes, error)
}

type ReviewUC interface {
	SubmitReview(ctx context.Context, req *SubmitReviewReq) error
}

type AuthUC interface {
	Signup(ctx context.Context, req *SignupReq) (*AuthRes, error)
	Login(ctx context.Context, req *LoginReq) (*AuthRes, error)
	UserByID(ctx context.Context, id int64) (*UserInfo, error)
}

type AdminUC interface {
	CreateCategory(ctx context.Context, req *CreateCategoryReq) (*CategoryInfo, error)
	RegisterNewProduct(ctx context.Context, req *AddNewProductReq) (*ProductInfo, error)
}
