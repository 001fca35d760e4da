package http

import (
	"time"

	"github.com/rexonmold/shop-backend/internal/domain"
	"github.com/rexonmold/shop-backend/internal/usecase"
)

// JSON-представления для ответов API. Цены отдаются строками
// с двумя знаками после запятой, во внутренних расчетах — копейки.

type CategoryView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ProductView struct {
	ID               int64  `json:"id"`
	CategoryID       int64  `json:"category_id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	SKU              string `json:"sku"`
	Price            string `json:"price"`
	Stock            int32  `json:"stock"`
	ShortDescription string `json:"short_description,omitempty"`
	Description      string `json:"description,omitempty"`
}

type ReviewView struct {
	ID        int64     `json:"id"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type CatalogView struct {
	Products   []ProductView  `json:"products"`
	Categories []CategoryView `json:"categories"`
	ActiveSlug string         `json:"active_slug,omitempty"`
	Query      string         `json:"q,omitempty"`
}

type ProductDetailView struct {
	Product ProductView  `json:"product"`
	Images  []string     `json:"images"`
	Reviews []ReviewView `json:"reviews"`
}

type CartItemView struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Price     string `json:"price"`
	Qty       int32  `json:"qty"`
	LineTotal string `json:"line_total"`
}

type CartView struct {
	Items []CartItemView `json:"items"`
	Total string         `json:"total"`
	Count int32          `json:"count"`
}

type CheckoutPrefillView struct {
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Total      string `json:"total"`
	Count      int32  `json:"count"`
}

type OrderItemView struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int32  `json:"quantity"`
	Price     string `json:"price"`
	LineTotal string `json:"line_total"`
}

type OrderView struct {
	ID            int64           `json:"id"`
	Email         string          `json:"email"`
	FullName      string          `json:"full_name"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	State         string          `json:"state"`
	PostalCode    string          `json:"postal_code"`
	Country       string          `json:"country"`
	Total         string          `json:"total"`
	Paid          bool            `json:"paid"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
	Items         []OrderItemView `json:"items"`
}

type UserView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	IsStaff  bool   `json:"is_staff"`
}

func NewCategoryView(category *domain.Category) CategoryView {
	return CategoryView{
		ID:   category.ID,
		Name: category.Name,
		Slug: category.Slug,
	}
}

func NewProductView(product *domain.Product) ProductView {
	return ProductView{
		ID:               product.ID,
		CategoryID:       product.CategoryID,
		Name:             product.Name,
		Slug:             product.Slug,
		SKU:              product.SKU,
		Price:            formatCents(product.Price),
		Stock:            product.Stock,
		ShortDescription: product.ShortDescription,
		Description:      product.Description,
	}
}

func NewCatalogView(res *usecase.ListProductsRes) CatalogView {
	products := make([]ProductView, 0, len(res.Products))
	for _, product := range res.Products {
		products = append(products, NewProductView(product))
	}

	categories := make([]CategoryView, 0, len(res.Categories))
	for _, category := range res.Categories {
		categories = append(categories, NewCategoryView(category))
	}

	return CatalogView{
		Products:   products,
		Categories: categories,
		ActiveSlug: res.ActiveSlug,
		Query:      res.Query,
	}
}

func NewProductDetailView(res *usecase.ProductDetailRes) ProductDetailView {
	reviews := make([]ReviewView, 0, len(res.Reviews))
	for _, review := range res.Reviews {
		reviews = append(reviews, ReviewView{
			ID:        review.ID,
			Rating:    review.Rating,
			Comment:   review.Comment,
			Username:  review.Username,
			CreatedAt: review.CreatedAt,
		})
	}

	images := res.Images
	if images == nil {
		images = []string{}
	}

	return ProductDetailView{
		Product: NewProductView(res.Product),
		Images:  images,
		Reviews: reviews,
	}
}

func NewCartView(res *usecase.CartViewRes) CartView {
	items := make([]CartItemView, 0, len(res.Items))
	for _, item := range res.Items {
		items = append(items, CartItemView{
			ProductID: item.ProductID,
			Name:      item.Name,
			Slug:      item.Slug,
			Price:     formatCents(item.Price),
			Qty:       item.Qty,
			LineTotal: formatCents(item.LineTotal),
		})
	}

	return CartView{
		Items: items,
		Total: formatCents(res.Total),
		Count: res.Count,
	}
}

func NewCheckoutPrefillView(res *usecase.CheckoutPrefillRes) CheckoutPrefillView {
	return CheckoutPrefillView{
		Email:      res.Form.Email,
		FullName:   res.Form.FullName,
		Address:    res.Form.Address,
		City:       res.Form.City,
		State:      res.Form.State,
		PostalCode: res.Form.PostalCode,
		Country:    res.Form.Country,
		Total:      formatCents(res.Total),
		Count:      res.Count,
	}
}

func NewOrderView(res *usecase.OrderRes) OrderView {
	items := make([]OrderItemView, 0, len(res.Items))
	for _, item := range res.Items {
		items = append(items, OrderItemView{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     formatCents(item.Price),
			LineTotal: formatCents(item.LineTotal()),
		})
	}

	order := res.Order
	return OrderView{
		ID:            order.ID,
		Email:         order.Email,
		FullName:      order.FullName,
		Address:       order.Address,
		City:          order.City,
		State:         order.State,
		PostalCode:    order.PostalCode,
		Country:       order.Country,
		Total:         formatCents(order.Total),
		Paid:          order.Paid,
		PaymentMethod: order.PaymentMethod,
		CreatedAt:     order.CreatedAt,
		Items:         items,
	}
}

func NewUserView(user *usecase.UserInfo) UserView {
	return UserView{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		IsStaff:  user.IsStaff,
	}
}
