package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	_ "github.com/rexonmold/shop-backend/docs" // Импорт сгенерированных файлов
	"github.com/rexonmold/shop-backend/internal/usecase"
	"github.com/rexonmold/shop-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// Usecases — usecase-зависимости маршрутов.
type Usecases struct {
	Catalog  usecase.CatalogUC
	Cart     usecase.CartUC
	Checkout usecase.CheckoutUC
	Review   usecase.ReviewUC
	Auth     usecase.AuthUC
	Admin    usecase.AdminUC
}

func (r *Router) Init(uc Usecases, mw *Middleware, authHandler *AuthHandler, checkoutValidate *validator.Validate) {
	r.router.Use(mw.Session)
	r.router.Use(mw.Auth)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	catalogHandler := NewCatalogHandler(uc.Catalog, uc.Review, r.logger)
	cartHandler := NewCartHandler(uc.Cart, r.logger)
	checkoutHandler := NewCheckoutHandler(uc.Checkout, checkoutValidate, r.logger)

	registerStorefrontRoutes(r.router, catalogHandler, cartHandler, checkoutHandler, authHandler)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		adminHandler := NewAdminHandler(uc.Admin, r.logger)
		registerAdminRoutes(v1, adminHandler, mw)
	})
}

func registerStorefrontRoutes(
	router chi.Router,
	catalogHandler *CatalogHandler,
	cartHandler *CartHandler,
	checkoutHandler *CheckoutHandler,
	authHandler *AuthHandler,
) {
	router.Get("/", catalogHandler.listProducts)
	router.Get("/category/{slug}/", catalogHandler.listProducts)
	router.Get("/product/{slug}/", catalogHandler.productDetail)
	router.Post("/product/{slug}/", catalogHandler.submitReview)

	router.Route("/cart", func(cart chi.Router) {
		cart.Get("/", cartHandler.viewCart)
		cart.Get("/add/{productID}/", cartHandler.addToCart)
		cart.Post("/update/{productID}/", cartHandler.updateCart)
		cart.Get("/remove/{productID}/", cartHandler.removeFromCart)
	})

	router.Get("/checkout/", checkoutHandler.checkoutForm)
	router.Post("/checkout/", checkoutHandler.placeOrder)
	router.Get("/order/success/{orderID}/", checkoutHandler.orderSuccess)

	router.Get("/signup/", authHandler.signupForm)
	router.Post("/signup/", authHandler.signup)
	router.Get("/login/", authHandler.loginForm)
	router.Post("/login/", authHandler.login)
}

func registerAdminRoutes(router chi.Router, adminHandler *AdminHandler, mw *Middleware) {
	router.Route("/admin", func(admin chi.Router) {
		admin.Use(mw.RequireStaff)
		admin.Post("/categories", adminHandler.createCategory)
		admin.Post("/products", adminHandler.registerNewProduct)
	})
}
