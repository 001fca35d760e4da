package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rexonmold/shop-backend/internal/usecase"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/rexonmold/shop-backend/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	reviewUsecase  usecase.ReviewUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, reviewUsecase usecase.ReviewUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
		reviewUsecase:  reviewUsecase,
		logger:         logger,
	}
}

// listProducts
//
//	@Summary		Каталог товаров
//	@Description	Активные товары с фильтром по категории и подстроке имени; неизвестная категория дает пустой листинг
//	@Tags			catalog
//	@Produce		json
//	@Param			slug	path	string	false	"Slug категории"
//	@Param			q		query	string	false	"Подстрока имени"
//	@Success		200	{object}	CatalogView
//	@Router			/category/{slug}/ [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	categorySlug := chi.URLParam(r, "slug")
	query := r.URL.Query().Get("q")

	res, err := h.catalogUsecase.ListProducts(r.Context(), usecase.NewListProductsReq(categorySlug, query))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCatalogView(res))
}

// productDetail
//
//	@Summary	Карточка товара
//	@Tags		catalog
//	@Produce	json
//	@Param		slug	path		string	true	"Slug товара"
//	@Success	200		{object}	ProductDetailView
//	@Failure	404		{object}	ErrorResponse
//	@Router		/product/{slug}/ [get]
func (h *CatalogHandler) productDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	res, err := h.catalogUsecase.GetProductDetail(r.Context(), slug)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductDetailView(res))
}

type SubmitReviewRequest struct {
	Rating  int32  `json:"rating"`
	Comment string `json:"comment"`
}

// submitReview
//
//	@Summary		Отзыв на товар
//	@Description	Один отзыв на товар от пользователя; аноним уходит на /login/
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			slug	path		string				true	"Slug товара"
//	@Param			review	body		SubmitReviewRequest	true	"Оценка и комментарий"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		409		{object}	ErrorResponse	"Повторный отзыв"
//	@Router			/product/{slug}/ [post]
func (h *CatalogHandler) submitReview(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromCtx(r.Context())
	if claims == nil {
		redirectToLogin(w, r)
		return
	}

	var req SubmitReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	err := h.reviewUsecase.SubmitReview(r.Context(), &usecase.SubmitReviewReq{
		ProductSlug: chi.URLParam(r, "slug"),
		UserID:      claims.UserID,
		Rating:      req.Rating,
		Comment:     req.Comment,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"Created": true,
	})
}
