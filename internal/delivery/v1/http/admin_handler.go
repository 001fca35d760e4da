package http

import (
	"errors"
	"net/http"

	"github.com/rexonmold/shop-backend/internal/usecase"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/rexonmold/shop-backend/pkg/logger"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUC
	logger       logger.Logger
}

func NewAdminHandler(adminUsecase usecase.AdminUC, logger logger.Logger) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase, logger: logger}
}

// CreateCategoryRequest — запрос на создание категории.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// createCategory
//
//	@Summary		Создание категории
//	@Description	Идемпотентно по имени; slug выводится из имени
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			category	body		CreateCategoryRequest	true	"Категория"
//	@Success		201			{object}	map[string]interface{}
//	@Failure		400			{object}	ErrorResponse
//	@Router			/api/v1/admin/categories [post]
func (h *AdminHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	category, err := h.adminUsecase.CreateCategory(r.Context(), &usecase.CreateCategoryReq{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"ID":   category.ID,
		"Name": category.Name,
		"Slug": category.Slug,
	})
}

// registerNewProduct
//
//	@Summary		Регистрация нового товара
//	@Description	Создает или обновляет товар по SKU, с загрузкой изображений
//	@Tags			admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name				formData	string	true	"Название товара"
//	@Param			category			formData	string	true	"Категория"
//	@Param			sku					formData	string	true	"SKU"
//	@Param			price				formData	number	true	"Цена"
//	@Param			stock				formData	integer	false	"Остаток"
//	@Param			short_description	formData	string	false	"Краткое описание"
//	@Param			description			formData	string	false	"Описание"
//	@Param			images				formData	file	false	"Изображения товара"
//	@Success		201					{object}	map[string]interface{}	"Успешное создание"
//	@Failure		400					{object}	ErrorResponse			"Ошибка валидации"
//	@Router			/api/v1/admin/products [post]
func (h *AdminHandler) registerNewProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	prMeta, err := parseProductForm(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	images, err := parseImages(r.MultipartForm.File["images"])
	if err != nil {
		// Изображения необязательны, остальные ошибки парсинга фатальны
		if !errors.Is(err, e.ErrNoImages) {
			h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
			WriteError(w, err)
			return
		}
	}

	product, err := h.adminUsecase.RegisterNewProduct(r.Context(), &usecase.AddNewProductReq{
		Name:             prMeta.Name,
		CategoryName:     prMeta.CategoryName,
		SKU:              prMeta.SKU,
		Price:            prMeta.Price,
		Stock:            prMeta.Stock,
		ShortDescription: prMeta.ShortDescription,
		Description:      prMeta.Description,
		Images:           images,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"ID":   product.ID,
		"Slug": product.Slug,
		"SKU":  product.SKU,
	})
}
