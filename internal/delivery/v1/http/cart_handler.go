package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rexonmold/shop-backend/internal/usecase"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/rexonmold/shop-backend/pkg/logger"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

// viewCart
//
//	@Summary	Содержимое корзины
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	CartView
//	@Router		/cart/ [get]
func (h *CartHandler) viewCart(w http.ResponseWriter, r *http.Request) {
	res, err := h.cartUsecase.ViewCart(r.Context(), SessionFromCtx(r.Context()))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartView(res))
}

// addToCart
//
//	@Summary		Добавление товара в корзину
//	@Description	Увеличивает количество на 1, пока не упрётся в остаток
//	@Tags			cart
//	@Produce		json
//	@Param			productID	path		int	true	"ID товара"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		404			{object}	ErrorResponse	"Товар не найден"
//	@Failure		409			{object}	ErrorResponse	"Остаток исчерпан"
//	@Router			/cart/add/{productID}/ [get]
func (h *CartHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(chi.URLParam(r, "productID"))
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.cartUsecase.AddToCart(r.Context(), SessionFromCtx(r.Context()), productID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"Name": res.ProductName,
		"Qty":  res.Qty,
	})
}

// updateCart
//
//	@Summary		Изменение количества товара
//	@Description	Форма с полем qty; qty <= 0 удаляет позицию, отсутствие поля — это qty=1. Остаток не проверяется.
//	@Tags			cart
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			productID	path		int		true	"ID товара"
//	@Param			qty			formData	int		false	"Новое количество"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		400			{object}	ErrorResponse
//	@Router			/cart/update/{productID}/ [post]
func (h *CartHandler) updateCart(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(chi.URLParam(r, "productID"))
	if err != nil {
		WriteError(w, err)
		return
	}

	// Отсутствующее поле qty трактуется как 1
	qty := int64(1)
	if qtyStr := r.FormValue("qty"); qtyStr != "" {
		qty, err = strconv.ParseInt(qtyStr, 10, 32)
		if err != nil {
			h.logger.Warnf("%d %s: qty=%q", http.StatusBadRequest, e.ErrInvalidQuantity.Error(), qtyStr)
			WriteError(w, e.ErrInvalidQuantity)
			return
		}
	}

	if err := h.cartUsecase.UpdateCart(r.Context(), SessionFromCtx(r.Context()), productID, int32(qty)); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"Updated": true,
	})
}

// removeFromCart
//
//	@Summary	Удаление товара из корзины
//	@Tags		cart
//	@Produce	json
//	@Param		productID	path		int	true	"ID товара"
//	@Success	200			{object}	map[string]interface{}
//	@Router		/cart/remove/{productID}/ [get]
func (h *CartHandler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(chi.URLParam(r, "productID"))
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.cartUsecase.RemoveFromCart(r.Context(), SessionFromCtx(r.Context()), productID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"Removed": true,
	})
}
