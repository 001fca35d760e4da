package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rexonmold/shop-backend/internal/usecase"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/rexonmold/shop-backend/pkg/logger"
)

type CheckoutHandler struct {
	checkoutUsecase usecase.CheckoutUC
	validate        *validator.Validate
	logger          logger.Logger
}

func NewCheckoutHandler(checkoutUsecase usecase.CheckoutUC, validate *validator.Validate, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUsecase: checkoutUsecase,
		validate:        validate,
		logger:          logger,
	}
}

// CheckoutRequest — форма оформления заказа.
type CheckoutRequest struct {
	Email      string `json:"email" validate:"required,email"`
	FullName   string `json:"full_name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// checkoutForm
//
//	@Summary		Форма оформления заказа
//	@Description	Итоги корзины и предзаполнение данными пользователя; пустая корзина уводит в каталог
//	@Tags			checkout
//	@Produce		json
//	@Success		200	{object}	CheckoutPrefillView
//	@Router			/checkout/ [get]
func (h *CheckoutHandler) checkoutForm(w http.ResponseWriter, r *http.Request) {
	var userID *int64
	if claims := ClaimsFromCtx(r.Context()); claims != nil {
		userID = &claims.UserID
	}

	res, err := h.checkoutUsecase.Prefill(r.Context(), SessionFromCtx(r.Context()), userID)
	if err != nil {
		if errors.Is(err, e.ErrCartEmpty) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCheckoutPrefillView(res))
}

// placeOrder
//
//	@Summary		Оформление заказа
//	@Description	Превращает корзину сессии в заказ и уводит на страницу подтверждения
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			form	body	CheckoutRequest	true	"Контакты и адрес доставки"
//	@Success		303		"Redirect на /order/success/{orderID}/"
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/checkout/ [post]
func (h *CheckoutHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrMissingFields.Error(), err.Error())
		WriteError(w, e.ErrMissingFields)
		return
	}

	var userID *int64
	if claims := ClaimsFromCtx(r.Context()); claims != nil {
		userID = &claims.UserID
	}

	res, err := h.checkoutUsecase.PlaceOrder(r.Context(), &usecase.PlaceOrderReq{
		SessionID: SessionFromCtx(r.Context()),
		UserID:    userID,
		Form: usecase.CheckoutForm{
			Email:      req.Email,
			FullName:   req.FullName,
			Address:    req.Address,
			City:       req.City,
			State:      req.State,
			PostalCode: req.PostalCode,
			Country:    req.Country,
		},
	})
	if err != nil {
		if errors.Is(err, e.ErrCartEmpty) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/order/success/%d/", res.OrderID), http.StatusSeeOther)
}

// orderSuccess
//
//	@Summary	Подтверждение заказа
//	@Tags		checkout
//	@Produce	json
//	@Param		orderID	path		int	true	"ID заказа"
//	@Success	200		{object}	OrderView
//	@Failure	404		{object}	ErrorResponse
//	@Router		/order/success/{orderID}/ [get]
func (h *CheckoutHandler) orderSuccess(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDParam(chi.URLParam(r, "orderID"))
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.checkoutUsecase.GetOrder(r.Context(), orderID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewOrderView(res))
}
