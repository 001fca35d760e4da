package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rexonmold/shop-backend/internal/usecase"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/stretchr/testify/assert"
)

type fakeCheckoutUC struct {
	prefillErr error
	placeRes   *usecase.PlaceOrderRes
	placeErr   error
}

func (f *fakeCheckoutUC) Prefill(ctx context.Context, sessionID string, userID *int64) (*usecase.CheckoutPrefillRes, error) {
	if f.prefillErr != nil {
		return nil, f.prefillErr
	}

	return &usecase.CheckoutPrefillRes{}, nil
}

func (f *fakeCheckoutUC) PlaceOrder(ctx context.Context, req *usecase.PlaceOrderReq) (*usecase.PlaceOrderRes, error) {
	if f.placeErr != nil {
		return nil, f.placeErr
	}

	return f.placeRes, nil
}

func (f *fakeCheckoutUC) GetOrder(ctx context.Context, orderID int64) (*usecase.OrderRes, error) {
	return nil, e.ErrOrderNotFound
}

const checkoutBody = `{
	"email": "bob@example.com",
	"full_name": "Bob",
	"address": "12 MG Road",
	"city": "Bengaluru",
	"state": "Karnataka",
	"postal_code": "560001",
	"country": "India"
}`

func TestCheckoutHandler_CheckoutForm_EmptyCartRedirectsToCatalog(t *testing.T) {
	handler := NewCheckoutHandler(&fakeCheckoutUC{prefillErr: e.ErrCartEmpty}, validator.New(), nopLogger{})

	rec := httptest.NewRecorder()
	handler.checkoutForm(rec, httptest.NewRequest(http.MethodGet, "/checkout/", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestCheckoutHandler_PlaceOrder_EmptyCartRedirectsToCatalog(t *testing.T) {
	handler := NewCheckoutHandler(&fakeCheckoutUC{placeErr: e.ErrCartEmpty}, validator.New(), nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/checkout/", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.placeOrder(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestCheckoutHandler_PlaceOrder_RedirectsToOrderSuccess(t *testing.T) {
	uc := &fakeCheckoutUC{placeRes: usecase.NewPlaceOrderRes(7, 3500)}
	handler := NewCheckoutHandler(uc, validator.New(), nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/checkout/", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.placeOrder(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/order/success/7/", rec.Header().Get("Location"))
}
