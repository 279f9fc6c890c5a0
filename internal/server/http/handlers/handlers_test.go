package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/moriwell/storefront/internal/domain/errors"
	"github.com/moriwell/storefront/internal/domain/model"
	"github.com/moriwell/storefront/internal/server/http/dto"
	"github.com/moriwell/storefront/internal/server/http/middleware"
	testhelpers "github.com/moriwell/storefront/internal/test"
	"github.com/moriwell/storefront/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, path string, handler gin.HandlerFunc, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, int64(1))
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestCartHandlerAddToCart(t *testing.T) {
	facade := &testhelpers.StorefrontFacadeStub{
		AddToCartFn: func(ctx context.Context, userID, productID, sizeID, colourID int64, qty int) (*model.Order, error) {
			if userID != 1 || productID != 7 || sizeID != 2 || colourID != 3 || qty != 2 {
				t.Fatalf("unexpected arguments: %d %d %d %d %d", userID, productID, sizeID, colourID, qty)
			}
			return &model.Order{ID: 5, UserID: userID, TotalItem: qty, Subtotal: decimal.NewFromInt(241)}, nil
		},
	}
	body, _ := json.Marshal(dto.AddToCartRequest{SizeID: 2, ColourID: 3, Qty: 2})
	resp := performRequest(t, http.MethodPost, "/cart/:productId", "/cart/7", NewCartHandler(facade).AddToCart, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var order dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if order.ID != 5 || !order.Subtotal.Equal(decimal.NewFromInt(241)) {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestCartHandlerAddToCartDecimalAsString(t *testing.T) {
	facade := &testhelpers.StorefrontFacadeStub{
		AddToCartFn: func(ctx context.Context, userID, productID, sizeID, colourID int64, qty int) (*model.Order, error) {
			subtotal, _ := decimal.NewFromString("241.50")
			return &model.Order{ID: 5, Subtotal: subtotal}, nil
		},
	}
	body, _ := json.Marshal(dto.AddToCartRequest{SizeID: 2, ColourID: 3, Qty: 2})
	resp := performRequest(t, http.MethodPost, "/cart/:productId", "/cart/7", NewCartHandler(facade).AddToCart, body)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(raw["subtotal"]) != `"241.5"` {
		t.Fatalf("expected subtotal as quoted string, got %s", raw["subtotal"])
	}
}

func TestCartHandlerAddToCartErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid quantity", domainErrors.ErrInvalidQuantity, http.StatusBadRequest},
		{"unknown product", domainErrors.ErrNotFound, http.StatusNotFound},
		{"internal", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			facade := &testhelpers.StorefrontFacadeStub{
				AddToCartFn: func(context.Context, int64, int64, int64, int64, int) (*model.Order, error) {
					return nil, tc.err
				},
			}
			body, _ := json.Marshal(dto.AddToCartRequest{SizeID: 2, ColourID: 3, Qty: 1})
			resp := performRequest(t, http.MethodPost, "/cart/:productId", "/cart/7", NewCartHandler(facade).AddToCart, body)
			if resp.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.Code)
			}
		})
	}
}

func TestCartHandlerAddToCartBadBody(t *testing.T) {
	facade := &testhelpers.StorefrontFacadeStub{}
	resp := performRequest(t, http.MethodPost, "/cart/:productId", "/cart/7", NewCartHandler(facade).AddToCart, []byte("{"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCartHandlerSession(t *testing.T) {
	facade := &testhelpers.StorefrontFacadeStub{
		SessionFn: func(ctx context.Context, userID int64) (*model.CartSession, error) {
			return &model.CartSession{
				Order: &model.Order{ID: 5, UserID: userID},
				Carts: []model.CartLine{{ID: 1, OrderID: 5, ProductName: "Sneaker"}},
			}, nil
		},
	}
	resp := performRequest(t, http.MethodGet, "/session", "/session", NewCartHandler(facade).Session, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var session dto.SessionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &session); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if session.Order == nil || session.Order.ID != 5 {
		t.Fatalf("expected order in session, got %+v", session.Order)
	}
	if len(session.Carts) != 1 || session.Carts[0].ProductName != "Sneaker" {
		t.Fatalf("unexpected carts: %+v", session.Carts)
	}
}

func TestCartHandlerSessionEmpty(t *testing.T) {
	facade := &testhelpers.StorefrontFacadeStub{
		SessionFn: func(context.Context, int64) (*model.CartSession, error) {
			return &model.CartSession{}, nil
		},
	}
	resp := performRequest(t, http.MethodGet, "/session", "/session", NewCartHandler(facade).Session, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty session, got %d", resp.Code)
	}

	var session dto.SessionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &session); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if session.Order != nil {
		t.Fatalf("expected null order, got %+v", session.Order)
	}
}

func TestCheckoutHandlerPreviewNoDraft(t *testing.T) {
	facade := &testhelpers.StorefrontFacadeStub{
		CheckoutPreviewFn: func(context.Context, int64) (*model.CheckoutPreview, error) {
			return nil, domainErrors.ErrNoActiveOrder
		},
	}
	resp := performRequest(t, http.MethodGet, "/initial", "/initial", NewCheckoutHandler(facade).Preview, nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 without draft, got %d", resp.Code)
	}
}

func TestCheckoutHandlerPreviewCarriesSettings(t *testing.T) {
	facade := &testhelpers.StorefrontFacadeStub{
		CheckoutPreviewFn: func(context.Context, int64) (*model.CheckoutPreview, error) {
			return &model.CheckoutPreview{
				Order: &model.Order{ID: 5, Subtotal: decimal.NewFromInt(100)},
				User:  model.BuyerContact{Email: "ada@example.com"},
				Quote: model.Quote{TotalPaid: decimal.NewFromInt(102)},
				Settings: model.PricingSettings{
					DiscountPercent: decimal.NewFromInt(10),
					TaxPercent:      decimal.NewFromInt(5),
					ShipmentFee:     decimal.NewFromInt(7),
				},
			}, nil
		},
	}
	resp := performRequest(t, http.MethodGet, "/initial", "/initial", NewCheckoutHandler(facade).Preview, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var preview dto.CheckoutPreviewResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &preview); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !preview.Settings.Discount.Equal(decimal.NewFromInt(10)) ||
		!preview.Settings.Taxes.Equal(decimal.NewFromInt(5)) ||
		!preview.Settings.Shipment.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("unexpected settings: %+v", preview.Settings)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode raw response: %v", err)
	}
	var user map[string]json.RawMessage
	if err := json.Unmarshal(raw["user"], &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if _, ok := user["notes"]; !ok {
		t.Fatal("expected notes key in buyer payload")
	}
}

func TestCheckoutHandlerCheckout(t *testing.T) {
	facade := &testhelpers.StorefrontFacadeStub{
		CheckoutFn: func(ctx context.Context, userID, paymentID int64, form model.BillingForm) (*model.Order, error) {
			if paymentID != 3 {
				t.Fatalf("expected payment 3, got %d", paymentID)
			}
			if form.FirstName != "Ada" || form.Email != "ada@example.com" {
				t.Fatalf("unexpected form: %+v", form)
			}
			return &model.Order{ID: 5, Status: model.OrderStatusPlaced}, nil
		},
	}
	body, _ := json.Marshal(dto.CheckoutRequest{
		PaymentID: 3,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Gender:    "female",
		Email:     "ada@example.com",
		Phone:     "555-0100",
		Address:   "1 Main St",
	})
	resp := performRequest(t, http.MethodPost, "/checkout", "/checkout", NewCheckoutHandler(facade).Checkout, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCheckoutHandlerCheckoutAddressOptional(t *testing.T) {
	facade := &testhelpers.StorefrontFacadeStub{
		CheckoutFn: func(ctx context.Context, userID, paymentID int64, form model.BillingForm) (*model.Order, error) {
			if form.Address != "" || form.Country != "" || form.City != "" || form.ZipCode != "" {
				t.Fatalf("expected empty shipping fields, got %+v", form)
			}
			return &model.Order{ID: 5, Status: model.OrderStatusPlaced}, nil
		},
	}
	body, _ := json.Marshal(dto.CheckoutRequest{
		PaymentID: 3,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Gender:    "female",
		Email:     "ada@example.com",
		Phone:     "555-0100",
	})
	resp := performRequest(t, http.MethodPost, "/checkout", "/checkout", NewCheckoutHandler(facade).Checkout, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 without address, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCheckoutHandlerCheckoutMissingContact(t *testing.T) {
	facade := &testhelpers.StorefrontFacadeStub{}
	for _, body := range []map[string]any{
		{"payment_id": 3, "email": "ada@example.com", "first_name": "Ada", "last_name": "Lovelace", "gender": "female"},
		{"payment_id": 3, "email": "ada@example.com", "first_name": "Ada", "phone": "555-0100", "gender": "female"},
		{"payment_id": 3, "email": "ada@example.com", "first_name": "Ada", "last_name": "Lovelace", "phone": "555-0100"},
	} {
		raw, _ := json.Marshal(body)
		resp := performRequest(t, http.MethodPost, "/checkout", "/checkout", NewCheckoutHandler(facade).Checkout, raw)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("body %v: expected 400, got %d", body, resp.Code)
		}
	}
}

func TestCheckoutHandlerCheckoutConflicts(t *testing.T) {
	for _, err := range []error{
		domainErrors.ErrNoActiveOrder,
		domainErrors.ErrEmptyOrder,
		domainErrors.ErrInsufficientStock,
	} {
		facade := &testhelpers.StorefrontFacadeStub{
			CheckoutFn: func(context.Context, int64, int64, model.BillingForm) (*model.Order, error) {
				return nil, err
			},
		}
		body, _ := json.Marshal(dto.CheckoutRequest{
			PaymentID: 3, FirstName: "Ada", LastName: "Lovelace", Gender: "female",
			Email: "ada@example.com", Phone: "555-0100",
		})
		resp := performRequest(t, http.MethodPost, "/checkout", "/checkout", NewCheckoutHandler(facade).Checkout, body)
		if resp.Code != http.StatusConflict {
			t.Fatalf("%v: expected 409, got %d", err, resp.Code)
		}
	}
}

func TestCheckoutHandlerCheckoutMissingFields(t *testing.T) {
	facade := &testhelpers.StorefrontFacadeStub{}
	body, _ := json.Marshal(map[string]any{"payment_id": 3})
	resp := performRequest(t, http.MethodPost, "/checkout", "/checkout", NewCheckoutHandler(facade).Checkout, body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing billing fields, got %d", resp.Code)
	}
}

func TestOrderHandlerList(t *testing.T) {
	var captured usecase.ListRequest
	facade := &testhelpers.StorefrontFacadeStub{
		OrdersFn: func(ctx context.Context, req usecase.ListRequest) (*model.OrderPage, error) {
			captured = req
			return &model.OrderPage{
				Orders:        []model.Order{{ID: 5, UserID: 1}},
				TotalAll:      12,
				TotalFiltered: 1,
			}, nil
		},
	}
	path := "/list?limit=5&page=3&order=created_at&dir=asc&search=638"
	resp := performRequest(t, http.MethodGet, "/list", path, NewOrderHandler(facade).List, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	if captured.Limit != 5 || captured.Offset != 10 {
		t.Errorf("unexpected paging: %+v", captured)
	}
	if captured.SortBy != "created_at" || captured.Desc {
		t.Errorf("unexpected sorting: %+v", captured)
	}
	if captured.Search != "638" {
		t.Errorf("unexpected search: %q", captured.Search)
	}

	var page dto.OrderPageResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if page.TotalAll != 12 || len(page.Orders) != 1 || page.Limit != 5 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestOrderHandlerDetailStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"foreign order", domainErrors.ErrNotOwner, http.StatusForbidden},
		{"missing order", domainErrors.ErrNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			facade := &testhelpers.StorefrontFacadeStub{
				OrderDetailFn: func(context.Context, int64, int64) (*model.OrderDetail, error) {
					return nil, tc.err
				},
			}
			resp := performRequest(t, http.MethodGet, "/detail/:orderId", "/detail/5", NewOrderHandler(facade).Detail, nil)
			if resp.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerDetailBadID(t *testing.T) {
	facade := &testhelpers.StorefrontFacadeStub{}
	resp := performRequest(t, http.MethodGet, "/detail/:orderId", "/detail/abc", NewOrderHandler(facade).Detail, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", resp.Code)
	}
}

func TestOrderHandlerCancel(t *testing.T) {
	cancelled := false
	facade := &testhelpers.StorefrontFacadeStub{
		CancelOrderFn: func(ctx context.Context, userID, orderID int64) error {
			cancelled = true
			if orderID != 5 {
				t.Fatalf("expected order 5, got %d", orderID)
			}
			return nil
		},
	}
	resp := performRequest(t, http.MethodGet, "/cancel/:orderId", "/cancel/5", NewOrderHandler(facade).Cancel, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !cancelled {
		t.Fatal("expected cancel to reach the facade")
	}

	var status dto.StatusResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !status.Status {
		t.Fatal("expected status true")
	}
}

func TestReviewHandlerCreate(t *testing.T) {
	facade := &testhelpers.StorefrontFacadeStub{}
	body, _ := json.Marshal(dto.ReviewRequest{Rating: 4, Review: "solid"})
	resp := performRequest(t, http.MethodPost, "/review/:productId", "/review/7", NewReviewHandler(facade).Create, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
}

func TestReviewHandlerCreateValidationErrors(t *testing.T) {
	for _, err := range []error{domainErrors.ErrInvalidRating, domainErrors.ErrReviewTooShort} {
		facade := &testhelpers.StorefrontFacadeStub{
			CreateReviewFn: func(context.Context, int64, int64, int, string) (*model.Review, error) {
				return nil, err
			},
		}
		body, _ := json.Marshal(dto.ReviewRequest{Rating: 9})
		resp := performRequest(t, http.MethodPost, "/review/:productId", "/review/7", NewReviewHandler(facade).Create, body)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%v: expected 400, got %d", err, resp.Code)
		}
	}
}

func TestReviewHandlerProduct(t *testing.T) {
	facade := &testhelpers.StorefrontFacadeStub{
		ProductDetailFn: func(ctx context.Context, productID int64) (*model.ProductDetail, error) {
			return &model.ProductDetail{
				Product:     &model.Product{ID: productID, Name: "Sneaker"},
				Inventories: []model.Inventory{{ID: 31, SizeID: 2, ColourID: 3, Stock: 10}},
			}, nil
		},
	}
	resp := performRequest(t, http.MethodGet, "/cart/:productId", "/cart/7", NewReviewHandler(facade).Product, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var detail dto.ProductDetailResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if detail.Product.Name != "Sneaker" || len(detail.Inventories) != 1 {
		t.Fatalf("unexpected detail: %+v", detail)
	}
}
