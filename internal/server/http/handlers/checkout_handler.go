package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/moriwell/storefront/internal/domain/errors"
	"github.com/moriwell/storefront/internal/domain/model"
	"github.com/moriwell/storefront/internal/metrics"
	"github.com/moriwell/storefront/internal/server/http/dto"
)

// CheckoutHandler manages checkout endpoints.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Preview handles GET /api/order/initial.
func (h *CheckoutHandler) Preview(c *gin.Context) {
	userID := CurrentUserID(c)

	preview, err := h.facade.CheckoutPreview(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutPreviewResponse{
		Order: toOrderResponse(preview.Order),
		Carts: toCartLineResponses(preview.Carts),
		User: dto.BuyerResponse{
			Email:     preview.User.Email,
			Phone:     preview.User.Phone,
			FirstName: preview.User.FirstName,
			LastName:  preview.User.LastName,
			Gender:    preview.User.Gender,
			Country:   preview.User.Country,
			City:      preview.User.City,
			ZipCode:   preview.User.ZipCode,
			Address:   preview.User.Address,
			Notes:     preview.User.Notes,
		},
		Payments: toPaymentResponses(preview.Payments),
		Quote: dto.QuoteResponse{
			Discount:  preview.Quote.Discount,
			Taxes:     preview.Quote.Taxes,
			Shipment:  preview.Quote.Shipment,
			TotalPaid: preview.Quote.TotalPaid,
		},
		Settings: dto.SettingsResponse{
			Discount: preview.Settings.DiscountPercent,
			Taxes:    preview.Settings.TaxPercent,
			Shipment: preview.Settings.ShipmentFee,
		},
		TotalItem: preview.TotalItem,
	})
}

// Checkout handles POST /api/order/checkout.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.facade.Checkout(c.Request.Context(), userID, req.PaymentID, model.BillingForm{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Country:   req.Country,
		City:      req.City,
		ZipCode:   req.ZipCode,
		Notes:     req.Notes,
	})
	if err != nil {
		metrics.CheckoutsFailedTotal.WithLabelValues(checkoutFailureReason(err)).Inc()
		respondError(c, err)
		return
	}

	metrics.CheckoutsTotal.Inc()
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func checkoutFailureReason(err error) string {
	switch {
	case errors.Is(err, domainErrors.ErrNoActiveOrder):
		return "no_active_order"
	case errors.Is(err, domainErrors.ErrEmptyOrder):
		return "empty_order"
	case errors.Is(err, domainErrors.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domainErrors.ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
