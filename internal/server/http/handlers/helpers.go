package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/moriwell/storefront/internal/domain/errors"
	"github.com/moriwell/storefront/internal/domain/model"
	"github.com/moriwell/storefront/internal/server/http/dto"
	"github.com/moriwell/storefront/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// respondError maps domain errors to HTTP statuses with a JSON body.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domainErrors.ErrInvalidQuantity),
		errors.Is(err, domainErrors.ErrInvalidRating),
		errors.Is(err, domainErrors.ErrReviewTooShort):
		status = http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrNotOwner):
		status = http.StatusForbidden
	case errors.Is(err, domainErrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainErrors.ErrNoActiveOrder),
		errors.Is(err, domainErrors.ErrEmptyOrder),
		errors.Is(err, domainErrors.ErrInsufficientStock):
		status = http.StatusConflict
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	c.JSON(status, dto.ErrorResponse{Error: message})
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:            order.ID,
		InvoiceNumber: order.InvoiceNumber,
		TotalItem:     order.TotalItem,
		Subtotal:      order.Subtotal,
		TotalDiscount: order.TotalDiscount,
		TotalTaxes:    order.TotalTaxes,
		TotalShipment: order.TotalShipment,
		TotalPaid:     order.TotalPaid,
		Status:        int16(order.Status),
		CreatedAt:     order.CreatedAt,
	}
}

func toCartLineResponses(lines []model.CartLine) []dto.CartLineResponse {
	result := make([]dto.CartLineResponse, 0, len(lines))
	for _, line := range lines {
		result = append(result, dto.CartLineResponse{
			ID:           line.ID,
			InventoryID:  line.InventoryID,
			ProductID:    line.ProductID,
			ProductName:  line.ProductName,
			ProductImage: line.ProductImage,
			Price:        line.Price,
			Qty:          line.Qty,
			Total:        line.Total,
		})
	}
	return result
}

func toProductResponses(products []model.Product) []dto.ProductResponse {
	result := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, toProductResponse(&p))
	}
	return result
}

func toProductResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Image:       p.Image,
		Price:       p.Price,
		TotalOrder:  p.TotalOrder,
		TotalRating: p.TotalRating,
		Details:     p.Details,
		Description: p.Description,
	}
}

func toPaymentResponses(payments []model.Payment) []dto.PaymentResponse {
	result := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		result = append(result, dto.PaymentResponse{ID: p.ID, Name: p.Name, Description: p.Description})
	}
	return result
}
