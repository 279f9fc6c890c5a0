package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moriwell/storefront/internal/metrics"
	"github.com/moriwell/storefront/internal/server/http/dto"
	"github.com/moriwell/storefront/internal/usecase"
)

// OrderHandler manages order listing, detail and cancellation endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/order/list.
func (h *OrderHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if pageNum < 1 {
		pageNum = 1
	}

	page, err := h.facade.Orders(c.Request.Context(), usecase.ListRequest{
		UserID: userID,
		Limit:  limit,
		Offset: (pageNum - 1) * limit,
		SortBy: c.DefaultQuery("order", "id"),
		Desc:   c.DefaultQuery("dir", "desc") == "desc",
		Search: c.Query("search"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.OrderPageResponse{
		Orders:        make([]dto.OrderResponse, 0, len(page.Orders)),
		TotalAll:      page.TotalAll,
		TotalFiltered: page.TotalFiltered,
		Limit:         limit,
	}
	for _, order := range page.Orders {
		resp.Orders = append(resp.Orders, toOrderResponse(&order))
	}
	c.JSON(http.StatusOK, resp)
}

// Detail handles GET /api/order/detail/:orderId.
func (h *OrderHandler) Detail(c *gin.Context) {
	userID := CurrentUserID(c)
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	detail, err := h.facade.OrderDetail(c.Request.Context(), userID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.OrderDetailResponse{
		Order:           toOrderResponse(detail.Order),
		Carts:           toCartLineResponses(detail.Carts),
		Billing:         detail.Billing,
		DiscountPercent: detail.DiscountPercent,
		TaxPercent:      detail.TaxPercent,
	}
	if detail.Payment != nil {
		resp.Payment = &dto.PaymentResponse{
			ID:          detail.Payment.ID,
			Name:        detail.Payment.Name,
			Description: detail.Payment.Description,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Cancel handles GET /api/order/cancel/:orderId.
func (h *OrderHandler) Cancel(c *gin.Context) {
	userID := CurrentUserID(c)
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	if err := h.facade.CancelOrder(c.Request.Context(), userID, orderID); err != nil {
		respondError(c, err)
		return
	}

	metrics.OrdersCancelledTotal.Inc()
	c.JSON(http.StatusOK, dto.StatusResponse{Status: true})
}
