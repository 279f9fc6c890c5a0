package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moriwell/storefront/internal/metrics"
	"github.com/moriwell/storefront/internal/server/http/dto"
)

// CartHandler manages cart ledger endpoints.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// AddToCart handles POST /api/order/cart/:productId.
func (h *CartHandler) AddToCart(c *gin.Context) {
	userID := CurrentUserID(c)
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.facade.AddToCart(c.Request.Context(), userID, productID, req.SizeID, req.ColourID, req.Qty)
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.CartAddsTotal.Inc()
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Session handles GET /api/order/session.
func (h *CartHandler) Session(c *gin.Context) {
	userID := CurrentUserID(c)

	session, err := h.facade.Session(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.SessionResponse{
		Carts:     toCartLineResponses(session.Carts),
		Wishlists: toProductResponses(session.Wishlists),
	}
	if session.Order != nil {
		order := toOrderResponse(session.Order)
		resp.Order = &order
	}
	c.JSON(http.StatusOK, resp)
}

// AddWishlist handles GET /api/order/wishlist/:productId.
func (h *CartHandler) AddWishlist(c *gin.Context) {
	userID := CurrentUserID(c)
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	if err := h.facade.AddWishlist(c.Request.Context(), userID, productID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: true})
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}
