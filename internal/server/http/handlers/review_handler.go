package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moriwell/storefront/internal/server/http/dto"
)

// ReviewHandler manages public product views and reviews.
type ReviewHandler struct {
	facade CatalogFacade
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(facade CatalogFacade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// Product handles GET /api/order/cart/:productId.
func (h *ReviewHandler) Product(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	detail, err := h.facade.ProductDetail(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ProductDetailResponse{
		Product: toProductResponse(detail.Product),
		Related: toProductResponses(detail.Related),
	}
	for _, img := range detail.Images {
		resp.Images = append(resp.Images, dto.ImageResponse{ID: img.ID, Path: img.Path, Sort: img.Sort})
	}
	for _, inv := range detail.Inventories {
		resp.Inventories = append(resp.Inventories, dto.InventoryResponse{
			ID: inv.ID, SizeID: inv.SizeID, ColourID: inv.ColourID, Stock: inv.Stock,
		})
	}
	for _, size := range detail.Sizes {
		resp.Sizes = append(resp.Sizes, dto.SizeResponse{ID: size.ID, Name: size.Name})
	}
	for _, colour := range detail.Colours {
		resp.Colours = append(resp.Colours, dto.ColourResponse{ID: colour.ID, Code: colour.Code, Name: colour.Name})
	}
	c.JSON(http.StatusOK, resp)
}

// List handles GET /api/order/review/:productId.
func (h *ReviewHandler) List(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	reviews, err := h.facade.Reviews(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		resp = append(resp, dto.ReviewResponse{
			ID:          review.ID,
			UserID:      review.UserID,
			Rating:      review.Rating,
			RatingIndex: review.RatingIndex,
			Percentage:  review.Percentage,
			Review:      review.Review.Review,
			CreatedAt:   review.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/order/review/:productId.
func (h *ReviewHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	review, err := h.facade.CreateReview(c.Request.Context(), userID, productID, req.Rating, req.Review)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ReviewResponse{
		ID:        review.ID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Review:    review.Review,
		CreatedAt: review.CreatedAt,
	})
}
