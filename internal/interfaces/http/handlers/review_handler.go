package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"shopstack.backend/internal/domain/entities"
	domainerrors "shopstack.backend/internal/domain/errors"
	"shopstack.backend/internal/interfaces/http/response"
	"shopstack.backend/internal/usecases"
)

type ReviewHandler struct {
	reviewUsecase *usecases.ReviewUsecase
}

func NewReviewHandler(reviewUsecase *usecases.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
	}
}

// CreateReview records a review against one of the caller's products
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	var input entities.CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	review, err := h.reviewUsecase.CreateReview(c.Request.Context(), identity.StoreID, productID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": review})
}

// ListReviews lists reviews for one of the caller's products
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	reviews, err := h.reviewUsecase.ListReviews(c.Request.Context(), identity.StoreID, productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

// DeleteReview removes a review within the caller's store
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid review id"))
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	if err := h.reviewUsecase.DeleteReview(c.Request.Context(), identity.StoreID, reviewID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "review deleted"})
}
