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

type CategoryHandler struct {
	categoryUsecase *usecases.CategoryUsecase
}

func NewCategoryHandler(categoryUsecase *usecases.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{
		categoryUsecase: categoryUsecase,
	}
}

// CreateCategory creates a category under the caller's store
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input entities.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	category, err := h.categoryUsecase.CreateCategory(c.Request.Context(), identity.StoreID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"category": category})
}

// ListCategories lists the caller's categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	categories, err := h.categoryUsecase.ListCategories(c.Request.Context(), identity.StoreID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

// DeleteCategory removes a category within the caller's store
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid category id"))
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	if err := h.categoryUsecase.DeleteCategory(c.Request.Context(), identity.StoreID, categoryID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "category deleted"})
}
