package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"shopstack.backend/internal/domain/entities"
	domainerrors "shopstack.backend/internal/domain/errors"
	"shopstack.backend/internal/interfaces/http/response"
	"shopstack.backend/internal/usecases"
	"shopstack.backend/pkg/utils"
)

type ProductHandler struct {
	productUsecase *usecases.ProductUsecase
}

func NewProductHandler(productUsecase *usecases.ProductUsecase) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
	}
}

// CreateProduct creates a product under the caller's store
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input entities.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	product, err := h.productUsecase.CreateProduct(c.Request.Context(), identity.StoreID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"product": product})
}

// GetProduct returns one product within the caller's store
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	product, err := h.productUsecase.GetProduct(c.Request.Context(), identity.StoreID, productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"product": product})
}

// ListProducts lists the caller's products with page/limit pagination
func (h *ProductHandler) ListProducts(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	params := utils.GetPaginationParams(page, limit)

	products, total, err := h.productUsecase.ListProducts(c.Request.Context(), identity.StoreID, params.Page, params.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"products":   products,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// UpdateProduct applies a partial update within the caller's store
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	var input entities.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	product, err := h.productUsecase.UpdateProduct(c.Request.Context(), identity.StoreID, productID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"product": product})
}

// DeleteProduct removes a product within the caller's store
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	if err := h.productUsecase.DeleteProduct(c.Request.Context(), identity.StoreID, productID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "product deleted"})
}
