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

type CustomerHandler struct {
	customerUsecase *usecases.CustomerUsecase
}

func NewCustomerHandler(customerUsecase *usecases.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{
		customerUsecase: customerUsecase,
	}
}

// ListCustomers lists the caller's customers with page/limit pagination
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	params := utils.GetPaginationParams(page, limit)

	customers, total, err := h.customerUsecase.ListCustomers(c.Request.Context(), identity.StoreID, params.Page, params.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"customers":  customers,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// GetCustomer returns one customer within the caller's store
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid customer id"))
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	customer, err := h.customerUsecase.GetCustomer(c.Request.Context(), identity.StoreID, customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"customer": customer})
}

// SubscribeNewsletter records an opt-in for the caller's store. Subscribing
// an email twice is a success.
func (h *CustomerHandler) SubscribeNewsletter(c *gin.Context) {
	var input entities.SubscribeNewsletterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	sub, err := h.customerUsecase.SubscribeNewsletter(c.Request.Context(), identity.StoreID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"subscription": sub})
}
