package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"shopstack.backend/internal/domain/entities"
	domainerrors "shopstack.backend/internal/domain/errors"
	"shopstack.backend/internal/interfaces/http/response"
	"shopstack.backend/internal/usecases"
)

type StoreHandler struct {
	storeUsecase *usecases.StoreUsecase
}

func NewStoreHandler(storeUsecase *usecases.StoreUsecase) *StoreHandler {
	return &StoreHandler{
		storeUsecase: storeUsecase,
	}
}

// Register creates a store and returns its first API key. This route sits
// outside the auth middleware.
func (h *StoreHandler) Register(c *gin.Context) {
	var input entities.RegisterStoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.storeUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Me returns the caller's own store
func (h *StoreHandler) Me(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	store, err := h.storeUsecase.GetStore(c.Request.Context(), identity.StoreID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"store": store})
}
