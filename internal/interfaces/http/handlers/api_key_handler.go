package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"shopstack.backend/internal/domain/entities"
	domainerrors "shopstack.backend/internal/domain/errors"
	"shopstack.backend/internal/interfaces/http/middleware"
	"shopstack.backend/internal/interfaces/http/response"
	"shopstack.backend/internal/usecases"
)

type ApiKeyHandler struct {
	apiKeyUsecase *usecases.ApiKeyUsecase
}

func NewApiKeyHandler(apiKeyUsecase *usecases.ApiKeyUsecase) *ApiKeyHandler {
	return &ApiKeyHandler{
		apiKeyUsecase: apiKeyUsecase,
	}
}

// requireIdentity pulls the resolved identity set by the auth middleware.
// Every handler here operates on a store scope, so a request reaching one
// without an identity cannot be served.
func requireIdentity(c *gin.Context) (*entities.Identity, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Error(c, domainerrors.BadRequest("store scope required").WithCode(domainerrors.CodeStoreRequired))
		return nil, false
	}
	return identity, true
}

// CreateApiKey issues a new credential for the caller's store. The plaintext
// key appears in this response only.
func (h *ApiKeyHandler) CreateApiKey(c *gin.Context) {
	var input entities.CreateApiKeyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	resp, err := h.apiKeyUsecase.CreateApiKey(c.Request.Context(), identity.StoreID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"apiKey": resp})
}

// ListApiKeys lists the caller's keys; prefixes only, never hashes
func (h *ApiKeyHandler) ListApiKeys(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	apiKeys, err := h.apiKeyUsecase.ListApiKeys(c.Request.Context(), identity.StoreID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"apiKeys": apiKeys})
}

// DeactivateApiKey deactivates one of the caller's keys. Keys owned by other
// stores come back 404, indistinguishable from ids that never existed.
func (h *ApiKeyHandler) DeactivateApiKey(c *gin.Context) {
	apiKeyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid API key id"))
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	if err := h.apiKeyUsecase.DeactivateApiKey(c.Request.Context(), identity.StoreID, apiKeyID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "API key deactivated"})
}
