package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"shopstack.backend/internal/domain/entities"
	"shopstack.backend/internal/interfaces/http/response"
	"shopstack.backend/internal/usecases"
	"shopstack.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key carrying the credential
	AuthorizationHeader = "Authorization"
	// IdentityKey is the gin context key for the resolved identity
	IdentityKey = "identity"
)

// publicPaths are reachable without a credential. Store registration is the
// bootstrap carve-out: the first key has to come from somewhere.
var publicPaths = map[string]bool{
	"GET /health":                  true,
	"POST /api/v1/stores/register": true,
}

func isPublic(method, path string) bool {
	if strings.HasPrefix(path, "/docs") {
		return true
	}
	return publicPaths[method+" "+path]
}

// APIKeyAuth resolves the Authorization header into a store identity using
// the validator. Rejections abort before the handler runs; a storage failure
// during lookup is a 500, never a 401.
func APIKeyAuth(apiKeyUsecase *usecases.ApiKeyUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isPublic(c.Request.Method, c.Request.URL.Path) {
			c.Next()
			return
		}

		decision, err := apiKeyUsecase.Validate(c.Request.Context(), c.GetHeader(AuthorizationHeader))
		if err != nil {
			logger.Error(c.Request.Context(), "api key lookup failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"code":    "INTERNAL_ERROR",
				"message": "internal server error",
			})
			return
		}

		if !decision.Accepted() {
			logger.Debug(c.Request.Context(), "api key rejected",
				zap.String("reason", decision.Reason.String()),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
			response.AbortError(c, decision.AppError())
			return
		}

		identity := decision.Identity
		c.Set(IdentityKey, identity)

		logger.Debug(c.Request.Context(), "api key accepted",
			zap.String("store_id", identity.StoreID.String()),
			zap.String("api_key_id", identity.ApiKeyID.String()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)

		c.Next()
	}
}

// GetIdentity gets the resolved identity from context
func GetIdentity(c *gin.Context) (*entities.Identity, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*entities.Identity)
	return identity, ok
}
