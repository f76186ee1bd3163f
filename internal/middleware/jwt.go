package middleware

import (
	"net/http"
	"strings"

	"github.com/ayodiya/hux-assessment-backend/internal/constants"
	apperrors "github.com/ayodiya/hux-assessment-backend/internal/errors"
	"github.com/ayodiya/hux-assessment-backend/internal/service"
	ctxutil "github.com/ayodiya/hux-assessment-backend/pkg/context"
	"github.com/ayodiya/hux-assessment-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type JWTMiddleware struct {
	tokenService *service.TokenService
}

func NewJWTMiddleware(tokenService *service.TokenService) *JWTMiddleware {
	return &JWTMiddleware{tokenService: tokenService}
}

// RequireAuth authenticates the bearer token and attaches the resolved
// identity to the request context. Missing token answers a bare 401,
// an expired token 401 with a message, any other verification failure a
// bare 403; no workflow runs after a guard failure.
func (m *JWTMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			logger.GetLogger().Warn("Missing Authorization header",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] == "" {
			logger.GetLogger().Warn("Malformed Authorization header",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		identity, err := m.tokenService.Identity(tokenParts[1])
		if err != nil {
			domainErr := apperrors.GetDomainError(err)
			if domainErr != nil && domainErr.Code == apperrors.ErrTokenExpired.Code {
				logger.GetLogger().Info("Expired token rejected",
					zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					constants.ResponseFieldMessage: apperrors.ErrTokenExpired.Message,
				})
				return
			}

			logger.GetLogger().Warn("Invalid token rejected",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Request = c.Request.WithContext(ctxutil.WithIdentity(c.Request.Context(), identity))

		logger.GetLogger().Debug("Request authenticated",
			zap.Uint("user_id", identity.UserID),
			zap.String("email", identity.Email),
			zap.String("path", c.Request.URL.Path))

		c.Next()
	}
}
