package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tickethub/internal/domain/user"
	"tickethub/internal/infrastructure/auth"
	"tickethub/internal/shared/authorization"
	"tickethub/internal/shared/errors"
	"tickethub/internal/shared/logger"
	"tickethub/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, userRepo user.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		// The actor is re-resolved on every request so revoked accounts
		// lose access the moment they are removed, not at token expiry.
		u, err := m.userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				utils.ErrorResponse(c, http.StatusUnauthorized, "user no longer exists")
			} else {
				m.logger.Errorw("failed to resolve actor", "user_id", claims.UserID, "error", err)
				utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
			}
			c.Abort()
			return
		}

		c.Set(authorization.ContextKeyActor, u.Actor())
		c.Next()
	}
}
