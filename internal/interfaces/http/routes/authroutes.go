package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "tickethub/internal/interfaces/http/handlers/auth"
)

type AuthRouteConfig struct {
	AuthHandler *authhandlers.AuthHandler
	// LoginRateLimit is optional; nil disables rate limiting.
	LoginRateLimit gin.HandlerFunc
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		if config.LoginRateLimit != nil {
			auth.POST("/login", config.LoginRateLimit, config.AuthHandler.Login)
		} else {
			auth.POST("/login", config.AuthHandler.Login)
		}
	}
}
