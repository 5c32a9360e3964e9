package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "tickethub/internal/interfaces/http/handlers/user"
	"tickethub/internal/interfaces/http/middleware"
	"tickethub/internal/shared/authorization"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(
		config.AuthMiddleware.RequireAuth(),
		authorization.RequireRoles(authorization.RoleManager),
	)
	{
		users.POST("", config.UserHandler.CreateUser)
		users.GET("", config.UserHandler.ListUsers)
	}
}
