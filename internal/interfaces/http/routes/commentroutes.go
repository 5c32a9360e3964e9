package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "tickethub/internal/interfaces/http/handlers/ticket"
	"tickethub/internal/interfaces/http/middleware"
)

type CommentRouteConfig struct {
	CommentHandler *tickethandlers.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupCommentRoutes(engine *gin.Engine, config *CommentRouteConfig) {
	comments := engine.Group("/comments")
	comments.Use(config.AuthMiddleware.RequireAuth())
	{
		comments.PATCH("/:id", config.CommentHandler.EditComment)
		comments.DELETE("/:id", config.CommentHandler.DeleteComment)
	}
}
