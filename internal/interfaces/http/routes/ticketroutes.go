package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "tickethub/internal/interfaces/http/handlers/ticket"
	"tickethub/internal/interfaces/http/middleware"
	"tickethub/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths before parameterized paths to avoid
		// route conflicts.
		tickets.POST("",
			authorization.RequireRoles(authorization.RoleUser, authorization.RoleManager),
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)

		tickets.PATCH("/:id/assign",
			authorization.RequireRoles(authorization.RoleManager, authorization.RoleSupport),
			config.TicketHandler.AssignTicket)
		tickets.PATCH("/:id/status",
			authorization.RequireRoles(authorization.RoleManager, authorization.RoleSupport),
			config.TicketHandler.ChangeStatus)

		tickets.POST("/:id/comments",
			config.TicketHandler.AddComment)
		tickets.GET("/:id/comments",
			config.TicketHandler.ListComments)

		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
		tickets.DELETE("/:id",
			authorization.RequireRoles(authorization.RoleManager),
			config.TicketHandler.DeleteTicket)
	}
}
