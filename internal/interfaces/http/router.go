package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "tickethub/internal/application/auth/usecases"
	ticketusecases "tickethub/internal/application/ticket/usecases"
	userusecases "tickethub/internal/application/user/usecases"
	infraauth "tickethub/internal/infrastructure/auth"
	"tickethub/internal/infrastructure/config"
	"tickethub/internal/infrastructure/ratelimit"
	"tickethub/internal/infrastructure/repository"
	authhandlers "tickethub/internal/interfaces/http/handlers/auth"
	tickethandlers "tickethub/internal/interfaces/http/handlers/ticket"
	userhandlers "tickethub/internal/interfaces/http/handlers/user"
	"tickethub/internal/interfaces/http/middleware"
	"tickethub/internal/interfaces/http/routes"
	"tickethub/internal/shared/db"
	"tickethub/internal/shared/logger"
	"tickethub/internal/shared/services/sanitize"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the full HTTP surface.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(
		middleware.Recovery(),
		middleware.Logger(log),
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	ticketRepo := repository.NewTicketRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	statusLogRepo := repository.NewStatusLogRepository(database)
	userRepo := repository.NewUserRepository(database)

	txManager := db.NewTransactionManager(database)
	sanitizer := sanitize.New()
	jwtService := infraauth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	authMW := middleware.NewAuthMiddleware(jwtService, userRepo, log)

	ticketHandler := tickethandlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, userRepo, sanitizer, log),
		ticketusecases.NewGetTicketUseCase(ticketRepo, userRepo, log),
		ticketusecases.NewListTicketsUseCase(ticketRepo, userRepo, log),
		ticketusecases.NewAssignTicketUseCase(ticketRepo, userRepo, log),
		ticketusecases.NewChangeStatusUseCase(ticketRepo, statusLogRepo, userRepo, txManager, log),
		ticketusecases.NewDeleteTicketUseCase(ticketRepo, commentRepo, statusLogRepo, txManager, log),
		ticketusecases.NewAddCommentUseCase(ticketRepo, commentRepo, userRepo, sanitizer, log),
		ticketusecases.NewListCommentsUseCase(ticketRepo, commentRepo, userRepo, log),
		log,
	)
	commentHandler := tickethandlers.NewCommentHandler(
		ticketusecases.NewEditCommentUseCase(commentRepo, userRepo, sanitizer, log),
		ticketusecases.NewDeleteCommentUseCase(commentRepo, log),
		log,
	)
	userHandler := userhandlers.NewUserHandler(
		userusecases.NewCreateUserUseCase(userRepo, hasher, log),
		userusecases.NewListUsersUseCase(userRepo, log),
		log,
	)
	authHandler := authhandlers.NewAuthHandler(
		authusecases.NewLoginUseCase(userRepo, hasher, jwtService, log),
		log,
	)

	var loginRateLimit gin.HandlerFunc
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(
			redisClient,
			cfg.RateLimit.LoginLimit,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		)
		loginRateLimit = middleware.RateLimit(limiter)
	}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		LoginRateLimit: loginRateLimit,
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:    userHandler,
		AuthMiddleware: authMW,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMW,
	})
	routes.SetupCommentRoutes(engine, &routes.CommentRouteConfig{
		CommentHandler: commentHandler,
		AuthMiddleware: authMW,
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
