package http

import (
	"log/slog"

	"github.com/jayamiko/Visual-Book-App-Server/internal/config"
	"github.com/jayamiko/Visual-Book-App-Server/internal/http/handlers"
	"github.com/jayamiko/Visual-Book-App-Server/internal/http/middleware"
	"github.com/jayamiko/Visual-Book-App-Server/internal/services"
	"github.com/jayamiko/Visual-Book-App-Server/internal/token"

	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	Config      *config.Config
	AuthService *services.AuthService
	Tokens      *token.Manager
	Logger      *slog.Logger
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(deps.Config.AllowedOrigins))

	authHandler := handlers.NewAuthHandler(deps.AuthService)
	userHandler := handlers.NewUserHandler(deps.AuthService)

	router.GET("/healthz", handlers.Health)

	api := router.Group("/api/v1")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(deps.Tokens))
	{
		protected.GET("/check-auth", authHandler.CheckAuth)
	}

	admin := protected.Group("")
	admin.Use(middleware.RequireRole("admin"))
	{
		admin.GET("/users", userHandler.List)
	}

	return router
}
