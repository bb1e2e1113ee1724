package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bit-milind42/Blog-Editor/docs"
	"github.com/bit-milind42/Blog-Editor/internal/api/handler"
	"github.com/bit-milind42/Blog-Editor/internal/api/middleware"
	"github.com/bit-milind42/Blog-Editor/internal/core/ports"
	"github.com/bit-milind42/Blog-Editor/internal/core/service"
	mongodb "github.com/bit-milind42/Blog-Editor/internal/infrastructure/db/mongo"
	redisdb "github.com/bit-milind42/Blog-Editor/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; token revocation is then disabled.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	blogRepo := mongodb.NewBlogRepository(db)

	var revoker ports.TokenRevoker
	if rdb != nil {
		revoker = redisdb.NewTokenRevoker(rdb)
	}

	tokens := service.NewTokenService(jwtSecret, 24*time.Hour)
	authService := service.NewAuthService(userRepo, tokens)
	blogService := service.NewBlogService(blogRepo, log)

	authHandler := handler.NewAuthHandler(authService, revoker)
	blogHandler := handler.NewBlogHandler(blogService)
	requireAuth := middleware.Auth(tokens, revoker)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, requireAuth)

	// --- Blog routes ---
	e.POST("/blogs/save-draft", blogHandler.SaveDraft, requireAuth)
	e.POST("/blogs/publish", blogHandler.Publish, requireAuth)
	e.GET("/blogs", blogHandler.List)
	e.GET("/blogs/all", blogHandler.ListAll, requireAuth)
	e.GET("/blogs/:id", blogHandler.Get)
	e.DELETE("/blogs/:id", blogHandler.Delete, requireAuth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
