package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kelaskoding/blog-api/config"
	"github.com/kelaskoding/blog-api/controllers"
	"github.com/kelaskoding/blog-api/middleware"
	"github.com/kelaskoding/blog-api/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	// Uploaded post images are served from the configured storage root.
	r.Static("/storage", cfg.UploadsDir)

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, "ok", nil)
	})

	postController := controllers.NewPostController(db)
	categoryController := controllers.NewCategoryController(db)
	authController := controllers.NewAuthController(db)

	api := r.Group("/api")

	posts := api.Group("/posts")
	posts.GET("", postController.Index)
	posts.POST("", postController.Store)
	posts.GET("/:id", postController.Show)
	posts.PUT("/:id", postController.Update)
	posts.PATCH("/:id", postController.Update)
	posts.DELETE("/:id", postController.Destroy)

	categories := api.Group("/categories")
	categories.GET("", categoryController.Index)
	categories.POST("", categoryController.Store)
	categories.GET("/:id", categoryController.Show)
	categories.PUT("/:id", categoryController.Update)
	categories.PATCH("/:id", categoryController.Update)
	categories.DELETE("/:id", categoryController.Destroy)

	auth := api.Group("")
	auth.Use(middleware.RateLimitMiddleware())
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired())
	protected.GET("/logout", authController.Logout)
	protected.GET("/user", authController.Me)

	return r
}
