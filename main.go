package main

import (
	"github.com/kelaskoding/blog-api/config"
	"github.com/kelaskoding/blog-api/models"
	"github.com/kelaskoding/blog-api/routes"
	"github.com/kelaskoding/blog-api/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "" {
		utils.Sugar.Fatal("JWT_SECRET must be set in environment variables")
	}

	db := config.InitDatabase(&models.Post{}, &models.Category{}, &models.User{})

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
