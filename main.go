package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"careeragent/config"
	"careeragent/database"
	"careeragent/handlers"
	"careeragent/services"
	"careeragent/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := utils.GlobalLogger.WithComponent("main")
	cfg := config.GetAppConfig()

	db, err := database.Connect(cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
		cfg.Database.Password, cfg.Database.DBName, cfg.Database.SSLMode)
	if err != nil {
		logger.Error("database connection failed", err)
		return
	}
	defer db.Close()

	if err := database.CreateTables(db); err != nil {
		logger.Error("schema bootstrap failed", err)
		return
	}

	llm := services.NewLLMClient(cfg.LLM, utils.GlobalLogger.WithComponent("llm"))
	jwtService := services.NewJWTService(cfg.JWTSecret)

	s3Service, err := services.NewS3Service()
	if err != nil {
		logger.Warn("S3 not configured; resume export will stream documents directly", map[string]interface{}{"reason": err.Error()})
		s3Service = nil
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	api := handlers.NewAPI(db, llm, jwtService, s3Service, utils.GlobalLogger)

	r := gin.Default()
	api.RegisterRoutes(r, db)

	logger.Info("server starting", map[string]interface{}{
		"port":  cfg.Port,
		"model": cfg.LLM.Model,
	})
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", err)
	}
}
