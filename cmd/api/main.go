package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/WorkshopSystems01/workshop-tracker/internal/cache"
	"github.com/WorkshopSystems01/workshop-tracker/internal/config"
	dbpkg "github.com/WorkshopSystems01/workshop-tracker/internal/db"
	"github.com/WorkshopSystems01/workshop-tracker/internal/logger"
	"github.com/WorkshopSystems01/workshop-tracker/internal/routes"
	"github.com/WorkshopSystems01/workshop-tracker/internal/storage"
)

func main() {

	cfg := config.Load()
	logger.Setup(cfg.Env)

	db := dbpkg.NewDB(cfg)

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPassword)
	if cacheClient == nil {
		log.Info().Msg("redis not configured, dashboard caching disabled")
	}

	documents := storage.NewDocumentStore(cfg)
	if documents == nil {
		log.Info().Msg("object storage not configured, document uploads disabled")
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, cacheClient, documents)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
