package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agendabi/bi-scheduler/internal/cache"
	"github.com/agendabi/bi-scheduler/internal/config"
	dbpkg "github.com/agendabi/bi-scheduler/internal/db"
	"github.com/agendabi/bi-scheduler/internal/logger"
	"github.com/agendabi/bi-scheduler/internal/middleware"
	"github.com/agendabi/bi-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg.Environment)
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	var store cache.Cache = cache.NewNoop()
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn("redis unreachable, catalog cache disabled", zap.Error(err))
		} else {
			store = redisCache
		}
		cancel()
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, store, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
