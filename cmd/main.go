package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shihan84/cg-overlay/internal/cache"
	"github.com/shihan84/cg-overlay/internal/config"
	"github.com/shihan84/cg-overlay/internal/domain"
	"github.com/shihan84/cg-overlay/internal/handler"
	"github.com/shihan84/cg-overlay/internal/hub"
	"github.com/shihan84/cg-overlay/internal/repository"
	"github.com/shihan84/cg-overlay/internal/seed"
	"github.com/shihan84/cg-overlay/internal/service"
	"github.com/shihan84/cg-overlay/internal/state"
	"github.com/shihan84/cg-overlay/pkg/database"
	pkglog "github.com/shihan84/cg-overlay/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Level == "debug",
		ServiceName: "cg-overlay",
	})
	logger := pkglog.L()

	// Catalog database
	db, err := database.New(&database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		FilePath:        cfg.Database.FilePath,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := database.AutoMigrate(db,
		&domain.ClientModel{},
		&domain.TemplateModel{},
		&domain.TemplateFieldModel{},
		&domain.OverlayModel{},
	); err != nil {
		logger.Fatal().Err(err).Msg("failed to auto-migrate")
	}
	logger.Info().Msg("database migration completed")

	clientRepo := repository.NewGormClientRepository(db)
	templateRepo := repository.NewGormTemplateRepository(db)
	overlayRepo := repository.NewGormOverlayRepository(db)

	if err := seed.Run(context.Background(), templateRepo); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed system templates")
	}

	// Optional redis cache for catalog reads
	var overlayCache cache.OverlayCache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisOverlayCache(cfg.Redis, cfg.Cache.Prefix)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisCache.Close()
		overlayCache = redisCache
		logger.Info().Str("addr", cfg.Redis.Address).Msg("redis cache connected")
	}

	catalogSvc := service.NewCatalogService(clientRepo, templateRepo, overlayRepo, overlayCache, cfg.Cache.TTL)

	// Live sync core
	store := state.NewStore()
	wsHub := hub.NewHub(cfg.WebSocket)
	syncSvc := service.NewSyncService(wsHub, store)

	httpHandler := handler.NewHandler(catalogSvc)
	wsHandler := handler.NewWSHandler(wsHub, syncSvc, cfg.WebSocket)

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	httpHandler.RegisterRoutes(r)
	wsHandler.RegisterRoutes(r)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Str("driver", cfg.Database.Driver).Msg("cg-overlay listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("stopped")
}
