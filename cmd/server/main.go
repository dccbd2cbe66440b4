package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"gymcloud/docs"
	"gymcloud/internal/cache"
	"gymcloud/internal/config"
	"gymcloud/internal/db"
	"gymcloud/internal/handler"
	"gymcloud/internal/logger"
	"gymcloud/internal/metrics"
	"gymcloud/internal/repository"
	"gymcloud/internal/router"
	"gymcloud/internal/service"
)

//go:generate swag init --dir ../../ --generalInfo cmd/server/main.go --output ../../docs --parseInternal

// @title Gymcloud Member API
// @version 1.0
// @description Create, list and delete gym members and read membership statistics.
// @BasePath /
func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	store, err := openStore(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("store init")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, "gymcloud:")
	if cacheClient == nil {
		log.Info("REDIS_ADDR not set, statistics caching disabled")
	} else if err := cacheClient.Ping(context.Background()); err != nil {
		log.WithError(err).Warn("redis unreachable, statistics will be computed on every request")
	}
	defer cacheClient.Close()

	loc, err := cfg.Location()
	if err != nil {
		log.WithError(err).Warn("falling back to UTC for membership dates and daily statistics")
	}

	rec := metrics.New()
	memberService := service.NewMemberService(store, cacheClient, log, service.Options{
		Location:      loc,
		StatsCacheTTL: cfg.StatsCacheTTL,
	})
	memberHandler := handler.NewMemberHandler(memberService, log, rec)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}
	if cfg.APIBasePath != "" {
		docs.SwaggerInfo.BasePath = cfg.APIBasePath
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, log, memberHandler, rec)

	go func() {
		addr := ":" + cfg.ServerPort
		log.WithField("addr", addr).Info("member service listening")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
}

func openStore(cfg *config.Config, log *logrus.Logger) (repository.MemberStore, error) {
	if cfg.DBDriver == "memory" {
		log.Warn("DB_DRIVER=memory, members will not survive a restart")
		return repository.NewMemoryStore(), nil
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := repository.Migrate(gormDB, cfg.MembersTable); err != nil {
			return nil, err
		}
	}
	log.WithFields(logrus.Fields{"driver": cfg.DBDriver, "table": cfg.MembersTable}).Info("member store ready")
	return repository.NewMemberRepository(gormDB, cfg.MembersTable), nil
}
