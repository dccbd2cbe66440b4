package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"gymcloud/internal/cache"
	"gymcloud/internal/config"
	"gymcloud/internal/db"
	"gymcloud/internal/logger"
	"gymcloud/internal/repository"
	"gymcloud/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	log.Info("starting member seed")

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	// seeding is the one place the table may be created
	if err := repository.Migrate(gormDB, cfg.MembersTable); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	requests, err := loadMembers(cfg.SeedSource)
	if err != nil {
		log.WithError(err).Fatal("failed to load members")
	}
	log.WithField("source", cfg.SeedSource).Infof("loaded %d members", len(requests))

	loc, err := cfg.Location()
	if err != nil {
		log.WithError(err).Warn("falling back to UTC for membership dates")
	}

	// shares the server's cache so seeded members bump the stats generation
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, "gymcloud:")
	defer cacheClient.Close()

	store := repository.NewMemberRepository(gormDB, cfg.MembersTable)
	svc := service.NewMemberService(store, cacheClient, log, service.Options{Location: loc})

	result, err := seedMembers(context.Background(), svc, log, requests)
	if err != nil {
		log.WithError(err).Fatal("failed to seed members")
	}

	log.WithFields(logrus.Fields{
		"created":   result.Created,
		"existing":  result.Existing,
		"rejected":  result.Rejected,
		"processed": result.Created + result.Existing + result.Rejected,
	}).Info("seed completed")
}
