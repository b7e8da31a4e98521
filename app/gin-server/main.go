package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yoockh/folio/config"
	"github.com/yoockh/folio/internal/api/handlers"
	"github.com/yoockh/folio/internal/api/middleware"
	"github.com/yoockh/folio/internal/api/routes"
	"github.com/yoockh/folio/internal/cache"
	"github.com/yoockh/folio/internal/logger"
	mongorepo "github.com/yoockh/folio/internal/repositories/mongo"
	"github.com/yoockh/folio/internal/services"
	"github.com/yoockh/folio/internal/web"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Dev)

	if cfg.Dev {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Store stays nil when the connection fails; the API then answers degraded.
	var (
		client     *mongo.Client
		projects   mongorepo.ProjectRepository
		portfolios mongorepo.PortfolioRepository
	)
	client, err := config.InitMongo(cfg)
	if err != nil {
		log.WithError(err).Warn("MongoDB connection failed, running without database")
	} else {
		db := client.Database(cfg.MongoDB)
		if err := config.EnsureMongoIndexes(db); err != nil {
			log.WithError(err).Warn("ensure mongo indexes")
		}
		projects = mongorepo.NewProjectRepo(db)
		portfolios = mongorepo.NewPortfolioRepo(db)
		log.WithField("database", cfg.MongoDB).Info("MongoDB connected")
	}

	var opts []services.ProjectOption
	rdb, err := config.InitRedis(cfg)
	switch {
	case err != nil:
		log.WithError(err).Warn("Redis unavailable, project cache disabled")
	case rdb != nil:
		opts = append(opts, services.WithCache(cache.NewRedisCache(rdb, cfg.CacheNamespace), cfg.ProjectCacheTTL))
		log.WithFields(logrus.Fields{
			"namespace": cfg.CacheNamespace,
			"ttl":       cfg.ProjectCacheTTL.String(),
		}).Info("Redis project cache enabled")
	}

	projectSvc := services.NewProjectService(projects, portfolios, log, opts...)
	portfolioSvc := services.NewPortfolioService(portfolios, projectSvc, log)

	tmpl, err := web.Templates()
	if err != nil {
		log.WithError(err).Fatal("parse page templates")
	}
	assets, err := web.Static()
	if err != nil {
		log.WithError(err).Fatal("load static assets")
	}

	r := gin.New()
	_ = r.SetTrustedProxies(nil)
	r.Use(middleware.RequestLogger(log), middleware.Recovery(log))
	r.SetHTMLTemplate(tmpl)

	routes.RegisterRoutes(r, routes.Deps{
		Project:   handlers.NewProjectHandler(projectSvc),
		Portfolio: handlers.NewPortfolioHandler(portfolioSvc),
		Health:    handlers.NewHealthHandler(portfolioSvc),
		Contact:   handlers.NewContactHandler(log),
		Assets:    assets,
	})

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("http server start")
		errCh <- srv.ListenAndServe()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("http server error")
		}
	case s := <-sig:
		log.WithField("signal", s.String()).Info("shutting down")
	}

	shutdown(log, srv, client, rdb)
}

func shutdown(log *logrus.Logger, srv *http.Server, client *mongo.Client, rdb *redis.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("http server shutdown")
	}
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			log.WithError(err).Warn("mongo disconnect")
		}
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
