package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"shopapi/internal/config"
	"shopapi/internal/events"
	"shopapi/internal/httpserver"
	"shopapi/internal/logging"
	"shopapi/internal/middleware"
	"shopapi/internal/repo"
	"shopapi/internal/search"
	"shopapi/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	db, err := config.OpenDB(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.KafkaAddr != "" {
		publisher = events.NewKafkaPublisher([]string{cfg.KafkaAddr})
	}

	r := repo.New(db)
	jwtSecret := []byte(cfg.JWTSecret)

	catalogSvc := &service.CatalogService{Repo: r, Events: publisher}
	var searchHandler *httpserver.SearchHandler
	if cfg.ESURL != "" {
		esClient, err := search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("elasticsearch init: %v", err)
		}
		catalogSvc.Index = &search.Indexer{ES: esClient, Index: search.ProductIndex}
		searchHandler = &httpserver.SearchHandler{ES: esClient, Index: search.ProductIndex}
	}

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover(), echomw.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(logging.IntoContext(req.Context(), logger)))
			return next(c)
		}
	})

	deps := httpserver.Deps{
		Auth:             &middleware.Auth{JWTSecret: jwtSecret},
		AuthHandler:      &httpserver.AuthHandler{Svc: &service.AuthService{Repo: r, JWTSecret: jwtSecret, Events: publisher}},
		ProductHandler:   &httpserver.ProductHandler{Svc: catalogSvc},
		OrderHandler:     &httpserver.OrderHandler{Svc: &service.OrderService{Repo: r, Events: publisher}},
		RecommendHandler: &httpserver.RecommendHandler{Svc: &service.RecommendService{Repo: r}},
		UserHandler:      &httpserver.UserHandler{Svc: &service.UserService{Repo: r, Events: publisher}},
		SearchHandler:    searchHandler,
		DebugRoutes:      cfg.Environment == "local",
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if err := publisher.Close(); err != nil {
		log.Printf("producer close error: %v", err)
	}

	log.Println("shutdown complete")
}
