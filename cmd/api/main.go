package main

// @title Place Finder API
// @version 1.0
// @description Finds points of interest near a coordinate using OpenStreetMap data and renders them on a map.
// @BasePath /

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"placefinder-api/internal/cache"
	"placefinder-api/internal/config"
	"placefinder-api/internal/handler"
	"placefinder-api/internal/logging"
	"placefinder-api/internal/overpass"
	"placefinder-api/internal/repository"
	"placefinder-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	// Overpass client, optionally backed by Redis
	var clientOpts []overpass.Option
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to redis")
		}
		defer redisCache.Close()
		clientOpts = append(clientOpts, overpass.WithCache(redisCache, cfg.CacheTTL))
	}
	client := overpass.NewClient(cfg.OverpassURL, cfg.OverpassTimeout, clientOpts...)

	// Map store
	var store repository.MapStore
	switch cfg.MapStore {
	case config.MapStorePostgres:
		conn, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		pg := repository.NewPostgresMapStore(conn)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("cannot prepare map store")
		}
		store = pg
	default:
		store = repository.NewMemoryMapStore(cfg.MapStoreCapacity)
	}

	// Initialize layers
	placesService := service.NewPlacesService(client, store, service.Options{
		Radius:      cfg.SearchRadius,
		Limit:       cfg.ResultLimit,
		Concurrency: cfg.MaxConcurrentQueries,
	})

	placesHandler := handler.NewPlacesHandler(placesService)
	mapHandler := handler.NewMapHandler(store)

	srv := &http.Server{
		Addr:              cfg.ServerAddress(),
		Handler:           handler.NewRouter(placesHandler, mapHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("map_store", cfg.MapStore).
			Bool("cache", cfg.RedisAddr != "").
			Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server stopped")
}
