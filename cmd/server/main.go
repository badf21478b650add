package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/beav1982/slights/config"
	"github.com/beav1982/slights/game"
	"github.com/beav1982/slights/server"
	"github.com/beav1982/slights/storage"
)

func main() {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	gin.SetMode(cfg.GinMode)

	var store storage.Store
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		store = storage.NewRedisStore(redis.NewClient(opts))
		logger.Info().Msg("using redis room store")
	} else {
		store = storage.NewMemoryStore()
		logger.Warn().Msg("REDIS_URL not set, rooms will not survive restarts")
	}

	manager := game.NewManager(store, game.Options{
		Logger:       logger,
		RestartDelay: cfg.RoundRestartDelay,
	})

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowCredentials: true,
		AllowHeaders:     []string{"Content-Type", "Origin"},
	}))
	server.NewHandler(manager, logger).Register(r)

	logger.Info().Str("addr", cfg.Addr).Msg("listening")
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
