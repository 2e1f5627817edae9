package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/soul-scribe/internal/adapter"
	"github.com/MKhiriev/soul-scribe/internal/config"
	"github.com/MKhiriev/soul-scribe/internal/handler"
	"github.com/MKhiriev/soul-scribe/internal/logger"
	"github.com/MKhiriev/soul-scribe/internal/ratelimit"
	"github.com/MKhiriev/soul-scribe/internal/server"
	"github.com/MKhiriev/soul-scribe/internal/service"
	"github.com/MKhiriev/soul-scribe/internal/store"
	"github.com/MKhiriev/soul-scribe/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const chatLimiterPrefix = "soulscribe:ratelimit"

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("soul-scribe-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("soul-scribe-server", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("token_mode", cfg.App.TokenMode).
		Str("chat_base_url", cfg.Adapter.Chat.BaseURL).
		Str("chat_model", cfg.Adapter.Chat.Model).
		Bool("chat_api_key_set", cfg.Adapter.Chat.APIKey != "").
		Bool("rate_limit", cfg.Limiter.RedisAddr != "").
		Msg("received configs")

	if cfg.Adapter.Chat.APIKey == "" {
		log.Warn().Msg("chat API key is not configured, chat requests will fail")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	chatAdapter := adapter.NewChatAdapter(cfg.Adapter.Chat, log)

	services := service.NewServices(storages, chatAdapter, cfg, buildInfo, log)

	var limiter ratelimit.Limiter
	if cfg.Limiter.RedisAddr != "" {
		redisLimiter, err := ratelimit.NewRedisFixedWindowLimiter(
			cfg.Limiter.RedisAddr,
			cfg.Limiter.RedisPassword,
			chatLimiterPrefix,
			cfg.Limiter.ChatLimit,
			cfg.Limiter.ChatWindow,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating rate limiter")
		}
		defer redisLimiter.Close()
		limiter = redisLimiter
	}

	handlers, err := handler.NewHandlers(services, limiter, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion)
	fmt.Printf("Build date: %s\n", info.BuildDate)
	fmt.Printf("Build commit: %s\n", info.BuildCommit)
}
